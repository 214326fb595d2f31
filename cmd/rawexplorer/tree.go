package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bpbin/rawexplorer/explorer"
)

func newTreeCmd(a *app) *cobra.Command {
	var (
		depth int
		links bool
	)
	cmd := &cobra.Command{
		Use:   "tree [pointer]",
		Short: "Print an annotated tree below a pointer",
		Long: `Print the subtree below a pointer (the root by default), one member per line
with its value and, depending on --mode, its type annotation.`,
		Example: `rawexplorer tree /recipe/iron-plate --depth 1 --mode all`,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := a.load(true)
			if err != nil {
				return err
			}
			ptr := ""
			if len(args) == 1 {
				ptr = args[0]
			}
			v, c, p, err := w.resolve(ptr)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			return explorer.Walk(v, c, depth, func(n explorer.Node) error {
				key := n.Key()
				if n.Depth == 0 {
					key = p.String()
				}
				writeRow(out, n, key, explorer.Annotate(n.Cursor, w.mode), links)
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&depth, "depth", 2, "levels to print below the pointer, negative for all")
	cmd.Flags().BoolVar(&links, "links", false, "print documentation links after annotations")
	return cmd
}

func writeRow(out io.Writer, n explorer.Node, key string, ann explorer.Annotation, links bool) {
	var b strings.Builder
	b.WriteString(strings.Repeat("  ", n.Depth))
	b.WriteString(key)
	b.WriteString(": ")
	b.WriteString(explorer.Summary(n.Value))
	if ann.Shown {
		b.WriteString("  <")
		b.WriteString(ann.Label)
		b.WriteString(">")
		if links {
			for _, l := range ann.Links {
				b.WriteString(" ")
				b.WriteString(l.URL)
			}
		}
	}
	fmt.Fprintln(out, b.String())
}
