package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLabelCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "label <pointer>...",
		Short: "Print the type label and doc link of each pointer",
		Long: `Print one line per pointer: the pointer, the type label and the documentation
link, separated by tabs. Positions the schema cannot type are labelled "?".
Pointers follow RFC 6901: '' is the root and "/" is the member with the empty key.`,
		Example: `rawexplorer label /recipe/iron-plate/icon /utility-constants/default/zoom_levels`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := a.load(true)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, ptr := range args {
				_, c, p, err := w.resolve(ptr)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s\t%s\t%s\n", p.Pointer(), c.Label(), c.DocLink())
			}
			return nil
		},
	}
}
