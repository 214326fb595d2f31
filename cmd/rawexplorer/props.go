package main

import (
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newPropsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "props <name>",
		Short: "Print the inherited properties of a prototype or type",
		Long: `Print every property of a prototype or type concept, ancestors first.
Properties overridden further down the chain are marked as shadowed.`,
		Example: `rawexplorer props RecipePrototype`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := a.load(false)
			if err != nil {
				return err
			}
			name := args[0]
			props, ok := w.index.InheritedProps(name)
			if !ok {
				return fmt.Errorf("%s is not a prototype or type with a resolvable parent chain", name)
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"owner", "name", "type", "optional"})
			table.SetAutoWrapText(false)
			for _, p := range props {
				pname := p.Name
				if p.Shadowed {
					pname += " (shadowed)"
				}
				table.Append([]string{p.Owner, pname, p.Type.String(), strconv.FormatBool(p.Optional)})
			}
			if cp, ok := w.index.CustomProperties(name); ok {
				table.Append([]string{name, "[" + cp.KeyType.String() + "]", cp.ValueType.String(), "true"})
			}
			table.Render()
			return nil
		},
	}
}
