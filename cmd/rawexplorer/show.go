package main

import (
	"fmt"

	j "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bpbin/rawexplorer/dedup"
)

func newShowCmd(a *app) *cobra.Command {
	var (
		output    string
		streaming bool
	)
	cmd := &cobra.Command{
		Use:   "show <pointer>",
		Short: "Print the value at a pointer as JSON or YAML",
		Long: `Print the value at a pointer. With --stream only that value is built from
the dump; the rest of the file is skipped token by token, which keeps memory
flat on large dumps. No schema is needed in that mode.`,
		Example: `rawexplorer show /recipe/iron-plate -o yaml`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output != "json" && output != "yaml" {
				return fmt.Errorf("output format must be yaml or json")
			}
			var (
				v   dedup.Value
				err error
			)
			if streaming {
				v, err = a.loadAt(args[0])
			} else {
				var w *workspace
				if w, err = a.load(true); err == nil {
					v, _, _, err = w.resolve(args[0])
				}
			}
			if err != nil {
				return err
			}

			var marshalled []byte
			switch output {
			case "json":
				marshalled, err = j.MarshalIndent(v, "", "  ")
				if err != nil {
					return fmt.Errorf("fail to marshal json: %w", err)
				}
				marshalled = append(marshalled, '\n')
			case "yaml":
				marshalled, err = yaml.Marshal(v)
				if err != nil {
					return fmt.Errorf("fail to marshal yaml: %w", err)
				}
			}
			_, err = cmd.OutOrStdout().Write(marshalled)
			return err
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "json", "choose `yaml` or `json` format")
	cmd.Flags().BoolVar(&streaming, "stream", false, "build only the addressed value from the dump")
	return cmd
}
