package main

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newLintCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lint",
		Short: "Report dangling parents, parent cycles and duplicate names in the schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := a.load(false)
			if err != nil {
				return err
			}
			err = w.index.Lint()
			if err == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "no findings")
				return nil
			}
			var merr *multierror.Error
			if !errors.As(err, &merr) {
				return err
			}
			for _, e := range merr.Errors {
				fmt.Fprintln(cmd.OutOrStdout(), e)
			}
			return errors.Errorf("%d lint findings", len(merr.Errors))
		},
	}
}
