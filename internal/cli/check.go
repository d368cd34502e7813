package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errInvalidModel = errors.New("model has errors")

func (a *app) newCheckCommand() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the model and print diagnostics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lm, err := a.loadModel()
			if lm == nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, d := range lm.diags.All() {
				fmt.Fprintf(out, "%s: %s\n", d.Severity, d)
			}

			a.printf(out, "%d type(s), %d element(s): %d error(s), %d warning(s), %d info(s)\n",
				lm.bundle.Graph.Len(), len(lm.bundle.Elements),
				len(lm.diags.Errors), len(lm.diags.Warnings), len(lm.diags.Infos))

			if lm.diags.HasErrors() || (strict && len(lm.diags.Warnings) > 0) {
				return errInvalidModel
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "treat warnings as errors")

	return cmd
}
