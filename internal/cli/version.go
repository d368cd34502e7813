package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) newVersionCommand() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if short {
				fmt.Fprintln(cmd.OutOrStdout(), a.info.Version)
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "alias-resolver version %s (commit: %s, built: %s)\n",
				a.info.Version, a.info.Commit, a.info.Date)

			return nil
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "Print version number only")

	return cmd
}
