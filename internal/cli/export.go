package cli

import (
	"github.com/spf13/cobra"

	"alias-resolver/internal/modelfile"
)

func (a *app) newExportCommand() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the merged model as a single YAML model file",
		Long: `Merges all configured sources, including annotation types read from Go
packages, and writes them as one model file with fully qualified names.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lm, err := a.loadModel()
			if err != nil {
				return err
			}

			f := modelfile.Export(lm.bundle)
			if out != "" {
				return modelfile.WriteFile(f, out)
			}

			data, err := modelfile.Marshal(f)
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")

	return cmd
}
