package cli

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
)

func (a *app) newLinksCommand() *cobra.Command {
	var (
		typeName string
		dump     bool
	)

	cmd := &cobra.Command{
		Use:   "links",
		Short: "List the alias links declared by an annotation type",
		Long: `Lists every attribute of the type that carries an alias marker, with all
attributes it aliases directly or transitively.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lm, err := a.loadModel()
			if err != nil {
				return err
			}

			ref, err := lm.typeRef(typeName)
			if err != nil {
				return err
			}

			links := lm.links.FindAliasLinks(ref)
			out := cmd.OutOrStdout()

			if dump {
				cfg := spew.ConfigState{Indent: "  ", DisableMethods: true, DisablePointerAddresses: true, SortKeys: true}
				cfg.Fdump(out, links)

				return nil
			}

			for _, link := range links {
				fmt.Fprintln(out, link)
			}

			a.printf(cmd.ErrOrStderr(), "%d link(s) on %s\n", len(links), ref)

			return nil
		},
	}

	cmd.Flags().StringVarP(&typeName, "type", "t", "", "annotation type")
	cmd.Flags().BoolVar(&dump, "dump", false, "dump link structures")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}
