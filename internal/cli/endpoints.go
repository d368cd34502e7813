package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"alias-resolver/internal/endpoint"
)

func (a *app) newEndpointsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "endpoints",
		Short: "List the routes declared by the model's elements",
		Long: `Reads path, method, produces and consumes from every "Owner#member" element
through endpoint.mapping_type and its aliases. Owner paths prefix member paths.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lm, err := a.loadModel()
			if err != nil {
				return err
			}

			mappingType, err := lm.typeRef(a.cfg.Endpoint.MappingType)
			if err != nil {
				return err
			}

			sources := make([]endpoint.Source, 0, len(lm.bundle.Elements))
			for _, e := range lm.bundle.Elements {
				sources = append(sources, endpoint.Source{Name: e.Name, Stack: e.Stack})
			}

			endpoints, err := endpoint.NewReader(lm.links, endpoint.WithMappingType(mappingType)).ReadAll(sources)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "METHOD\tPATH\tPRODUCES\tCONSUMES\tELEMENT")

			for _, ep := range endpoints {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", ep.MethodList(), ep.Path,
					orDash(ep.Produces), orDash(ep.Consumes), ep.Element)
			}

			if err := tw.Flush(); err != nil {
				return err
			}

			a.printf(cmd.ErrOrStderr(), "%d endpoint(s)\n", len(endpoints))

			return nil
		},
	}

	return cmd
}

func orDash(values []string) string {
	if len(values) == 0 {
		return "-"
	}

	return strings.Join(values, ",")
}
