package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"alias-resolver/internal/match"
	"alias-resolver/internal/model"
	"alias-resolver/internal/resolve"
)

func (a *app) newResolveCommand() *cobra.Command {
	var (
		element  string
		attr     string
		typeName string
		unique   bool
	)

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the value of an annotation attribute on an element",
		Example: `  alias-resolver resolve -m model.yaml --element 'com.example.ItemController#list' --attr path
  alias-resolver resolve -m model.yaml --element 'com.example.ItemController#list' --type GetMapping --attr produces --unique`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lm, err := a.loadModel()
			if err != nil {
				return err
			}

			if typeName == "" {
				typeName = a.cfg.Endpoint.MappingType
			}

			target, err := lm.typeRef(typeName)
			if err != nil {
				return err
			}

			e, err := lm.element(element)
			if err != nil {
				return err
			}

			r := resolve.New(target, e.Stack, lm.links)

			var (
				v  model.Value
				ok bool
			)

			if unique {
				v, ok, err = r.GetUniqueAttributeValue(attr)
				if err != nil {
					return err
				}
			} else {
				v, ok = r.GetAttribute(attr)
			}

			if !ok {
				return fmt.Errorf("@%s.%s is not set on %s", target.SimpleName(), attr, e.Name)
			}

			fmt.Fprintln(cmd.OutOrStdout(), v)

			return nil
		},
	}

	cmd.Flags().StringVarP(&element, "element", "e", "", "element name")
	cmd.Flags().StringVarP(&attr, "attr", "a", "", "attribute name")
	cmd.Flags().StringVarP(&typeName, "type", "t", "", "annotation type (default endpoint.mapping_type)")
	cmd.Flags().BoolVarP(&unique, "unique", "u", false, "collapse arrays to a single value")
	_ = cmd.MarkFlagRequired("element")
	_ = cmd.MarkFlagRequired("attr")

	return cmd
}

// suggestion renders a "did you mean" suffix, or nothing.
func suggestion(name string, candidates []string) string {
	hits := match.Suggest(name, candidates, 3)
	if len(hits) == 0 {
		return ""
	}

	return " (did you mean " + strings.Join(hits, ", ") + "?)"
}
