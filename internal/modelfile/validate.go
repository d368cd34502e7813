package modelfile

import (
	"fmt"

	"alias-resolver/internal/alias"
	"alias-resolver/internal/diagnostic"
	"alias-resolver/internal/match"
	"alias-resolver/internal/model"
)

// maxSuggestions bounds "did you mean" lists.
const maxSuggestions = 3

// Validate checks a built Bundle for references the resolver tolerates but
// that usually indicate a mistake. Findings on a built bundle are warnings or
// infos only, since unresolvable alias targets and undeclared attributes are
// legal input. The single error is bundle_is_nil, for a nil bundle or graph.
func Validate(b *Bundle) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if b == nil || b.Graph == nil {
		res.AddError("bundle_is_nil", "model bundle is empty", "", "")
		return res
	}

	for _, ref := range b.Graph.Types() {
		decl, _ := b.Graph.ResolveType(ref)
		for _, attr := range decl.Attributes {
			validateMarker(res, b.Graph, attr)
		}
	}

	for i := range b.Elements {
		validateElement(res, b.Graph, &b.Elements[i])
	}

	return res
}

func validateMarker(res *diagnostic.Diagnostics, graph *model.Graph, attr *model.AttributeDecl) {
	marker, ok := attr.AliasMarker()
	if !ok {
		return
	}

	typeName := attr.Owner.String()

	if marker.Attribute != "" && marker.Value != "" && marker.Attribute != marker.Value {
		res.AddWarning("conflicting_alias_parameters",
			fmt.Sprintf("attribute %q and value %q differ; attribute wins", marker.Attribute, marker.Value),
			typeName, attr.Name)
	}

	target := alias.TargetOf(attr, marker)

	decl, ok := graph.ResolveType(target.Type)
	if !ok {
		res.Add(diagnostic.Diagnostic{
			Severity:    diagnostic.DiagnosticWarning,
			Code:        "alias_target_unresolved",
			Message:     fmt.Sprintf("alias target type %s is not declared", target.Type),
			Type:        typeName,
			Attribute:   attr.Name,
			Suggestions: match.Suggest(string(target.Type), graph.Candidates(), maxSuggestions),
		})

		return
	}

	if decl.Attribute(target.Name) == nil {
		res.Add(diagnostic.Diagnostic{
			Severity:    diagnostic.DiagnosticWarning,
			Code:        "alias_attribute_unresolved",
			Message:     fmt.Sprintf("alias target %s is not declared", target),
			Type:        typeName,
			Attribute:   attr.Name,
			Suggestions: match.Suggest(target.Name, decl.AttributeNames(), maxSuggestions),
		})
	}
}

func validateElement(res *diagnostic.Diagnostics, graph *model.Graph, e *Element) {
	if len(e.Stack) == 0 {
		res.AddInfo("empty_stack", "element carries no annotations", e.Name, "")
		return
	}

	for _, inst := range e.Stack {
		decl, ok := graph.ResolveType(inst.Type)
		if !ok {
			res.Add(diagnostic.Diagnostic{
				Severity:    diagnostic.DiagnosticInfo,
				Code:        "unknown_annotation_type",
				Message:     fmt.Sprintf("annotation type %s is not declared; only direct lookups can match it", inst.Type),
				Type:        e.Name,
				Suggestions: match.Suggest(string(inst.Type), graph.Candidates(), maxSuggestions),
			})

			continue
		}

		for _, name := range inst.Names() {
			if decl.Attribute(name) != nil {
				continue
			}

			res.Add(diagnostic.Diagnostic{
				Severity:    diagnostic.DiagnosticWarning,
				Code:        "undeclared_attribute",
				Message:     fmt.Sprintf("@%s declares no attribute %q", inst.Type.SimpleName(), name),
				Type:        e.Name,
				Attribute:   name,
				Suggestions: match.Suggest(name, decl.AttributeNames(), maxSuggestions),
			})
		}
	}
}
