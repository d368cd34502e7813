package modelfile

import (
	"fmt"

	"alias-resolver/internal/diagnostic"
	"alias-resolver/internal/model"
)

// Build merges files into one Bundle. Duplicate or unnamed declarations are
// reported as errors and skipped. Short type names used by alias markers and
// annotation instances are resolved against the merged graph; names that do
// not resolve are kept as written.
func Build(files ...*File) (*Bundle, *diagnostic.Diagnostics) {
	return BuildInto(model.NewGraph(), files...)
}

// BuildInto is Build on top of an existing graph, e.g. one loaded from Go
// packages. Types already in graph may be referenced by the files.
func BuildInto(graph *model.Graph, files ...*File) (*Bundle, *diagnostic.Diagnostics) {
	diags := &diagnostic.Diagnostics{}

	for _, f := range files {
		for i := range f.Types {
			decl := buildType(diags, &f.Types[i])
			if decl == nil {
				continue
			}

			if err := graph.AddType(decl); err != nil {
				diags.AddError("duplicate_type", fmt.Sprintf("%v (in %s)", err, sourceName(f)), decl.Ref.String(), "")
			}
		}
	}

	for _, ref := range graph.Types() {
		decl, _ := graph.ResolveType(ref)
		for _, attr := range decl.Attributes {
			if attr.Marker != nil && !attr.Marker.Annotation.IsZero() {
				attr.Marker.Annotation = resolveName(graph, string(attr.Marker.Annotation))
			}
		}
	}

	bundle := &Bundle{Graph: graph}
	seen := map[string]struct{}{}

	for _, f := range files {
		for i := range f.Elements {
			def := &f.Elements[i]

			if _, ok := seen[def.Name]; ok {
				diags.AddError("duplicate_element", fmt.Sprintf("duplicate element (in %s)", sourceName(f)), def.Name, "")
				continue
			}

			seen[def.Name] = struct{}{}

			stack, err := buildStack(graph, def)
			if err != nil {
				diags.AddError("invalid_value", err.Error(), def.Name, "")
				continue
			}

			bundle.Elements = append(bundle.Elements, Element{Name: def.Name, Stack: stack, Source: f.Path})
		}
	}

	return bundle, diags
}

func buildType(diags *diagnostic.Diagnostics, def *TypeDef) *model.TypeDecl {
	if def.Name == "" {
		diags.AddError("unnamed_type", "annotation type without a name", "", "")
		return nil
	}

	attrs := make([]*model.AttributeDecl, 0, len(def.Attributes))
	seen := map[string]struct{}{}

	for _, a := range def.Attributes {
		if _, ok := seen[a.Name]; ok {
			diags.AddError("duplicate_attribute", "duplicate attribute declaration", def.Name, a.Name)
			continue
		}

		seen[a.Name] = struct{}{}

		attrs = append(attrs, &model.AttributeDecl{Name: a.Name, Marker: a.AliasFor.Marker()})
	}

	return model.NewTypeDecl(model.TypeRef(def.Name), attrs...)
}

func buildStack(graph *model.Graph, def *ElementDef) (model.Stack, error) {
	stack := make(model.Stack, 0, len(def.Annotations))

	for i := range def.Annotations {
		a := &def.Annotations[i]

		inst, err := a.instance(resolveName(graph, a.Type))
		if err != nil {
			return nil, err
		}

		stack = append(stack, resolveInstance(graph, inst.Type, inst))
	}

	return stack, nil
}

// resolveInstance copies inst under type t with nested annotation types
// resolved.
func resolveInstance(graph *model.Graph, t model.TypeRef, inst *model.Instance) *model.Instance {
	attrs := make(map[string]model.Value, inst.Len())
	for _, name := range inst.Names() {
		v, _ := inst.Attribute(name)
		attrs[name] = resolveValue(graph, v)
	}

	return model.NewInstance(t, attrs)
}

func resolveValue(graph *model.Graph, v model.Value) model.Value {
	switch v.Kind() {
	case model.KindAnnotation:
		nested, _ := v.AsAnnotation()
		return model.Nested(resolveInstance(graph, resolveName(graph, string(nested.Type)), nested))

	case model.KindArray:
		elems, _ := v.AsArray()
		for i := range elems {
			elems[i] = resolveValue(graph, elems[i])
		}

		return model.Array(elems...)

	default:
		return v
	}
}

// resolveName maps a written type name to a registered reference, keeping
// unknown names as written.
func resolveName(graph *model.Graph, name string) model.TypeRef {
	if ref, ok := graph.Find(name); ok {
		return ref
	}

	return model.TypeRef(name)
}

func sourceName(f *File) string {
	if f.Path == "" {
		return "<input>"
	}

	return f.Path
}
