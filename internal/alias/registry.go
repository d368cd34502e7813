package alias

import (
	"alias-resolver/internal/model"
)

// Registry computes alias links from a Model on every call.
// It holds no state besides the model and is safe for concurrent use when the
// model is.
type Registry struct {
	model model.Model
}

// sealer is implemented by models that can be made read-only, like *model.Graph.
type sealer interface {
	Seal()
}

// NewRegistry creates a Registry over m and seals m when it supports sealing.
func NewRegistry(m model.Model) *Registry {
	if s, ok := m.(sealer); ok {
		s.Seal()
	}

	return &Registry{model: m}
}

// FindAliasLinks returns one link per attribute of annotationType that carries
// an alias marker, in declaration order. Unknown types have no links.
func (r *Registry) FindAliasLinks(annotationType model.TypeRef) []Link {
	decl, ok := r.model.ResolveType(annotationType)
	if !ok {
		return nil
	}

	var links []Link

	for _, attr := range decl.Attributes {
		if !attr.HasAliasMarker() {
			continue
		}

		links = append(links, Link{
			Source:  model.AttributeRef{Type: annotationType, Name: attr.Name},
			Targets: r.FindAliasTargets(attr),
		})
	}

	return links
}

// FindAliasTargets walks alias markers starting at attr and returns every
// (type, attribute) pair reached. An attribute without a marker yields an
// empty set.
func (r *Registry) FindAliasTargets(attr *model.AttributeDecl) *TargetSet {
	result := NewTargetSet()

	worklist := []*model.AttributeDecl{attr}
	for len(worklist) > 0 {
		current := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		marker, ok := current.AliasMarker()
		if !ok {
			continue
		}

		target := TargetOf(current, marker)
		if !result.Add(target) {
			// already explored, or a cycle back into the chain
			continue
		}

		next := r.lookupAttribute(target)
		if next.HasAliasMarker() {
			worklist = append(worklist, next)
		}
	}

	return result
}

func (r *Registry) lookupAttribute(ref model.AttributeRef) *model.AttributeDecl {
	decl, ok := r.model.ResolveType(ref.Type)
	if !ok {
		return nil
	}

	return decl.Attribute(ref.Name)
}

// TargetOf applies default target resolution to a marker declared on attr.
func TargetOf(attr *model.AttributeDecl, marker model.AliasMarker) model.AttributeRef {
	target := model.AttributeRef{
		Type: marker.Annotation,
		Name: marker.Attribute,
	}

	if target.Type.IsZero() {
		target.Type = attr.Owner
	}

	if target.Name == "" {
		target.Name = marker.Value
	}

	if target.Name == "" {
		target.Name = attr.Name
	}

	return target
}
