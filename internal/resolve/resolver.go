package resolve

import (
	"alias-resolver/internal/alias"
	"alias-resolver/internal/common"
	"alias-resolver/internal/model"
)

// Resolver looks up attributes of one requested annotation type on one
// annotation stack.
type Resolver struct {
	target model.TypeRef
	stack  model.Stack
	links  alias.Finder
}

// New creates a Resolver. links is usually an *alias.Cache shared by all
// resolvers of one model snapshot.
func New(target model.TypeRef, stack model.Stack, links alias.Finder) *Resolver {
	return &Resolver{
		target: target,
		stack:  stack,
		links:  links,
	}
}

// ForModel creates a Resolver that recomputes alias links from m.
func ForModel(target model.TypeRef, stack model.Stack, m model.Model) *Resolver {
	return New(target, stack, alias.NewRegistry(m))
}

// Target returns the requested annotation type.
func (r *Resolver) Target() model.TypeRef {
	return r.target
}

// GetAttribute returns the value of name. A direct declaration on an instance
// of the requested type wins wherever it sits in the stack; otherwise the
// first instance, in stack order, that carries an alias for (target, name)
// supplies the value.
func (r *Resolver) GetAttribute(name string) (model.Value, bool) {
	for _, inst := range r.stack {
		if inst.Type != r.target {
			continue
		}

		if v, ok := inst.Attribute(name); ok {
			return v, true
		}
	}

	for _, inst := range r.stack {
		if v, ok := r.aliasedFrom(inst, name); ok {
			return v, true
		}
	}

	return model.Value{}, false
}

func (r *Resolver) aliasedFrom(inst *model.Instance, name string) (model.Value, bool) {
	for _, link := range r.links.FindAliasLinks(inst.Type) {
		if !link.Matches(r.target, name) {
			continue
		}

		if v, ok := inst.Attribute(link.Source.Name); ok {
			return v, true
		}
	}

	return model.Value{}, false
}

// GetUniqueAttributeValue is GetAttribute with arrays collapsed: an empty
// array is absent, a single element is returned as itself, and more elements
// fail with *AmbiguousAttributeError.
func (r *Resolver) GetUniqueAttributeValue(name string) (model.Value, bool, error) {
	v, ok := r.GetAttribute(name)
	if !ok || !v.IsArray() {
		return v, ok, nil
	}

	elems, _ := v.AsArray()

	switch {
	case common.IsEmpty(elems):
		return model.Value{}, false, nil
	case common.IsSingle(elems):
		return elems[0], true, nil
	default:
		return model.Value{}, false, &AmbiguousAttributeError{
			Attribute: name,
			Type:      r.target,
			Count:     len(elems),
		}
	}
}
