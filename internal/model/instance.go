package model

import (
	"maps"
	"slices"
	"strings"
)

// Instance is a concrete annotation: a type plus attribute values.
// It is immutable after construction.
type Instance struct {
	Type  TypeRef
	attrs map[string]Value
}

// NewInstance creates an instance. Invalid values are dropped, so a present
// attribute always has a valid value.
func NewInstance(t TypeRef, attrs map[string]Value) *Instance {
	inst := &Instance{
		Type:  t,
		attrs: make(map[string]Value, len(attrs)),
	}

	for name, v := range attrs {
		if v.IsValid() {
			inst.attrs[name] = v
		}
	}

	return inst
}

// Attribute returns the value stored under name.
func (i *Instance) Attribute(name string) (Value, bool) {
	v, ok := i.attrs[name]
	return v, ok
}

// Names returns the attribute names in sorted order.
func (i *Instance) Names() []string {
	return slices.Sorted(maps.Keys(i.attrs))
}

// Len returns the number of attributes.
func (i *Instance) Len() int {
	return len(i.attrs)
}

// String renders the instance as "@Simple(name=value, ...)".
func (i *Instance) String() string {
	if i == nil {
		return "<nil>"
	}

	var b strings.Builder

	b.WriteString("@")
	b.WriteString(i.Type.SimpleName())

	if len(i.attrs) == 0 {
		return b.String()
	}

	b.WriteString("(")

	for n, name := range i.Names() {
		if n > 0 {
			b.WriteString(", ")
		}

		b.WriteString(name)
		b.WriteString("=")
		b.WriteString(i.attrs[name].String())
	}

	b.WriteString(")")

	return b.String()
}

// Stack is an ordered sequence of instances, most specific first.
type Stack []*Instance

// Types returns the annotation types of the stack in order.
func (s Stack) Types() []TypeRef {
	out := make([]TypeRef, len(s))
	for i, inst := range s {
		out[i] = inst.Type
	}

	return out
}

// String renders the stack as a space separated list of instances.
func (s Stack) String() string {
	parts := make([]string, len(s))
	for i, inst := range s {
		parts[i] = inst.String()
	}

	return strings.Join(parts, " ")
}
