package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSealed is returned when a sealed Graph is modified.
var ErrSealed = errors.New("type graph is sealed")

// TypeRef identifies an annotation type by its qualified name.
type TypeRef string

// String returns the qualified name.
func (t TypeRef) String() string {
	return string(t)
}

// SimpleName returns the name after the last '.' or '/'.
func (t TypeRef) SimpleName() string {
	s := string(t)
	if i := strings.LastIndexAny(s, "./"); i >= 0 {
		return s[i+1:]
	}

	return s
}

// IsZero reports whether the reference is unset.
func (t TypeRef) IsZero() bool {
	return t == ""
}

// AttributeRef is an (annotation type, attribute name) pair.
type AttributeRef struct {
	Type TypeRef
	Name string
}

// String returns "Type.name" using the simple type name.
func (r AttributeRef) String() string {
	return r.Type.SimpleName() + "." + r.Name
}

// AliasMarker holds the parameters of an alias-for meta-annotation placed on
// an attribute declaration. Empty fields are unspecified.
type AliasMarker struct {
	// Annotation is the target annotation type. Defaults to the declaring type.
	Annotation TypeRef
	// Attribute is the target attribute name. Takes precedence over Value.
	Attribute string
	// Value is the marker's own "value" parameter, a shorthand for Attribute.
	Value string
}

// AttributeDecl describes one attribute method of an annotation type.
type AttributeDecl struct {
	Name   string
	Owner  TypeRef
	Marker *AliasMarker // nil when the attribute carries no alias marker
}

// Ref returns the (owner, name) pair of the attribute.
func (a *AttributeDecl) Ref() AttributeRef {
	return AttributeRef{Type: a.Owner, Name: a.Name}
}

// HasAliasMarker reports whether the attribute carries an alias marker.
func (a *AttributeDecl) HasAliasMarker() bool {
	return a != nil && a.Marker != nil
}

// AliasMarker returns a copy of the attribute's alias marker.
func (a *AttributeDecl) AliasMarker() (AliasMarker, bool) {
	if !a.HasAliasMarker() {
		return AliasMarker{}, false
	}

	return *a.Marker, true
}

// TypeDecl describes an annotation type and its ordered attribute methods.
type TypeDecl struct {
	Ref        TypeRef
	Attributes []*AttributeDecl
}

// NewTypeDecl creates a declaration and sets the owner of every attribute.
func NewTypeDecl(ref TypeRef, attrs ...*AttributeDecl) *TypeDecl {
	for _, a := range attrs {
		a.Owner = ref
	}

	return &TypeDecl{Ref: ref, Attributes: attrs}
}

// Attribute returns the attribute with the given name, or nil.
func (d *TypeDecl) Attribute(name string) *AttributeDecl {
	for _, a := range d.Attributes {
		if a.Name == name {
			return a
		}
	}

	return nil
}

// AttributeNames returns attribute names in declaration order.
func (d *TypeDecl) AttributeNames() []string {
	names := make([]string, 0, len(d.Attributes))
	for _, a := range d.Attributes {
		names = append(names, a.Name)
	}

	return names
}

// Model gives read access to annotation type declarations.
// Implementations must allow concurrent calls to ResolveType.
type Model interface {
	// ResolveType returns the declaration for ref, or false when unknown.
	ResolveType(ref TypeRef) (*TypeDecl, bool)
}

// Graph is a map-backed Model. It is mutable until sealed; a sealed graph is
// safe for concurrent reads.
type Graph struct {
	types  map[TypeRef]*TypeDecl
	order  []TypeRef
	sealed bool
}

// NewGraph creates an empty Graph.
func NewGraph() *Graph {
	return &Graph{
		types: make(map[TypeRef]*TypeDecl),
	}
}

// AddType registers a type declaration.
func (g *Graph) AddType(decl *TypeDecl) error {
	if g.sealed {
		return ErrSealed
	}

	if decl == nil || decl.Ref.IsZero() {
		return errors.New("type declaration without a name")
	}

	if _, ok := g.types[decl.Ref]; ok {
		return fmt.Errorf("duplicate type %s", decl.Ref)
	}

	g.types[decl.Ref] = decl
	g.order = append(g.order, decl.Ref)

	return nil
}

// ResolveType implements Model.
func (g *Graph) ResolveType(ref TypeRef) (*TypeDecl, bool) {
	decl, ok := g.types[ref]
	return decl, ok
}

// Types returns all registered type references in insertion order.
func (g *Graph) Types() []TypeRef {
	return append([]TypeRef(nil), g.order...)
}

// Len returns the number of registered types.
func (g *Graph) Len() int {
	return len(g.order)
}

// Seal makes the graph read-only.
func (g *Graph) Seal() {
	g.sealed = true
}

// Sealed reports whether the graph is read-only.
func (g *Graph) Sealed() bool {
	return g.sealed
}
