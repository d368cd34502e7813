package endpoint

import (
	"fmt"
	"strings"

	"alias-resolver/internal/alias"
	"alias-resolver/internal/model"
	"alias-resolver/internal/resolve"
)

// DefaultMappingType is the annotation type endpoints are read from.
const DefaultMappingType = model.TypeRef("org.springframework.web.bind.annotation.RequestMapping")

// Attribute names read from the mapping type.
const (
	AttrPath     = "path"
	AttrMethod   = "method"
	AttrProduces = "produces"
	AttrConsumes = "consumes"
)

// Endpoint is one mapped element.
type Endpoint struct {
	Element  string
	Path     string
	Methods  []string // empty means every method
	Produces []string
	Consumes []string
}

// MethodList renders Methods as "GET,HEAD", or "*" when every method matches.
func (e Endpoint) MethodList() string {
	if len(e.Methods) == 0 {
		return "*"
	}

	return strings.Join(e.Methods, ",")
}

// String renders "GET,HEAD /items" or "* /items".
func (e Endpoint) String() string {
	return e.MethodList() + " " + e.Path
}

// Source is an element to read. Names of the form "Owner#member" are members
// of the element named "Owner", whose path prefixes theirs.
type Source struct {
	Name  string
	Stack model.Stack
}

// Reader reads endpoints through a shared alias link source.
type Reader struct {
	mappingType model.TypeRef
	links       alias.Finder
}

// Option configures a Reader.
type Option func(*Reader)

// WithMappingType reads endpoints from t instead of DefaultMappingType.
func WithMappingType(t model.TypeRef) Option {
	return func(r *Reader) {
		if !t.IsZero() {
			r.mappingType = t
		}
	}
}

// NewReader creates a Reader. links is usually an *alias.Cache.
func NewReader(links alias.Finder, opts ...Option) *Reader {
	r := &Reader{
		mappingType: DefaultMappingType,
		links:       links,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// MappingType returns the annotation type endpoints are read from.
func (r *Reader) MappingType() model.TypeRef {
	return r.mappingType
}

// Read returns the endpoint declared by stack. The second result is false
// when stack carries no mapping, directly or through an alias.
func (r *Reader) Read(element string, stack model.Stack) (Endpoint, bool, error) {
	res := resolve.New(r.mappingType, stack, r.links)
	ep := Endpoint{Element: element}

	mapped := r.declaresMapping(stack)

	path, ok, err := res.GetUniqueString(AttrPath)
	if err != nil {
		return Endpoint{}, false, fmt.Errorf("%s: %w", element, err)
	}

	mapped = mapped || ok
	ep.Path = path

	for _, read := range []struct {
		name string
		dst  *[]string
		conv func(model.Value) (string, error)
	}{
		{name: AttrMethod, dst: &ep.Methods, conv: enumConstant},
		{name: AttrProduces, dst: &ep.Produces, conv: model.Value.AsString},
		{name: AttrConsumes, dst: &ep.Consumes, conv: model.Value.AsString},
	} {
		v, ok := res.GetAttribute(read.name)
		if !ok {
			continue
		}

		mapped = true

		*read.dst, err = collect(v, read.conv)
		if err != nil {
			return Endpoint{}, false, fmt.Errorf("%s: %s: %w", element, read.name, err)
		}
	}

	if !mapped {
		return Endpoint{}, false, nil
	}

	return ep, true, nil
}

// ReadAll reads every member source and prefixes its path with its owner's.
// Owners themselves are not listed. Sources keep their order.
func (r *Reader) ReadAll(sources []Source) ([]Endpoint, error) {
	owners := make(map[string]Endpoint)

	for _, src := range sources {
		if strings.Contains(src.Name, "#") {
			continue
		}

		ep, ok, err := r.Read(src.Name, src.Stack)
		if err != nil {
			return nil, err
		}

		if ok {
			owners[src.Name] = ep
		}
	}

	var out []Endpoint

	for _, src := range sources {
		owner, _, isMember := strings.Cut(src.Name, "#")
		if !isMember {
			continue
		}

		ep, ok, err := r.Read(src.Name, src.Stack)
		if err != nil {
			return nil, err
		}

		if !ok {
			continue
		}

		if prefix, ok := owners[owner]; ok {
			ep = inherit(prefix, ep)
		}

		out = append(out, ep)
	}

	return out, nil
}

// declaresMapping reports whether an instance of the mapping type, or of a
// type aliasing into it, is on the stack.
func (r *Reader) declaresMapping(stack model.Stack) bool {
	for _, inst := range stack {
		if inst.Type == r.mappingType {
			return true
		}

		for _, link := range r.links.FindAliasLinks(inst.Type) {
			for _, target := range link.Targets.Refs() {
				if target.Type == r.mappingType {
					return true
				}
			}
		}
	}

	return false
}

// inherit applies owner-level settings to a member endpoint. Member values
// win; the owner path is a prefix.
func inherit(owner, member Endpoint) Endpoint {
	member.Path = JoinPath(owner.Path, member.Path)

	if len(member.Methods) == 0 {
		member.Methods = owner.Methods
	}

	if len(member.Produces) == 0 {
		member.Produces = owner.Produces
	}

	if len(member.Consumes) == 0 {
		member.Consumes = owner.Consumes
	}

	return member
}

// JoinPath joins two route segments with exactly one slash between them.
func JoinPath(prefix, path string) string {
	switch {
	case prefix == "":
		return path
	case path == "":
		return prefix
	default:
		return strings.TrimSuffix(prefix, "/") + "/" + strings.TrimPrefix(path, "/")
	}
}

func enumConstant(v model.Value) (string, error) {
	e, err := v.AsEnum()
	if err != nil {
		return "", err
	}

	return e.Constant, nil
}

// collect converts a single value or every element of an array.
func collect(v model.Value, conv func(model.Value) (string, error)) ([]string, error) {
	elems := []model.Value{v}
	if v.IsArray() {
		elems, _ = v.AsArray()
	}

	out := make([]string, 0, len(elems))

	for _, e := range elems {
		s, err := conv(e)
		if err != nil {
			return nil, err
		}

		out = append(out, s)
	}

	return out, nil
}
