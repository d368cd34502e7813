package modelfile

import (
	"alias-resolver/internal/model"
)

// File is the decoded form of one model file.
type File struct {
	Version  string       `yaml:"version"`
	Types    []TypeDef    `yaml:"types,omitempty"`
	Elements []ElementDef `yaml:"elements,omitempty"`

	// Path is the file the definitions were read from, if any.
	Path string `yaml:"-"`
}

// TypeDef declares an annotation type.
type TypeDef struct {
	Name       string         `yaml:"name"`
	Attributes []AttributeDef `yaml:"attributes,omitempty"`
}

// AttributeDef declares one attribute of an annotation type.
type AttributeDef struct {
	Name     string       `yaml:"name"`
	AliasFor *AliasForDef `yaml:"aliasFor,omitempty"`
}

// AliasForDef is the YAML form of an alias marker.
// A scalar "aliasFor: path" is shorthand for {value: path}.
type AliasForDef struct {
	Annotation string `yaml:"annotation,omitempty"`
	Attribute  string `yaml:"attribute,omitempty"`
	Value      string `yaml:"value,omitempty"`
}

// ElementDef declares a program element and its annotation stack.
type ElementDef struct {
	Name        string          `yaml:"name"`
	Annotations []AnnotationDef `yaml:"annotations"`
}

// AnnotationDef is one annotation instance on an element.
type AnnotationDef struct {
	Type   string              `yaml:"type"`
	Values map[string]ValueDef `yaml:"values,omitempty"`
}

// ValueDef wraps a decoded attribute value.
type ValueDef struct {
	model.Value
}

// Element is a program element with its resolved annotation stack.
type Element struct {
	Name   string
	Stack  model.Stack
	Source string // model file path, empty for in-memory input
}

// Bundle is the merged result of one or more model files.
type Bundle struct {
	Graph    *model.Graph
	Elements []Element
}

// Element returns the element with the given name.
func (b *Bundle) Element(name string) (Element, bool) {
	for _, e := range b.Elements {
		if e.Name == name {
			return e, true
		}
	}

	return Element{}, false
}
