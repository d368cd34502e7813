package analyze

import (
	"fmt"
	"reflect"
	"strings"

	"alias-resolver/internal/common"
	"alias-resolver/internal/model"
)

// Struct tag keys read by the Analyzer.
const (
	// TagAnnotation on a blank field overrides the annotation type name.
	TagAnnotation = "annotation"
	// TagAttr renames an attribute; "-" skips the field.
	TagAttr = "attr"
	// TagAliasFor marks an attribute as an alias.
	TagAliasFor = "aliasFor"
)

// TypeID uniquely identifies a Go type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "alias-resolver/annotations/web"
	Name    string // e.g., "GetMapping"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// FieldInfo describes a struct field considered as an attribute.
type FieldInfo struct {
	Name     string            // Go field name
	Tag      reflect.StructTag // Raw struct tag
	Embedded bool              // Whether the field is embedded (anonymous)
}

// AttributeName returns the attr tag if present, otherwise the field name
// with its first word lower-cased. The second result is false for "-".
func (f *FieldInfo) AttributeName() (string, bool) {
	tag, ok := f.Tag.Lookup(TagAttr)
	if !ok || tag == "" {
		return common.LowerFirst(f.Name), true
	}

	if tag == "-" {
		return "", false
	}

	return tag, true
}

// AliasMarker parses the aliasFor tag. The second result is false when the
// field carries no such tag.
func (f *FieldInfo) AliasMarker() (*model.AliasMarker, bool, error) {
	tag, ok := f.Tag.Lookup(TagAliasFor)
	if !ok {
		return nil, false, nil
	}

	marker, err := ParseAliasFor(tag)
	if err != nil {
		return nil, true, err
	}

	return &marker, true, nil
}

// ParseAliasFor parses an aliasFor tag value. Two forms are accepted:
//
//	aliasFor:"path"                                   (value only)
//	aliasFor:"annotation=RequestMapping,attribute=path"
//
// An empty tag is a marker with every parameter defaulted.
func ParseAliasFor(tag string) (model.AliasMarker, error) {
	var marker model.AliasMarker

	tag = strings.TrimSpace(tag)
	if tag == "" {
		return marker, nil
	}

	if !strings.Contains(tag, "=") {
		marker.Value = tag
		return marker, nil
	}

	for _, part := range strings.Split(tag, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok || value == "" {
			return model.AliasMarker{}, fmt.Errorf("malformed aliasFor parameter %q", part)
		}

		switch key {
		case "annotation":
			marker.Annotation = model.TypeRef(value)
		case "attribute":
			marker.Attribute = value
		case "value":
			marker.Value = value
		default:
			return model.AliasMarker{}, fmt.Errorf("unknown aliasFor parameter %q", key)
		}
	}

	return marker, nil
}
