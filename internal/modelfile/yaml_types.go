package modelfile

import (
	"errors"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"alias-resolver/internal/common"
	"alias-resolver/internal/model"
)

// Local YAML tags for attribute values.
const (
	TagEnum       = "!enum"
	TagType       = "!type"
	TagAnnotation = "!annotation"
)

// --- AliasForDef YAML methods ---

// UnmarshalYAML accepts either a scalar (the marker's value parameter) or a
// mapping with annotation/attribute/value keys.
func (a *AliasForDef) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var value string

		if err := node.Decode(&value); err != nil {
			return err
		}

		*a = AliasForDef{Value: value}

		return nil

	case yaml.MappingNode:
		type plain AliasForDef

		var p plain

		if err := node.Decode(&p); err != nil {
			return err
		}

		*a = AliasForDef(p)

		return nil

	default:
		return fmt.Errorf("line %d: aliasFor expects a string or a mapping", node.Line)
	}
}

// MarshalYAML writes the scalar shorthand when only Value is set.
func (a AliasForDef) MarshalYAML() (any, error) {
	if a.Annotation == "" && a.Attribute == "" && a.Value != "" {
		return a.Value, nil
	}

	type plain AliasForDef

	return plain(a), nil
}

// Marker converts the definition to a model marker. Annotation is kept as
// written; Build resolves short names.
func (a *AliasForDef) Marker() *model.AliasMarker {
	if a == nil {
		return nil
	}

	return &model.AliasMarker{
		Annotation: model.TypeRef(a.Annotation),
		Attribute:  a.Attribute,
		Value:      a.Value,
	}
}

// --- ValueDef YAML methods ---

// UnmarshalYAML decodes a tagged attribute value.
func (v *ValueDef) UnmarshalYAML(node *yaml.Node) error {
	value, err := decodeValue(node)
	if err != nil {
		return err
	}

	v.Value = value

	return nil
}

// MarshalYAML encodes the value with the same tags UnmarshalYAML accepts.
func (v ValueDef) MarshalYAML() (any, error) {
	return encodeValue(v.Value)
}

func decodeValue(node *yaml.Node) (model.Value, error) {
	switch node.Kind {
	case yaml.AliasNode:
		return decodeValue(node.Alias)

	case yaml.ScalarNode:
		return decodeScalar(node)

	case yaml.SequenceNode:
		elems := make([]model.Value, 0, len(node.Content))

		for _, item := range node.Content {
			elem, err := decodeValue(item)
			if err != nil {
				return model.Value{}, err
			}

			elems = append(elems, elem)
		}

		return model.Array(elems...), nil

	case yaml.MappingNode:
		if node.Tag != TagAnnotation {
			return model.Value{}, fmt.Errorf("line %d: mapping values need the %s tag", node.Line, TagAnnotation)
		}

		inst, err := decodeAnnotation(node)
		if err != nil {
			return model.Value{}, err
		}

		return model.Nested(inst), nil

	default:
		return model.Value{}, fmt.Errorf("line %d: unsupported value", node.Line)
	}
}

func decodeScalar(node *yaml.Node) (model.Value, error) {
	switch node.ShortTag() {
	case TagEnum:
		enumType, constant := common.SplitQualified(node.Value)
		if enumType == "" || constant == "" {
			return model.Value{}, fmt.Errorf("line %d: enum value %q must be Type.CONSTANT", node.Line, node.Value)
		}

		return model.Enum(model.TypeRef(enumType), constant), nil

	case TagType:
		if node.Value == "" {
			return model.Value{}, fmt.Errorf("line %d: empty type reference", node.Line)
		}

		return model.TypeValue(model.TypeRef(node.Value)), nil

	case "!!null":
		return model.Value{}, fmt.Errorf("line %d: null values are not supported", node.Line)

	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return model.Value{}, err
		}

		return model.Bool(b), nil

	case "!!int":
		var n int64
		if err := node.Decode(&n); err != nil {
			return model.Value{}, err
		}

		return model.Int(n), nil

	case "!!float":
		return model.Value{}, fmt.Errorf("line %d: float values are not supported", node.Line)

	default:
		return model.String(node.Value), nil
	}
}

func decodeAnnotation(node *yaml.Node) (*model.Instance, error) {
	plain := *node
	plain.Tag = "!!map"

	var def AnnotationDef
	if err := plain.Decode(&def); err != nil {
		return nil, err
	}

	if def.Type == "" {
		return nil, fmt.Errorf("line %d: nested annotation without a type", node.Line)
	}

	return def.instance(model.TypeRef(def.Type))
}

// instance builds a model instance from the definition under the given type.
func (d *AnnotationDef) instance(t model.TypeRef) (*model.Instance, error) {
	attrs := make(map[string]model.Value, len(d.Values))
	for name, v := range d.Values {
		if !v.IsValid() {
			return nil, fmt.Errorf("attribute %s of @%s: %w", name, t.SimpleName(), errNullValue)
		}

		attrs[name] = v.Value
	}

	return model.NewInstance(t, attrs), nil
}

var errNullValue = errors.New("null values are not supported")

func encodeValue(v model.Value) (*yaml.Node, error) {
	switch v.Kind() {
	case model.KindString:
		s, _ := v.AsString()
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}, nil

	case model.KindBool:
		b, _ := v.AsBool()
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(b)}, nil

	case model.KindInt:
		n, _ := v.AsInt()
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(n, 10)}, nil

	case model.KindEnum:
		e, _ := v.AsEnum()
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: TagEnum, Value: string(e.Type) + "." + e.Constant}, nil

	case model.KindTypeRef:
		ref, _ := v.AsTypeRef()
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: TagType, Value: string(ref)}, nil

	case model.KindArray:
		elems, _ := v.AsArray()
		seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Style: yaml.FlowStyle}

		for _, e := range elems {
			n, err := encodeValue(e)
			if err != nil {
				return nil, err
			}

			seq.Content = append(seq.Content, n)
		}

		return seq, nil

	case model.KindAnnotation:
		inst, _ := v.AsAnnotation()

		values := make(map[string]ValueDef, inst.Len())
		for _, name := range inst.Names() {
			av, _ := inst.Attribute(name)
			values[name] = ValueDef{Value: av}
		}

		var node yaml.Node
		if err := node.Encode(AnnotationDef{Type: string(inst.Type), Values: values}); err != nil {
			return nil, err
		}

		node.Tag = TagAnnotation

		return &node, nil

	default:
		return nil, errors.New("cannot encode an invalid value")
	}
}
