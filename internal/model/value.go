package model

import (
	"fmt"
	"strconv"
	"strings"
)

//go:generate go tool stringer -type=ValueKind -trimprefix=Kind -output=valuekind_string.go

// ValueKind is the tag of a Value.
type ValueKind int

const (
	KindInvalid ValueKind = iota // zero Value; never stored in an Instance
	KindString
	KindBool
	KindInt
	KindEnum
	KindTypeRef
	KindAnnotation
	KindArray
)

// EnumValue is an enum constant of a given enum type.
type EnumValue struct {
	Type     TypeRef
	Constant string
}

// String returns "SimpleType.CONSTANT".
func (e EnumValue) String() string {
	if e.Type.IsZero() {
		return e.Constant
	}

	return e.Type.SimpleName() + "." + e.Constant
}

// Value is an annotation attribute value. The zero Value is invalid.
type Value struct {
	kind  ValueKind
	str   string
	num   int64
	flag  bool
	ref   TypeRef
	ann   *Instance
	elems []Value
}

// String creates a string value.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Bool creates a boolean value.
func Bool(b bool) Value {
	return Value{kind: KindBool, flag: b}
}

// Int creates an integer value.
func Int(n int64) Value {
	return Value{kind: KindInt, num: n}
}

// Enum creates an enum constant value.
func Enum(enumType TypeRef, constant string) Value {
	return Value{kind: KindEnum, ref: enumType, str: constant}
}

// TypeValue creates a type-reference value (a class literal).
func TypeValue(ref TypeRef) Value {
	return Value{kind: KindTypeRef, ref: ref}
}

// Nested creates a nested-annotation value.
func Nested(inst *Instance) Value {
	return Value{kind: KindAnnotation, ann: inst}
}

// Array creates an array value. Invalid elements are dropped.
func Array(elems ...Value) Value {
	out := make([]Value, 0, len(elems))
	for _, e := range elems {
		if e.IsValid() {
			out = append(out, e)
		}
	}

	return Value{kind: KindArray, elems: out}
}

// Strings creates an array of string values.
func Strings(ss ...string) Value {
	elems := make([]Value, len(ss))
	for i, s := range ss {
		elems[i] = String(s)
	}

	return Value{kind: KindArray, elems: elems}
}

// Kind returns the tag of the value.
func (v Value) Kind() ValueKind {
	return v.kind
}

// IsValid reports whether the value carries a tag.
func (v Value) IsValid() bool {
	return v.kind != KindInvalid
}

// IsArray reports whether the value is array-valued.
func (v Value) IsArray() bool {
	return v.kind == KindArray
}

// Len returns the element count of an array value, 0 otherwise.
func (v Value) Len() int {
	return len(v.elems)
}

// AsString returns the string payload.
func (v Value) AsString() (string, error) {
	if v.kind != KindString {
		return "", mismatch(KindString, v.kind)
	}

	return v.str, nil
}

// AsBool returns the boolean payload.
func (v Value) AsBool() (bool, error) {
	if v.kind != KindBool {
		return false, mismatch(KindBool, v.kind)
	}

	return v.flag, nil
}

// AsInt returns the integer payload.
func (v Value) AsInt() (int64, error) {
	if v.kind != KindInt {
		return 0, mismatch(KindInt, v.kind)
	}

	return v.num, nil
}

// AsEnum returns the enum payload.
func (v Value) AsEnum() (EnumValue, error) {
	if v.kind != KindEnum {
		return EnumValue{}, mismatch(KindEnum, v.kind)
	}

	return EnumValue{Type: v.ref, Constant: v.str}, nil
}

// AsTypeRef returns the type-reference payload.
func (v Value) AsTypeRef() (TypeRef, error) {
	if v.kind != KindTypeRef {
		return "", mismatch(KindTypeRef, v.kind)
	}

	return v.ref, nil
}

// AsAnnotation returns the nested annotation payload.
func (v Value) AsAnnotation() (*Instance, error) {
	if v.kind != KindAnnotation {
		return nil, mismatch(KindAnnotation, v.kind)
	}

	return v.ann, nil
}

// AsArray returns a copy of the array elements.
func (v Value) AsArray() ([]Value, error) {
	if v.kind != KindArray {
		return nil, mismatch(KindArray, v.kind)
	}

	return append([]Value(nil), v.elems...), nil
}

// AsStrings returns the payload of an array of strings.
func (v Value) AsStrings() ([]string, error) {
	if v.kind != KindArray {
		return nil, mismatch(KindArray, v.kind)
	}

	out := make([]string, 0, len(v.elems))
	for _, e := range v.elems {
		s, err := e.AsString()
		if err != nil {
			return nil, err
		}

		out = append(out, s)
	}

	return out, nil
}

// String renders the value for diagnostics and CLI output.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return strconv.Quote(v.str)
	case KindBool:
		return strconv.FormatBool(v.flag)
	case KindInt:
		return strconv.FormatInt(v.num, 10)
	case KindEnum:
		return EnumValue{Type: v.ref, Constant: v.str}.String()
	case KindTypeRef:
		return v.ref.String() + ".class"
	case KindAnnotation:
		return v.ann.String()
	case KindArray:
		parts := make([]string, len(v.elems))
		for i, e := range v.elems {
			parts[i] = e.String()
		}

		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return "<invalid>"
	}
}

// TypeMismatchError reports a typed access that does not match the stored tag.
type TypeMismatchError struct {
	Want ValueKind
	Got  ValueKind
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("attribute value is %s, not %s", e.Got, e.Want)
}

func mismatch(want, got ValueKind) error {
	return &TypeMismatchError{Want: want, Got: got}
}
