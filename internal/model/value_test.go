package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_Accessors(t *testing.T) {
	s, err := String("/x").AsString()
	require.NoError(t, err)
	assert.Equal(t, "/x", s)

	b, err := Bool(true).AsBool()
	require.NoError(t, err)
	assert.True(t, b)

	n, err := Int(42).AsInt()
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)

	e, err := Enum("org.example.RequestMethod", "GET").AsEnum()
	require.NoError(t, err)
	assert.Equal(t, EnumValue{Type: "org.example.RequestMethod", Constant: "GET"}, e)
	assert.Equal(t, "RequestMethod.GET", e.String())

	ref, err := TypeValue("java.lang.String").AsTypeRef()
	require.NoError(t, err)
	assert.Equal(t, TypeRef("java.lang.String"), ref)

	inner := NewInstance("org.example.Header", map[string]Value{"name": String("Accept")})
	ann, err := Nested(inner).AsAnnotation()
	require.NoError(t, err)
	assert.Same(t, inner, ann)

	ss, err := Strings("a", "b").AsStrings()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ss)
}

func TestValue_TypeMismatch(t *testing.T) {
	_, err := Strings("a").AsString()
	require.Error(t, err)

	var mismatchErr *TypeMismatchError
	require.True(t, errors.As(err, &mismatchErr))
	assert.Equal(t, KindString, mismatchErr.Want)
	assert.Equal(t, KindArray, mismatchErr.Got)
	assert.Equal(t, "attribute value is Array, not String", err.Error())

	// element mismatch inside an array surfaces the element kind
	_, err = Array(String("a"), Int(1)).AsStrings()
	require.True(t, errors.As(err, &mismatchErr))
	assert.Equal(t, KindInt, mismatchErr.Got)

	_, err = Value{}.AsEnum()
	require.True(t, errors.As(err, &mismatchErr))
	assert.Equal(t, KindInvalid, mismatchErr.Got)
}

func TestValue_Array(t *testing.T) {
	v := Array(String("a"), Value{}, String("b"))
	assert.True(t, v.IsArray())
	assert.Equal(t, 2, v.Len(), "invalid elements are dropped")

	elems, err := v.AsArray()
	require.NoError(t, err)
	elems[0] = String("changed")

	again, _ := v.AsArray()
	assert.Equal(t, String("a"), again[0], "AsArray returns a copy")

	assert.Equal(t, 0, Array().Len())
	assert.True(t, Array().IsArray())
}

func TestValue_String(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{String("/x"), `"/x"`},
		{Bool(false), "false"},
		{Int(-3), "-3"},
		{Enum("a.b.RequestMethod", "POST"), "RequestMethod.POST"},
		{TypeValue("a.b.Dto"), "a.b.Dto.class"},
		{Strings("a", "b"), `["a", "b"]`},
		{Array(), "[]"},
		{Value{}, "<invalid>"},
		{Nested(NewInstance("a.b.Header", map[string]Value{"name": String("X")})), `@Header(name="X")`},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.String())
		})
	}
}

func TestValueKind_String(t *testing.T) {
	assert.Equal(t, "TypeRef", KindTypeRef.String())
	assert.Equal(t, "ValueKind(99)", ValueKind(99).String())
}
