package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstance(t *testing.T) {
	inst := NewInstance("a.GetMapping", map[string]Value{
		"path":    Strings("/x"),
		"name":    String("get"),
		"invalid": {},
	})

	v, ok := inst.Attribute("path")
	assert.True(t, ok)
	assert.Equal(t, Strings("/x"), v)

	_, ok = inst.Attribute("invalid")
	assert.False(t, ok, "invalid values are never stored")

	_, ok = inst.Attribute("missing")
	assert.False(t, ok)

	assert.Equal(t, []string{"name", "path"}, inst.Names())
	assert.Equal(t, 2, inst.Len())
	assert.Equal(t, `@GetMapping(name="get", path=["/x"])`, inst.String())
	assert.Equal(t, "@Marker", NewInstance("a.Marker", nil).String())
}

func TestStack(t *testing.T) {
	stack := Stack{
		NewInstance("a.GetMapping", nil),
		NewInstance("a.RequestMapping", map[string]Value{"method": Array(Enum("a.RequestMethod", "GET"))}),
	}

	assert.Equal(t, []TypeRef{"a.GetMapping", "a.RequestMapping"}, stack.Types())
	assert.Equal(t, "@GetMapping @RequestMapping(method=[RequestMethod.GET])", stack.String())
}
