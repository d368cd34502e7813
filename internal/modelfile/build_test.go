package modelfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alias-resolver/internal/model"
	"alias-resolver/internal/resolve"
)

func mustParse(t *testing.T, yaml string) *File {
	t.Helper()

	f, err := Parse([]byte(yaml))
	require.NoError(t, err)

	return f
}

func TestBuild_ResolvesShortNames(t *testing.T) {
	f := mustParse(t, `
types:
  - name: org.example.web.Mapping
    attributes:
      - name: path
  - name: org.example.web.Get
    attributes:
      - name: path
        aliasFor: {annotation: web.Mapping}
      - name: base
        aliasFor: {annotation: Unknown}
elements:
  - name: e
    annotations:
      - type: Get
        values:
          path: /a
          inner: !annotation
            type: Mapping
            values:
              path: /b
      - type: com.other.Marker
`)

	bundle, diags := Build(f)
	require.False(t, diags.HasErrors(), diags.Error())

	decl, ok := bundle.Graph.ResolveType("org.example.web.Get")
	require.True(t, ok)

	marker, _ := decl.Attribute("path").AliasMarker()
	assert.Equal(t, model.TypeRef("org.example.web.Mapping"), marker.Annotation)

	// unresolved names are kept as written
	marker, _ = decl.Attribute("base").AliasMarker()
	assert.Equal(t, model.TypeRef("Unknown"), marker.Annotation)

	e, ok := bundle.Element("e")
	require.True(t, ok)
	assert.Equal(t, []model.TypeRef{"org.example.web.Get", "com.other.Marker"}, e.Stack.Types())

	v, ok := e.Stack[0].Attribute("inner")
	require.True(t, ok)

	nested, err := v.AsAnnotation()
	require.NoError(t, err)
	assert.Equal(t, model.TypeRef("org.example.web.Mapping"), nested.Type)
}

func TestBuild_AmbiguousShortName(t *testing.T) {
	f := mustParse(t, `
types:
  - name: org.a.Mapping
  - name: org.b.Mapping
elements:
  - name: e
    annotations:
      - type: Mapping
`)

	bundle, diags := Build(f)
	require.True(t, diags.IsValid())

	e, _ := bundle.Element("e")
	assert.Equal(t, model.TypeRef("Mapping"), e.Stack[0].Type)
}

func TestBuild_Duplicates(t *testing.T) {
	first := mustParse(t, `
types:
  - name: A
    attributes:
      - name: x
      - name: x
elements:
  - name: e
    annotations: []
`)
	second := mustParse(t, `
types:
  - name: A
elements:
  - name: e
    annotations: []
`)

	bundle, diags := Build(first, second)

	codes := make([]string, 0, len(diags.Errors))
	for _, d := range diags.Errors {
		codes = append(codes, d.Code)
	}

	assert.ElementsMatch(t, []string{"duplicate_attribute", "duplicate_type", "duplicate_element"}, codes)

	// first declaration wins
	decl, ok := bundle.Graph.ResolveType("A")
	require.True(t, ok)
	assert.Equal(t, []string{"x"}, decl.AttributeNames())
	assert.Len(t, bundle.Elements, 1)
}

func TestBuild_ResolvesThroughSpringModel(t *testing.T) {
	f, err := LoadFile("testdata/spring.yaml")
	require.NoError(t, err)

	bundle, diags := Build(f)
	require.True(t, diags.IsValid(), diags.Error())

	tests := []struct {
		element  string
		wantPath string
		ambig    bool
	}{
		{element: "com.example.ItemController#list", wantPath: "/items"},
		{element: "com.example.ItemController#create", wantPath: "/items"},
		{element: "com.example.ItemController#find", wantPath: "/items/{id}"},
		{element: "com.example.ItemController#legacy", ambig: true},
	}

	for _, tt := range tests {
		t.Run(tt.element, func(t *testing.T) {
			e, ok := bundle.Element(tt.element)
			require.True(t, ok)

			r := resolve.ForModel(requestMapping, e.Stack, bundle.Graph)

			path, ok, err := r.GetUniqueString("path")
			if tt.ambig {
				var ambiguous *resolve.AmbiguousAttributeError
				require.ErrorAs(t, err, &ambiguous)
				assert.Equal(t, 2, ambiguous.Count)

				return
			}

			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, tt.wantPath, path)
		})
	}
}
