package endpoint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alias-resolver/internal/alias"
	"alias-resolver/internal/model"
	"alias-resolver/internal/modelfile"
	"alias-resolver/internal/resolve"
)

const springModel = `
types:
  - name: org.springframework.web.bind.annotation.RequestMapping
    attributes:
      - name: value
        aliasFor: path
      - name: path
        aliasFor: value
      - name: method
      - name: consumes
      - name: produces
  - name: org.springframework.web.bind.annotation.GetMapping
    attributes:
      - name: value
        aliasFor: {annotation: RequestMapping}
      - name: path
        aliasFor: {annotation: RequestMapping}
      - name: produces
        aliasFor: {annotation: RequestMapping}
  - name: org.springframework.stereotype.Controller
    attributes:
      - name: value
elements:
  - name: com.example.ItemController
    annotations:
      - type: Controller
      - type: RequestMapping
        values:
          value: /api/
          produces: [application/json]
  - name: com.example.ItemController#list
    annotations:
      - type: GetMapping
        values:
          value: [/items]
      - type: RequestMapping
        values:
          method: [!enum RequestMethod.GET, !enum RequestMethod.HEAD]
  - name: com.example.ItemController#create
    annotations:
      - type: RequestMapping
        values:
          path: /items
          method: !enum RequestMethod.POST
          consumes: application/json
          produces: [application/xml]
  - name: com.example.ItemController#index
    annotations:
      - type: GetMapping
  - name: com.example.ItemController#helper
    annotations:
      - type: Controller
        values:
          value: not a route
  - name: com.example.ItemController#ambiguous
    annotations:
      - type: GetMapping
        values:
          path: [/a, /b]
`

func loadSources(t *testing.T) ([]Source, *model.Graph) {
	t.Helper()

	f, err := modelfile.Parse([]byte(springModel))
	require.NoError(t, err)

	bundle, diags := modelfile.Build(f)
	require.True(t, diags.IsValid(), diags.Error())

	sources := make([]Source, 0, len(bundle.Elements))
	for _, e := range bundle.Elements {
		sources = append(sources, Source{Name: e.Name, Stack: e.Stack})
	}

	return sources, bundle.Graph
}

func source(t *testing.T, sources []Source, name string) Source {
	t.Helper()

	for _, s := range sources {
		if s.Name == name {
			return s
		}
	}

	require.FailNow(t, "no source "+name)

	return Source{}
}

func TestReader_Read(t *testing.T) {
	sources, graph := loadSources(t)
	r := NewReader(alias.NewCache(graph))

	tests := []struct {
		element string
		want    Endpoint
		mapped  bool
	}{
		{
			element: "com.example.ItemController#list",
			want: Endpoint{
				Element: "com.example.ItemController#list",
				Path:    "/items",
				Methods: []string{"GET", "HEAD"},
			},
			mapped: true,
		},
		{
			element: "com.example.ItemController#create",
			want: Endpoint{
				Element:  "com.example.ItemController#create",
				Path:     "/items",
				Methods:  []string{"POST"},
				Consumes: []string{"application/json"},
				Produces: []string{"application/xml"},
			},
			mapped: true,
		},
		{
			// mapped through GetMapping without any value
			element: "com.example.ItemController#index",
			want:    Endpoint{Element: "com.example.ItemController#index"},
			mapped:  true,
		},
		{
			element: "com.example.ItemController#helper",
			mapped:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.element, func(t *testing.T) {
			src := source(t, sources, tt.element)

			got, ok, err := r.Read(src.Name, src.Stack)
			require.NoError(t, err)
			assert.Equal(t, tt.mapped, ok)

			if tt.mapped {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestReader_Read_Ambiguous(t *testing.T) {
	sources, graph := loadSources(t)
	r := NewReader(alias.NewCache(graph))

	src := source(t, sources, "com.example.ItemController#ambiguous")

	_, _, err := r.Read(src.Name, src.Stack)
	require.Error(t, err)

	var ambiguous *resolve.AmbiguousAttributeError
	require.ErrorAs(t, err, &ambiguous)
	assert.Equal(t, AttrPath, ambiguous.Attribute)
	assert.Contains(t, err.Error(), "com.example.ItemController#ambiguous")
}

func TestReader_ReadAll(t *testing.T) {
	sources, graph := loadSources(t)
	r := NewReader(alias.NewCache(graph))

	var filtered []Source
	for _, s := range sources {
		if s.Name != "com.example.ItemController#ambiguous" {
			filtered = append(filtered, s)
		}
	}

	endpoints, err := r.ReadAll(filtered)
	require.NoError(t, err)
	require.Len(t, endpoints, 3)

	assert.Equal(t, "GET,HEAD /api/items", endpoints[0].String())
	assert.Equal(t, []string{"application/json"}, endpoints[0].Produces, "owner produces are inherited")

	assert.Equal(t, "POST /api/items", endpoints[1].String())
	assert.Equal(t, []string{"application/xml"}, endpoints[1].Produces)

	assert.Equal(t, "* /api/", endpoints[2].String())

	_, err = r.ReadAll(sources)
	require.Error(t, err)
}

func TestReader_WithMappingType(t *testing.T) {
	_, graph := loadSources(t)

	controller := model.TypeRef("org.springframework.stereotype.Controller")
	r := NewReader(alias.NewCache(graph), WithMappingType(controller))
	assert.Equal(t, controller, r.MappingType())

	assert.Equal(t, DefaultMappingType, NewReader(nil, WithMappingType("")).MappingType())
}

func TestJoinPath(t *testing.T) {
	tests := []struct {
		prefix, path, want string
	}{
		{"", "/items", "/items"},
		{"/api", "", "/api"},
		{"/api", "/items", "/api/items"},
		{"/api/", "/items", "/api/items"},
		{"/api", "items", "/api/items"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, JoinPath(tt.prefix, tt.path), "%q + %q", tt.prefix, tt.path)
	}
}

func TestEndpoint_MethodList(t *testing.T) {
	tests := []struct {
		endpoint Endpoint
		methods  string
		str      string
	}{
		{endpoint: Endpoint{Path: "/items"}, methods: "*", str: "* /items"},
		{endpoint: Endpoint{Path: "/items", Methods: []string{"POST"}}, methods: "POST", str: "POST /items"},
		{endpoint: Endpoint{Path: "/", Methods: []string{"GET", "HEAD"}}, methods: "GET,HEAD", str: "GET,HEAD /"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.methods, tt.endpoint.MethodList())
		assert.Equal(t, tt.str, tt.endpoint.String())
	}
}
