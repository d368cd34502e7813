package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWords(t *testing.T) {
	tests := []struct {
		name string
		want []string
	}{
		{name: "GetMapping", want: []string{"Get", "Mapping"}},
		{name: "org.springframework.web.GetMapping", want: []string{"org", "springframework", "web", "Get", "Mapping"}},
		{name: "com/example/web/JsonGet", want: []string{"com", "example", "web", "Json", "Get"}},
		{name: "Outer$Inner", want: []string{"Outer", "Inner"}},
		{name: "ItemController#list", want: []string{"Item", "Controller", "list"}},
		{name: "com.example.ItemController#find", want: []string{"com", "example", "Item", "Controller", "find"}},
		{name: "requestURL", want: []string{"request", "URL"}},
		{name: "XMLHttpRequest", want: []string{"XML", "Http", "Request"}},
		{name: "path_variable-ID", want: []string{"path", "variable", "ID"}},
		{name: "v2Mapping", want: []string{"v2", "Mapping"}},
		{name: "..#", want: nil},
		{name: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Words(tt.name))
		})
	}
}

func TestNormalizeIdent(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{name: "RequestMapping", want: "requestmapping"},
		{name: "request_mapping", want: "requestmapping"},
		{name: "REQUEST-MAPPING", want: "requestmapping"},
		{name: "web.RequestMapping", want: "webrequestmapping"},
		{name: "Outer$Inner", want: "outerinner"},
		{name: "ItemController#list", want: "itemcontrollerlist"},
		{name: "ID", want: "id"},
		{name: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeIdent(tt.name))
		})
	}
}
