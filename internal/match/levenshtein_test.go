package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{a: "", b: "", want: 0},
		{a: "path", b: "path", want: 0},
		{a: "", b: "value", want: 5},
		{a: "pth", b: "path", want: 1},
		{a: "pahts", b: "paths", want: 2},
		{a: "Path", b: "path", want: 1},
		{a: "getmapping", b: "postmapping", want: 3},
		{a: "produces", b: "consumes", want: 5},
		{a: "requestmaping", b: "requestmapping", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, Levenshtein(tt.a, tt.b))
			assert.Equal(t, tt.want, Levenshtein(tt.b, tt.a), "distance is symmetric")
		})
	}
}

func TestSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, Similarity("", ""), 0.001)
	assert.InDelta(t, 1.0, Similarity("route", "route"), 0.001)
	assert.InDelta(t, 0.75, Similarity("pth", "path"), 0.001)
	assert.InDelta(t, 0.0, Similarity("abc", "xyz"), 0.001)
}

func TestNameSimilarity(t *testing.T) {
	tests := []struct {
		a, b string
		min  float64
	}{
		{a: "RequestMapping", b: "request_mapping", min: 1.0},
		{a: "Outer$Inner", b: "OuterInner", min: 1.0},
		{a: "ItemController#list", b: "ItemController#lst", min: 0.9},
		{a: "GetMapping", b: "PostMapping", min: 0.7},
	}

	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			assert.GreaterOrEqual(t, NameSimilarity(tt.a, tt.b), tt.min)
		})
	}

	assert.Less(t, NameSimilarity("produces", "headers"), MinSimilarity)
}

func BenchmarkNameSimilarity(b *testing.B) {
	for b.Loop() {
		NameSimilarity("org.example.RequestMaping", "org.example.RequestMapping")
	}
}
