package model

import (
	"strings"
)

// Find resolves a type name given as:
//   - the fully qualified reference ("org.example.web.GetMapping")
//   - a qualified suffix ("web.GetMapping")
//   - a simple name ("GetMapping")
//
// Suffix and simple-name matches must be unique.
func (g *Graph) Find(name string) (TypeRef, bool) {
	if name == "" {
		return "", false
	}

	// 1) exact match
	if _, ok := g.types[TypeRef(name)]; ok {
		return TypeRef(name), true
	}

	// 2) suffix match, respecting '.' and '/' boundaries
	var (
		found TypeRef
		count int
	)

	for _, ref := range g.order {
		s := string(ref)
		if !strings.HasSuffix(s, name) {
			continue
		}

		if rest := s[:len(s)-len(name)]; rest != "" && !strings.HasSuffix(rest, ".") && !strings.HasSuffix(rest, "/") {
			continue
		}

		found = ref
		count++
	}

	return found, count == 1
}

// Candidates returns all registered names, for suggestions.
func (g *Graph) Candidates() []string {
	out := make([]string, 0, len(g.order))
	for _, ref := range g.order {
		out = append(out, string(ref))
	}

	return out
}
