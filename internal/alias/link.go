package alias

import (
	"alias-resolver/internal/model"
)

// Link is the set of attributes an attribute is an alias for.
type Link struct {
	// Source is the attribute carrying the alias marker.
	Source model.AttributeRef
	// Targets holds every pair reachable from Source, in walk order.
	Targets *TargetSet
}

// Matches reports whether (targetType, targetAttribute) is among the targets.
func (l Link) Matches(targetType model.TypeRef, targetAttribute string) bool {
	return l.Targets.Contains(model.AttributeRef{Type: targetType, Name: targetAttribute})
}

// String renders "Source -> {targets}".
func (l Link) String() string {
	return l.Source.String() + " -> " + l.Targets.String()
}

// Finder returns the alias links declared by an annotation type.
type Finder interface {
	FindAliasLinks(annotationType model.TypeRef) []Link
}
