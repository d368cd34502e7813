package resolve

import (
	"fmt"

	"alias-resolver/internal/model"
)

// AmbiguousAttributeError is returned by unique-value queries when the
// attribute resolves to an array with more than one element.
type AmbiguousAttributeError struct {
	Attribute string
	Type      model.TypeRef
	Count     int
}

func (e *AmbiguousAttributeError) Error() string {
	return fmt.Sprintf("multiple values (%d) for %s in @%s", e.Count, e.Attribute, e.Type.SimpleName())
}
