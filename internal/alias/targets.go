package alias

import (
	"strings"

	"alias-resolver/internal/model"
)

// TargetSet is an insertion-ordered set of attribute references.
type TargetSet struct {
	order []model.AttributeRef
	index map[model.AttributeRef]struct{}
}

// NewTargetSet creates an empty set.
func NewTargetSet() *TargetSet {
	return &TargetSet{index: make(map[model.AttributeRef]struct{})}
}

// Add inserts ref and reports whether it was not present before.
func (s *TargetSet) Add(ref model.AttributeRef) bool {
	if _, ok := s.index[ref]; ok {
		return false
	}

	s.index[ref] = struct{}{}
	s.order = append(s.order, ref)

	return true
}

// Contains reports whether ref is in the set.
func (s *TargetSet) Contains(ref model.AttributeRef) bool {
	if s == nil {
		return false
	}

	_, ok := s.index[ref]

	return ok
}

// Len returns the number of targets.
func (s *TargetSet) Len() int {
	if s == nil {
		return 0
	}

	return len(s.order)
}

// Refs returns the targets in the order they were reached.
func (s *TargetSet) Refs() []model.AttributeRef {
	if s == nil {
		return nil
	}

	return append([]model.AttributeRef(nil), s.order...)
}

// String renders the set as "{A.x, B.y}".
func (s *TargetSet) String() string {
	parts := make([]string, 0, s.Len())
	for _, ref := range s.Refs() {
		parts = append(parts, ref.String())
	}

	return "{" + strings.Join(parts, ", ") + "}"
}
