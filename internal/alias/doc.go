// Package alias computes alias links declared by alias-for markers on
// annotation attributes.
//
// A link's source is an attribute of the annotation type being inspected; its
// targets are every (type, attribute) pair reachable by following markers
// transitively. The walk records each pair at most once, which is both the
// duplicate guard and the cycle guard.
//
// Default target resolution for a marker on attribute A.x:
//   - target type: the marker's annotation parameter, else A
//   - target attribute: the marker's attribute parameter, else its value
//     parameter, else x
//
// Targets that the Model cannot resolve are still recorded, so a lookup by
// name can match them even though the chain cannot be extended.
package alias
