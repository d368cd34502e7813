// Package model defines the annotation Type Model consumed by the alias
// resolver and the in-memory values carried by annotation instances.
//
// Key types:
//   - TypeRef: qualified annotation type name (e.g. "org.example.GetMapping")
//   - AttributeRef: an (annotation type, attribute name) pair
//   - TypeDecl / AttributeDecl: declared attributes and their alias markers
//   - AliasMarker: the explicit parameters of an alias-for meta-annotation
//   - Model: read-only lookup of type declarations; Graph is the map-backed implementation
//   - Value: closed tagged attribute value with typed accessors
//   - Instance / Stack: concrete annotations effective at one lookup site
package model
