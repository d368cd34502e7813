// Package analyze provides package loading and annotation model extraction.
//
// It uses golang.org/x/tools/go/packages with go/types to read annotation
// types declared as Go structs:
//   - every exported struct type is an annotation type, named by its package
//     path and type name unless a blank field carries an annotation tag
//   - every exported field is an attribute, named by its attr tag or by the
//     field name with the first word lower-cased
//   - an aliasFor tag on a field is the alias marker
package analyze
