// Package resolve reads the effective value of an annotation attribute from
// a stack of annotation instances, following alias-for declarations.
//
// Lookup walks the stack most-specific first. An instance of the requested
// type answers directly; any other instance answers through alias links whose
// targets contain the requested (type, attribute). The first match wins.
//
//	r := resolve.New(requestMapping, stack, alias.NewCache(graph))
//	path, ok, err := r.GetUniqueString("path")
//
// Absence is reported with ok == false and is never an error.
package resolve
