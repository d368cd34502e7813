// Package endpoint reads route declarations off annotation stacks.
//
// A Reader resolves the path, method, produces and consumes attributes of a
// mapping annotation type (RequestMapping by default) through alias links, so
// composed annotations such as GetMapping or user-defined shortcuts are read
// the same way as the mapping annotation itself.
package endpoint
