// Package web declares the Spring MVC request mapping annotations as Go
// structs, for loading with internal/analyze.
//
// Exported fields are attributes. An aliasFor tag marks an attribute as an
// alias; the blank annotation field sets the fully qualified annotation name.
package web

// RequestMethod mirrors org.springframework.web.bind.annotation.RequestMethod.
type RequestMethod string

const (
	GET     RequestMethod = "GET"
	HEAD    RequestMethod = "HEAD"
	POST    RequestMethod = "POST"
	PUT     RequestMethod = "PUT"
	PATCH   RequestMethod = "PATCH"
	DELETE  RequestMethod = "DELETE"
	OPTIONS RequestMethod = "OPTIONS"
	TRACE   RequestMethod = "TRACE"
)

type RequestMapping struct {
	_ struct{} `annotation:"org.springframework.web.bind.annotation.RequestMapping"`

	Name     string
	Value    []string `aliasFor:"path"`
	Path     []string `aliasFor:"value"`
	Method   []RequestMethod
	Params   []string
	Headers  []string
	Consumes []string
	Produces []string
}

type GetMapping struct {
	_ struct{} `annotation:"org.springframework.web.bind.annotation.GetMapping"`

	Name     string   `aliasFor:"annotation=RequestMapping"`
	Value    []string `aliasFor:"annotation=RequestMapping"`
	Path     []string `aliasFor:"annotation=RequestMapping"`
	Params   []string `aliasFor:"annotation=RequestMapping"`
	Headers  []string `aliasFor:"annotation=RequestMapping"`
	Consumes []string `aliasFor:"annotation=RequestMapping"`
	Produces []string `aliasFor:"annotation=RequestMapping"`
}

type PostMapping struct {
	_ struct{} `annotation:"org.springframework.web.bind.annotation.PostMapping"`

	Name     string   `aliasFor:"annotation=RequestMapping"`
	Value    []string `aliasFor:"annotation=RequestMapping"`
	Path     []string `aliasFor:"annotation=RequestMapping"`
	Params   []string `aliasFor:"annotation=RequestMapping"`
	Headers  []string `aliasFor:"annotation=RequestMapping"`
	Consumes []string `aliasFor:"annotation=RequestMapping"`
	Produces []string `aliasFor:"annotation=RequestMapping"`
}

// ResponseBody carries no attributes.
type ResponseBody struct {
	_ struct{} `annotation:"org.springframework.web.bind.annotation.ResponseBody"`
}

// JSONGet is a composed GET mapping producing JSON. Its route attribute aliases
// GetMapping.path, which in turn aliases RequestMapping.path.
type JSONGet struct {
	Route []string `aliasFor:"annotation=GetMapping,attribute=path"`
	Cache bool     `attr:"cacheable"`
	Notes string   `attr:"-"`
}

