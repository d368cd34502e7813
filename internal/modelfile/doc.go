// Package modelfile loads annotation Type Models and annotated elements from
// YAML files.
//
// A model file declares annotation types, the alias markers on their
// attributes, and program elements with the ordered stack of annotation
// instances effective on each of them. Files are checked against an embedded
// JSON schema before decoding. Build merges decoded files into a Bundle,
// Validate reports suspicious references and Export turns a Bundle back into
// a File.
//
// # Schema Overview
//
//	version: "1"
//	types:
//	  - name: org.springframework.web.bind.annotation.RequestMapping
//	    attributes:
//	      - name: value
//	        aliasFor: path               # shorthand for {value: path}
//	      - name: path
//	        aliasFor: value
//	      - name: method
//	  - name: org.springframework.web.bind.annotation.GetMapping
//	    attributes:
//	      - name: path
//	        aliasFor:
//	          annotation: RequestMapping # short names resolve by suffix
//	elements:
//	  - name: com.example.ItemController#list
//	    annotations:                     # most specific first
//	      - type: GetMapping
//	        values:
//	          path: /items
//	      - type: RequestMapping
//	        values:
//	          method: [!enum RequestMethod.GET]
//
// # Values
//
// Attribute values are decoded into tagged model values:
//   - plain scalars: string, bool or int by YAML resolution
//   - !enum Type.CONSTANT: enum constant
//   - !type com.example.Dto: type reference
//   - !annotation {type: T, values: {...}}: nested annotation
//   - sequences: arrays
//
// Null values are rejected: an attribute is either present with a value or
// absent.
//
// # Versions
//
// The version field is a semantic version constrained to the 1.x line;
// "1" and "1.0" are accepted.
package modelfile
