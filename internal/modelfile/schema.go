package modelfile

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

//go:embed schema/model.schema.json
var schemaBytes []byte

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
	printer        = message.NewPrinter(language.English)
)

// SchemaIssue is a single schema violation.
type SchemaIssue struct {
	Path    string // Instance location (e.g. "/types/0/name")
	Message string
	Keyword string // Failing schema keyword
}

// SchemaError reports every schema violation of one document.
type SchemaError struct {
	Issues []SchemaIssue
}

func (e *SchemaError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		if issue.Path == "" {
			parts = append(parts, issue.Message)
			continue
		}

		parts = append(parts, issue.Path+": "+issue.Message)
	}

	return printer.Sprintf("%d schema violation(s): %s", len(e.Issues), strings.Join(parts, "; "))
}

// getSchema compiles the embedded JSON schema once and returns it.
func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("model.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}

		compiledSchema, compileErr = c.Compile("model.schema.json")
		if compileErr != nil {
			compileErr = fmt.Errorf("compiling schema: %w", compileErr)
		}
	})

	return compiledSchema, compileErr
}

// ValidateSchema checks raw YAML against the model file schema. Violations are
// returned as *SchemaError; other errors mean the document could not be read.
func ValidateSchema(data []byte) error {
	schema, err := getSchema()
	if err != nil {
		return fmt.Errorf("loading schema: %w", err)
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parsing YAML: %w", err)
	}

	if raw == nil {
		// an empty document is an empty model
		raw = map[string]any{}
	}

	jsonData, err := json.Marshal(normalizeYAML(raw))
	if err != nil {
		return fmt.Errorf("converting to JSON: %w", err)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("preparing JSON for validation: %w", err)
	}

	err = schema.Validate(inst)
	if err == nil {
		return nil
	}

	validationErr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return fmt.Errorf("unexpected validation error type: %w", err)
	}

	return &SchemaError{Issues: extractIssues(validationErr)}
}

// extractIssues walks the ValidationError tree and returns leaf-level issues.
func extractIssues(ve *jsonschema.ValidationError) []SchemaIssue {
	var issues []SchemaIssue
	collectIssues(ve, &issues)

	if len(issues) == 0 {
		return []SchemaIssue{{Message: ve.Error()}}
	}

	return deduplicateIssues(issues)
}

func collectIssues(ve *jsonschema.ValidationError, issues *[]SchemaIssue) {
	if len(ve.Causes) > 0 {
		for _, cause := range ve.Causes {
			collectIssues(cause, issues)
		}

		return
	}

	if ve.ErrorKind == nil {
		return
	}

	keyword := ""
	if kwPath := ve.ErrorKind.KeywordPath(); len(kwPath) > 0 {
		keyword = kwPath[len(kwPath)-1]
	}

	// generic container errors are not informative
	if keyword == "oneOf" || keyword == "allOf" || keyword == "$ref" || keyword == "" {
		return
	}

	path := ""
	if len(ve.InstanceLocation) > 0 {
		path = "/" + strings.Join(ve.InstanceLocation, "/")
	}

	*issues = append(*issues, SchemaIssue{
		Path:    path,
		Message: ve.ErrorKind.LocalizedString(printer),
		Keyword: keyword,
	})
}

func deduplicateIssues(issues []SchemaIssue) []SchemaIssue {
	seen := make(map[SchemaIssue]bool, len(issues))

	var result []SchemaIssue

	for _, issue := range issues {
		if !seen[issue] {
			seen[issue] = true
			result = append(result, issue)
		}
	}

	return result
}

// normalizeYAML converts YAML-decoded values to JSON-compatible types.
func normalizeYAML(v any) any {
	switch val := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(val))
		for k, v := range val {
			m[k] = normalizeYAML(v)
		}

		return m
	case map[any]any:
		m := make(map[string]any, len(val))
		for k, v := range val {
			m[fmt.Sprint(k)] = normalizeYAML(v)
		}

		return m
	case []any:
		out := make([]any, len(val))
		for i, v := range val {
			out[i] = normalizeYAML(v)
		}

		return out
	default:
		return v
	}
}
