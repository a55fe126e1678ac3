// Package schemas provides JSON Schema validation for the artifacts produced by the analyzers and the scorer.
package schemas

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	schemafiles "github.com/jonathan/resume-matcher/schemas"
	"github.com/xeipuuv/gojsonschema"
)

// Names of the embedded schemas.
const (
	ResumeAnalysis = "resume_analysis"
	JobAnalysis    = "job_analysis"
	MatchResult    = "match_result"
	Lexicon        = "lexicon"
)

const schemaSuffix = ".schema.json"

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Schema string
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	if ve.Schema != "" {
		sb.WriteString(fmt.Sprintf("validation against %s failed:\n", ve.Schema))
	} else {
		sb.WriteString("validation failed:\n")
	}
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

var (
	compiled   = make(map[string]*gojsonschema.Schema)
	compiledMu sync.Mutex
)

// Names lists the embedded schema names, sorted.
func Names() []string {
	entries, err := fs.Glob(schemafiles.Files, "*"+schemaSuffix)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e, schemaSuffix))
	}
	sort.Strings(names)
	return names
}

// Load returns the raw bytes of an embedded schema.
func Load(name string) ([]byte, error) {
	data, err := schemafiles.Files.ReadFile(name + schemaSuffix)
	if err != nil {
		return nil, &SchemaLoadError{Path: name + schemaSuffix, Message: "unknown schema", Cause: err}
	}
	return data, nil
}

// Validate checks a Go value against an embedded schema. The value is
// validated in its JSON form, so struct tags decide the field names.
func Validate(name string, v any) error {
	schema, err := schemaFor(name)
	if err != nil {
		return err
	}
	result, err := schema.Validate(gojsonschema.NewGoLoader(v))
	if err != nil {
		return fmt.Errorf("failed to load document for %s: %w", name, err)
	}
	return toValidationError(name, result)
}

// ValidateBytes checks a raw JSON document against an embedded schema.
func ValidateBytes(name string, doc []byte) error {
	schema, err := schemaFor(name)
	if err != nil {
		return err
	}
	result, err := schema.Validate(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return fmt.Errorf("failed to load document for %s: %w", name, err)
	}
	return toValidationError(name, result)
}

// ValidateJSON validates a JSON file against a JSON Schema file
func ValidateJSON(schemaPath, jsonPath string) error {
	schemaAbsPath, err := filepath.Abs(schemaPath)
	if err != nil {
		return fmt.Errorf("failed to resolve schema path: %w", err)
	}

	jsonAbsPath, err := filepath.Abs(jsonPath)
	if err != nil {
		return fmt.Errorf("failed to resolve JSON path: %w", err)
	}

	if _, err := os.Stat(schemaAbsPath); os.IsNotExist(err) {
		return fmt.Errorf("schema file not found: %s", schemaAbsPath)
	}

	if _, err := os.Stat(jsonAbsPath); os.IsNotExist(err) {
		return fmt.Errorf("JSON file not found: %s", jsonAbsPath)
	}

	schemaLoader := gojsonschema.NewReferenceLoader("file://" + filepath.ToSlash(schemaAbsPath))
	documentLoader := gojsonschema.NewReferenceLoader("file://" + filepath.ToSlash(jsonAbsPath))

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{
			Path:    schemaAbsPath,
			Message: "schema validation failed during load",
			Cause:   err,
		}
	}

	return toValidationError("", result)
}

// schemaFor compiles an embedded schema once and caches it.
func schemaFor(name string) (*gojsonschema.Schema, error) {
	compiledMu.Lock()
	defer compiledMu.Unlock()

	if s, ok := compiled[name]; ok {
		return s, nil
	}

	data, err := Load(name)
	if err != nil {
		return nil, err
	}
	s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, &SchemaLoadError{Path: name + schemaSuffix, Message: "invalid schema", Cause: err}
	}
	compiled[name] = s
	return s, nil
}

func toValidationError(name string, result *gojsonschema.Result) error {
	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Schema: name,
		Errors: make([]FieldError, 0, len(result.Errors())),
	}

	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}

	return validationErr
}
