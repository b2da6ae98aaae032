// Package schemas provides JSON Schema validation for parsed resumes.
package schemas

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/resume-parser/internal/types"
	schemafiles "github.com/jonathan/resume-parser/schemas"
)

// maxParentLevels bounds how far ResolveSchemaPath climbs from the working directory
const maxParentLevels = 2

// ResolveSchemaPath looks for relativePath in the working directory and up to two parent
// directories, so commands and package tests find repository files alike. It returns the
// absolute path of the first match, or "" when there is none.
func ResolveSchemaPath(relativePath string) string {
	prefix := ""
	for level := 0; level <= maxParentLevels; level++ {
		absPath, err := filepath.Abs(filepath.Join(prefix, relativePath))
		if err == nil {
			if _, statErr := os.Stat(absPath); statErr == nil {
				return absPath
			}
		}
		prefix = filepath.Join(prefix, "..")
	}
	return ""
}

// FieldError is one schema violation at a JSON path
type FieldError struct {
	Field   string
	Message string
}

// ValidationError lists every schema violation of a document
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	lines := make([]string, 0, len(ve.Errors)+1)
	lines = append(lines, "validation failed:")
	for i, fe := range ve.Errors {
		lines = append(lines, fmt.Sprintf("  %d. %s: %s", i+1, fe.Field, fe.Message))
	}
	return strings.Join(lines, "\n") + "\n"
}

// SchemaLoadError reports a schema that could not be read or compiled
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// ValidateJSON validates the JSON document at jsonPath against the schema at schemaPath
func ValidateJSON(schemaPath, jsonPath string) error {
	schema, err := readFile("schema", schemaPath)
	if err != nil {
		return err
	}
	document, err := readFile("JSON", jsonPath)
	if err != nil {
		return err
	}
	return validate(schemaPath, gojsonschema.NewBytesLoader(schema), gojsonschema.NewBytesLoader(document))
}

// ValidateJSONString validates JSON content against schema content
func ValidateJSONString(schemaContent, jsonContent string) error {
	return validate("(string schema)",
		gojsonschema.NewStringLoader(schemaContent),
		gojsonschema.NewStringLoader(jsonContent))
}

// ValidateResumeJSON validates resume JSON against the embedded resume schema
func ValidateResumeJSON(data []byte) error {
	return validate(schemafiles.ResumeSchemaFile,
		gojsonschema.NewBytesLoader(schemafiles.ResumeSchema),
		gojsonschema.NewBytesLoader(data))
}

// ValidateResume checks a Resume against the embedded schema and its struct constraints
func ValidateResume(resume *types.Resume) error {
	if resume == nil {
		return fmt.Errorf("resume is nil")
	}
	data, err := json.Marshal(resume)
	if err != nil {
		return fmt.Errorf("failed to marshal resume: %w", err)
	}
	if err := ValidateResumeJSON(data); err != nil {
		return err
	}
	if err := resume.Validate(); err != nil {
		return fmt.Errorf("resume constraint check failed: %w", err)
	}
	return nil
}

func readFile(kind, path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%s file not found: %s", kind, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s file: %w", kind, err)
	}
	return data, nil
}

func validate(schemaPath string, schemaLoader, documentLoader gojsonschema.JSONLoader) error {
	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{Path: schemaPath, Message: "schema validation failed during load", Cause: err}
	}
	if result.Valid() {
		return nil
	}

	violations := result.Errors()
	validationErr := &ValidationError{Errors: make([]FieldError, 0, len(violations))}
	for _, desc := range violations {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{Field: field, Message: desc.Description()})
	}
	return validationErr
}
