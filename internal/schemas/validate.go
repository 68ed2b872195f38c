// Package schemas provides JSON Schema validation for the backend wire format.
package schemas

import (
	"fmt"
	"strings"
	"sync"

	"github.com/jonathan/reddit-wordcloud/schemas"
	"github.com/xeipuuv/gojsonschema"
)

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

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Schema  string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Schema, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Schema, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed")
	if ve.Schema != "" {
		sb.WriteString(" against ")
		sb.WriteString(ve.Schema)
	}
	sb.WriteString(":\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// compiled caches a parsed schema so each document is only checked, not re-parsed.
type compiled struct {
	name   string
	source string

	once   sync.Once
	schema *gojsonschema.Schema
	err    error
}

func (c *compiled) load() (*gojsonschema.Schema, error) {
	c.once.Do(func() {
		c.schema, c.err = gojsonschema.NewSchema(gojsonschema.NewStringLoader(c.source))
		if c.err != nil {
			c.err = &SchemaLoadError{Schema: c.name, Message: "invalid schema", Cause: c.err}
		}
	})
	return c.schema, c.err
}

func (c *compiled) validate(document []byte) error {
	schema, err := c.load()
	if err != nil {
		return err
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(document))
	if err != nil {
		// The document itself could not be parsed as JSON.
		return &ValidationError{
			Schema: c.name,
			Errors: []FieldError{{Field: "(root)", Message: err.Error()}},
		}
	}
	return toValidationError(c.name, result)
}

var (
	extractionRequest = &compiled{
		name:   "extraction_request.schema.json",
		source: schemas.ExtractionRequest,
	}
	extractionResponse = &compiled{
		name:   "extraction_response.schema.json",
		source: schemas.ExtractionResponse,
	}
)

// ValidateExtractionRequest checks a request body against the embedded request schema.
func ValidateExtractionRequest(body []byte) error {
	return extractionRequest.validate(body)
}

// ValidateExtractionResponse checks a backend body against the embedded response schema.
func ValidateExtractionResponse(body []byte) error {
	return extractionResponse.validate(body)
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
