package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateExtractionResponse_Valid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "words and link", body: `{"Words":["a","b"],"Link":"xyz"}`},
		{name: "empty words", body: `{"Words":[],"Link":"abc123"}`},
		{name: "extra fields are ignored", body: `{"Words":["hello"],"Link":"abc123","Success":true}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, ValidateExtractionResponse([]byte(tt.body)))
		})
	}
}

func TestValidateExtractionResponse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing link", body: `{"Words":["a"]}`},
		{name: "missing words", body: `{"Link":"xyz"}`},
		{name: "words is a map", body: `{"Words":{"hello":3},"Link":"xyz"}`},
		{name: "word is not a string", body: `{"Words":[1,2],"Link":"xyz"}`},
		{name: "link is a number", body: `{"Words":[],"Link":7}`},
		{name: "empty link", body: `{"Words":["a"],"Link":""}`},
		{name: "dot link", body: `{"Words":["a"],"Link":"."}`},
		{name: "dot dot link", body: `{"Words":["a"],"Link":".."}`},
		{name: "array body", body: `["a","b"]`},
		{name: "not json", body: `<html>oops</html>`},
		{name: "empty body", body: ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateExtractionResponse([]byte(tt.body))
			require.Error(t, err)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.NotEmpty(t, validationErr.Errors)
			assert.Equal(t, "extraction_response.schema.json", validationErr.Schema)
		})
	}
}

func TestValidateExtractionRequest(t *testing.T) {
	assert.NoError(t, ValidateExtractionRequest([]byte(`{"link":"https://reddit.com/r/test/comments/abc"}`)))

	err := ValidateExtractionRequest([]byte(`{"link":""}`))
	assert.Error(t, err)

	err = ValidateExtractionRequest([]byte(`{"link":"https://x.y","extra":1}`))
	assert.Error(t, err)
}

func TestCompiled_BadSchema(t *testing.T) {
	bad := &compiled{name: "bad.schema.json", source: `{not json`}

	err := bad.validate([]byte(`{}`))
	require.Error(t, err)

	var loadErr *SchemaLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "bad.schema.json", loadErr.Schema)

	// The load error is cached, not retried.
	assert.Same(t, err, bad.validate([]byte(`{}`)))
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Schema: "x.schema.json",
		Errors: []FieldError{
			{Field: "(root)", Message: "Link is required"},
			{Field: "Words.0", Message: "Invalid type"},
		},
	}

	msg := err.Error()
	assert.Contains(t, msg, "validation failed against x.schema.json")
	assert.Contains(t, msg, "1. (root): Link is required")
	assert.Contains(t, msg, "2. Words.0: Invalid type")
}
