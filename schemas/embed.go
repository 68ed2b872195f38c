// Package schemas holds the JSON Schemas for the backend wire format.
package schemas

import _ "embed"

// ExtractionRequest is the schema for the body sent to the backend.
//
//go:embed extraction_request.schema.json
var ExtractionRequest string

// ExtractionResponse is the schema for the backend's success body.
//
//go:embed extraction_response.schema.json
var ExtractionResponse string
