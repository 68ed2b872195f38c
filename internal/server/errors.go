package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/reddit-wordcloud/internal/linkcheck"
	"github.com/jonathan/reddit-wordcloud/internal/schemas"
	"github.com/jonathan/reddit-wordcloud/internal/submission"
)

// errorBody is the JSON error envelope.
type errorBody struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var linkErr *linkcheck.ValidationError
	var schemaErr *schemas.ValidationError

	switch {
	case err == nil:
		return http.StatusOK
	// Degraded errors may wrap a schema error from the backend body; that is still a backend fault.
	case errors.Is(err, submission.ErrDegraded):
		return http.StatusBadGateway
	case errors.As(err, &linkErr), errors.As(err, &schemaErr):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
