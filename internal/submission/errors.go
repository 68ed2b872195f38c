package submission

import (
	"errors"
	"fmt"
)

// ErrDegraded matches every error that caused a degraded outcome.
var ErrDegraded = errors.New("extraction degraded")

// TransportError represents a failure to complete the HTTP exchange:
// DNS, connect, TLS, timeout or reading the body.
type TransportError struct {
	Endpoint string
	Cause    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error calling %s: %v", e.Endpoint, e.Cause)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// Is makes TransportError match ErrDegraded.
func (e *TransportError) Is(target error) bool {
	return target == ErrDegraded
}

// ProtocolError represents a completed exchange whose result is unusable:
// a non-2xx status, a malformed body or a request that could not be built.
type ProtocolError struct {
	Endpoint   string
	StatusCode int
	Message    string
	Cause      error
}

func (e *ProtocolError) Error() string {
	msg := fmt.Sprintf("protocol error calling %s: %s", e.Endpoint, e.Message)
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *ProtocolError) Unwrap() error {
	return e.Cause
}

// Is makes ProtocolError match ErrDegraded.
func (e *ProtocolError) Is(target error) bool {
	return target == ErrDegraded
}
