package submission

import (
	"errors"
	"testing"

	"github.com/jonathan/reddit-wordcloud/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestOk(t *testing.T) {
	res := types.ExtractionResult{Words: []string{"hello"}, ResultID: "abc123"}
	outcome := Ok(res)

	assert.Equal(t, StatusOK, outcome.Status)
	assert.False(t, outcome.IsDegraded())
	assert.NoError(t, outcome.Err())
	assert.Equal(t, res, outcome.Result)
}

func TestDegraded(t *testing.T) {
	reason := &TransportError{Endpoint: "http://x/reddit/words/link", Cause: errors.New("connection refused")}
	outcome := Degraded(reason)

	assert.Equal(t, StatusDegraded, outcome.Status)
	assert.True(t, outcome.IsDegraded())
	assert.Equal(t, types.DegradedResult(), outcome.Result)
	assert.Same(t, reason, outcome.Err())
}

func TestDegraded_NilReason(t *testing.T) {
	outcome := Degraded(nil)
	assert.ErrorIs(t, outcome.Err(), ErrDegraded)
}

func TestErrors(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	transportErr := &TransportError{Endpoint: "http://x", Cause: cause}
	assert.Equal(t, "transport error calling http://x: dial tcp: connection refused", transportErr.Error())
	assert.ErrorIs(t, transportErr, cause)
	assert.ErrorIs(t, transportErr, ErrDegraded)

	protoErr := &ProtocolError{Endpoint: "http://x", StatusCode: 500, Message: "unexpected status 500 Internal Server Error"}
	assert.Equal(t, "protocol error calling http://x: unexpected status 500 Internal Server Error (status 500)", protoErr.Error())
	assert.ErrorIs(t, protoErr, ErrDegraded)

	withCause := &ProtocolError{Endpoint: "http://x", Message: "malformed response body", Cause: errors.New("bad json")}
	assert.Equal(t, "protocol error calling http://x: malformed response body: bad json", withCause.Error())
}
