package submission

import "github.com/jonathan/reddit-wordcloud/internal/types"

// Status tags an Outcome.
type Status string

const (
	// StatusOK means Result is the backend's genuine payload.
	StatusOK Status = "ok"
	// StatusDegraded means the call failed and Result is types.DegradedResult().
	StatusDegraded Status = "degraded"
)

// Outcome is the result of one submission. It is always well-formed:
// failures are carried as data rather than returned as errors.
type Outcome struct {
	Status Status
	Result types.ExtractionResult
	Reason error
}

// Ok wraps a successful result.
func Ok(res types.ExtractionResult) Outcome {
	return Outcome{Status: StatusOK, Result: res}
}

// Degraded returns the placeholder outcome for a failed call.
func Degraded(reason error) Outcome {
	return Outcome{
		Status: StatusDegraded,
		Result: types.DegradedResult(),
		Reason: reason,
	}
}

// IsDegraded reports whether the outcome is a degraded placeholder.
func (o Outcome) IsDegraded() bool {
	return o.Status == StatusDegraded
}

// Err returns the degradation reason, or nil for a successful outcome.
func (o Outcome) Err() error {
	if !o.IsDegraded() {
		return nil
	}
	if o.Reason == nil {
		return ErrDegraded
	}
	return o.Reason
}
