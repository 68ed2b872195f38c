// Package form glues link validation and submission to a user's submit action.
package form

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/reddit-wordcloud/internal/linkcheck"
	"github.com/jonathan/reddit-wordcloud/internal/logging"
	"github.com/jonathan/reddit-wordcloud/internal/submission"
	"github.com/jonathan/reddit-wordcloud/internal/types"
	"go.uber.org/zap"
)

// DegradedErrorMessage is shown instead of navigating when the ShowError policy applies.
const DegradedErrorMessage = "We couldn't build a word cloud for that thread. Please try again."

// Submitter performs the backend round-trip for a validated link.
type Submitter interface {
	Submit(ctx context.Context, link types.ThreadLink) submission.Outcome
}

// Navigator moves the user to a client-side path.
type Navigator interface {
	Push(path string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(path string)

// Push calls f(path).
func (f NavigatorFunc) Push(path string) {
	f(path)
}

// PathRecorder is a Navigator that records every pushed path.
type PathRecorder struct {
	Paths []string
}

// Push records path.
func (r *PathRecorder) Push(path string) {
	r.Paths = append(r.Paths, path)
}

// Last returns the most recent path, or "" if nothing was pushed.
func (r *PathRecorder) Last() string {
	if len(r.Paths) == 0 {
		return ""
	}
	return r.Paths[len(r.Paths)-1]
}

// DegradedPolicy decides what happens when the backend call degrades.
type DegradedPolicy string

const (
	// NavigateAnyway routes to the placeholder result page, as if the call succeeded.
	NavigateAnyway DegradedPolicy = "navigate"
	// ShowError stays on the form and reports DegradedErrorMessage.
	ShowError DegradedPolicy = "error"
)

// ParsePolicy parses "navigate" or "error". An empty string means NavigateAnyway.
func ParsePolicy(s string) (DegradedPolicy, error) {
	switch DegradedPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", NavigateAnyway:
		return NavigateAnyway, nil
	case ShowError:
		return ShowError, nil
	default:
		return "", fmt.Errorf("unknown degraded policy %q (want navigate or error)", s)
	}
}

// Submission is the result of one submit action.
type Submission struct {
	Input       string
	Link        types.ThreadLink
	FieldError  string
	Error       string
	Outcome     *submission.Outcome
	NavigatedTo string
}

// Accepted reports whether the input passed validation and was sent.
func (s Submission) Accepted() bool {
	return s.FieldError == "" && s.Outcome != nil
}

// Form runs validate -> submit -> navigate.
type Form struct {
	submitter Submitter
	validator *linkcheck.Validator
	policy    DegradedPolicy
	logger    *zap.Logger
}

// Option configures a Form.
type Option func(*Form)

// WithPolicy sets the degraded policy.
func WithPolicy(p DegradedPolicy) Option {
	return func(f *Form) {
		if p != "" {
			f.policy = p
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(f *Form) {
		f.logger = logging.OrNop(l)
	}
}

// New creates a Form. The default policy is NavigateAnyway.
func New(s Submitter, opts ...Option) *Form {
	f := &Form{
		submitter: s,
		validator: linkcheck.New(),
		policy:    NavigateAnyway,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Policy returns the configured degraded policy.
func (f *Form) Policy() DegradedPolicy {
	return f.policy
}

// Submit handles one submit action. Invalid input never reaches the submitter and
// never navigates. Valid input is submitted once and awaited before navigation.
func (f *Form) Submit(ctx context.Context, raw string, nav Navigator) Submission {
	result := Submission{Input: raw}

	link, err := f.validator.Validate(raw)
	if err != nil {
		result.FieldError = linkcheck.InvalidLinkMessage
		f.logger.Debug("link rejected", zap.String("input", raw), zap.Error(err))
		return result
	}
	result.Link = link

	outcome := f.submitter.Submit(ctx, link)
	result.Outcome = &outcome

	if outcome.IsDegraded() && f.policy == ShowError {
		result.Error = DegradedErrorMessage
		f.logger.Warn("extraction degraded, staying on form",
			zap.String("link", link.String()),
			zap.Error(outcome.Err()),
		)
		return result
	}

	path := outcome.Result.Path()
	if nav != nil {
		nav.Push(path)
	}
	result.NavigatedTo = path
	f.logger.Info("navigating to result",
		zap.String("link", link.String()),
		zap.String("path", path),
		zap.Bool("degraded", outcome.IsDegraded()),
	)
	return result
}
