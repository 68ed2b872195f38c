// Package types provides type definitions for structured data used throughout the reddit-wordcloud system.
package types

import "net/url"

// SentinelResultID is the result identifier used when extraction failed and
// no real identifier is available.
const SentinelResultID = "placeholder"

// ThreadLink is a user-supplied URL identifying the discussion thread to analyze.
// Values should come from linkcheck.Validate; nothing else checks the format.
type ThreadLink string

// String returns the link as a plain string.
func (l ThreadLink) String() string {
	return string(l)
}

// ExtractionRequest is the payload sent to the word extraction backend.
type ExtractionRequest struct {
	Link ThreadLink `json:"link" validate:"required,threadlink"`
}

// ExtractionResponse is the success body returned by the backend.
// Field names match the backend's wire format.
type ExtractionResponse struct {
	Words []string `json:"Words"`
	Link  string   `json:"Link"`
}

// ToResult converts the wire response into an ExtractionResult.
func (r *ExtractionResponse) ToResult() ExtractionResult {
	words := r.Words
	if words == nil {
		words = []string{}
	}
	return ExtractionResult{
		Words:    words,
		ResultID: r.Link,
	}
}

// ExtractionResult describes the words extracted from a thread and the
// identifier of the generated word cloud.
type ExtractionResult struct {
	Words    []string `json:"words"`
	ResultID string   `json:"result_id"`
}

// DegradedResult returns the empty result substituted when extraction fails.
func DegradedResult() ExtractionResult {
	return ExtractionResult{
		Words:    []string{},
		ResultID: SentinelResultID,
	}
}

// IsPlaceholder reports whether the result carries the sentinel identifier.
func (r ExtractionResult) IsPlaceholder() bool {
	return r.ResultID == SentinelResultID
}

// Path returns the client-side navigation target for the result.
func (r ExtractionResult) Path() string {
	return "/" + url.PathEscape(r.ResultID)
}
