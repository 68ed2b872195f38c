package observability

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/jonathan/reddit-wordcloud/internal/config"
	"github.com/jonathan/reddit-wordcloud/internal/form"
	"github.com/jonathan/reddit-wordcloud/internal/submission"
	"github.com/jonathan/reddit-wordcloud/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintSubmission_Success(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	outcome := submission.Ok(types.ExtractionResult{Words: []string{"hello", "world"}, ResultID: "abc123"})
	p.PrintSubmission(form.Submission{
		Input:       "https://reddit.com/r/test/comments/abc",
		Link:        "https://reddit.com/r/test/comments/abc",
		Outcome:     &outcome,
		NavigatedTo: "/abc123",
	})
	output := buf.String()

	assert.Contains(t, output, "SUBMISSION")
	assert.Contains(t, output, "abc123")
	assert.Contains(t, output, "Words (2)")
	assert.Contains(t, output, "hello")
	assert.Contains(t, output, "Navigate: /abc123")
	assert.NotContains(t, output, "Reason:")
}

func TestPrintSubmission_Rejected(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSubmission(form.Submission{Input: "not a url", FieldError: "Link must be valid."})
	output := buf.String()

	assert.Contains(t, output, "LINK REJECTED")
	assert.Contains(t, output, "Link must be valid.")
	assert.NotContains(t, output, "Navigate:")
}

func TestPrintSubmission_Degraded(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	outcome := submission.Degraded(errors.New("connection refused"))
	p.PrintSubmission(form.Submission{
		Input:   "https://reddit.com/r/test/comments/abc",
		Link:    "https://reddit.com/r/test/comments/abc",
		Outcome: &outcome,
		Error:   form.DegradedErrorMessage,
	})
	output := buf.String()

	assert.Contains(t, output, "degraded")
	assert.Contains(t, output, "placeholder")
	assert.Contains(t, output, "connection refused")
	assert.Contains(t, output, "Words (0)")
}

func TestPrintSubmission_TruncatesWordList(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	words := make([]string, 0, maxItemsToShow+5)
	for i := 0; i < maxItemsToShow+5; i++ {
		words = append(words, fmt.Sprintf("word%d", i))
	}
	outcome := submission.Ok(types.ExtractionResult{Words: words, ResultID: "many"})
	p.PrintSubmission(form.Submission{Input: "https://x.y", Link: "https://x.y", Outcome: &outcome})

	assert.Contains(t, buf.String(), "... and 5 more")
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("x", 200))

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), boxWidth)
	}
	assert.Contains(t, buf.String(), "...")
}

func TestPrintBox_TruncatesMultiByteLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("WORDS", "  • "+strings.Repeat("日本語", 30))
	output := buf.String()

	assert.True(t, utf8.ValidString(output))
	for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
		assert.Equal(t, boxWidth, utf8.RuneCountInString(line), "line %q", line)
	}
}

func TestPrintConfig(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintConfig(config.Config{
		APIURL:         "http://0.0.0.0:8080",
		Env:            "LOCAL",
		Port:           3000,
		DegradedPolicy: "navigate",
		AllowedOrigins: []string{"http://localhost:3000"},
	})
	output := buf.String()

	assert.Contains(t, output, "CONFIGURATION")
	assert.Contains(t, output, "http://0.0.0.0:8080")
	assert.Contains(t, output, "3000")
	assert.Contains(t, output, "http://localhost:3000")
}
