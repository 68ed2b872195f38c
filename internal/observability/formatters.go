// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/reddit-wordcloud/internal/config"
	"github.com/jonathan/reddit-wordcloud/internal/form"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 10
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines by rune so multi-byte words stay valid UTF-8
		if utf8.RuneCountInString(line) > boxWidth-4 {
			line = string([]rune(line)[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintSubmission outputs a human-readable summary of one submit action.
func (p *Printer) PrintSubmission(s form.Submission) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Input:    %s\n", s.Input))

	if s.FieldError != "" {
		sb.WriteString(fmt.Sprintf("Rejected: %s", s.FieldError))
		p.printBox("LINK REJECTED", sb.String())
		return
	}

	sb.WriteString(fmt.Sprintf("Link:     %s\n", s.Link))
	if s.Outcome != nil {
		sb.WriteString(fmt.Sprintf("Status:   %s\n", s.Outcome.Status))
		sb.WriteString(fmt.Sprintf("Result:   %s\n", s.Outcome.Result.ResultID))
		if reason := s.Outcome.Err(); reason != nil {
			sb.WriteString(fmt.Sprintf("Reason:   %v\n", reason))
		}

		words := s.Outcome.Result.Words
		sb.WriteString(fmt.Sprintf("\nWords (%d):\n", len(words)))
		count := min(len(words), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", words[i]))
		}
		if len(words) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(words)-maxItemsToShow))
		}
	}

	if s.Error != "" {
		sb.WriteString(fmt.Sprintf("\nError:    %s\n", s.Error))
	}
	if s.NavigatedTo != "" {
		sb.WriteString(fmt.Sprintf("\nNavigate: %s\n", s.NavigatedTo))
	}

	p.printBox("SUBMISSION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintConfig outputs the effective configuration.
func (p *Printer) PrintConfig(cfg config.Config) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("API URL:  %s\n", cfg.APIURL))
	sb.WriteString(fmt.Sprintf("Env:      %s\n", cfg.Env))
	if cfg.LogLevel != "" {
		sb.WriteString(fmt.Sprintf("Log:      %s\n", cfg.LogLevel))
	}
	sb.WriteString(fmt.Sprintf("Port:     %d\n", cfg.Port))
	sb.WriteString(fmt.Sprintf("Degraded: %s\n", cfg.DegradedPolicy))
	if len(cfg.AllowedOrigins) > 0 {
		sb.WriteString("Origins:\n")
		for _, origin := range cfg.AllowedOrigins {
			sb.WriteString(fmt.Sprintf("  • %s\n", origin))
		}
	}

	p.printBox("CONFIGURATION", strings.TrimSuffix(sb.String(), "\n"))
}
