// Package submission sends validated thread links to the word extraction backend.
// Submit never fails: every transport or protocol problem becomes a degraded Outcome.
package submission

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jonathan/reddit-wordcloud/internal/linkcheck"
	"github.com/jonathan/reddit-wordcloud/internal/logging"
	"github.com/jonathan/reddit-wordcloud/internal/schemas"
	"github.com/jonathan/reddit-wordcloud/internal/types"
	"go.uber.org/zap"
)

// ExtractPath is appended to the base address for word extraction.
const ExtractPath = "/reddit/words/link"

// HealthPath is the backend's health endpoint.
const HealthPath = "/health"

// DefaultUserAgent is the user agent string for backend requests.
const DefaultUserAgent = "redditwordcloud/1.0"

// maxResponseBytes caps how much of a response body is read.
const maxResponseBytes = 10 << 20

// Client performs the single round-trip to the backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
	userAgent  string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logging.OrNop(l)
	}
}

// WithUserAgent overrides DefaultUserAgent.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// New creates a Client for the backend at baseURL.
// The default http.Client has no timeout; a single attempt is made per call.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		logger:     zap.NewNop(),
		userAgent:  DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the backend base address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Endpoint returns the full extraction URL.
func (c *Client) Endpoint() string {
	return c.baseURL + ExtractPath
}

// Submit posts link to the backend and returns its result.
// Any failure, including a panic below this call, yields Degraded with the cause as Reason.
func (c *Client) Submit(ctx context.Context, link types.ThreadLink) (out Outcome) {
	endpoint := c.Endpoint()
	log := c.logger.With(zap.String("endpoint", endpoint), zap.String("link", link.String()))

	defer func() {
		if r := recover(); r != nil {
			out = c.degrade(log, &TransportError{Endpoint: endpoint, Cause: fmt.Errorf("panic: %v", r)})
		}
	}()

	req := types.ExtractionRequest{Link: link}
	if err := linkcheck.Struct(req); err != nil {
		return c.degrade(log, &ProtocolError{Endpoint: endpoint, Message: "refusing to send invalid link", Cause: err})
	}

	body, err := json.Marshal(req)
	if err != nil {
		return c.degrade(log, &ProtocolError{Endpoint: endpoint, Message: "failed to encode request", Cause: err})
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return c.degrade(log, &ProtocolError{Endpoint: endpoint, Message: "failed to create request", Cause: err})
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return c.degrade(log, &TransportError{Endpoint: endpoint, Cause: err})
	}
	defer func() { _ = resp.Body.Close() }()

	log.Debug("backend responded",
		zap.Int("status", resp.StatusCode),
		zap.String("status_text", http.StatusText(resp.StatusCode)),
		zap.Any("headers", resp.Header),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.degrade(log, &ProtocolError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Message:    "unexpected status " + resp.Status,
		})
	}

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return c.degrade(log, &TransportError{Endpoint: endpoint, Cause: fmt.Errorf("failed to read response body: %w", err)})
	}

	if err := schemas.ValidateExtractionResponse(respBody); err != nil {
		return c.degrade(log, &ProtocolError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Message:    "malformed response body",
			Cause:      err,
		})
	}

	var extraction types.ExtractionResponse
	if err := json.Unmarshal(respBody, &extraction); err != nil {
		return c.degrade(log, &ProtocolError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Message:    "failed to decode response body",
			Cause:      err,
		})
	}

	result := extraction.ToResult()
	log.Debug("extraction succeeded",
		zap.String("result_id", result.ResultID),
		zap.Int("words", len(result.Words)),
	)
	return Ok(result)
}

func (c *Client) degrade(log *zap.Logger, reason error) Outcome {
	log.Error("extraction failed, using placeholder result",
		zap.Error(reason),
		zap.String("result_id", types.SentinelResultID),
	)
	return Degraded(reason)
}

// Health checks the backend's health endpoint. Unlike Submit it returns an error.
func (c *Client) Health(ctx context.Context) error {
	endpoint := c.baseURL + HealthPath

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &ProtocolError{Endpoint: endpoint, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Endpoint: endpoint, Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &ProtocolError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Message:    "unhealthy status " + resp.Status,
		}
	}

	c.logger.Debug("backend healthy", zap.String("endpoint", endpoint), zap.Int("status", resp.StatusCode))
	return nil
}
