package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/Code4GovTech/FAQ-Discord-Bot/internal/logging"
	"github.com/Code4GovTech/FAQ-Discord-Bot/pkg/domain"
	"github.com/Code4GovTech/FAQ-Discord-Bot/pkg/ports"
)

// DefaultMaxBodySize bounds how much of a response body is read (1 MiB).
const DefaultMaxBodySize int64 = 1 << 20

// Client calls the decision API. A single instance is shared by all interactions.
type Client struct {
	endpoint    string
	httpClient  *http.Client
	logger      *slog.Logger
	maxBodySize int64
}

// Ensure Client implements ports.Fetcher
var _ ports.Fetcher = (*Client)(nil)

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient sets the transport. Its Timeout, if any, is the only timeout applied.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(cl *Client) {
		cl.logger = logger
	}
}

// WithMaxBodySize overrides DefaultMaxBodySize.
func WithMaxBodySize(n int64) Option {
	return func(cl *Client) {
		cl.maxBodySize = n
	}
}

// NewClient creates a client posting to endpoint.
func NewClient(endpoint string, opts ...Option) *Client {
	c := &Client{
		endpoint:    endpoint,
		httpClient:  http.DefaultClient,
		logger:      logging.NewNop(),
		maxBodySize: DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type request struct {
	Choice string `json:"choice"`
}

// Fetch posts {"choice": key} once and parses the answer.
// Errors wrap domain.ErrTransport or domain.ErrMalformedResponse.
func (c *Client) Fetch(ctx context.Context, key string) (domain.Response, error) {
	if key == "" {
		return domain.Response{}, domain.ErrInvalidKey
	}

	payload, err := json.Marshal(request{Choice: key})
	if err != nil {
		return domain.Response{}, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return domain.Response{}, &domain.TransportError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("decision api unreachable", "key", key, "err", err)
		return domain.Response{}, &domain.TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, c.maxBodySize))
		c.logger.Debug("decision api returned non-2xx", "key", key, "status", resp.StatusCode)
		return domain.Response{}, &domain.TransportError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBodySize+1))
	if err != nil {
		return domain.Response{}, &domain.TransportError{StatusCode: resp.StatusCode, Err: err}
	}
	if int64(len(body)) > c.maxBodySize {
		return domain.Response{}, domain.Malformed("body exceeds %d bytes", c.maxBodySize)
	}

	return ParseResponse(key, body)
}
