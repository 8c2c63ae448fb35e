package inverter

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// maxDocumentSize caps how much of a response body is read (1MB).
// Telemetry documents are a few kilobytes; anything larger is not one.
const maxDocumentSize = 1 << 20

// defaultFetchTimeout bounds one HTTP round trip when no explicit timeout
// is configured. A hung inverter must not stall the poll loop.
const defaultFetchTimeout = 5 * time.Second

// Client fetches telemetry documents from the inverter's HTTP endpoint.
//
// It owns a dedicated http.Client with a connect/read timeout so that a
// single fetch can never outlive its deadline.
//
// Thread Safety: all methods are safe for concurrent use, though the poll
// loop only ever issues one fetch at a time.
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient creates a fetch client for the given endpoint URL.
//
// Parameters:
//   - url: the inverter's XML telemetry endpoint
//   - timeout: per-fetch HTTP timeout; <= 0 uses the 5 second default
func NewClient(url string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// URL returns the configured endpoint URL.
func (c *Client) URL() string {
	return c.url
}

// Fetch performs one HTTP GET against the telemetry endpoint.
//
// Any transport error, timeout, or non-2xx status maps to ErrFetchFailed;
// the poll loop treats all of them as one cycle failure.
//
// Parameters:
//   - ctx: Context for cancellation (the http.Client timeout still applies)
//
// Returns:
//   - []byte: raw document bytes, at most 1MB
//   - error: nil on success, or a wrapped ErrFetchFailed
func (c *Client) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building request: %w", ErrFetchFailed, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrFetchFailed, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %w", ErrFetchFailed, err)
	}

	return data, nil
}
