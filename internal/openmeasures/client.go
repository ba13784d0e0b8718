package openmeasures

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultBaseURL is the public content-search endpoint.
const DefaultBaseURL = "https://api.openmeasures.io/content"

// Client issues bounded queries against the content endpoint. It holds
// only immutable configuration and is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Config holds the configuration for the search client.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// NewClient creates a search client with the provided configuration.
func NewClient(cfg Config) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    base,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// RequestURL reconstructs the full outbound URL for a parameter set.
// The server surfaces it in chat responses for auditability.
func (c *Client) RequestURL(p Params) string {
	return c.baseURL + "?" + p.Values().Encode()
}

// Search executes exactly one GET against the content endpoint. No
// retries. Transport errors and non-2xx statuses come back as errors,
// never panics.
func (c *Client) Search(ctx context.Context, p Params) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.RequestURL(p), nil)
	if err != nil {
		return nil, fmt.Errorf("build search request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read search response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("search returned status %s", resp.Status)
	}

	return &Response{Body: body}, nil
}
