package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client is the generic fetch-JSON-from-URL capability shared by all four
// providers. One outbound GET per call; no retries.
type Client struct {
	http *http.Client
}

// NewClient creates a provider client with the default request timeout.
func NewClient() *Client {
	return &Client{http: &http.Client{Timeout: 10 * time.Second}}
}

// FetchJSON issues one GET and decodes the response body into v. Failures
// come back as *Error tagged with the failure kind.
func (c *Client) FetchJSON(ctx context.Context, op, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &Error{Kind: KindNetwork, Op: op, Err: err}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Kind: KindNetwork, Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{Kind: KindStatus, Op: op, Err: fmt.Errorf("status %d", resp.StatusCode)}
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return &Error{Kind: KindDecode, Op: op, Err: err}
	}
	return nil
}
