// Package transport provides the HTTP plumbing shared by provider clients:
// authentication, retry with linear backoff, and response decoding.
package transport

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/fairwaylabs/coursesync/pkg/constants"
	"github.com/fairwaylabs/coursesync/pkg/errors"
)

// DefaultHTTPTimeout is the default timeout for HTTP requests.
var DefaultHTTPTimeout = constants.DefaultHTTPTimeout

// Client provides HTTP client functionality with authentication and retry.
type Client struct {
	http   *http.Client
	auth   Authenticator
	apiKey string
	retry  Policy
}

// New creates a new transport client with the specified authenticator and
// API key.
func New(auth Authenticator, apiKey string) *Client {
	return &Client{
		http:   &http.Client{Timeout: DefaultHTTPTimeout},
		auth:   auth,
		apiKey: apiKey,
		retry:  DefaultPolicy(),
	}
}

// WithRetry returns a copy of the client using the given retry policy.
func (c *Client) WithRetry(policy Policy) *Client {
	clone := *c
	clone.retry = policy
	return &clone
}

// Get performs an authenticated GET request with retry on 429/5xx.
func (c *Client) Get(ctx context.Context, url string) (*http.Response, error) {
	return c.retry.Do(ctx, func(ctx context.Context) (*http.Response, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, errors.WrapIO("create", "GET "+url, err)
		}
		if c.apiKey != "" {
			c.auth.Apply(req, c.apiKey)
		}
		req.Header.Set("Accept", "application/json")
		return c.http.Do(req)
	})
}

// DecodeResponse decodes a JSON response into the target structure. A non-2xx
// status is returned as an APIError carrying the status code and a truncated
// response body.
func DecodeResponse(resp *http.Response, target any) error {
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.WrapIO("read", "response body", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.NewAPIError(resp.StatusCode, Truncate(string(body), constants.ErrorBodyLimit), resp.Request.URL.Path)
	}

	if err := json.Unmarshal(body, target); err != nil {
		return errors.WrapParse("json", resp.Request.URL.Path, err)
	}
	return nil
}

// Truncate shortens s to at most n bytes for diagnostics.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
