// Package golfcourseapi provides a client for the GolfCourseAPI search
// endpoint. Requests are authenticated with the provider's "Key" scheme and
// retried on 429/5xx per the shared transport policy.
package golfcourseapi

import (
	"context"
	"net/url"

	"github.com/fairwaylabs/coursesync/internal/transport"
	"github.com/fairwaylabs/coursesync/pkg/constants"
	"github.com/fairwaylabs/coursesync/pkg/errors"
)

// Client talks to the course data provider.
type Client struct {
	baseURL   string
	transport *transport.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the provider base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

// WithRetryPolicy overrides the retry policy for provider requests.
func WithRetryPolicy(policy transport.Policy) Option {
	return func(c *Client) {
		c.transport = c.transport.WithRetry(policy)
	}
}

// New creates a provider client. The API key is required; validation happens
// at configuration time, not here.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL:   constants.DefaultBaseURL,
		transport: transport.New(&transport.KeyAuth{}, apiKey),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Search queries the provider for courses matching query and returns the
// candidate list. An absent or malformed courses array in a successful
// response decodes as an empty list, not an error.
func (c *Client) Search(ctx context.Context, query string) ([]Course, error) {
	resp, err := c.transport.Get(ctx, c.searchURL(query))
	if err != nil {
		return nil, err
	}

	var result searchResponse
	if err := transport.DecodeResponse(resp, &result); err != nil {
		var parseErr *errors.ParseError
		if errors.As(err, &parseErr) {
			return []Course{}, nil
		}
		return nil, err
	}
	return result.Courses, nil
}

// searchURL builds the /v1/search URL for a query.
func (c *Client) searchURL(query string) string {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		// Fall back to the default root; the request itself will surface
		// any remaining problem.
		u, _ = url.Parse(constants.DefaultBaseURL)
	}
	u.Path = "/v1/search"
	q := url.Values{}
	q.Set("search_query", query)
	u.RawQuery = q.Encode()
	return u.String()
}
