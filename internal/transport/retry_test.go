package transport

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noSleep(slept *[]time.Duration) func(context.Context, time.Duration) error {
	return func(_ context.Context, d time.Duration) error {
		*slept = append(*slept, d)
		return nil
	}
}

func TestRetryableStatuses(t *testing.T) {
	assert.True(t, Retryable(429))
	assert.True(t, Retryable(500))
	assert.True(t, Retryable(503))
	assert.False(t, Retryable(200))
	assert.False(t, Retryable(404))
	assert.False(t, Retryable(400))
}

func TestPolicyRetriesThenSucceeds(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		attempts++
		if attempts <= 2 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`ok`))
	}))
	defer server.Close()

	var slept []time.Duration
	policy := Policy{MaxRetries: 2, Backoff: time.Second, Sleep: noSleep(&slept)}

	resp, err := policy.Do(context.Background(), func(ctx context.Context) (*http.Response, error) {
		req, _ := http.NewRequestWithContext(ctx, http.MethodGet, server.URL, nil)
		return http.DefaultClient.Do(req)
	})
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 3, attempts)
	// Linearly increasing backoff: base, then twice the base.
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, slept)
}

func TestPolicyExhaustsBudget(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		attempts++
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	var slept []time.Duration
	policy := Policy{MaxRetries: 2, Backoff: 100 * time.Millisecond, Sleep: noSleep(&slept)}

	resp, err := policy.Do(context.Background(), func(ctx context.Context) (*http.Response, error) {
		req, _ := http.NewRequestWithContext(ctx, http.MethodGet, server.URL, nil)
		return http.DefaultClient.Do(req)
	})
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	// The final retryable response is returned for the caller to classify.
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, 3, attempts)
	assert.Len(t, slept, 2)
}

func TestPolicyDoesNotRetryClientErrors(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		attempts++
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	var slept []time.Duration
	policy := Policy{MaxRetries: 2, Backoff: time.Second, Sleep: noSleep(&slept)}

	resp, err := policy.Do(context.Background(), func(ctx context.Context) (*http.Response, error) {
		req, _ := http.NewRequestWithContext(ctx, http.MethodGet, server.URL, nil)
		return http.DefaultClient.Do(req)
	})
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, 1, attempts)
	assert.Empty(t, slept)
}

func TestClientAppliesKeyAuth(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := New(&KeyAuth{}, "secret-key")
	resp, err := client.Get(context.Background(), server.URL)
	require.NoError(t, err)
	_ = resp.Body.Close()

	assert.Equal(t, "Key secret-key", gotAuth)
}

func TestDecodeResponseError(t *testing.T) {
	body := strings.Repeat("x", 500)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, body)
	}))
	defer server.Close()

	client := New(&NoAuth{}, "")
	resp, err := client.Get(context.Background(), server.URL)
	require.NoError(t, err)

	var target map[string]any
	err = DecodeResponse(resp, &target)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 400")
	// Body is truncated to the diagnostics limit.
	assert.Contains(t, err.Error(), strings.Repeat("x", 200))
	assert.NotContains(t, err.Error(), strings.Repeat("x", 201))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 5))
	assert.Equal(t, "abcde", Truncate("abcdefgh", 5))
}
