package transport

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fairwaylabs/coursesync/pkg/constants"
	"github.com/fairwaylabs/coursesync/pkg/errors"
)

// Policy controls retry behavior for transient provider failures. The
// backoff between attempts grows linearly: backoff * attempt number.
type Policy struct {
	// MaxRetries is the number of retries after the initial attempt.
	MaxRetries int

	// Backoff is the base pause between attempts.
	Backoff time.Duration

	// Sleep is the pause implementation. Defaults to a context-aware
	// time.Sleep; tests swap it out to observe backoff behavior.
	Sleep func(ctx context.Context, d time.Duration) error
}

// DefaultPolicy returns the retry policy used for provider requests.
func DefaultPolicy() Policy {
	return Policy{
		MaxRetries: constants.DefaultMaxRetries,
		Backoff:    constants.DefaultRetryBackoff,
	}
}

// Retryable reports whether an HTTP status is worth retrying.
func Retryable(status int) bool {
	return status == http.StatusTooManyRequests || status >= 500
}

// Do executes op until it succeeds, fails with a non-retryable status, or
// exhausts the retry budget. Only 429 and 5xx responses are retried;
// transport-level errors surface immediately. The final response is returned
// as-is, retryable or not; callers decide how to treat a non-2xx status.
func (p Policy) Do(ctx context.Context, op func(ctx context.Context) (*http.Response, error)) (*http.Response, error) {
	sleep := p.Sleep
	if sleep == nil {
		sleep = sleepContext
	}

	var resp *http.Response
	for attempt := 0; ; attempt++ {
		var err error
		resp, err = op(ctx)
		if err != nil {
			return nil, err
		}
		if !Retryable(resp.StatusCode) || attempt >= p.MaxRetries {
			return resp, nil
		}

		// Drain and close the body so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()

		if err := sleep(ctx, p.Backoff*time.Duration(attempt+1)); err != nil {
			return nil, err
		}
	}
}

// sleepContext pauses for d or until ctx is done.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return errors.ErrCanceled
	case <-timer.C:
		return nil
	}
}

// SleepContext pauses for d or until ctx is done. Exported for callers that
// need the same pacing primitive outside a retry loop.
func SleepContext(ctx context.Context, d time.Duration) error {
	return sleepContext(ctx, d)
}
