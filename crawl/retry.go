// Package crawl downloads the pages of a documentation site one at a time.
package crawl

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/navdoc"
)

// FetchFunc is the signature for a fetch function.
type FetchFunc func(ctx context.Context, url string) (string, error)

// LogFunc is the signature for a logging function.
type LogFunc func(format string, args ...any)

// DefaultRetryDelays returns the pause before each retry: a single
// 30 second throttle.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{navdoc.DefaultRetryDelay}
}

// FetchWithRetry fetches a URL, retrying once after a 30 second throttle
// when the server answers with anything other than 200.
func FetchWithRetry(ctx context.Context, url string, fetch FetchFunc, logger LogFunc) (string, error) {
	return FetchWithRetryDelays(ctx, url, fetch, logger, DefaultRetryDelays())
}

// FetchWithRetryDelays is like FetchWithRetry but allows configurable delays,
// one retry per delay. Only EUNAVAILABLE errors are retried; any other error
// is returned immediately. When every attempt fails the returned error keeps
// the EUNAVAILABLE code.
func FetchWithRetryDelays(ctx context.Context, url string, fetch FetchFunc, logger LogFunc, delays []time.Duration) (string, error) {
	maxAttempts := len(delays) + 1 // 1 initial + N retries

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		body, err := fetch(ctx, url)
		if err == nil {
			return body, nil
		}
		if navdoc.ErrorCode(err) != navdoc.EUNAVAILABLE {
			return "", err
		}
		lastErr = err

		// Don't retry after the last attempt
		if attempt >= maxAttempts-1 {
			break
		}

		if logger != nil {
			logger("Throttling... %s (retry in %s)", url, delays[attempt])
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return "", fmt.Errorf("failed page extraction after %d attempts & throttle: %s: %w", maxAttempts, url, lastErr)
}
