package scrape

import (
	"context"
	"net/http"
	"time"
)

// FetchFunc is the signature for a fetch function.
type FetchFunc func(ctx context.Context, url string) (string, int, error)

// LogFunc is the signature for a logging function.
type LogFunc func(format string, args ...any)

// DefaultRetryDelay is the pause between attempts after a network error.
const DefaultRetryDelay = 2 * time.Second

// DefaultAttempts is the total number of fetch attempts per page.
const DefaultAttempts = 3

// FetchWithRetry fetches a URL with up to 3 attempts. A network error
// pauses 2s before the next attempt; a non-200 response retries
// immediately, except 404 which is terminal since a missing catalog
// page never appears on retry. The logger, if provided, is called per
// retry.
func FetchWithRetry(ctx context.Context, url string, fetch FetchFunc, logger LogFunc) (string, int, error) {
	return FetchWithRetryDelay(ctx, url, fetch, logger, DefaultAttempts, DefaultRetryDelay)
}

// FetchWithRetryDelay is like FetchWithRetry but with configurable
// attempts and delay. This is useful for testing without real waits.
func FetchWithRetryDelay(ctx context.Context, url string, fetch FetchFunc, logger LogFunc, attempts int, delay time.Duration) (string, int, error) {
	if attempts < 1 {
		attempts = 1
	}

	var (
		lastStatus int
		lastErr    error
	)
	for attempt := 0; attempt < attempts; attempt++ {
		html, status, err := fetch(ctx, url)
		if err == nil && status == http.StatusOK {
			return html, status, nil
		}
		if err == nil && status == http.StatusNotFound {
			return "", status, nil
		}
		lastStatus = status
		lastErr = err

		if attempt >= attempts-1 {
			break
		}

		if logger != nil {
			logger("  retry %s (attempt %d): status=%d err=%v", url, attempt+2, status, err)
		}

		// Pause only after network errors; a server that answered is
		// retried immediately.
		if err == nil {
			continue
		}

		select {
		case <-ctx.Done():
			return "", 0, ctx.Err()
		case <-time.After(delay):
		}
	}

	return "", lastStatus, lastErr
}
