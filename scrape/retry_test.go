package scrape_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/marianomartinho/uba-posgrados-chatbot/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchWithRetry(t *testing.T) {
	t.Parallel()

	t.Run("returns first successful response", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(ctx context.Context, url string) (string, int, error) {
			calls++
			return "<html>ok</html>", http.StatusOK, nil
		}

		html, status, err := scrape.FetchWithRetryDelay(context.Background(), "http://x", fetch, nil, 3, 0)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "<html>ok</html>", html)
		assert.Equal(t, 1, calls)
	})

	t.Run("retries network errors up to the attempt limit", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(ctx context.Context, url string) (string, int, error) {
			calls++
			return "", 0, errors.New("connection reset")
		}

		_, _, err := scrape.FetchWithRetryDelay(context.Background(), "http://x", fetch, nil, 3, 0)
		assert.Error(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("recovers when a retry succeeds", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(ctx context.Context, url string) (string, int, error) {
			calls++
			if calls < 3 {
				return "", 0, errors.New("timeout")
			}
			return "body", http.StatusOK, nil
		}

		html, _, err := scrape.FetchWithRetryDelay(context.Background(), "http://x", fetch, nil, 3, 0)
		require.NoError(t, err)
		assert.Equal(t, "body", html)
		assert.Equal(t, 3, calls)
	})

	t.Run("404 is terminal without retries", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(ctx context.Context, url string) (string, int, error) {
			calls++
			return "", http.StatusNotFound, nil
		}

		html, status, err := scrape.FetchWithRetryDelay(context.Background(), "http://x", fetch, nil, 3, 0)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, status)
		assert.Empty(t, html)
		assert.Equal(t, 1, calls)
	})

	t.Run("other non-200 statuses are retried", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(ctx context.Context, url string) (string, int, error) {
			calls++
			return "", http.StatusServiceUnavailable, nil
		}

		_, status, err := scrape.FetchWithRetryDelay(context.Background(), "http://x", fetch, nil, 3, 0)
		require.NoError(t, err)
		assert.Equal(t, http.StatusServiceUnavailable, status)
		assert.Equal(t, 3, calls)
	})

	t.Run("logger is called on retries", func(t *testing.T) {
		t.Parallel()

		logged := 0
		logger := func(format string, args ...any) { logged++ }
		fetch := func(ctx context.Context, url string) (string, int, error) {
			return "", 0, errors.New("boom")
		}

		_, _, err := scrape.FetchWithRetryDelay(context.Background(), "http://x", fetch, logger, 3, 0)
		assert.Error(t, err)
		assert.Equal(t, 2, logged)
	})

	t.Run("canceled context stops retrying", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		fetch := func(ctx context.Context, url string) (string, int, error) {
			cancel()
			return "", 0, errors.New("boom")
		}

		_, _, err := scrape.FetchWithRetry(ctx, "http://x", fetch, nil)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
