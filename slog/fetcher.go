package slog

import (
	"context"
	"log/slog"
	"time"

	posgrados "github.com/marianomartinho/uba-posgrados-chatbot"
)

// Ensure LoggingFetcher implements posgrados.Fetcher.
var _ posgrados.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with debug logging.
type LoggingFetcher struct {
	next   posgrados.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next posgrados.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, status int, err error) {
	defer func(begin time.Time) {
		f.logger.Debug("fetch",
			"url", url,
			"status", status,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
