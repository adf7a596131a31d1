package scrape

import (
	"context"
	"time"

	posgrados "github.com/marianomartinho/uba-posgrados-chatbot"
	"golang.org/x/time/rate"
)

var _ posgrados.Limiter = (*Limiter)(nil)

// Limiter spaces out page fetches using a token bucket with a burst of
// 1, so requests to the catalog site are at least the configured
// interval apart.
type Limiter struct {
	limiter *rate.Limiter
}

// NewLimiter creates a Limiter allowing one request per interval.
func NewLimiter(interval time.Duration) *Limiter {
	return &Limiter{
		limiter: rate.NewLimiter(rate.Every(interval), 1),
	}
}

// Wait blocks until the next request is allowed.
// Returns an error if the context is canceled before the wait completes.
func (l *Limiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}
