package mock

import (
	"context"

	posgrados "github.com/marianomartinho/uba-posgrados-chatbot"
)

var _ posgrados.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of posgrados.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, int, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, int, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}

var _ posgrados.Limiter = (*Limiter)(nil)

// Limiter is a mock implementation of posgrados.Limiter.
type Limiter struct {
	WaitFn func(ctx context.Context) error
}

func (l *Limiter) Wait(ctx context.Context) error {
	if l.WaitFn == nil {
		return nil
	}
	return l.WaitFn(ctx)
}
