package mock

import (
	"context"
	"time"

	posgrados "github.com/marianomartinho/uba-posgrados-chatbot"
)

var _ posgrados.PageStore = (*PageStore)(nil)

// PageStore is a mock implementation of posgrados.PageStore.
type PageStore struct {
	SavePageFn  func(ctx context.Context, entry *posgrados.CacheEntry) error
	FindPagesFn func(ctx context.Context) ([]*posgrados.CacheEntry, error)
}

func (s *PageStore) SavePage(ctx context.Context, entry *posgrados.CacheEntry) error {
	return s.SavePageFn(ctx, entry)
}

func (s *PageStore) FindPages(ctx context.Context) ([]*posgrados.CacheEntry, error) {
	return s.FindPagesFn(ctx)
}

var _ posgrados.ContextCache = (*ContextCache)(nil)

// ContextCache is a mock implementation of posgrados.ContextCache.
type ContextCache struct {
	ContextFn      func(ctx context.Context) (string, error)
	ForceRefreshFn func(ctx context.Context) (string, error)
	AgeFn          func() time.Duration
	SizeFn         func() int
}

func (c *ContextCache) Context(ctx context.Context) (string, error) {
	return c.ContextFn(ctx)
}

func (c *ContextCache) ForceRefresh(ctx context.Context) (string, error) {
	return c.ForceRefreshFn(ctx)
}

func (c *ContextCache) Age() time.Duration {
	if c.AgeFn == nil {
		return 0
	}
	return c.AgeFn()
}

func (c *ContextCache) Size() int {
	if c.SizeFn == nil {
		return 0
	}
	return c.SizeFn()
}
