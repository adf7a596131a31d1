package posgrados

import (
	"context"
	"time"
)

// CacheEntry is one fetched page held by the raw-text cache, keyed by
// source URL. An entry older than the cache TTL is treated as absent
// and refreshed before being served; when the refresh fails the stale
// entry keeps being served (availability over freshness).
type CacheEntry struct {
	URL       string    `json:"url"`
	Text      string    `json:"text"`
	Hash      string    `json:"hash"`
	Status    int       `json:"status"`
	FetchedAt time.Time `json:"fetchedAt"`
}

// Validate returns an error if the entry contains invalid fields.
func (e *CacheEntry) Validate() error {
	if e.URL == "" {
		return Errorf(EINVALID, "cache entry URL required")
	}
	return nil
}

// PageStore persists cache entries keyed by URL.
type PageStore interface {
	// SavePage creates or replaces the entry for the page's URL.
	SavePage(ctx context.Context, entry *CacheEntry) error

	// FindPages retrieves all stored entries.
	FindPages(ctx context.Context) ([]*CacheEntry, error)
}

// ContextCache serves the concatenated raw page text used by the
// raw-cache deployment mode, where the retrieval engine is bypassed and
// the full text grounds the generation call directly.
type ContextCache interface {
	// Context returns the cached text, refreshing it first when older
	// than the TTL. A failed refresh returns the stale text rather than
	// an error whenever any previous text exists.
	Context(ctx context.Context) (string, error)

	// ForceRefresh refreshes unconditionally, bypassing the TTL check.
	ForceRefresh(ctx context.Context) (string, error)

	// Age reports how old the cached text is. Zero when never populated.
	Age() time.Duration

	// Size reports the cached text length in bytes.
	Size() int
}
