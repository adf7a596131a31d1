// Package cache implements the raw-text page cache used by the
// raw-context deployment mode: a fixed URL set is fetched, flattened,
// concatenated, and served until the TTL expires.
package cache

import (
	"context"
	"encoding/hex"
	"strings"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	posgrados "github.com/marianomartinho/uba-posgrados-chatbot"
	"github.com/marianomartinho/uba-posgrados-chatbot/scrape"
	"golang.org/x/sync/singleflight"
)

// DefaultTTL is how long a snapshot is served before being refreshed.
const DefaultTTL = 24 * time.Hour

// DefaultRefreshBudget bounds one whole refresh pass over the URL set,
// independent of the per-request timeouts.
const DefaultRefreshBudget = 30 * time.Second

var _ posgrados.ContextCache = (*Cache)(nil)

// Cache holds the concatenated text of a fixed URL set and refreshes
// it when stale. Refreshing is best-effort per URL: a page that fails
// keeps its previous entry, and a refresh where every page fails
// leaves the whole stale snapshot in place.
type Cache struct {
	fetcher   posgrados.Fetcher
	flattener posgrados.Flattener
	limiter   posgrados.Limiter
	store     posgrados.PageStore
	urls      []string
	ttl       time.Duration
	budget    time.Duration
	clock     func() time.Time
	attempts  int
	delay     time.Duration

	group singleflight.Group

	mu        sync.RWMutex
	text      string
	fetchedAt time.Time
	entries   map[string]*posgrados.CacheEntry
}

// Option configures a Cache.
type Option func(*Cache)

// WithTTL overrides the snapshot TTL. Defaults to DefaultTTL (24h).
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		c.ttl = ttl
	}
}

// WithLimiter spaces out the per-URL fetches during a refresh.
func WithLimiter(l posgrados.Limiter) Option {
	return func(c *Cache) {
		c.limiter = l
	}
}

// WithStore persists fetched pages so a snapshot survives restarts.
func WithStore(s posgrados.PageStore) Option {
	return func(c *Cache) {
		c.store = s
	}
}

// WithClock overrides the time source. This is useful for testing
// TTL expiry without real waits.
func WithClock(clock func() time.Time) Option {
	return func(c *Cache) {
		c.clock = clock
	}
}

// WithRefreshBudget overrides the total time allowed for one refresh
// pass. Defaults to DefaultRefreshBudget (30s).
func WithRefreshBudget(d time.Duration) Option {
	return func(c *Cache) {
		c.budget = d
	}
}

// WithRetry overrides the per-URL fetch retry policy.
func WithRetry(attempts int, delay time.Duration) Option {
	return func(c *Cache) {
		c.attempts = attempts
		c.delay = delay
	}
}

// New creates a Cache over the given URL set. The cache starts empty;
// the first Context call populates it.
func New(fetcher posgrados.Fetcher, flattener posgrados.Flattener, urls []string, opts ...Option) *Cache {
	c := &Cache{
		fetcher:   fetcher,
		flattener: flattener,
		urls:      urls,
		ttl:       DefaultTTL,
		budget:    DefaultRefreshBudget,
		clock:     time.Now,
		attempts:  scrape.DefaultAttempts,
		delay:     scrape.DefaultRetryDelay,
		entries:   make(map[string]*posgrados.CacheEntry),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load seeds the cache from the page store, so a fresh process serves
// the persisted snapshot instead of refetching.
func (c *Cache) Load(ctx context.Context) error {
	if c.store == nil {
		return nil
	}

	pages, err := c.store.FindPages(ctx)
	if err != nil {
		return err
	}
	if len(pages) == 0 {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	oldest := time.Time{}
	for _, p := range pages {
		c.entries[p.URL] = p
		if oldest.IsZero() || p.FetchedAt.Before(oldest) {
			oldest = p.FetchedAt
		}
	}
	c.text = c.assembleLocked()
	c.fetchedAt = oldest
	return nil
}

// Context returns the cached text, refreshing it first when older than
// the TTL. When the refresh fails and a previous snapshot exists, the
// stale text is returned instead of an error.
func (c *Cache) Context(ctx context.Context) (string, error) {
	c.mu.RLock()
	text := c.text
	fresh := c.text != "" && c.clock().Sub(c.fetchedAt) < c.ttl
	c.mu.RUnlock()

	if fresh {
		return text, nil
	}

	refreshed, err := c.refresh(ctx)
	if err != nil {
		if text != "" {
			return text, nil
		}
		return "", err
	}
	return refreshed, nil
}

// ForceRefresh refreshes unconditionally, bypassing the TTL check.
func (c *Cache) ForceRefresh(ctx context.Context) (string, error) {
	return c.refresh(ctx)
}

// Age reports how old the cached text is. Zero when never populated.
func (c *Cache) Age() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.fetchedAt.IsZero() {
		return 0
	}
	return c.clock().Sub(c.fetchedAt)
}

// Size reports the cached text length in bytes.
func (c *Cache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.text)
}

// refresh fetches every URL and replaces the snapshot. Concurrent
// callers share a single refresh via singleflight.
func (c *Cache) refresh(ctx context.Context) (string, error) {
	v, err, _ := c.group.Do("refresh", func() (any, error) {
		return c.doRefresh(ctx)
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (c *Cache) doRefresh(ctx context.Context) (string, error) {
	now := c.clock()
	fetched := make(map[string]*posgrados.CacheEntry, len(c.urls))
	succeeded := 0

	// One refresh pass shares a total budget across all URLs, so a slow
	// site cannot stall the caller for len(urls) * per-request timeout.
	passCtx, cancel := context.WithTimeout(ctx, c.budget)
	defer cancel()

	for _, url := range c.urls {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if passCtx.Err() != nil {
			// Budget spent. Keep whatever was fetched so far; the URLs
			// not reached keep their stale entries.
			break
		}
		if c.limiter != nil {
			if err := c.limiter.Wait(passCtx); err != nil {
				break
			}
		}

		html, status, err := scrape.FetchWithRetryDelay(passCtx, url, c.fetcher.Fetch, nil, c.attempts, c.delay)
		if err != nil || html == "" {
			fetched[url] = &posgrados.CacheEntry{URL: url, Status: status}
			continue
		}

		page, err := c.flattener.Flatten(html)
		if err != nil {
			fetched[url] = &posgrados.CacheEntry{URL: url, Status: status}
			continue
		}

		text := page.Text
		if page.Title != "" {
			text = page.Title + "\n" + text
		}
		fetched[url] = &posgrados.CacheEntry{
			URL:       url,
			Text:      text,
			Hash:      hashContent(text),
			Status:    status,
			FetchedAt: now,
		}
		succeeded++
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if succeeded == 0 {
		// Record the failure statuses on the stale entries but keep
		// serving the previous snapshot.
		for url, entry := range fetched {
			if prev, ok := c.entries[url]; ok {
				prev.Status = entry.Status
			}
		}
		if c.text != "" {
			return c.text, nil
		}
		return "", posgrados.Errorf(posgrados.EUNAVAILABLE, "no catalog page could be fetched")
	}

	for url, entry := range fetched {
		if entry.Text == "" {
			if prev, ok := c.entries[url]; ok {
				prev.Status = entry.Status
				continue
			}
		}
		c.entries[url] = entry
	}
	c.text = c.assembleLocked()
	c.fetchedAt = now

	if c.store != nil {
		for _, entry := range c.entries {
			if entry.Text == "" {
				continue
			}
			if err := c.store.SavePage(ctx, entry); err != nil {
				// Persistence is best-effort; the in-memory snapshot
				// is already replaced.
				break
			}
		}
	}

	return c.text, nil
}

// assembleLocked concatenates the entries in URL-set order. The caller
// must hold the lock.
func (c *Cache) assembleLocked() string {
	var b strings.Builder
	for _, url := range c.urls {
		entry, ok := c.entries[url]
		if !ok || entry.Text == "" {
			continue
		}
		b.WriteString("=== ")
		b.WriteString(url)
		b.WriteString(" ===\n")
		b.WriteString(entry.Text)
		b.WriteString("\n\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}
