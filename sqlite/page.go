package sqlite

import (
	"context"
	"time"

	posgrados "github.com/marianomartinho/uba-posgrados-chatbot"
)

// Compile-time interface verification.
var _ posgrados.PageStore = (*PageStore)(nil)

// PageStore implements posgrados.PageStore using SQLite. It persists
// the raw-text cache so a snapshot survives restarts.
type PageStore struct {
	db *DB
}

// NewPageStore creates a new PageStore.
func NewPageStore(db *DB) *PageStore {
	return &PageStore{db: db}
}

// SavePage creates or replaces the entry for the page's URL.
func (s *PageStore) SavePage(ctx context.Context, entry *posgrados.CacheEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	fetchedAt := entry.FetchedAt
	if fetchedAt.IsZero() {
		fetchedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO pages (url, text, hash, status, fetched_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET
			text = excluded.text,
			hash = excluded.hash,
			status = excluded.status,
			fetched_at = excluded.fetched_at
	`, entry.URL, entry.Text, entry.Hash, entry.Status, fetchedAt.Format(time.RFC3339))

	return err
}

// FindPages retrieves all stored entries.
func (s *PageStore) FindPages(ctx context.Context) ([]*posgrados.CacheEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT url, text, hash, status, fetched_at
		FROM pages
		ORDER BY url
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*posgrados.CacheEntry
	for rows.Next() {
		var entry posgrados.CacheEntry
		var fetchedAt string
		if err := rows.Scan(&entry.URL, &entry.Text, &entry.Hash, &entry.Status, &fetchedAt); err != nil {
			return nil, err
		}
		entry.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at")
		if err != nil {
			return nil, err
		}
		entries = append(entries, &entry)
	}

	return entries, rows.Err()
}
