package sqlite_test

import (
	"context"
	"testing"
	"time"

	posgrados "github.com/marianomartinho/uba-posgrados-chatbot"
	"github.com/marianomartinho/uba-posgrados-chatbot/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageStore(t *testing.T) {
	t.Parallel()

	t.Run("saves and reads back entries", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		store := sqlite.NewPageStore(db)
		ctx := context.Background()

		entry := &posgrados.CacheEntry{
			URL:       "https://www.derecho.uba.ar/academica/posgrados/mae_der_penal.php",
			Text:      "Maestría en Derecho Penal",
			Hash:      "abc123",
			Status:    200,
			FetchedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		}
		require.NoError(t, store.SavePage(ctx, entry))

		pages, err := store.FindPages(ctx)
		require.NoError(t, err)
		require.Len(t, pages, 1)
		assert.Equal(t, entry.URL, pages[0].URL)
		assert.Equal(t, entry.Text, pages[0].Text)
		assert.Equal(t, entry.Hash, pages[0].Hash)
		assert.Equal(t, 200, pages[0].Status)
		assert.True(t, pages[0].FetchedAt.Equal(entry.FetchedAt))
	})

	t.Run("saving the same URL replaces the entry", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		store := sqlite.NewPageStore(db)
		ctx := context.Background()

		require.NoError(t, store.SavePage(ctx, &posgrados.CacheEntry{URL: "http://x/a.php", Text: "viejo"}))
		require.NoError(t, store.SavePage(ctx, &posgrados.CacheEntry{URL: "http://x/a.php", Text: "nuevo"}))

		pages, err := store.FindPages(ctx)
		require.NoError(t, err)
		require.Len(t, pages, 1)
		assert.Equal(t, "nuevo", pages[0].Text)
	})

	t.Run("rejects an entry without URL", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		store := sqlite.NewPageStore(db)

		err := store.SavePage(context.Background(), &posgrados.CacheEntry{})
		require.Error(t, err)
		assert.Equal(t, posgrados.EINVALID, posgrados.ErrorCode(err))
	})
}
