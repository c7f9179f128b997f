package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordlens/internal/model"
)

func Test_gormWordCacheRepository_UpsertAndFind(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB()
	repo := NewGormWordCacheRepository()

	t.Run("put then get returns the stored analysis", func(t *testing.T) {
		entry := &model.WordCacheEntry{Word: "serendipity", Analysis: "first analysis", UpdatedAt: time.Now()}
		require.NoError(t, repo.Upsert(ctx, db, entry))

		got, err := repo.Find(ctx, db, "serendipity")
		require.NoError(t, err)
		assert.Equal(t, "serendipity", got.Word)
		assert.Equal(t, "first analysis", got.Analysis)
	})

	t.Run("second put overwrites and refreshes the timestamp", func(t *testing.T) {
		first := &model.WordCacheEntry{Word: "ephemeral", Analysis: "a1", UpdatedAt: time.Now()}
		require.NoError(t, repo.Upsert(ctx, db, first))

		afterFirst, err := repo.Find(ctx, db, "ephemeral")
		require.NoError(t, err)

		second := &model.WordCacheEntry{Word: "ephemeral", Analysis: "a2", UpdatedAt: time.Now().Add(time.Millisecond)}
		require.NoError(t, repo.Upsert(ctx, db, second))

		afterSecond, err := repo.Find(ctx, db, "ephemeral")
		require.NoError(t, err)
		assert.Equal(t, "a2", afterSecond.Analysis)
		assert.True(t, !afterSecond.UpdatedAt.Before(afterFirst.UpdatedAt),
			"timestamp after the second write must be >= the first")

		// Overwrite, not append: still exactly one row for the word.
		var count int64
		require.NoError(t, db.Model(&model.WordCacheEntry{}).Where("word = ?", "ephemeral").Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("get of an unknown word reports not found", func(t *testing.T) {
		_, err := repo.Find(ctx, db, "no-such-word")
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func Test_gormWordCacheRepository_Delete(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB()
	repo := NewGormWordCacheRepository()

	entry := &model.WordCacheEntry{Word: "transient", Analysis: "gone soon", UpdatedAt: time.Now()}
	require.NoError(t, repo.Upsert(ctx, db, entry))

	require.NoError(t, repo.Delete(ctx, db, "transient"))

	_, err := repo.Find(ctx, db, "transient")
	assert.ErrorIs(t, err, model.ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, db, "transient"), model.ErrNotFound)
}

func Test_gormWordCacheRepository_List(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB()
	repo := NewGormWordCacheRepository()

	base := time.Now()
	words := []struct {
		word string
		at   time.Time
	}{
		{"alpha", base.Add(-2 * time.Hour)},
		{"beta", base.Add(-1 * time.Hour)},
		{"gamma", base},
	}
	for _, w := range words {
		require.NoError(t, repo.Upsert(ctx, db, &model.WordCacheEntry{Word: w.word, Analysis: "x", UpdatedAt: w.at}))
	}

	entries, err := repo.List(ctx, db)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	// Newest first.
	assert.Equal(t, "gamma", entries[0].Word)
	assert.Equal(t, "beta", entries[1].Word)
	assert.Equal(t, "alpha", entries[2].Word)
}
