package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordlens/internal/model"
)

func Test_gormPromptTemplateRepository_Create(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB()
	repo := NewGormPromptTemplateRepository()

	first := &model.PromptTemplate{Name: "default", Content: "Analyze: {word}"}
	require.NoError(t, repo.Create(ctx, db, first))
	assert.NotZero(t, first.ID)

	t.Run("duplicate name fails with a uniqueness violation", func(t *testing.T) {
		dup := &model.PromptTemplate{Name: "default", Content: "something else"}
		err := repo.Create(ctx, db, dup)
		assert.Error(t, err)
	})

	t.Run("ids are assigned in sequence", func(t *testing.T) {
		second := &model.PromptTemplate{Name: "verbose", Content: "long form"}
		require.NoError(t, repo.Create(ctx, db, second))
		assert.Greater(t, second.ID, first.ID)
	})
}

func Test_gormPromptTemplateRepository_CheckNameExists(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB()
	repo := NewGormPromptTemplateRepository()

	tmpl := &model.PromptTemplate{Name: "default", Content: "c"}
	require.NoError(t, repo.Create(ctx, db, tmpl))

	exists, err := repo.CheckNameExists(ctx, db, "default", nil)
	require.NoError(t, err)
	assert.True(t, exists)

	// Excluding the template itself makes its own name available again.
	exists, err = repo.CheckNameExists(ctx, db, "default", &tmpl.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = repo.CheckNameExists(ctx, db, "missing", nil)
	require.NoError(t, err)
	assert.False(t, exists)
}

func Test_gormPromptTemplateRepository_UpdateDelete(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB()
	repo := NewGormPromptTemplateRepository()

	tmpl := &model.PromptTemplate{Name: "default", Content: "c"}
	require.NoError(t, repo.Create(ctx, db, tmpl))

	require.NoError(t, repo.Update(ctx, db, tmpl.ID, map[string]interface{}{"content": "c2"}))
	got, err := repo.FindByID(ctx, db, tmpl.ID)
	require.NoError(t, err)
	assert.Equal(t, "c2", got.Content)

	assert.ErrorIs(t, repo.Update(ctx, db, 999, map[string]interface{}{"content": "x"}), model.ErrNotFound)

	require.NoError(t, repo.Delete(ctx, db, tmpl.ID))
	_, err = repo.FindByID(ctx, db, tmpl.ID)
	assert.ErrorIs(t, err, model.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, db, tmpl.ID), model.ErrNotFound)
}

func Test_gormPromptTemplateRepository_FindFirstOther(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB()
	repo := NewGormPromptTemplateRepository()

	a := &model.PromptTemplate{Name: "a", Content: "c"}
	b := &model.PromptTemplate{Name: "b", Content: "c"}
	require.NoError(t, repo.Create(ctx, db, a))
	require.NoError(t, repo.Create(ctx, db, b))

	got, err := repo.FindFirstOther(ctx, db, a.ID)
	require.NoError(t, err)
	assert.Equal(t, b.ID, got.ID)

	require.NoError(t, repo.Delete(ctx, db, b.ID))
	_, err = repo.FindFirstOther(ctx, db, a.ID)
	assert.ErrorIs(t, err, model.ErrNotFound)
}
