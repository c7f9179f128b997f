package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordlens/internal/model"
)

func Test_gormAppSettingsRepository_Singleton(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB()
	settingsRepo := NewGormAppSettingsRepository()
	templateRepo := NewGormPromptTemplateRepository()

	tmpl := &model.PromptTemplate{Name: "default", Content: "Analyze: {word}"}
	require.NoError(t, templateRepo.Create(ctx, db, tmpl))

	t.Run("find before any write reports not found", func(t *testing.T) {
		_, err := settingsRepo.Find(ctx, db)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("upsert creates the row with the fixed id", func(t *testing.T) {
		require.NoError(t, settingsRepo.Upsert(ctx, db, &tmpl.ID))

		settings, err := settingsRepo.Find(ctx, db)
		require.NoError(t, err)
		assert.Equal(t, model.SettingsRowID, settings.ID)
		require.NotNil(t, settings.ActiveTemplateID)
		assert.Equal(t, tmpl.ID, *settings.ActiveTemplateID)
	})

	t.Run("second upsert updates in place, no second row", func(t *testing.T) {
		other := &model.PromptTemplate{Name: "other", Content: "other content"}
		require.NoError(t, templateRepo.Create(ctx, db, other))

		require.NoError(t, settingsRepo.Upsert(ctx, db, &other.ID))

		var count int64
		require.NoError(t, db.Model(&model.AppSettings{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)

		settings, err := settingsRepo.Find(ctx, db)
		require.NoError(t, err)
		assert.Equal(t, other.ID, *settings.ActiveTemplateID)
	})

	t.Run("a row with any other id violates the check constraint", func(t *testing.T) {
		err := db.Create(&model.AppSettings{ID: 2}).Error
		assert.Error(t, err)
	})
}
