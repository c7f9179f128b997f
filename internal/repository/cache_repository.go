//go:generate mockery --name WordCacheRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"wordlens/internal/middleware"
	"wordlens/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WordCacheRepository persists word analysis results keyed by word.
type WordCacheRepository interface {
	Find(ctx context.Context, db *gorm.DB, word string) (*model.WordCacheEntry, error)
	Upsert(ctx context.Context, tx *gorm.DB, entry *model.WordCacheEntry) error
	Delete(ctx context.Context, tx *gorm.DB, word string) error
	List(ctx context.Context, db *gorm.DB) ([]*model.WordCacheEntry, error)
}

type gormWordCacheRepository struct{}

func NewGormWordCacheRepository() WordCacheRepository {
	return &gormWordCacheRepository{}
}

func (r *gormWordCacheRepository) Find(ctx context.Context, db *gorm.DB, word string) (*model.WordCacheEntry, error) {
	logger := middleware.GetLogger(ctx)
	var entry model.WordCacheEntry
	result := db.WithContext(ctx).Where("word = ?", word).First(&entry)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding cache entry in DB",
			"error", result.Error,
			"word", word,
		)
		return nil, fmt.Errorf("gormWordCacheRepository.Find: %w", result.Error)
	}
	return &entry, nil
}

// Upsert inserts the entry, or on a word collision overwrites the analysis
// and timestamp in the same statement. The caller sets UpdatedAt so the
// payload and its last-write time can never diverge.
func (r *gormWordCacheRepository) Upsert(ctx context.Context, tx *gorm.DB, entry *model.WordCacheEntry) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "word"}},
		DoUpdates: clause.AssignmentColumns([]string{"analysis", "updated_at"}),
	}).Create(entry)
	if result.Error != nil {
		logger.Error("Error upserting cache entry in DB",
			"error", result.Error,
			"word", entry.Word,
		)
		return fmt.Errorf("gormWordCacheRepository.Upsert: %w", result.Error)
	}
	return nil
}

func (r *gormWordCacheRepository) Delete(ctx context.Context, tx *gorm.DB, word string) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("word = ?", word).Delete(&model.WordCacheEntry{})
	if result.Error != nil {
		logger.Error("Error deleting cache entry in DB",
			"error", result.Error,
			"word", word,
		)
		return fmt.Errorf("gormWordCacheRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormWordCacheRepository) List(ctx context.Context, db *gorm.DB) ([]*model.WordCacheEntry, error) {
	logger := middleware.GetLogger(ctx)
	var entries []*model.WordCacheEntry
	result := db.WithContext(ctx).Order("updated_at DESC").Find(&entries)
	if result.Error != nil {
		logger.Error("Error listing cache entries in DB", "error", result.Error)
		return nil, fmt.Errorf("gormWordCacheRepository.List: %w", result.Error)
	}
	return entries, nil
}
