//go:generate mockery --name AppSettingsRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wordlens/internal/middleware"
	"wordlens/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AppSettingsRepository persists the singleton settings row. There is no
// Create/Delete pair on purpose: the row is written through an upsert on its
// fixed primary key, so a second row can never appear.
type AppSettingsRepository interface {
	Find(ctx context.Context, db *gorm.DB) (*model.AppSettings, error)
	Upsert(ctx context.Context, tx *gorm.DB, activeTemplateID *uint) error
}

type gormAppSettingsRepository struct{}

func NewGormAppSettingsRepository() AppSettingsRepository {
	return &gormAppSettingsRepository{}
}

func (r *gormAppSettingsRepository) Find(ctx context.Context, db *gorm.DB) (*model.AppSettings, error) {
	logger := middleware.GetLogger(ctx)
	var settings model.AppSettings
	result := db.WithContext(ctx).First(&settings, model.SettingsRowID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding app settings in DB", "error", result.Error)
		return nil, fmt.Errorf("gormAppSettingsRepository.Find: %w", result.Error)
	}
	return &settings, nil
}

func (r *gormAppSettingsRepository) Upsert(ctx context.Context, tx *gorm.DB, activeTemplateID *uint) error {
	logger := middleware.GetLogger(ctx)
	settings := model.AppSettings{
		ID:               model.SettingsRowID,
		ActiveTemplateID: activeTemplateID,
		UpdatedAt:        time.Now(),
	}
	result := tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"active_template_id", "updated_at"}),
	}).Create(&settings)
	if result.Error != nil {
		logger.Error("Error upserting app settings in DB", "error", result.Error)
		return fmt.Errorf("gormAppSettingsRepository.Upsert: %w", result.Error)
	}
	return nil
}
