//go:generate mockery --name PromptTemplateRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"wordlens/internal/middleware"
	"wordlens/internal/model"

	"gorm.io/gorm"
)

// PromptTemplateRepository persists named prompt templates.
type PromptTemplateRepository interface {
	Create(ctx context.Context, tx *gorm.DB, template *model.PromptTemplate) error
	FindByID(ctx context.Context, db *gorm.DB, id uint) (*model.PromptTemplate, error)
	List(ctx context.Context, db *gorm.DB) ([]*model.PromptTemplate, error)
	Update(ctx context.Context, tx *gorm.DB, id uint, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
	CheckNameExists(ctx context.Context, db *gorm.DB, name string, excludeID *uint) (bool, error)
	Count(ctx context.Context, db *gorm.DB) (int64, error)
	FindFirstOther(ctx context.Context, db *gorm.DB, excludeID uint) (*model.PromptTemplate, error)
}

type gormPromptTemplateRepository struct{}

func NewGormPromptTemplateRepository() PromptTemplateRepository {
	return &gormPromptTemplateRepository{}
}

func (r *gormPromptTemplateRepository) Create(ctx context.Context, tx *gorm.DB, template *model.PromptTemplate) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(template)
	if result.Error != nil {
		logger.Error("Error creating template in DB",
			"error", result.Error,
			"name", template.Name,
		)
		return fmt.Errorf("gormPromptTemplateRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormPromptTemplateRepository) FindByID(ctx context.Context, db *gorm.DB, id uint) (*model.PromptTemplate, error) {
	logger := middleware.GetLogger(ctx)
	var template model.PromptTemplate
	result := db.WithContext(ctx).First(&template, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding template by ID in DB",
			"error", result.Error,
			"template_id", id,
		)
		return nil, fmt.Errorf("gormPromptTemplateRepository.FindByID: %w", result.Error)
	}
	return &template, nil
}

func (r *gormPromptTemplateRepository) List(ctx context.Context, db *gorm.DB) ([]*model.PromptTemplate, error) {
	logger := middleware.GetLogger(ctx)
	var templates []*model.PromptTemplate
	result := db.WithContext(ctx).Order("name ASC").Find(&templates)
	if result.Error != nil {
		logger.Error("Error listing templates in DB", "error", result.Error)
		return nil, fmt.Errorf("gormPromptTemplateRepository.List: %w", result.Error)
	}
	return templates, nil
}

func (r *gormPromptTemplateRepository) Update(ctx context.Context, tx *gorm.DB, id uint, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.PromptTemplate{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating template in DB",
			"error", result.Error,
			"template_id", id,
		)
		return fmt.Errorf("gormPromptTemplateRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormPromptTemplateRepository) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Delete(&model.PromptTemplate{}, id)
	if result.Error != nil {
		logger.Error("Error deleting template in DB",
			"error", result.Error,
			"template_id", id,
		)
		return fmt.Errorf("gormPromptTemplateRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormPromptTemplateRepository) CheckNameExists(ctx context.Context, db *gorm.DB, name string, excludeID *uint) (bool, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	query := db.WithContext(ctx).Model(&model.PromptTemplate{}).Where("name = ?", name)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	result := query.Count(&count)
	if result.Error != nil {
		logger.Error("Error checking template name existence in DB",
			"error", result.Error,
			"name", name,
		)
		return false, fmt.Errorf("gormPromptTemplateRepository.CheckNameExists: %w", result.Error)
	}
	return count > 0, nil
}

func (r *gormPromptTemplateRepository) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	result := db.WithContext(ctx).Model(&model.PromptTemplate{}).Count(&count)
	if result.Error != nil {
		logger.Error("Error counting templates in DB", "error", result.Error)
		return 0, fmt.Errorf("gormPromptTemplateRepository.Count: %w", result.Error)
	}
	return count, nil
}

// FindFirstOther returns the lowest-id template other than excludeID. Used
// when the active template is deleted and the active pointer must move to a
// surviving template.
func (r *gormPromptTemplateRepository) FindFirstOther(ctx context.Context, db *gorm.DB, excludeID uint) (*model.PromptTemplate, error) {
	logger := middleware.GetLogger(ctx)
	var template model.PromptTemplate
	result := db.WithContext(ctx).Where("id != ?", excludeID).Order("id ASC").First(&template)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding replacement template in DB",
			"error", result.Error,
			"exclude_id", excludeID,
		)
		return nil, fmt.Errorf("gormPromptTemplateRepository.FindFirstOther: %w", result.Error)
	}
	return &template, nil
}
