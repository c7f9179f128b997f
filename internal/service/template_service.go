// internal/service/template_service.go
package service

import (
	"context"
	"errors"

	"wordlens/internal/config"
	"wordlens/internal/middleware"
	"wordlens/internal/model"
	"wordlens/internal/repository"

	"gorm.io/gorm"
)

// PromptTemplateService manages the template registry and the active-template
// pointer held by the settings singleton.
//
// Delete policy: the last remaining template cannot be deleted, and deleting
// the active template repoints the active reference to another template in
// the same transaction, so the settings row never holds a dangling reference.
type PromptTemplateService interface {
	CreateTemplate(ctx context.Context, req *model.PostTemplateRequest) (*model.PromptTemplate, error)
	GetTemplate(ctx context.Context, id uint) (*model.PromptTemplate, error)
	ListTemplates(ctx context.Context) ([]*model.TemplateSummary, error)
	UpdateTemplate(ctx context.Context, id uint, req *model.PutTemplateRequest) (*model.PromptTemplate, error)
	DeleteTemplate(ctx context.Context, id uint) error
	GetActiveTemplate(ctx context.Context) (*model.PromptTemplate, error)
	SetActiveTemplate(ctx context.Context, id uint) error
	EnsureDefaults(ctx context.Context, defaultContent string) error
}

type promptTemplateService struct {
	db           *gorm.DB
	templateRepo repository.PromptTemplateRepository
	settingsRepo repository.AppSettingsRepository
}

func NewPromptTemplateService(db *gorm.DB, templateRepo repository.PromptTemplateRepository, settingsRepo repository.AppSettingsRepository) PromptTemplateService {
	return &promptTemplateService{
		db:           db,
		templateRepo: templateRepo,
		settingsRepo: settingsRepo,
	}
}

func (s *promptTemplateService) CreateTemplate(ctx context.Context, req *model.PostTemplateRequest) (*model.PromptTemplate, error) {
	logger := middleware.GetLogger(ctx)

	var created *model.PromptTemplate
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := s.templateRepo.CheckNameExists(ctx, tx, req.Name, nil)
		if err != nil {
			return model.ErrInternalServer
		}
		if exists {
			return model.NewAppError("DUPLICATE_NAME", "A template with this name already exists.", "name", model.ErrConflict)
		}

		template := &model.PromptTemplate{
			Name:    req.Name,
			Content: req.Content,
		}
		if err := s.templateRepo.Create(ctx, tx, template); err != nil {
			return model.ErrInternalServer
		}

		created = template
		return nil
	})
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			return nil, err
		}
		logger.Error("Transaction failed for CreateTemplate", "error", err)
		return nil, model.ErrInternalServer
	}

	return created, nil
}

func (s *promptTemplateService) GetTemplate(ctx context.Context, id uint) (*model.PromptTemplate, error) {
	return s.templateRepo.FindByID(ctx, s.db, id)
}

func (s *promptTemplateService) ListTemplates(ctx context.Context) ([]*model.TemplateSummary, error) {
	logger := middleware.GetLogger(ctx)
	templates, err := s.templateRepo.List(ctx, s.db)
	if err != nil {
		logger.Error("Error listing templates", "error", err)
		return nil, model.ErrInternalServer
	}

	summaries := make([]*model.TemplateSummary, 0, len(templates))
	for _, t := range templates {
		summaries = append(summaries, &model.TemplateSummary{ID: t.ID, Name: t.Name})
	}
	return summaries, nil
}

func (s *promptTemplateService) UpdateTemplate(ctx context.Context, id uint, req *model.PutTemplateRequest) (*model.PromptTemplate, error) {
	logger := middleware.GetLogger(ctx)

	var updated *model.PromptTemplate
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.templateRepo.FindByID(ctx, tx, id); err != nil {
			return err
		}

		exists, err := s.templateRepo.CheckNameExists(ctx, tx, req.Name, &id)
		if err != nil {
			return model.ErrInternalServer
		}
		if exists {
			return model.NewAppError("DUPLICATE_NAME", "A template with this name already exists.", "name", model.ErrConflict)
		}

		updates := map[string]interface{}{
			"name":    req.Name,
			"content": req.Content,
		}
		if err := s.templateRepo.Update(ctx, tx, id, updates); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return err
			}
			return model.ErrInternalServer
		}

		updated, err = s.templateRepo.FindByID(ctx, tx, id)
		if err != nil {
			return model.ErrInternalServer
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) || errors.Is(err, model.ErrConflict) {
			return nil, err
		}
		logger.Error("Transaction failed for UpdateTemplate", "error", err, "template_id", id)
		return nil, model.ErrInternalServer
	}

	return updated, nil
}

func (s *promptTemplateService) DeleteTemplate(ctx context.Context, id uint) error {
	logger := middleware.GetLogger(ctx)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.templateRepo.FindByID(ctx, tx, id); err != nil {
			return err
		}

		count, err := s.templateRepo.Count(ctx, tx)
		if err != nil {
			return model.ErrInternalServer
		}
		if count <= 1 {
			return model.NewAppError("LAST_TEMPLATE", "Cannot delete the last template.", "", model.ErrConflict)
		}

		// Repoint the active reference before deleting it from under the
		// settings row.
		settings, err := s.settingsRepo.Find(ctx, tx)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			return model.ErrInternalServer
		}
		if settings != nil && settings.ActiveTemplateID != nil && *settings.ActiveTemplateID == id {
			replacement, err := s.templateRepo.FindFirstOther(ctx, tx, id)
			if err != nil {
				return model.ErrInternalServer
			}
			if err := s.settingsRepo.Upsert(ctx, tx, &replacement.ID); err != nil {
				return model.ErrInternalServer
			}
		}

		return s.templateRepo.Delete(ctx, tx, id)
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) || errors.Is(err, model.ErrConflict) {
			return err
		}
		logger.Error("Transaction failed for DeleteTemplate", "error", err, "template_id", id)
		return model.ErrInternalServer
	}
	return nil
}

func (s *promptTemplateService) GetActiveTemplate(ctx context.Context) (*model.PromptTemplate, error) {
	settings, err := s.settingsRepo.Find(ctx, s.db)
	if err != nil {
		return nil, err
	}
	if settings.ActiveTemplateID == nil {
		return nil, model.ErrNotFound
	}
	return s.templateRepo.FindByID(ctx, s.db, *settings.ActiveTemplateID)
}

func (s *promptTemplateService) SetActiveTemplate(ctx context.Context, id uint) error {
	logger := middleware.GetLogger(ctx)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.templateRepo.FindByID(ctx, tx, id); err != nil {
			return err
		}
		return s.settingsRepo.Upsert(ctx, tx, &id)
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return err
		}
		logger.Error("Transaction failed for SetActiveTemplate", "error", err, "template_id", id)
		return model.ErrInternalServer
	}
	return nil
}

// EnsureDefaults seeds the registry on first start: one template named
// Default and a settings row pointing at the first template. Safe to call on
// every boot.
func (s *promptTemplateService) EnsureDefaults(ctx context.Context, defaultContent string) error {
	logger := middleware.GetLogger(ctx)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		count, err := s.templateRepo.Count(ctx, tx)
		if err != nil {
			return err
		}
		if count == 0 {
			template := &model.PromptTemplate{
				Name:    config.DefaultTemplateName,
				Content: defaultContent,
			}
			if err := s.templateRepo.Create(ctx, tx, template); err != nil {
				return err
			}
			logger.Info("Seeded default prompt template", "template_id", template.ID)
		}

		if _, err := s.settingsRepo.Find(ctx, tx); err != nil {
			if !errors.Is(err, model.ErrNotFound) {
				return err
			}
			first, err := s.templateRepo.FindFirstOther(ctx, tx, 0)
			if err != nil {
				return err
			}
			if err := s.settingsRepo.Upsert(ctx, tx, &first.ID); err != nil {
				return err
			}
			logger.Info("Seeded app settings", "active_template_id", first.ID)
		}
		return nil
	})
}
