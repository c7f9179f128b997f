// internal/handlers/template_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"wordlens/internal/model"
	"wordlens/internal/service"
	"wordlens/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type TemplateHandler struct {
	service service.PromptTemplateService
	logger  *slog.Logger
}

func NewTemplateHandler(s service.PromptTemplateService, logger *slog.Logger) *TemplateHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TemplateHandler{
		service: s,
		logger:  logger,
	}
}

// PostTemplate creates a new prompt template.
func (h *TemplateHandler) PostTemplate(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostTemplate"))

	var req model.PostTemplateRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "Request body is malformed.", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	if !h.validate(w, logger, req) {
		return
	}

	template, err := h.service.CreateTemplate(r.Context(), &req)
	if err != nil {
		logger.Error("Error creating template in service", slog.Any("error", err), slog.String("name", req.Name))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Template created", slog.Uint64("template_id", uint64(template.ID)))
	webutil.RespondWithJSON(w, http.StatusCreated, template, logger)
}

// GetTemplates lists templates (id and name), ordered by name.
func (h *TemplateHandler) GetTemplates(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetTemplates"))

	templates, err := h.service.ListTemplates(r.Context())
	if err != nil {
		logger.Error("Error listing templates in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if templates == nil {
		templates = []*model.TemplateSummary{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, templates, logger)
}

// GetTemplate fetches a single template by id.
func (h *TemplateHandler) GetTemplate(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetTemplate"))

	id, ok := h.parseID(w, logger, r)
	if !ok {
		return
	}
	logger = logger.With(slog.Uint64("template_id", uint64(id)))

	template, err := h.service.GetTemplate(r.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Template not found")
		} else {
			logger.Error("Error getting template from service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, template, logger)
}

// PutTemplate replaces a template's name and content.
func (h *TemplateHandler) PutTemplate(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PutTemplate"))

	id, ok := h.parseID(w, logger, r)
	if !ok {
		return
	}
	logger = logger.With(slog.Uint64("template_id", uint64(id)))

	var req model.PutTemplateRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "Request body is malformed.", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	if !h.validate(w, logger, req) {
		return
	}

	template, err := h.service.UpdateTemplate(r.Context(), id, &req)
	if err != nil {
		logger.Error("Error updating template in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Template updated")
	webutil.RespondWithJSON(w, http.StatusOK, template, logger)
}

// DeleteTemplate removes a template. The last template cannot be deleted;
// deleting the active one moves the active pointer first.
func (h *TemplateHandler) DeleteTemplate(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteTemplate"))

	id, ok := h.parseID(w, logger, r)
	if !ok {
		return
	}
	logger = logger.With(slog.Uint64("template_id", uint64(id)))

	if err := h.service.DeleteTemplate(r.Context(), id); err != nil {
		logger.Error("Error deleting template in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Template deleted")
	w.WriteHeader(http.StatusNoContent)
}

// GetActiveTemplate returns the template the settings row points at.
func (h *TemplateHandler) GetActiveTemplate(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetActiveTemplate"))

	template, err := h.service.GetActiveTemplate(r.Context())
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("No active template configured")
		} else {
			logger.Error("Error getting active template from service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, template, logger)
}

// PutActiveTemplate switches the active template.
func (h *TemplateHandler) PutActiveTemplate(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PutActiveTemplate"))

	var req model.PutActiveTemplateRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "Request body is malformed.", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	if !h.validate(w, logger, req) {
		return
	}

	if err := h.service.SetActiveTemplate(r.Context(), req.ID); err != nil {
		logger.Error("Error setting active template in service", slog.Any("error", err), slog.Uint64("template_id", uint64(req.ID)))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Active template updated", slog.Uint64("template_id", uint64(req.ID)))
	webutil.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Active template updated"}, logger)
}

func (h *TemplateHandler) parseID(w http.ResponseWriter, logger *slog.Logger, r *http.Request) (uint, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		logger.Warn("Invalid template ID in URL", slog.String("id_str", idStr))
		appErr := model.NewAppError("INVALID_URL_PARAM", "Template id is not a valid identifier.", "id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return 0, false
	}
	return uint(id), true
}

func (h *TemplateHandler) validate(w http.ResponseWriter, logger *slog.Logger, req interface{}) bool {
	err := webutil.Validator.Struct(req)
	if err == nil {
		return true
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		logger.Warn("Validation failed", slog.String("errors", validationErrors.Error()))
		firstErr := validationErrors[0]
		appErr := model.NewAppError(
			"VALIDATION_ERROR",
			firstErr.Translate(webutil.Trans),
			firstErr.Field(),
			model.ErrInvalidInput,
		)
		webutil.HandleError(w, logger, appErr)
	} else {
		logger.Error("Unexpected error during validation", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
	}
	return false
}
