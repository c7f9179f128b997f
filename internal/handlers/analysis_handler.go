// internal/handlers/analysis_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"wordlens/internal/model"
	"wordlens/internal/service"
	"wordlens/internal/webutil"

	"github.com/go-playground/validator/v10"
)

type AnalysisHandler struct {
	service service.AnalysisService
	logger  *slog.Logger
}

func NewAnalysisHandler(s service.AnalysisService, logger *slog.Logger) *AnalysisHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AnalysisHandler{
		service: s,
		logger:  logger,
	}
}

// PostAnalysis analyzes a word, serving from the cache unless force is set.
func (h *AnalysisHandler) PostAnalysis(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostAnalysis"))

	var req model.PostAnalysisRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "Request body is malformed.", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
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
		return
	}

	logger = logger.With(slog.String("word", req.Word))

	analysis, err := h.service.Analyze(r.Context(), req.Word, req.Force)
	if err != nil {
		logger.Error("Error analyzing word in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Word analysis returned", slog.Bool("cached", analysis.Cached))
	webutil.RespondWithJSON(w, http.StatusOK, analysis, logger)
}
