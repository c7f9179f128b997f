// internal/handlers/cache_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"wordlens/internal/model"
	"wordlens/internal/service"
	"wordlens/internal/webutil"

	"github.com/go-chi/chi/v5"
)

type CacheHandler struct {
	service service.WordCacheService
	logger  *slog.Logger
}

func NewCacheHandler(s service.WordCacheService, logger *slog.Logger) *CacheHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CacheHandler{
		service: s,
		logger:  logger,
	}
}

// GetEntries lists all cache entries, newest first.
func (h *CacheHandler) GetEntries(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetEntries"))

	entries, err := h.service.List(r.Context())
	if err != nil {
		logger.Error("Error listing cache entries in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if entries == nil {
		entries = []*model.WordCacheEntry{}
	}
	logger.Info("Cache entries listed", slog.Int("count", len(entries)))
	webutil.RespondWithJSON(w, http.StatusOK, entries, logger)
}

// GetEntry returns the cached analysis for one word.
func (h *CacheHandler) GetEntry(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetEntry"))

	word := chi.URLParam(r, "word")
	logger = logger.With(slog.String("word", word))

	entry, err := h.service.Get(r.Context(), word)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Cache entry not found")
		} else {
			logger.Error("Error getting cache entry from service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, entry, logger)
}

// DeleteEntry prunes one word from the cache.
func (h *CacheHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteEntry"))

	word := chi.URLParam(r, "word")
	logger = logger.With(slog.String("word", word))

	if err := h.service.Delete(r.Context(), word); err != nil {
		logger.Error("Error deleting cache entry in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Cache entry deleted")
	w.WriteHeader(http.StatusNoContent)
}
