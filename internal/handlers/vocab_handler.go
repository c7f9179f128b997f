// internal/handlers/vocab_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"wordlens/internal/model"
	"wordlens/internal/vocab"
	"wordlens/internal/webutil"
)

type VocabHandler struct {
	path   string
	logger *slog.Logger
}

func NewVocabHandler(path string, logger *slog.Logger) *VocabHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &VocabHandler{
		path:   path,
		logger: logger,
	}
}

// GetVocabulary parses the vocabulary file and returns its units. The file
// is re-read on every request so edits show up without a restart.
func (h *VocabHandler) GetVocabulary(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetVocabulary"))

	units, err := vocab.ParseFile(h.path)
	if err != nil {
		logger.Error("Error parsing vocabulary file", slog.Any("error", err), slog.String("path", h.path))
		webutil.HandleError(w, logger, model.ErrInternalServer)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, units, logger)
}
