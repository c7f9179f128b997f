// internal/handlers/speech_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"wordlens/internal/model"
	"wordlens/internal/service"
	"wordlens/internal/webutil"
)

type SpeechHandler struct {
	service service.SpeechService
	logger  *slog.Logger
}

func NewSpeechHandler(s service.SpeechService, logger *slog.Logger) *SpeechHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SpeechHandler{
		service: s,
		logger:  logger,
	}
}

// GetAudio serves the spoken MP3 for the word in the query string,
// synthesizing and caching it on first request.
func (h *SpeechHandler) GetAudio(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetAudio"))

	word := r.URL.Query().Get("word")
	if word == "" {
		appErr := model.NewAppError("MISSING_PARAM", "No word provided.", "word", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("word", word))

	path, err := h.service.Synthesize(r.Context(), word)
	if err != nil {
		logger.Error("Error synthesizing audio in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	w.Header().Set("Content-Type", "audio/mpeg")
	http.ServeFile(w, r, path)
}
