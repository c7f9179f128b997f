// internal/handlers/speech_handler_test.go
package handlers

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"wordlens/internal/model"
	"wordlens/internal/service/mocks"
)

func TestSpeechHandler_GetAudio(t *testing.T) {
	t.Run("serves the synthesized file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ephemeral.mp3")
		require.NoError(t, os.WriteFile(path, []byte("mp3-bytes"), 0o644))

		mockService := new(mocks.SpeechService)
		mockService.On("Synthesize", mock.Anything, "ephemeral").Return(path, nil).Once()
		handler := NewSpeechHandler(mockService, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/tts?word=ephemeral", nil)
		rr := httptest.NewRecorder()
		handler.GetAudio(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "audio/mpeg", rr.Header().Get("Content-Type"))
		assert.Equal(t, "mp3-bytes", rr.Body.String())
		mockService.AssertExpectations(t)
	})

	t.Run("missing word parameter is a 400", func(t *testing.T) {
		mockService := new(mocks.SpeechService)
		handler := NewSpeechHandler(mockService, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/tts", nil)
		rr := httptest.NewRecorder()
		handler.GetAudio(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "MISSING_PARAM")
		mockService.AssertNotCalled(t, "Synthesize", mock.Anything, mock.Anything)
	})

	t.Run("unconfigured service is a 503", func(t *testing.T) {
		mockService := new(mocks.SpeechService)
		mockService.On("Synthesize", mock.Anything, "ephemeral").
			Return("", model.NewAppError("TTS_NOT_CONFIGURED", "Speech service is not configured.", "", model.ErrUnavailable)).Once()
		handler := NewSpeechHandler(mockService, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/tts?word=ephemeral", nil)
		rr := httptest.NewRecorder()
		handler.GetAudio(rr, req)

		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
		mockService.AssertExpectations(t)
	})
}
