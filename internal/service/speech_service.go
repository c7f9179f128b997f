// internal/service/speech_service.go
package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"wordlens/internal/config"
	"wordlens/internal/middleware"
	"wordlens/internal/model"

	"github.com/google/uuid"
)

const openAISpeechURL = "https://api.openai.com/v1/audio/speech"

// SpeechService synthesizes spoken audio for a word and caches the MP3 on
// disk. Files are written atomically (temp name, then rename) so a
// concurrent reader never sees a partial file.
type SpeechService interface {
	Synthesize(ctx context.Context, word string) (string, error)
}

type speechService struct {
	apiKey     string
	cfg        *config.Config
	httpClient *http.Client
	endpoint   string
}

func NewSpeechService(apiKey string, cfg *config.Config) SpeechService {
	return &speechService{
		apiKey: apiKey,
		cfg:    cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.LLM.TimeoutSeconds) * time.Second,
		},
		endpoint: openAISpeechURL,
	}
}

// Synthesize returns the path of a cached MP3 for word, generating it on
// first request.
func (s *speechService) Synthesize(ctx context.Context, word string) (string, error) {
	logger := middleware.GetLogger(ctx).With("word", word)

	word = strings.TrimSpace(word)
	if word == "" {
		return "", model.ErrInvalidInput
	}
	if s.apiKey == "" {
		return "", model.NewAppError("TTS_NOT_CONFIGURED", "Speech service is not configured.", "", model.ErrUnavailable)
	}

	filename := sanitizeFilename(word) + ".mp3"
	if filename == ".mp3" {
		return "", model.ErrInvalidInput
	}
	path := filepath.Join(s.cfg.TTS.CacheDir, filename)

	if _, err := os.Stat(path); err == nil {
		logger.Debug("Audio served from cache")
		return path, nil
	}

	audio, err := s.request(ctx, word)
	if err != nil {
		logger.Error("Speech synthesis failed", "error", err)
		return "", model.NewAppError("TTS_FAILED", "TTS generation failed.", "", model.ErrInternalServer)
	}

	if err := s.writeAtomic(path, audio); err != nil {
		logger.Error("Failed to write audio cache file", "error", err, "path", path)
		return "", model.ErrInternalServer
	}

	logger.Info("Audio synthesized and cached")
	return path, nil
}

func (s *speechService) request(ctx context.Context, word string) ([]byte, error) {
	payload, err := json.Marshal(map[string]string{
		"model": s.cfg.TTS.Model,
		"voice": s.cfg.TTS.Voice,
		"input": word,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("speech API returned status %d: %s", resp.StatusCode, string(body))
	}

	return io.ReadAll(resp.Body)
}

func (s *speechService) writeAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp := path + "." + uuid.NewString() + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// sanitizeFilename keeps only letters and digits so the cache filename is
// safe on any filesystem.
func sanitizeFilename(word string) string {
	var b strings.Builder
	for _, r := range word {
		if ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
