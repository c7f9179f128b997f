// internal/service/analysis_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"wordlens/internal/config"
	"wordlens/internal/middleware"
	"wordlens/internal/model"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"
	markdown "gitlab.com/golang-commonmark/markdown"
)

const analysisSystemPrompt = "You are a helpful assistant that analyzes vocabulary words in Markdown format."

// Model responses sometimes open with boilerplate before the analysis
// proper; both the introductory sentence and a leading markdown heading are
// stripped.
var (
	boilerplatePrefixRe = regexp.MustCompile(`(?i)^okay, here is the (?:etymology|analysis) of.*?:\s*`)
	leadingHeadingRe    = regexp.MustCompile(`^#\s*.*\s*`)
)

// ChatModel is the slice of the langchaingo model interface the analysis
// pipeline needs. *openai.LLM satisfies it.
type ChatModel interface {
	GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error)
}

// AnalysisService produces a word analysis, consulting the cache first and
// writing fresh results back through the cache's atomic upsert.
type AnalysisService interface {
	Analyze(ctx context.Context, word string, force bool) (*model.AnalysisResponse, error)
}

type analysisService struct {
	cache     WordCacheService
	templates PromptTemplateService
	llm       ChatModel
	cfg       *config.Config
	md        *markdown.Markdown
}

// NewAnalysisService wires the pipeline. llm may be nil when no API key is
// configured; cache hits still work, misses fail with a 503.
func NewAnalysisService(cache WordCacheService, templates PromptTemplateService, llm ChatModel, cfg *config.Config) AnalysisService {
	return &analysisService{
		cache:     cache,
		templates: templates,
		llm:       llm,
		cfg:       cfg,
		md:        markdown.New(markdown.HTML(false), markdown.Tables(true)),
	}
}

func (s *analysisService) Analyze(ctx context.Context, word string, force bool) (*model.AnalysisResponse, error) {
	logger := middleware.GetLogger(ctx).With("word", word)

	word = strings.TrimSpace(word)
	if word == "" {
		return nil, model.ErrInvalidInput
	}

	if !force {
		entry, err := s.cache.Get(ctx, word)
		if err == nil {
			logger.Debug("Analysis served from cache")
			return s.toResponse(entry, true), nil
		}
		if !errors.Is(err, model.ErrNotFound) {
			return nil, model.ErrInternalServer
		}
	}

	template, err := s.templates.GetActiveTemplate(ctx)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("NO_ACTIVE_TEMPLATE", "No active template found.", "", model.ErrInvalidInput)
		}
		return nil, model.ErrInternalServer
	}

	analysis, err := s.generate(ctx, word, template.Content)
	if err != nil {
		logger.Error("LLM analysis failed", "error", err)
		return nil, err
	}

	entry, err := s.cache.Put(ctx, word, analysis)
	if err != nil {
		return nil, err
	}

	logger.Info("Word analyzed", "forced", force)
	return s.toResponse(entry, false), nil
}

// generate calls the chat model with bounded retries. Each attempt gets its
// own timeout.
func (s *analysisService) generate(ctx context.Context, word, templateContent string) (string, error) {
	logger := middleware.GetLogger(ctx)

	if s.llm == nil {
		return "", model.NewAppError("LLM_NOT_CONFIGURED", "Analysis service is not configured.", "", model.ErrUnavailable)
	}

	prompt := fmt.Sprintf("Analyze the word %q following this structure (keep markdown formatting):\n\n%s", word, templateContent)
	content := []llms.MessageContent{
		llms.TextParts(schema.ChatMessageTypeSystem, analysisSystemPrompt),
		llms.TextParts(schema.ChatMessageTypeHuman, prompt),
	}

	var lastErr error
	for attempt := 1; attempt <= s.cfg.LLM.MaxRetries; attempt++ {
		attemptCtx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.LLM.TimeoutSeconds)*time.Second)
		output, err := s.llm.GenerateContent(attemptCtx, content,
			llms.WithTemperature(0),
		)
		cancel()
		if err == nil && len(output.Choices) > 0 {
			return cleanAnalysis(output.Choices[0].Content), nil
		}
		if err == nil {
			err = errors.New("empty model response")
		}
		lastErr = err
		logger.Warn("Analysis attempt failed", "attempt", attempt, "error", err)

		if ctx.Err() != nil {
			break
		}
		time.Sleep(time.Second)
	}

	return "", model.NewAppError("LLM_REQUEST_FAILED",
		fmt.Sprintf("API request failed after %d retries.", s.cfg.LLM.MaxRetries),
		"", fmt.Errorf("%w: %w", model.ErrInternalServer, lastErr))
}

func (s *analysisService) toResponse(entry *model.WordCacheEntry, cached bool) *model.AnalysisResponse {
	return &model.AnalysisResponse{
		Word:         entry.Word,
		Analysis:     entry.Analysis,
		AnalysisHTML: s.md.RenderToString([]byte(entry.Analysis)),
		Cached:       cached,
		UpdatedAt:    entry.UpdatedAt,
	}
}

func cleanAnalysis(text string) string {
	text = boilerplatePrefixRe.ReplaceAllString(text, "")
	text = leadingHeadingRe.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}
