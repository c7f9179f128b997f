// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"
	"github.com/tmc/langchaingo/llms/openai"

	"wordlens/internal/config"
	"wordlens/internal/handlers"
	"wordlens/internal/middleware"
	"wordlens/internal/repository"
	"wordlens/internal/service"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	// Temporary logger until the config is loaded.
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)

	// .env carries secrets (OPENAI_API_KEY); absence is fine.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	if err := config.LoadConfig("configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// === slog logger from config ===
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(config.Cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", config.Cfg.Log.Level))
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	slog.Info("Application starting...",
		slog.String("app", config.AppName),
		slog.String("version", config.AppVersion),
	)

	// === Database ===
	db, err := repository.NewDB(config.Cfg.Database.Path, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	// === Dependency injection ===
	cacheRepo := repository.NewGormWordCacheRepository()
	templateRepo := repository.NewGormPromptTemplateRepository()
	settingsRepo := repository.NewGormAppSettingsRepository()

	cacheService := service.NewWordCacheService(db, cacheRepo)
	templateService := service.NewPromptTemplateService(db, templateRepo, settingsRepo)

	apiKey := os.Getenv(config.OpenAIKeyEnv)
	var llm service.ChatModel
	if apiKey != "" {
		client, err := openai.New(
			openai.WithToken(apiKey),
			openai.WithModel(config.Cfg.LLM.Model),
		)
		if err != nil {
			slog.Error("Error initializing OpenAI client", slog.Any("error", err))
			os.Exit(1)
		}
		llm = client
		slog.Info("OpenAI client configured", slog.String("model", config.Cfg.LLM.Model))
	} else {
		slog.Warn("OPENAI_API_KEY is not set; analysis and speech endpoints will return 503 on cache misses")
	}

	analysisService := service.NewAnalysisService(cacheService, templateService, llm, &config.Cfg)
	speechService := service.NewSpeechService(apiKey, &config.Cfg)

	// Seed the default template and settings row on first start.
	defaultContent := "Please provide a default template."
	if content, err := os.ReadFile(config.Cfg.Template.DefaultPath); err == nil {
		defaultContent = string(content)
	} else {
		slog.Warn("Default template file not found, using placeholder content", slog.String("path", config.Cfg.Template.DefaultPath))
	}
	if err := templateService.EnsureDefaults(context.Background(), defaultContent); err != nil {
		slog.Error("Error seeding default template and settings", slog.Any("error", err))
		os.Exit(1)
	}

	analysisHandler := handlers.NewAnalysisHandler(analysisService, logger)
	cacheHandler := handlers.NewCacheHandler(cacheService, logger)
	templateHandler := handlers.NewTemplateHandler(templateService, logger)
	vocabHandler := handlers.NewVocabHandler(config.Cfg.Vocabulary.Path, logger)
	speechHandler := handlers.NewSpeechHandler(speechService, logger)

	// === Router ===
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
		AllowedMethods:   config.Cfg.CORS.AllowedMethods,
		AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
		ExposedHeaders:   config.Cfg.CORS.ExposedHeaders,
		AllowCredentials: config.Cfg.CORS.AllowCredentials,
		MaxAge:           config.Cfg.CORS.MaxAge,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(90 * time.Second))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/analyses", analysisHandler.PostAnalysis)

		r.Route("/cache", func(r chi.Router) {
			r.Get("/", cacheHandler.GetEntries)
			r.Get("/{word}", cacheHandler.GetEntry)
			r.Delete("/{word}", cacheHandler.DeleteEntry)
		})

		r.Route("/templates", func(r chi.Router) {
			r.Post("/", templateHandler.PostTemplate)
			r.Get("/", templateHandler.GetTemplates)
			r.Get("/active", templateHandler.GetActiveTemplate)
			r.Put("/active", templateHandler.PutActiveTemplate)
			r.Get("/{id}", templateHandler.GetTemplate)
			r.Put("/{id}", templateHandler.PutTemplate)
			r.Delete("/{id}", templateHandler.DeleteTemplate)
		})

		r.Get("/vocabulary", vocabHandler.GetVocabulary)
		r.Get("/tts", speechHandler.GetAudio)
	})

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if err := sqlDB.PingContext(ctx); err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// === Server ===
	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}
