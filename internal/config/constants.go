// internal/config/constants.go
package config

// Application info
const (
	AppName    = "wordlens"
	AppVersion = "1.0.0"
)

// Default settings
const (
	DefaultServerPort        = ":8080"
	DefaultDatabasePath      = "word_cache.db"
	DefaultLogLevel          = "info"
	DefaultLLMModel          = "gpt-3.5-turbo"
	DefaultLLMMaxRetries     = 3
	DefaultLLMTimeoutSeconds = 60
	DefaultTTSModel          = "tts-1"
	DefaultTTSVoice          = "alloy"
	DefaultAudioCacheDir     = "static/audio_cache"
	DefaultVocabularyPath    = "type.txt"
	DefaultTemplatePath      = "word_template.md"
)

// Name given to the template seeded on first start.
const DefaultTemplateName = "Default"

// Environment variable holding the OpenAI API key, shared by the analysis
// and speech services.
const OpenAIKeyEnv = "OPENAI_API_KEY"
