// internal/config/config.go
package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Database struct {
		Path string `mapstructure:"path"`
	} `mapstructure:"database"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	LLM struct {
		Model          string `mapstructure:"model"`
		MaxRetries     int    `mapstructure:"max_retries"`
		TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	} `mapstructure:"llm"`
	TTS struct {
		Model    string `mapstructure:"model"`
		Voice    string `mapstructure:"voice"`
		CacheDir string `mapstructure:"cache_dir"`
	} `mapstructure:"tts"`
	Vocabulary struct {
		Path string `mapstructure:"path"`
	} `mapstructure:"vocabulary"`
	Template struct {
		DefaultPath string `mapstructure:"default_path"`
	} `mapstructure:"template"`
	CORS struct {
		AllowedOrigins   []string `mapstructure:"allowed_origins"`
		AllowedMethods   []string `mapstructure:"allowed_methods"`
		AllowedHeaders   []string `mapstructure:"allowed_headers"`
		ExposedHeaders   []string `mapstructure:"exposed_headers"`
		AllowCredentials bool     `mapstructure:"allow_credentials"`
		MaxAge           int      `mapstructure:"max_age"`
	} `mapstructure:"cors"`
}

var Cfg Config

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("APP")
	viper.AutomaticEnv()
	viper.BindEnv("server.port", "SERVER_PORT")
	viper.BindEnv("database.path", "DATABASE_PATH")
	viper.BindEnv("llm.model", "LLM_MODEL")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	if err := viper.Unmarshal(&Cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	// --- defaults ---
	if Cfg.Server.Port == "" {
		Cfg.Server.Port = DefaultServerPort
	}
	if Cfg.Database.Path == "" {
		Cfg.Database.Path = DefaultDatabasePath
	}
	if Cfg.Log.Level == "" {
		Cfg.Log.Level = DefaultLogLevel
	}
	if Cfg.LLM.Model == "" {
		Cfg.LLM.Model = DefaultLLMModel
	}
	if Cfg.LLM.MaxRetries <= 0 {
		Cfg.LLM.MaxRetries = DefaultLLMMaxRetries
	}
	if Cfg.LLM.TimeoutSeconds <= 0 {
		Cfg.LLM.TimeoutSeconds = DefaultLLMTimeoutSeconds
	}
	if Cfg.TTS.Model == "" {
		Cfg.TTS.Model = DefaultTTSModel
	}
	if Cfg.TTS.Voice == "" {
		Cfg.TTS.Voice = DefaultTTSVoice
	}
	if Cfg.TTS.CacheDir == "" {
		Cfg.TTS.CacheDir = DefaultAudioCacheDir
	}
	if Cfg.Vocabulary.Path == "" {
		Cfg.Vocabulary.Path = DefaultVocabularyPath
	}
	if Cfg.Template.DefaultPath == "" {
		Cfg.Template.DefaultPath = DefaultTemplatePath
	}
	if len(Cfg.CORS.AllowedOrigins) == 0 {
		Cfg.CORS.AllowedOrigins = []string{"*"}
	}
	if len(Cfg.CORS.AllowedMethods) == 0 {
		Cfg.CORS.AllowedMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	}
	if len(Cfg.CORS.AllowedHeaders) == 0 {
		Cfg.CORS.AllowedHeaders = []string{"Accept", "Authorization", "Content-Type"}
	}

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Database Path: %s", Cfg.Database.Path)
	log.Printf("LLM Model: %s", Cfg.LLM.Model)

	return nil
}
