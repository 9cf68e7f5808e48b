package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Log     LogConfig
	Parser  ParserConfig
	Storage StorageConfig
	CORS    CORSConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ParserConfig holds Gemini analyzer settings. APIKey only seeds the settings
// store; a credential saved through the UI takes precedence.
type ParserConfig struct {
	APIKey       string `mapstructure:"api_key"`
	DefaultModel string `mapstructure:"default_model"`
	TimeoutSecs  int    `mapstructure:"timeout_secs"`
}

// StorageConfig holds local persistence and upload-limit settings.
type StorageConfig struct {
	DataDir       string `mapstructure:"data_dir"`
	MaxImageMB    int64  `mapstructure:"max_image_mb"`
	MaxTemplateMB int64  `mapstructure:"max_template_mb"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Load reads configuration from environment variables with the WORSHIP_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("WORSHIP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "120s")
	v.SetDefault("server.environment", "development")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// Parser defaults
	v.SetDefault("parser.api_key", "")
	v.SetDefault("parser.default_model", "gemini-3-flash-preview")
	v.SetDefault("parser.timeout_secs", 120)

	// Storage defaults; empty data_dir falls back to ~/.worshipdeck
	v.SetDefault("storage.data_dir", "")
	v.SetDefault("storage.max_image_mb", 10)
	v.SetDefault("storage.max_template_mb", 50)

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:8080,http://127.0.0.1:8080")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":             "WORSHIP_SERVER_PORT",
		"server.read_timeout":     "WORSHIP_SERVER_READ_TIMEOUT",
		"server.write_timeout":    "WORSHIP_SERVER_WRITE_TIMEOUT",
		"server.environment":      "WORSHIP_SERVER_ENVIRONMENT",
		"log.level":               "WORSHIP_LOG_LEVEL",
		"log.format":              "WORSHIP_LOG_FORMAT",
		"parser.api_key":          "WORSHIP_PARSER_API_KEY",
		"parser.default_model":    "WORSHIP_PARSER_DEFAULT_MODEL",
		"parser.timeout_secs":     "WORSHIP_PARSER_TIMEOUT_SECS",
		"storage.data_dir":        "WORSHIP_STORAGE_DATA_DIR",
		"storage.max_image_mb":    "WORSHIP_STORAGE_MAX_IMAGE_MB",
		"storage.max_template_mb": "WORSHIP_STORAGE_MAX_TEMPLATE_MB",
		"cors.allowed_origins":    "WORSHIP_CORS_ALLOWED_ORIGINS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if WORSHIP_SERVER_PORT
	// is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("WORSHIP_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.Parser = ParserConfig{
		APIKey:       v.GetString("parser.api_key"),
		DefaultModel: v.GetString("parser.default_model"),
		TimeoutSecs:  v.GetInt("parser.timeout_secs"),
	}
	cfg.Storage = StorageConfig{
		DataDir:       v.GetString("storage.data_dir"),
		MaxImageMB:    v.GetInt64("storage.max_image_mb"),
		MaxTemplateMB: v.GetInt64("storage.max_template_mb"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	return cfg, nil
}
