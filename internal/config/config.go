package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	"datawarden/internal/domain"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	Gemini GeminiConfig
	Upload UploadConfig
	CORS   CORSConfig
	Log    LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// GeminiConfig holds model service settings.
type GeminiConfig struct {
	APIKey      string `mapstructure:"api_key"`
	Model       string `mapstructure:"model"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
}

// UploadConfig holds sample upload settings.
type UploadConfig struct {
	MaxFileSizeMB int64 `mapstructure:"max_file_size_mb"`
	PreviewRows   int   `mapstructure:"preview_rows"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables with the DATAWARDEN_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("DATAWARDEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "0s") // streaming responses must not be cut off
	v.SetDefault("server.environment", "development")

	// Gemini defaults
	v.SetDefault("gemini.api_key", "")
	v.SetDefault("gemini.model", "gemini-2.0-flash")
	v.SetDefault("gemini.timeout_secs", 120)

	// Upload defaults
	v.SetDefault("upload.max_file_size_mb", 10)
	v.SetDefault("upload.preview_rows", 5)

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	})

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// Explicit binds so AutomaticEnv resolves nested keys
	keys := []string{
		"server.port", "server.read_timeout", "server.write_timeout", "server.environment",
		"gemini.api_key", "gemini.model", "gemini.timeout_secs",
		"upload.max_file_size_mb", "upload.preview_rows",
		"cors.allowed_origins",
		"log.level", "log.format",
	}
	for _, k := range keys {
		if err := v.BindEnv(k); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the loaded configuration for fatal conditions. A missing
// model service credential makes the whole application unusable, so startup
// must abort rather than serve a UI that cannot work.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Gemini.APIKey) == "" {
		return domain.ErrMissingAPIKey
	}
	return nil
}
