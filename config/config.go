package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrMissingAPIKey is returned when no Gemini API key could be resolved.
var ErrMissingAPIKey = errors.New("config: GEMINI_API_KEY (or key) is required")

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Personal fitness trainer specifics
	Gemini    GeminiConfig
	Upload    UploadConfig
	RateLimit RateLimitConfig
	CORS      CORSConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// GeminiConfig configures both model entry points. They share one key.
type GeminiConfig struct {
	APIKey      string
	APIURL      string
	VisionModel string
	TextModel   string
	Timeout     time.Duration
	Temperature float64
}

type UploadConfig struct {
	MaxImageBytes int64
}

type RateLimitConfig struct {
	RequestsPerMin int
	Burst          int
}

type CORSConfig struct {
	AllowedOrigins []string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
// A .env file in the working directory is loaded first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	// Older .env files name the key "key" or "KEY".
	if err := v.BindEnv("gemini.legacy_key", "KEY", "key"); err != nil {
		return nil, err
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Gemini
	cfg.Gemini.APIKey = v.GetString("gemini.api_key")
	if key := v.GetString("gemini_api_key"); key != "" {
		cfg.Gemini.APIKey = key
	}
	if cfg.Gemini.APIKey == "" {
		cfg.Gemini.APIKey = v.GetString("gemini.legacy_key")
	}
	cfg.Gemini.APIURL = v.GetString("gemini.api_url")
	cfg.Gemini.VisionModel = v.GetString("gemini.vision_model")
	cfg.Gemini.TextModel = v.GetString("gemini.text_model")
	cfg.Gemini.Timeout = v.GetDuration("gemini.timeout")
	cfg.Gemini.Temperature = v.GetFloat64("gemini.temperature")

	// Upload & rate limit
	cfg.Upload.MaxImageBytes = v.GetInt64("upload.max_image_bytes")
	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")
	cfg.RateLimit.Burst = v.GetInt("rate_limit.burst")

	// Split allowed origins since viper might not parse array seamlessly from env
	cfg.CORS.AllowedOrigins = splitList(v.GetString("cors.allowed_origins"))
	if len(cfg.CORS.AllowedOrigins) == 0 {
		cfg.CORS.AllowedOrigins = v.GetStringSlice("cors.allowed_origins")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) validate() error {
	if strings.TrimSpace(cfg.Gemini.APIKey) == "" {
		return ErrMissingAPIKey
	}
	if cfg.Gemini.VisionModel == "" || cfg.Gemini.TextModel == "" {
		return errors.New("config: gemini.vision_model and gemini.text_model are required")
	}
	if cfg.Gemini.Timeout <= 0 {
		return fmt.Errorf("config: gemini.timeout must be positive, got %s", cfg.Gemini.Timeout)
	}
	if cfg.Upload.MaxImageBytes <= 0 {
		return fmt.Errorf("config: upload.max_image_bytes must be positive, got %d", cfg.Upload.MaxImageBytes)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	// Gemini defaults
	v.SetDefault("gemini.api_url", "https://generativelanguage.googleapis.com/")
	v.SetDefault("gemini.vision_model", "gemini-1.5-flash")
	v.SetDefault("gemini.text_model", "gemini-1.5-pro-latest")
	v.SetDefault("gemini.timeout", "60s")
	v.SetDefault("gemini.temperature", 0)

	v.SetDefault("upload.max_image_bytes", 10<<20)
	v.SetDefault("rate_limit.requests_per_min", 30)
	v.SetDefault("rate_limit.burst", 0)
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
