package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func clearKeys(t *testing.T) {
	t.Helper()
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("KEY", "")
	t.Setenv("key", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
}

func TestLoad_Defaults(t *testing.T) {
	clearKeys(t)
	t.Setenv("GEMINI_API_KEY", "k-123")

	cfg, err := load(viper.New())
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Gemini.APIKey != "k-123" {
		t.Errorf("api key = %q", cfg.Gemini.APIKey)
	}
	if cfg.Gemini.VisionModel != "gemini-1.5-flash" {
		t.Errorf("vision model = %q", cfg.Gemini.VisionModel)
	}
	if cfg.Gemini.TextModel != "gemini-1.5-pro-latest" {
		t.Errorf("text model = %q", cfg.Gemini.TextModel)
	}
	if cfg.Gemini.Timeout != 60*time.Second {
		t.Errorf("timeout = %s", cfg.Gemini.Timeout)
	}
	if cfg.Upload.MaxImageBytes != 10<<20 {
		t.Errorf("max image bytes = %d", cfg.Upload.MaxImageBytes)
	}
	if cfg.HTTPServer.Port != 8080 {
		t.Errorf("port = %d", cfg.HTTPServer.Port)
	}
	if len(cfg.CORS.AllowedOrigins) != 0 {
		t.Errorf("origins = %v, want none configured", cfg.CORS.AllowedOrigins)
	}
}

func TestLoad_LegacyKey(t *testing.T) {
	clearKeys(t)
	t.Setenv("KEY", "legacy")

	cfg, err := load(viper.New())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Gemini.APIKey != "legacy" {
		t.Errorf("api key = %q, want legacy", cfg.Gemini.APIKey)
	}
}

func TestLoad_LowercaseLegacyKey(t *testing.T) {
	clearKeys(t)
	t.Setenv("key", "lowercase")

	cfg, err := load(viper.New())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Gemini.APIKey != "lowercase" {
		t.Errorf("api key = %q, want lowercase", cfg.Gemini.APIKey)
	}
}

func TestLoad_DotEnvLegacyKey(t *testing.T) {
	clearKeys(t)
	// godotenv never overrides a variable that is already set, even to "".
	os.Unsetenv("key")

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("key=from-dotenv\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Gemini.APIKey != "from-dotenv" {
		t.Errorf("api key = %q, want from-dotenv", cfg.Gemini.APIKey)
	}
}

func TestLoad_PreferredKeyWins(t *testing.T) {
	clearKeys(t)
	t.Setenv("KEY", "legacy")
	t.Setenv("GEMINI_API_KEY", "preferred")

	cfg, err := load(viper.New())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Gemini.APIKey != "preferred" {
		t.Errorf("api key = %q, want preferred", cfg.Gemini.APIKey)
	}
}

func TestLoad_MissingKey(t *testing.T) {
	clearKeys(t)

	_, err := load(viper.New())
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("err = %v, want ErrMissingAPIKey", err)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	clearKeys(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	body := []byte(`
http_server:
  port: 9090
gemini:
  api_key: from-file
  text_model: gemini-custom
  timeout: 5s
upload:
  max_image_bytes: 1024
cors:
  allowed_origins: "https://a.example, https://b.example"
`)
	if err := os.WriteFile(path, body, 0o600); err != nil {
		t.Fatal(err)
	}

	v := viper.New()
	v.SetConfigFile(path)

	cfg, err := load(v)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.HTTPServer.Port != 9090 {
		t.Errorf("port = %d", cfg.HTTPServer.Port)
	}
	if cfg.Gemini.APIKey != "from-file" {
		t.Errorf("api key = %q", cfg.Gemini.APIKey)
	}
	if cfg.Gemini.TextModel != "gemini-custom" {
		t.Errorf("text model = %q", cfg.Gemini.TextModel)
	}
	if cfg.Gemini.Timeout != 5*time.Second {
		t.Errorf("timeout = %s", cfg.Gemini.Timeout)
	}
	if cfg.Upload.MaxImageBytes != 1024 {
		t.Errorf("max image bytes = %d", cfg.Upload.MaxImageBytes)
	}
	want := []string{"https://a.example", "https://b.example"}
	if len(cfg.CORS.AllowedOrigins) != 2 || cfg.CORS.AllowedOrigins[0] != want[0] || cfg.CORS.AllowedOrigins[1] != want[1] {
		t.Errorf("origins = %v, want %v", cfg.CORS.AllowedOrigins, want)
	}
}

func TestLoad_InvalidTimeout(t *testing.T) {
	clearKeys(t)
	t.Setenv("GEMINI_API_KEY", "k")
	t.Setenv("GEMINI_TIMEOUT", "0s")

	if _, err := load(viper.New()); err == nil {
		t.Fatal("expected error for zero timeout")
	}
}
