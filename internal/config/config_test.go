package config

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("APP_TMDB_BASE_URL", "")
	t.Setenv("APP_USER_AGENT", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if cfg.TMDBBaseURL != DefaultTMDBBaseURL {
		t.Errorf("Expected base URL %q, got %q", DefaultTMDBBaseURL, cfg.TMDBBaseURL)
	}
	if cfg.UserAgent != DefaultUserAgent {
		t.Errorf("Expected user agent %q, got %q", DefaultUserAgent, cfg.UserAgent)
	}
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("APP_TMDB_API_KEY", "secret")
	t.Setenv("APP_CLIENT_TIMEOUT", "5s")
	t.Setenv("APP_PROXY_CONNECTION_STRING", "http://proxy.local:3128")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if cfg.TMDBApiKey != "secret" {
		t.Errorf("Expected api key 'secret', got %q", cfg.TMDBApiKey)
	}
	if cfg.ClientTimeout != "5s" {
		t.Errorf("Expected client timeout '5s', got %q", cfg.ClientTimeout)
	}
	if cfg.ProxyConnectionString != "http://proxy.local:3128" {
		t.Errorf("Expected proxy to be read from env, got %q", cfg.ProxyConnectionString)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("Expected log level 'debug', got %q", cfg.LogLevel)
	}
}

func TestLoadConfig_BareApiKeyVariable(t *testing.T) {
	t.Setenv("APP_TMDB_API_KEY", "")
	t.Setenv("TMDB_API_KEY", "fallback")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if cfg.TMDBApiKey != "fallback" {
		t.Errorf("Expected api key 'fallback', got %q", cfg.TMDBApiKey)
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"":        zerolog.InfoLevel,
		"debug":   zerolog.DebugLevel,
		"warn":    zerolog.WarnLevel,
		"verbose": zerolog.InfoLevel,
	}
	for input, expected := range tests {
		if got := parseLevel(input); got != expected {
			t.Errorf("parseLevel(%q) = %s, want %s", input, got, expected)
		}
	}
}

func TestGetUserAgent(t *testing.T) {
	if GetUserAgent() == "" {
		t.Error("Expected a non-empty user agent")
	}
}
