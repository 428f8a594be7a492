package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/sitebrief"
	"github.com/fwojciec/sitebrief/anthropic"
	"github.com/fwojciec/sitebrief/gemini"
	"github.com/fwojciec/sitebrief/openai"
	"github.com/kelseyhightower/envconfig"
)

// Language model providers.
const (
	ProviderOpenAI    = "openai"
	ProviderGemini    = "gemini"
	ProviderAnthropic = "anthropic"
)

// Config holds process-wide settings loaded once at startup.
type Config struct {
	OpenAIAPIKey    string `envconfig:"OPENAI_API_KEY"`
	OpenAIBaseURL   string `envconfig:"OPENAI_BASE_URL"`
	GeminiAPIKey    string `envconfig:"GEMINI_API_KEY"`
	AnthropicAPIKey string `envconfig:"ANTHROPIC_API_KEY"`

	Provider string `envconfig:"SITEBRIEF_PROVIDER" default:"openai"`
	Model    string `envconfig:"SITEBRIEF_MODEL"`

	DBPath        string `envconfig:"SITEBRIEF_DB"`
	SummaryPath   string `envconfig:"SITEBRIEF_SUMMARY_PATH" default:"summary.md"`
	Browser       bool   `envconfig:"SITEBRIEF_BROWSER"`
	RelativeLinks bool   `envconfig:"SITEBRIEF_RELATIVE_LINKS"`

	RateLimit float64 `envconfig:"SITEBRIEF_RATE_LIMIT" default:"1"`
	RateBurst int     `envconfig:"SITEBRIEF_RATE_BURST" default:"5"`
	Port      string  `envconfig:"PORT" default:"8080"`

	LogLevel string `envconfig:"SITEBRIEF_LOG_LEVEL" default:"info"`
}

// LoadConfig reads Config from the environment.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if cfg.DBPath == "" {
		cfg.DBPath = defaultDBPath()
	}
	return &cfg, nil
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "sitebrief.db"
	}
	dir := filepath.Join(home, ".sitebrief")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "sitebrief.db")
}

// NewGenerator creates the language model backend selected by cfg.Provider.
// The provider's API key must be set.
func NewGenerator(ctx context.Context, cfg *Config) (sitebrief.Generator, error) {
	switch strings.ToLower(cfg.Provider) {
	case ProviderOpenAI:
		if cfg.OpenAIAPIKey == "" {
			return nil, sitebrief.Errorf(sitebrief.EINVALID, "OPENAI_API_KEY not set")
		}
		return openai.NewGenerator(openai.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL), cfg.Model), nil
	case ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			return nil, sitebrief.Errorf(sitebrief.EINVALID, "GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}
		client, err := gemini.NewClient(ctx, cfg.GeminiAPIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		return gemini.NewGenerator(client, cfg.Model), nil
	case ProviderAnthropic:
		if cfg.AnthropicAPIKey == "" {
			return nil, sitebrief.Errorf(sitebrief.EINVALID, "ANTHROPIC_API_KEY not set")
		}
		return anthropic.NewGenerator(cfg.AnthropicAPIKey, cfg.Model), nil
	default:
		return nil, sitebrief.Errorf(sitebrief.EINVALID, "unknown provider %q (want openai, gemini or anthropic)", cfg.Provider)
	}
}

// NewLogger returns a text logger writing to w at the named level.
// Unknown levels fall back to info.
func NewLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
