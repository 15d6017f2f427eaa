package llm

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds all completion provider configuration.
type Config struct {
	// Provider selects the backend.
	// Values: "openrouter", "openai", "anthropic", "gemini", "mock"
	Provider string

	OpenRouter OpenRouterConfig
	OpenAI     OpenAIConfig
	Anthropic  AnthropicConfig
	Gemini     GeminiConfig

	// Timeout bounds a single completion request. Generating a full
	// practice test on a free-tier model can take a while.
	Timeout time.Duration
}

// OpenRouterConfig holds OpenRouter-specific configuration.
type OpenRouterConfig struct {
	APIKey  string
	Model   string // Default: "deepseek/deepseek-chat-v3.1:free"
	BaseURL string // Default: "https://openrouter.ai/api/v1"
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4o-mini"
	BaseURL string // Optional override for OpenAI-compatible APIs.
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-haiku"
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string // Default: "gemini-flash"
}

// DefaultConfig returns a Config with sensible defaults. OpenRouter is the
// default backend; the model matches the hosted deployment.
func DefaultConfig() Config {
	return Config{
		Provider:   "openrouter",
		OpenRouter: OpenRouterConfig{Model: "deepseek/deepseek-chat-v3.1:free"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		Timeout:    60 * time.Second,
	}
}

// ConfigFromEnv builds a Config from STUDYOWL_* environment variables,
// falling back to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	env := func(dst *string, name string) {
		if v := os.Getenv("STUDYOWL_" + name); v != "" {
			*dst = v
		}
	}

	env(&cfg.Provider, "LLM_PROVIDER")
	env(&cfg.OpenRouter.APIKey, "OPENROUTER_API_KEY")
	env(&cfg.OpenRouter.Model, "OPENROUTER_MODEL")
	env(&cfg.OpenRouter.BaseURL, "OPENROUTER_BASE_URL")
	env(&cfg.OpenAI.APIKey, "OPENAI_API_KEY")
	env(&cfg.OpenAI.Model, "OPENAI_MODEL")
	env(&cfg.OpenAI.BaseURL, "OPENAI_BASE_URL")
	env(&cfg.Anthropic.APIKey, "ANTHROPIC_API_KEY")
	env(&cfg.Anthropic.Model, "ANTHROPIC_MODEL")
	env(&cfg.Gemini.APIKey, "GEMINI_API_KEY")
	env(&cfg.Gemini.Model, "GEMINI_MODEL")

	return cfg
}

// DiscoverConfig probes the conventional API key variables in priority
// order (OpenRouter first, since it is the app's default backend) and
// returns a Config for the first key found.
func DiscoverConfig() (Config, bool) {
	probes := []struct {
		envVar   string
		provider string
		key      func(*Config) *string
	}{
		{"OPENROUTER_API_KEY", "openrouter", func(c *Config) *string { return &c.OpenRouter.APIKey }},
		{"OPENAI_API_KEY", "openai", func(c *Config) *string { return &c.OpenAI.APIKey }},
		{"ANTHROPIC_API_KEY", "anthropic", func(c *Config) *string { return &c.Anthropic.APIKey }},
		{"GEMINI_API_KEY", "gemini", func(c *Config) *string { return &c.Gemini.APIKey }},
	}

	for _, p := range probes {
		if k := os.Getenv(p.envVar); k != "" {
			cfg := DefaultConfig()
			cfg.Provider = p.provider
			*p.key(&cfg) = k
			return cfg, true
		}
	}
	return Config{}, false
}

// Validate checks that the selected provider has its required API key set.
func (c Config) Validate() error {
	var key string
	switch c.Provider {
	case "mock":
		return nil
	case "openrouter":
		key = c.OpenRouter.APIKey
	case "openai":
		key = c.OpenAI.APIKey
	case "anthropic":
		key = c.Anthropic.APIKey
	case "gemini":
		key = c.Gemini.APIKey
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if key == "" {
		return fmt.Errorf("STUDYOWL_%s_API_KEY is required for the %s provider",
			strings.ToUpper(c.Provider), c.Provider)
	}
	return nil
}
