package llm

import "fmt"

const (
	openRouterBaseURL = "https://openrouter.ai/api/v1"

	// The free DeepSeek route is the app's default model.
	defaultOpenRouterModel = "deepseek/deepseek-chat-v3.1:free"
)

// OpenRouterProvider serves completions through OpenRouter. OpenRouter
// speaks the OpenAI chat-completions dialect, so it rides on the OpenAI
// client with the base URL and default model swapped out.
type OpenRouterProvider struct {
	*OpenAIProvider
}

// NewOpenRouterProvider builds an OpenRouter-backed provider.
func NewOpenRouterProvider(cfg OpenRouterConfig) (*OpenRouterProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openrouter: missing API key")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = openRouterBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = defaultOpenRouterModel
	}

	inner, err := NewOpenAIProvider(OpenAIConfig{
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return nil, err
	}
	return &OpenRouterProvider{OpenAIProvider: inner}, nil
}
