package llm

import (
	"context"
	"fmt"
)

// GenerateOptions tune a single completion request.
type GenerateOptions struct {
	Temperature float64
	MaxTokens   int
}

// Client is an abstraction over LLM providers. A Client is bound to one
// provider; the model ID is chosen per call so a fallback policy can walk
// an ordered list of models on a single client.
type Client interface {
	// GenerateContent generates text content using the specified model
	GenerateContent(ctx context.Context, prompt, model string, opts GenerateOptions) (string, error)
	// Close releases any resources held by the client
	Close() error
}

// NewClient creates a new LLM client based on configuration. The API key
// must be non-empty; credential checks happen here, before any network
// attempt.
func NewClient(ctx context.Context, config *Config, apiKey string) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case ProviderGemini:
		return NewGeminiClient(ctx, apiKey)
	case ProviderGroq:
		return NewGroqClient(apiKey)
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", config.Provider)
	}
}
