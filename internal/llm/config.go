// Package llm provides centralized LLM configuration and client abstractions.
// This package enables switching between providers and makes the
// primary-then-fallback model policy an explicit, testable object.
package llm

import (
	"fmt"
	"os"
)

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderGroq is the Groq provider (OpenAI-compatible wire format)
	ProviderGroq Provider = "groq"
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
)

// Default model IDs. The Groq pair is overridable via GROQ_MODEL /
// GROQ_MODEL_FALLBACK so a decommissioned model ID does not require a
// rebuild.
const (
	defaultGroqModel    = "llama-3.3-70b-versatile"
	fallbackGroqModel   = "llama-3.1-8b-instant"
	defaultGeminiModel  = "gemini-2.5-flash"
	fallbackGeminiModel = "gemini-2.5-flash-lite"
)

// groqBaseURL is the OpenAI-compatible endpoint served by Groq.
const groqBaseURL = "https://api.groq.com/openai/v1"

// Config holds the model configuration for the application
type Config struct {
	Provider Provider
	// Primary is tried first; Fallback is tried once if the primary
	// attempt fails (e.g. the model was decommissioned).
	Primary  string
	Fallback string
}

// DefaultConfig returns the default configuration (currently Groq).
func DefaultConfig() *Config {
	return DefaultGroqConfig()
}

// DefaultGroqConfig returns the default Groq configuration, honoring the
// GROQ_MODEL and GROQ_MODEL_FALLBACK environment overrides.
func DefaultGroqConfig() *Config {
	return &Config{
		Provider: ProviderGroq,
		Primary:  envOr("GROQ_MODEL", defaultGroqModel),
		Fallback: envOr("GROQ_MODEL_FALLBACK", fallbackGroqModel),
	}
}

// DefaultGeminiConfig returns the default Gemini configuration.
func DefaultGeminiConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Primary:  envOr("GEMINI_MODEL", defaultGeminiModel),
		Fallback: envOr("GEMINI_MODEL_FALLBACK", fallbackGeminiModel),
	}
}

// DefaultConfigFor returns the default configuration for the named
// provider. An empty name selects the default provider.
func DefaultConfigFor(provider Provider) (*Config, error) {
	switch provider {
	case "", ProviderGroq:
		return DefaultGroqConfig(), nil
	case ProviderGemini:
		return DefaultGeminiConfig(), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", provider)
	}
}

// KeyEnvVar returns the environment variable that holds the provider's
// API key.
func (p Provider) KeyEnvVar() string {
	if p == ProviderGemini {
		return "GEMINI_API_KEY"
	}
	return "GROQ_API_KEY"
}

// ModelOrder returns the ordered list of model IDs to attempt.
func (c *Config) ModelOrder() []string {
	var order []string
	if c.Primary != "" {
		order = append(order, c.Primary)
	}
	if c.Fallback != "" && c.Fallback != c.Primary {
		order = append(order, c.Fallback)
	}
	return order
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
