package llm

import (
	"context"
	"fmt"
)

// FallbackPolicy walks an ordered list of model IDs, attempting each once
// and stopping at the first success. Each attempt is independent: no
// backoff, no repeat attempts against the same model.
//
// If every attempt fails, the LAST attempt's error is propagated unmodified
// and earlier failures are available on the returned AttemptsError. The
// silent discard of earlier errors matches the historical behavior; exposing
// them on the error type keeps it inspectable without changing what callers
// see in Error().
type FallbackPolicy struct {
	Models []string
}

// NewFallbackPolicy builds a policy from a configuration's model order.
func NewFallbackPolicy(config *Config) *FallbackPolicy {
	if config == nil {
		config = DefaultConfig()
	}
	return &FallbackPolicy{Models: config.ModelOrder()}
}

// Attempt records one failed model attempt.
type Attempt struct {
	Model string
	Err   error
}

// AttemptsError wraps the final failure after all models were tried.
type AttemptsError struct {
	// Attempts holds every failure in order; the last entry caused this
	// error.
	Attempts []Attempt
}

func (e *AttemptsError) Error() string {
	last := e.Attempts[len(e.Attempts)-1]
	return last.Err.Error()
}

// Unwrap returns the final attempt's error.
func (e *AttemptsError) Unwrap() error {
	return e.Attempts[len(e.Attempts)-1].Err
}

// Generate runs the prompt through the client, trying each model in policy
// order until one succeeds.
func (p *FallbackPolicy) Generate(ctx context.Context, client Client, prompt string, opts GenerateOptions) (string, error) {
	if len(p.Models) == 0 {
		return "", fmt.Errorf("no models configured")
	}

	var attempts []Attempt
	for _, model := range p.Models {
		text, err := client.GenerateContent(ctx, prompt, model, opts)
		if err == nil {
			return text, nil
		}
		attempts = append(attempts, Attempt{Model: model, Err: err})
	}

	return "", &AttemptsError{Attempts: attempts}
}
