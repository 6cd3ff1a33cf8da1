package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClient scripts per-model responses for fallback tests.
type fakeClient struct {
	responses map[string]string
	errors    map[string]error
	calls     []string
}

func (f *fakeClient) GenerateContent(_ context.Context, _, model string, _ GenerateOptions) (string, error) {
	f.calls = append(f.calls, model)
	if err, ok := f.errors[model]; ok {
		return "", err
	}
	return f.responses[model], nil
}

func (f *fakeClient) Close() error { return nil }

func TestFallbackPolicy_PrimarySucceeds(t *testing.T) {
	client := &fakeClient{responses: map[string]string{"primary": "summary text"}}
	policy := &FallbackPolicy{Models: []string{"primary", "fallback"}}

	text, err := policy.Generate(context.Background(), client, "prompt", GenerateOptions{})

	require.NoError(t, err)
	assert.Equal(t, "summary text", text)
	// The fallback model is never touched on success.
	assert.Equal(t, []string{"primary"}, client.calls)
}

func TestFallbackPolicy_FallsBackOnPrimaryFailure(t *testing.T) {
	client := &fakeClient{
		errors:    map[string]error{"primary": errors.New("model decommissioned")},
		responses: map[string]string{"fallback": "fallback summary"},
	}
	policy := &FallbackPolicy{Models: []string{"primary", "fallback"}}

	text, err := policy.Generate(context.Background(), client, "prompt", GenerateOptions{})

	require.NoError(t, err)
	assert.Equal(t, "fallback summary", text)
	assert.Equal(t, []string{"primary", "fallback"}, client.calls)
}

func TestFallbackPolicy_PropagatesLastError(t *testing.T) {
	primaryErr := errors.New("primary down")
	fallbackErr := errors.New("fallback down")
	client := &fakeClient{
		errors: map[string]error{"primary": primaryErr, "fallback": fallbackErr},
	}
	policy := &FallbackPolicy{Models: []string{"primary", "fallback"}}

	_, err := policy.Generate(context.Background(), client, "prompt", GenerateOptions{})

	require.Error(t, err)
	// The surfaced error is the final attempt's, unmodified in message.
	assert.Equal(t, fallbackErr.Error(), err.Error())
	assert.ErrorIs(t, err, fallbackErr)

	// Earlier failures stay inspectable on the error value.
	var attemptsErr *AttemptsError
	require.ErrorAs(t, err, &attemptsErr)
	require.Len(t, attemptsErr.Attempts, 2)
	assert.Equal(t, "primary", attemptsErr.Attempts[0].Model)
	assert.Equal(t, primaryErr, attemptsErr.Attempts[0].Err)
}

func TestFallbackPolicy_NoModelsConfigured(t *testing.T) {
	policy := &FallbackPolicy{}
	_, err := policy.Generate(context.Background(), &fakeClient{}, "prompt", GenerateOptions{})
	assert.Error(t, err)
}

func TestNewFallbackPolicy_UsesConfigOrder(t *testing.T) {
	policy := NewFallbackPolicy(&Config{Primary: "a", Fallback: "b"})
	assert.Equal(t, []string{"a", "b"}, policy.Models)
}

func TestNewClient_RequiresAPIKey(t *testing.T) {
	_, err := NewClient(context.Background(), DefaultGroqConfig(), "")
	assert.Error(t, err)
}

func TestNewClient_UnknownProvider(t *testing.T) {
	_, err := NewClient(context.Background(), &Config{Provider: "mystery"}, "key")
	assert.Error(t, err)
}

func TestNewClient_GroqProvider(t *testing.T) {
	client, err := NewClient(context.Background(), DefaultGroqConfig(), "test-key")
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	assert.IsType(t, &GroqClient{}, client)
}

func TestNewClient_GeminiProvider(t *testing.T) {
	client, err := NewClient(context.Background(), DefaultGeminiConfig(), "test-key")
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	assert.IsType(t, &GeminiClient{}, client)
}

func TestNewClient_GeminiRequiresAPIKey(t *testing.T) {
	_, err := NewClient(context.Background(), DefaultGeminiConfig(), "")
	assert.Error(t, err)
}
