package rewriting

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/rolecolor/internal/taxonomy"
)

func TestRewriteSummary_MissingAPIKey(t *testing.T) {
	_, err := RewriteSummary(context.Background(), "resume text", taxonomy.Builder, "Engineer", "")

	require.Error(t, err)
	var configErr *ConfigError
	assert.True(t, errors.As(err, &configErr), "expected ConfigError, got %T", err)
}

func TestBuildRewritePrompt_ContainsAllSections(t *testing.T) {
	prompt := buildRewritePrompt("built many systems", taxonomy.Thriver, "Senior Engineer")

	assert.Contains(t, prompt, "Thriver-type team contributor")
	assert.Contains(t, prompt, "Use the title label: Senior Engineer")
	assert.Contains(t, prompt, "built many systems")
	assert.Contains(t, prompt, "EXACTLY 4 to 6 lines")

	// All four archetype definitions appear regardless of target role.
	for _, cat := range taxonomy.Categories() {
		assert.Contains(t, prompt, string(cat)+": "+cat.Definition())
	}
}

func TestBuildRewritePrompt_NoUnresolvedPlaceholders(t *testing.T) {
	prompt := buildRewritePrompt("resume", taxonomy.Enabler, "Engineer")
	assert.NotContains(t, prompt, "{{.")
}

func TestConfigError_Message(t *testing.T) {
	err := &ConfigError{Message: "API key is required"}
	assert.Contains(t, err.Error(), "API key is required")
}

func TestAPICallError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := &APICallError{Message: "failed", Cause: cause}

	assert.Contains(t, err.Error(), "failed")
	assert.ErrorIs(t, err, cause)
}
