package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_ExistingPrompt(t *testing.T) {
	prompt, err := Get("rewrite.json", "rewrite-summary")
	require.NoError(t, err)
	assert.Contains(t, prompt, "RoleColorAI")
	assert.Contains(t, prompt, "{{.Role}}")
	assert.Contains(t, prompt, "{{.Resume}}")
}

func TestGet_MissingKey(t *testing.T) {
	_, err := Get("rewrite.json", "does-not-exist")
	assert.Error(t, err)
}

func TestGet_MissingFile(t *testing.T) {
	_, err := Get("missing.json", "any")
	assert.Error(t, err)
}

func TestMustGet_PanicsOnMissing(t *testing.T) {
	assert.Panics(t, func() {
		MustGet("rewrite.json", "does-not-exist")
	})
}

func TestFormat_ReplacesPlaceholders(t *testing.T) {
	result := Format("a {{.Role}} wearing a {{.Hat}}", map[string]string{
		"Role": "Builder",
		"Hat":  "hard hat",
	})
	assert.Equal(t, "a Builder wearing a hard hat", result)
}

func TestFormat_LeavesUnknownPlaceholders(t *testing.T) {
	result := Format("{{.Known}} and {{.Unknown}}", map[string]string{"Known": "x"})
	assert.Equal(t, "x and {{.Unknown}}", result)
}
