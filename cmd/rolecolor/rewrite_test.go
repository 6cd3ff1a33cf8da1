package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/rolecolor/internal/scoring"
)

// resetRewriteFlags restores the rewrite command's flag variables after a test.
func resetRewriteFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		rewriteInputFile = ""
		rewriteTaxonomyFile = ""
		rewriteConfigFile = ""
		rewriteTitle = ""
		rewriteTopK = scoring.DefaultTopK
		rewriteProvider = ""
		rewriteAPIKey = ""
		rewriteOutputFile = ""
		rewriteCmd.Flags().Lookup("top-k").Changed = false
	})
}

func TestRunRewrite_MissingInput(t *testing.T) {
	resetRewriteFlags(t)
	rewriteAPIKey = "test-key"

	err := runRewrite(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input file is required")
}

func TestRunRewrite_MissingAPIKey(t *testing.T) {
	resetRewriteFlags(t)
	t.Setenv("GROQ_API_KEY", "")

	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("shipped fast"), 0644))
	rewriteInputFile = path

	err := runRewrite(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key is required")
}

func TestRunRewrite_GeminiProviderResolvesGeminiKey(t *testing.T) {
	resetRewriteFlags(t)
	// A Groq key alone must not satisfy the Gemini provider.
	t.Setenv("GROQ_API_KEY", "groq-key")
	t.Setenv("GEMINI_API_KEY", "")

	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("shipped fast"), 0644))
	rewriteInputFile = path
	rewriteProvider = "gemini"

	err := runRewrite(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestRunRewrite_UnknownProviderRejected(t *testing.T) {
	resetRewriteFlags(t)

	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("shipped fast"), 0644))
	rewriteInputFile = path
	rewriteProvider = "anthropic"

	err := runRewrite(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported LLM provider")
}

func TestRunRewrite_ConfigFileSelectsProvider(t *testing.T) {
	resetRewriteFlags(t)
	t.Setenv("GROQ_API_KEY", "groq-key")
	t.Setenv("GEMINI_API_KEY", "")

	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("shipped fast"), 0644))

	configFile := filepath.Join(t.TempDir(), "config.json")
	cfgJSON := `{"input": "` + path + `", "provider": "gemini"}`
	require.NoError(t, os.WriteFile(configFile, []byte(cfgJSON), 0644))
	rewriteConfigFile = configFile

	err := runRewrite(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestRunRewrite_APIKeyCheckedBeforeReadingResume(t *testing.T) {
	resetRewriteFlags(t)
	t.Setenv("GROQ_API_KEY", "")

	// Even with a missing input file, the credential error comes first so
	// misconfiguration fails fast.
	rewriteInputFile = filepath.Join(t.TempDir(), "missing.txt")

	err := runRewrite(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key is required")
}
