package rewriting

import (
	"context"

	"github.com/jonathan/rolecolor/internal/llm"
	"github.com/jonathan/rolecolor/internal/prompts"
	"github.com/jonathan/rolecolor/internal/taxonomy"
)

// Generation constants for the summary rewrite. Low-ish temperature keeps
// the output factual; 220 tokens comfortably covers 6 lines.
const (
	rewriteTemperature = 0.35
	rewriteMaxTokens   = 220
)

// RewriteSummary asks the LLM to rewrite the resume as a 4-6 line summary
// emphasizing the dominant RoleColor, labeled with the given title. The
// primary model is tried first, then the configured fallback; if both fail
// the final attempt's error is surfaced.
func RewriteSummary(ctx context.Context, resumeText string, role taxonomy.Category, title, apiKey string) (string, error) {
	return RewriteSummaryWithConfig(ctx, llm.DefaultConfig(), resumeText, role, title, apiKey)
}

// RewriteSummaryWithConfig is RewriteSummary with an explicit LLM
// configuration, used by the server and by tests.
func RewriteSummaryWithConfig(ctx context.Context, config *llm.Config, resumeText string, role taxonomy.Category, title, apiKey string) (string, error) {
	if apiKey == "" {
		return "", &ConfigError{Message: "API key is required"}
	}

	client, err := llm.NewClient(ctx, config, apiKey)
	if err != nil {
		return "", &APICallError{
			Message: "failed to create LLM client",
			Cause:   err,
		}
	}
	defer func() { _ = client.Close() }()

	prompt := buildRewritePrompt(resumeText, role, title)

	policy := llm.NewFallbackPolicy(config)
	summary, err := policy.Generate(ctx, client, prompt, llm.GenerateOptions{
		Temperature: rewriteTemperature,
		MaxTokens:   rewriteMaxTokens,
	})
	if err != nil {
		return "", err
	}

	return summary, nil
}

// buildRewritePrompt constructs the instruction payload for the summary
// rewrite.
func buildRewritePrompt(resumeText string, role taxonomy.Category, title string) string {
	template := prompts.MustGet("rewrite.json", "rewrite-summary")
	return prompts.Format(template, map[string]string{
		"Role":                string(role),
		"Title":               title,
		"Resume":              resumeText,
		"BuilderDefinition":   taxonomy.Builder.Definition(),
		"ThriverDefinition":   taxonomy.Thriver.Definition(),
		"EnablerDefinition":   taxonomy.Enabler.Definition(),
		"SupporteeDefinition": taxonomy.Supportee.Definition(),
	})
}
