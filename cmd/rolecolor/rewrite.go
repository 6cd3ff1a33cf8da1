package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/rolecolor/internal/config"
	"github.com/jonathan/rolecolor/internal/llm"
	"github.com/jonathan/rolecolor/internal/observability"
	"github.com/jonathan/rolecolor/internal/rewriting"
	"github.com/jonathan/rolecolor/internal/scoring"
)

var rewriteCmd = &cobra.Command{
	Use:   "rewrite",
	Short: "Score a resume and rewrite its summary for the dominant RoleColor",
	Long:  "Scores resume text, then asks the LLM to rewrite the resume summary as 4-6 lines emphasizing the dominant RoleColor archetype.",
	RunE:  runRewrite,
}

var (
	rewriteInputFile    string
	rewriteTaxonomyFile string
	rewriteConfigFile   string
	rewriteTitle        string
	rewriteTopK         int
	rewriteProvider     string
	rewriteAPIKey       string
	rewriteOutputFile   string
)

func init() {
	rewriteCmd.Flags().StringVarP(&rewriteInputFile, "input", "i", "", "Path to resume .txt file (required)")
	rewriteCmd.Flags().StringVarP(&rewriteTaxonomyFile, "taxonomy", "t", "", "Path to taxonomy override JSON file")
	rewriteCmd.Flags().StringVar(&rewriteConfigFile, "config", "", "Path to JSON config file")
	rewriteCmd.Flags().StringVar(&rewriteTitle, "title", "", "Title label for summary generation (default \"Engineer\")")
	rewriteCmd.Flags().IntVarP(&rewriteTopK, "top-k", "k", scoring.DefaultTopK, "Number of top signal keywords in the explanation")
	rewriteCmd.Flags().StringVar(&rewriteProvider, "provider", "", "LLM provider: groq or gemini (default \"groq\")")
	rewriteCmd.Flags().StringVar(&rewriteAPIKey, "api-key", "", "API key (overrides the GROQ_API_KEY / GEMINI_API_KEY env var)")
	rewriteCmd.Flags().StringVarP(&rewriteOutputFile, "out", "o", "", "Path to write the score report JSON file (includes the summary)")

	rootCmd.AddCommand(rewriteCmd)
}

func runRewrite(cmd *cobra.Command, _ []string) error {
	topK := 0
	if flagChanged(cmd, "top-k") {
		topK = rewriteTopK
	}

	cfg, err := mergedConfig(rewriteConfigFile, config.Config{
		Input:    rewriteInputFile,
		Taxonomy: rewriteTaxonomyFile,
		Title:    rewriteTitle,
		TopK:     topK,
		Provider: rewriteProvider,
		APIKey:   rewriteAPIKey,
	})
	if err != nil {
		return err
	}
	if cfg.Input == "" {
		return fmt.Errorf("input file is required (use --input or the config file)")
	}
	if cfg.Title == "" {
		cfg.Title = "Engineer"
	}

	llmConfig, err := llm.DefaultConfigFor(llm.Provider(cfg.Provider))
	if err != nil {
		return err
	}

	// Resolve the API key before any scoring so a missing credential fails
	// fast, before network use.
	keyEnv := llmConfig.Provider.KeyEnvVar()
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv(keyEnv)
	}
	if apiKey == "" {
		return fmt.Errorf("API key is required (set %s environment variable or use --api-key flag)", keyEnv)
	}

	text, err := readResume(cfg.Input)
	if err != nil {
		return err
	}

	tax, err := loadTaxonomy(cfg.Taxonomy)
	if err != nil {
		return err
	}

	report := scoring.NewScorer(tax).Report(text, cfg.TopK)

	if cfg.Model != "" {
		llmConfig.Primary = cfg.Model
	}
	if cfg.FallbackModel != "" {
		llmConfig.Fallback = cfg.FallbackModel
	}

	ctx := context.Background()
	summary, err := rewriting.RewriteSummaryWithConfig(ctx, llmConfig, text, report.Dominant, cfg.Title, apiKey)
	if err != nil {
		return fmt.Errorf("failed to rewrite summary: %w", err)
	}
	report.Summary = summary

	if rewriteOutputFile != "" {
		if err := writeReportJSON(report, rewriteOutputFile); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", rewriteOutputFile)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintDistribution(report.Distribution)
	printer.PrintResult(report.Distribution, report.Explanation)
	printer.PrintSummary(summary)
	return nil
}
