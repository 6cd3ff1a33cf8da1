package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/rolecolor/internal/config"
	"github.com/jonathan/rolecolor/internal/observability"
	"github.com/jonathan/rolecolor/internal/schemas"
	"github.com/jonathan/rolecolor/internal/scoring"
	"github.com/jonathan/rolecolor/internal/taxonomy"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a resume against the RoleColor taxonomy",
	Long:  "Scores resume text against the four RoleColor keyword lists and prints the normalized distribution, the dominant archetype, and the top keyword signals behind it.",
	RunE:  runScore,
}

var (
	scoreInputFile    string
	scoreTaxonomyFile string
	scoreConfigFile   string
	scoreTopK         int
	scoreJSON         bool
	scoreOutputFile   string
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreInputFile, "input", "i", "", "Path to resume .txt file (required)")
	scoreCmd.Flags().StringVarP(&scoreTaxonomyFile, "taxonomy", "t", "", "Path to taxonomy override JSON file")
	scoreCmd.Flags().StringVar(&scoreConfigFile, "config", "", "Path to JSON config file")
	scoreCmd.Flags().IntVarP(&scoreTopK, "top-k", "k", scoring.DefaultTopK, "Number of top signal keywords in the explanation")
	scoreCmd.Flags().BoolVar(&scoreJSON, "json", false, "Emit the score report as JSON instead of formatted text")
	scoreCmd.Flags().StringVarP(&scoreOutputFile, "out", "o", "", "Path to write the score report JSON file")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	topK := 0
	if flagChanged(cmd, "top-k") {
		topK = scoreTopK
	}

	cfg, err := mergedConfig(scoreConfigFile, config.Config{
		Input:    scoreInputFile,
		Taxonomy: scoreTaxonomyFile,
		TopK:     topK,
	})
	if err != nil {
		return err
	}
	if cfg.Input == "" {
		return fmt.Errorf("input file is required (use --input or the config file)")
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

	if scoreOutputFile != "" {
		if err := writeReportJSON(report, scoreOutputFile); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", scoreOutputFile)
		if scoreJSON {
			return nil
		}
	}

	if scoreJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(report)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintDistribution(report.Distribution)
	printer.PrintResult(report.Distribution, report.Explanation)
	return nil
}

// readResume reads the resume file as UTF-8 text.
func readResume(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read resume file: %w", err)
	}
	return string(data), nil
}

// loadTaxonomy loads the override taxonomy, or returns the built-in one
// when path is empty.
func loadTaxonomy(path string) (*taxonomy.Taxonomy, error) {
	if path == "" {
		return taxonomy.Default(), nil
	}
	tax, err := taxonomy.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load taxonomy: %w", err)
	}
	return tax, nil
}

// flagChanged reports whether the user set a flag explicitly. Flags left at
// their defaults defer to config-file values during merging.
func flagChanged(cmd *cobra.Command, name string) bool {
	return cmd != nil && cmd.Flags().Changed(name)
}

// mergedConfig loads the optional config file and applies it under the
// flag-supplied values.
func mergedConfig(path string, flags config.Config) (config.Config, error) {
	if path == "" {
		return flags, nil
	}

	fileCfg, err := config.LoadConfig(path)
	if err != nil {
		return config.Config{}, err
	}
	if err := fileCfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return flags.MergeWithDefaults(*fileCfg), nil
}

// writeReportJSON writes the report to a JSON file and validates it against
// the score report schema when the schema file can be found.
func writeReportJSON(report *scoring.Report, outputFile string) error {
	outputDir := filepath.Dir(outputFile)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	jsonBytes, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if err := os.WriteFile(outputFile, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	schemaPath := schemas.ResolveSchemaPath("schemas/score.schema.json")
	if schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, outputFile); err != nil {
			var validationErr *schemas.ValidationError
			if errors.As(err, &validationErr) {
				return fmt.Errorf("generated JSON does not validate against schema: %w", err)
			}
			_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate output against schema: %v\n", err)
		}
	}

	return nil
}
