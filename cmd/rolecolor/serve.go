package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/rolecolor/internal/config"
	"github.com/jonathan/rolecolor/internal/llm"
	"github.com/jonathan/rolecolor/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the RoleColor HTTP API server",
	Long:  "Serves the scoring and rewrite endpoints over HTTP: POST /score, POST /rewrite, GET /health.",
	RunE:  runServe,
}

const defaultServePort = 8080

var (
	servePort         int
	serveTaxonomyFile string
	serveConfigFile   string
	serveProvider     string
	serveAPIKey       string
)

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", defaultServePort, "Port to listen on")
	serveCmd.Flags().StringVarP(&serveTaxonomyFile, "taxonomy", "t", "", "Path to taxonomy override JSON file")
	serveCmd.Flags().StringVar(&serveConfigFile, "config", "", "Path to JSON config file")
	serveCmd.Flags().StringVar(&serveProvider, "provider", "", "LLM provider: groq or gemini (default \"groq\")")
	serveCmd.Flags().StringVar(&serveAPIKey, "api-key", "", "API key (overrides the GROQ_API_KEY / GEMINI_API_KEY env var)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	serverCfg, err := resolveServerConfig(cmd)
	if err != nil {
		return err
	}

	return server.New(serverCfg).Run(context.Background())
}

// resolveServerConfig merges the serve flags with the optional config file
// into a ready server configuration. An explicit --port beats the file; a
// port flag left at its default defers to the file value.
func resolveServerConfig(cmd *cobra.Command) (server.Config, error) {
	port := 0
	if flagChanged(cmd, "port") {
		port = servePort
	}

	cfg, err := mergedConfig(serveConfigFile, config.Config{
		Taxonomy: serveTaxonomyFile,
		Provider: serveProvider,
		APIKey:   serveAPIKey,
		Port:     port,
	})
	if err != nil {
		return server.Config{}, err
	}
	if cfg.Port == 0 {
		cfg.Port = defaultServePort
	}

	llmConfig, err := llm.DefaultConfigFor(llm.Provider(cfg.Provider))
	if err != nil {
		return server.Config{}, err
	}
	if cfg.Model != "" {
		llmConfig.Primary = cfg.Model
	}
	if cfg.FallbackModel != "" {
		llmConfig.Fallback = cfg.FallbackModel
	}

	// The rewrite endpoint degrades to 503 without a key; scoring works
	// regardless.
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv(llmConfig.Provider.KeyEnvVar())
	}

	tax, err := loadTaxonomy(cfg.Taxonomy)
	if err != nil {
		return server.Config{}, err
	}

	return server.Config{
		Port:         cfg.Port,
		APIKey:       apiKey,
		DefaultTitle: cfg.Title,
		Taxonomy:     tax,
		LLM:          llmConfig,
	}, nil
}
