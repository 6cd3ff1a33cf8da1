// Package main provides the entry point for the RoleColor CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rolecolor",
	Short: "RoleColor resume archetype classifier",
	Long:  "RoleColor classifies resume text into one of four behavioral archetypes (Builder, Thriver, Enabler, Supportee) via weighted keyword scoring, and can rewrite the resume summary to emphasize the dominant archetype.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
