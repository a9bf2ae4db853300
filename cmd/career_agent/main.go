// Package main provides the entry point for the career platform HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "career_agent",
	Short: "AI Career Platform HTTP API Server",
	Long:  "Career platform backend that analyzes CVs against target careers and generates personalized learning roadmaps, dashboard insights, job matches and lessons via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
