package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Imran-Rifat/Solo-leveling-backend/internal/config"
	"github.com/Imran-Rifat/Solo-leveling-backend/internal/server"
)

var serveCommand = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Starts the REST API that serves the career catalog, CV skills analysis,
roadmap generation, dashboard insights, job matching and lesson generation.

Requires GEMINI_API_KEY in the environment (or a .env file). The listen port
comes from --port, the PORT environment variable, or defaults to 8080.`,
	RunE: runServeCmd,
}

var servePort int

func init() {
	serveCommand.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on (overrides PORT env var)")

	rootCmd.AddCommand(serveCommand)
}

func runServeCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}

	srv, err := server.New(server.Config{
		Port:   cfg.Port,
		APIKey: cfg.GeminiAPIKey,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
