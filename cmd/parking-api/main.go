// Copyright 2025 The MCP Forge Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/mlzoo/mcp-forge/internal/logging"
	"github.com/mlzoo/mcp-forge/internal/parking-api/config"
	"github.com/mlzoo/mcp-forge/internal/parking-api/handlers"
	"github.com/mlzoo/mcp-forge/internal/parking-api/mcphandlers"
	"github.com/mlzoo/mcp-forge/internal/parking-api/services"
	"github.com/mlzoo/mcp-forge/internal/server"
	"github.com/mlzoo/mcp-forge/pkg/mcp"
	"github.com/mlzoo/mcp-forge/pkg/mcp/tools"
)

var (
	configPath  string
	printConfig bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "parking-api",
		Short:         "Parking API server with MCP tool exposure",
		Long:          "Serves the parking lookup API and republishes its capabilities as MCP tools under the configured mount path.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", os.Getenv("PARKING_API_CONFIG_PATH"),
		"path to the YAML config file (optional)")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE:  runServe,
	}
	serveCmd.Flags().Int("port", 0, "HTTP server port (overrides config)")
	serveCmd.Flags().String("backend-mode", "", "backend implementation to use: mock or sqlite (overrides config)")
	serveCmd.Flags().BoolVar(&printConfig, "print-config", false, "print the effective configuration as YAML and exit")

	stdioCmd := &cobra.Command{
		Use:   "mcp-stdio",
		Short: "Run the MCP server over stdio",
		Long:  "Serves the parking toolsets over an MCP stdio transport, for clients that spawn the server as a subprocess.",
		RunE:  runSTDIO,
	}
	stdioCmd.Flags().String("backend-mode", "", "backend implementation to use: mock or sqlite (overrides config)")

	rootCmd.AddCommand(serveCmd, stdioCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	if printConfig {
		out, err := config.Dump(configPath, cmd.Flags())
		if err != nil {
			return err
		}
		fmt.Print(string(out))
		return nil
	}

	// Configuration errors are fatal at startup, never deferred to a request.
	cfg, err := config.Load(configPath, cmd.Flags())
	if err != nil {
		return err
	}

	baseLogger := logging.New(cfg.Logging.ToLoggingConfig())
	slog.SetDefault(baseLogger)

	// Create shutdown context
	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Initialize services; the provider fails fast on an unknown backend mode
	svc, err := services.NewServices(&cfg.Backend, baseLogger)
	if err != nil {
		baseLogger.Error("Failed to initialize services", slog.Any("error", err))
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			baseLogger.Error("Failed to close services", slog.Any("error", err))
		}
	}()

	baseLogger.Info("Parking services initialized", slog.String("backend", cfg.Backend.Mode))

	// Initialize HTTP handlers
	handler := handlers.New(svc, cfg, baseLogger.With("component", "handlers"))

	srv := server.New(cfg.Server.ToServerConfig(), handler.Routes(), baseLogger)
	if err := srv.Run(ctx); err != nil {
		baseLogger.Error("Server error", slog.Any("error", err))
		return err
	}

	baseLogger.Info("Server stopped gracefully")
	return nil
}

func runSTDIO(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath, cmd.Flags())
	if err != nil {
		return err
	}

	// Stdout carries the MCP transport, so logs must go to stderr.
	baseLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	svc, err := services.NewServices(&cfg.Backend, baseLogger)
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			baseLogger.Error("Failed to close services", slog.Any("error", err))
		}
	}()

	toolsets := &tools.Toolsets{
		ParkingToolset: mcphandlers.NewMCPHandler(svc),
	}

	return mcp.NewSTDIO(toolsets).Run(ctx, &mcpsdk.StdioTransport{})
}
