// Copyright 2025 The MCP Forge Authors
// SPDX-License-Identifier: Apache-2.0

// Package handlers provides the HTTP route handlers for the parking API.
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mlzoo/mcp-forge/internal/parking-api/config"
	"github.com/mlzoo/mcp-forge/internal/parking-api/mcphandlers"
	"github.com/mlzoo/mcp-forge/internal/parking-api/services"
	"github.com/mlzoo/mcp-forge/internal/server/middleware"
	"github.com/mlzoo/mcp-forge/internal/server/middleware/logger"
	"github.com/mlzoo/mcp-forge/internal/server/middleware/metrics"
	"github.com/mlzoo/mcp-forge/pkg/mcp"
	"github.com/mlzoo/mcp-forge/pkg/mcp/tools"
)

// Handler holds the services and provides HTTP handlers
type Handler struct {
	services *services.Services
	cfg      *config.Config
	logger   *slog.Logger
}

// New creates a new Handler instance
func New(services *services.Services, cfg *config.Config, logger *slog.Logger) *Handler {
	return &Handler{
		services: services,
		cfg:      cfg,
		logger:   logger,
	}
}

// Routes sets up all HTTP routes and returns the configured handler
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	v1 := "/api/v1"

	// Global middlewares - applies to all routes
	loggerMiddleware := logger.Middleware(h.logger)
	routes := middleware.NewRouteBuilder(mux).With(loggerMiddleware, metrics.Middleware)

	// Health & Readiness checks
	routes.HandleFunc("GET /health", h.Health)
	routes.HandleFunc("GET /ready", h.Ready)

	// Prometheus metrics
	routes.Handle("GET /metrics", promhttp.Handler())

	// Parking operations
	routes.HandleFunc("POST "+v1+"/parking-lots/nearby", h.FindNearbyParkingLots)
	routes.HandleFunc("GET "+v1+"/parking-lots/{parkingLotID}", h.GetParkingLot)

	// MCP endpoint republishing parking capabilities as AI-callable tools
	if h.cfg.MCP.Enabled {
		routes.Handle(h.cfg.MCP.MountPath, mcp.NewHTTPServer(h.mcpToolsets()))
	}

	return mux
}

// mcpToolsets builds the toolsets enabled by configuration, all backed by
// the same service layer the HTTP routes use.
func (h *Handler) mcpToolsets() *tools.Toolsets {
	enabled := h.cfg.MCP.ParseToolsets()
	mcpHandler := mcphandlers.NewMCPHandler(h.services)

	toolsets := &tools.Toolsets{}
	if enabled[tools.ToolsetParking] {
		toolsets.ParkingToolset = mcpHandler
	}
	return toolsets
}
