// Copyright 2025 The MCP Forge Authors
// SPDX-License-Identifier: Apache-2.0

// Package services wires service implementations from configuration.
package services

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/mlzoo/mcp-forge/internal/parking-api/config"
	"github.com/mlzoo/mcp-forge/internal/parking-api/services/parking"
)

// Services aggregates all service implementations available to handlers.
type Services struct {
	ParkingService parking.Service

	logger *slog.Logger
}

// NewServices selects and constructs service implementations from the
// backend configuration snapshot. An unknown backend mode is a
// construction-time error: the server never silently defaults and never
// fails lazily on the first request.
func NewServices(cfg *config.BackendConfig, logger *slog.Logger) (*Services, error) {
	var parkingService parking.Service

	switch cfg.Mode {
	case config.BackendModeMock:
		parkingService = parking.NewMockService(logger.With("service", "parking", "backend", "mock"))
	case config.BackendModeSQLite:
		svc, err := parking.NewSQLiteService(cfg.SQLite.Path, cfg.SQLite.Seed,
			logger.With("service", "parking", "backend", "sqlite"))
		if err != nil {
			return nil, fmt.Errorf("failed to initialize sqlite parking service: %w", err)
		}
		parkingService = svc
	default:
		return nil, fmt.Errorf("unknown backend mode %q", cfg.Mode)
	}

	return &Services{
		ParkingService: parkingService,
		logger:         logger,
	}, nil
}

// Close releases any resources held by the service implementations.
// The mock variant holds none; the sqlite variant owns a database handle.
func (s *Services) Close() error {
	if closer, ok := s.ParkingService.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			return fmt.Errorf("failed to close parking service: %w", err)
		}
	}
	return nil
}
