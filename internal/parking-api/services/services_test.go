// Copyright 2025 The MCP Forge Authors
// SPDX-License-Identifier: Apache-2.0

package services

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlzoo/mcp-forge/internal/parking-api/config"
	"github.com/mlzoo/mcp-forge/internal/parking-api/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewServices_MockMode(t *testing.T) {
	cfg := config.BackendConfig{Mode: config.BackendModeMock}

	svc, err := NewServices(&cfg, testLogger())
	require.NoError(t, err)
	require.NotNil(t, svc.ParkingService)

	// The mock variant must answer without any external resource.
	result, err := svc.ParkingService.FindNearbyParkingLots(context.Background(), &models.NearbyParkingRequest{
		Address:  "Taipei City Hall",
		RadiusKm: 1.0,
		Limit:    5,
	})
	require.NoError(t, err)
	assert.Equal(t, len(result.ParkingLots), result.Total)

	assert.NoError(t, svc.Close())
}

func TestNewServices_SQLiteMode(t *testing.T) {
	cfg := config.BackendConfig{
		Mode: config.BackendModeSQLite,
		SQLite: config.SQLiteConfig{
			Path: filepath.Join(t.TempDir(), "parking.db"),
			Seed: true,
		},
	}

	svc, err := NewServices(&cfg, testLogger())
	require.NoError(t, err)
	require.NotNil(t, svc.ParkingService)

	details, err := svc.ParkingService.GetParkingLotDetails(context.Background(), "P001")
	require.NoError(t, err)
	assert.Equal(t, "P001", details.ID)

	assert.NoError(t, svc.Close())
}

func TestNewServices_UnknownModeFailsAtConstruction(t *testing.T) {
	cfg := config.BackendConfig{Mode: "postgres"}

	svc, err := NewServices(&cfg, testLogger())
	require.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "unknown backend mode")
}

func TestNewServices_EmptyModeFailsAtConstruction(t *testing.T) {
	cfg := config.BackendConfig{}

	// No silent defaulting: an unset mode is a deployment defect.
	_, err := NewServices(&cfg, testLogger())
	require.Error(t, err)
}
