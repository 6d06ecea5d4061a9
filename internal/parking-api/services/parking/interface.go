// Copyright 2025 The MCP Forge Authors
// SPDX-License-Identifier: Apache-2.0

// Package parking defines the parking service contract and its implementations.
package parking

import (
	"context"

	"github.com/mlzoo/mcp-forge/internal/parking-api/models"
)

// Service defines the parking service contract.
// Every implementation variant (mock, sqlite) must satisfy it; conformance
// is enforced at compile time via the var _ Service assertions in each
// implementation file.
type Service interface {
	// FindNearbyParkingLots returns parking lots within the request radius of
	// the request address, sorted by distance, at most Limit entries.
	FindNearbyParkingLots(ctx context.Context, req *models.NearbyParkingRequest) (*models.NearbySearchResult, error)
	// GetParkingLotDetails returns the full detail record for a parking lot.
	GetParkingLotDetails(ctx context.Context, parkingLotID string) (*models.ParkingLotDetails, error)
}
