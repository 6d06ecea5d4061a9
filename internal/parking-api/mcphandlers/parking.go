// Copyright 2025 The MCP Forge Authors
// SPDX-License-Identifier: Apache-2.0

package mcphandlers

import (
	"context"

	"github.com/mlzoo/mcp-forge/internal/parking-api/models"
)

// FindNearbyParking reuses the same request model and service call as the
// HTTP route, so the tool surface and the API surface cannot drift apart.
func (h *MCPHandler) FindNearbyParking(ctx context.Context, address string, radiusKm float64, limit int) (any, error) {
	req := &models.NearbyParkingRequest{
		Address:  address,
		RadiusKm: radiusKm,
		Limit:    limit,
	}
	req.Sanitize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	return h.services.ParkingService.FindNearbyParkingLots(ctx, req)
}

func (h *MCPHandler) GetParkingInfo(ctx context.Context, parkingLotID string) (any, error) {
	return h.services.ParkingService.GetParkingLotDetails(ctx, parkingLotID)
}
