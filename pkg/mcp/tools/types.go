// Copyright 2025 The MCP Forge Authors
// SPDX-License-Identifier: Apache-2.0

// Package tools declares the MCP toolset interfaces and tool registrations.
package tools

import (
	"context"
)

// ToolsetType represents a type of toolset that can be enabled
type ToolsetType string

const (
	ToolsetParking ToolsetType = "parking"
)

// Toolsets holds the handlers backing each enabled toolset.
// A nil handler leaves that toolset unregistered.
type Toolsets struct {
	ParkingToolset ParkingToolsetHandler
}

// ParkingToolsetHandler handles parking operations
type ParkingToolsetHandler interface {
	// FindNearbyParking searches for parking lots near an address.
	FindNearbyParking(ctx context.Context, address string, radiusKm float64, limit int) (any, error)
	// GetParkingInfo returns details for a specific parking lot.
	GetParkingInfo(ctx context.Context, parkingLotID string) (any, error)
}
