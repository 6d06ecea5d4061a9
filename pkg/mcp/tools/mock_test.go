// Copyright 2025 The MCP Forge Authors
// SPDX-License-Identifier: Apache-2.0

package tools

import (
	"context"
)

// MockParkingToolsetHandler implements ParkingToolsetHandler for testing.
type MockParkingToolsetHandler struct {
	// Track which methods were called and with what parameters
	calls map[string][]interface{}
}

func NewMockParkingToolsetHandler() *MockParkingToolsetHandler {
	return &MockParkingToolsetHandler{
		calls: make(map[string][]interface{}),
	}
}

func (m *MockParkingToolsetHandler) recordCall(method string, args ...interface{}) {
	m.calls[method] = append(m.calls[method], args)
}

func (m *MockParkingToolsetHandler) FindNearbyParking(ctx context.Context, address string, radiusKm float64, limit int) (any, error) {
	m.recordCall("FindNearbyParking", address, radiusKm, limit)
	return map[string]any{
		"searchAddress": address,
		"parkingLots":   []any{map[string]any{"id": "P001"}},
		"total":         1,
	}, nil
}

func (m *MockParkingToolsetHandler) GetParkingInfo(ctx context.Context, parkingLotID string) (any, error) {
	m.recordCall("GetParkingInfo", parkingLotID)
	return map[string]any{"id": parkingLotID, "name": "Test Garage"}, nil
}
