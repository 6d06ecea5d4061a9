// Copyright 2025 The MCP Forge Authors
// SPDX-License-Identifier: Apache-2.0

package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Tool names are stable, explicit operation identifiers. They deliberately
// do not encode the HTTP path or method, so route refactors never rename a
// published tool.

func (t *Toolsets) RegisterFindNearbyParking(s *mcp.Server) {
	mcp.AddTool(s, &mcp.Tool{
		Name: "find_nearby_parking",
		Description: "Find parking lots near an address, sorted by distance. Returns each lot's " +
			"ID, name, address, distance in kilometers, availability, and hourly rate.",
		InputSchema: createSchema(map[string]any{
			"address":   stringProperty("Address to search around"),
			"radius_km": numberProperty("Search radius in kilometers (default 1.0)"),
			"limit":     intProperty("Maximum number of results to return (default 20)"),
		}, []string{"address"}),
	}, func(ctx context.Context, req *mcp.CallToolRequest, args struct {
		Address  string  `json:"address"`
		RadiusKm float64 `json:"radius_km"`
		Limit    int     `json:"limit"`
	}) (*mcp.CallToolResult, any, error) {
		result, err := t.ParkingToolset.FindNearbyParking(ctx, args.Address, args.RadiusKm, args.Limit)
		return handleToolResult(result, err)
	})
}

func (t *Toolsets) RegisterGetParkingInfo(s *mcp.Server) {
	mcp.AddTool(s, &mcp.Tool{
		Name: "get_parking_info",
		Description: "Get detailed information about a specific parking lot including availability, " +
			"business hours, features, payment methods, and real-time congestion.",
		InputSchema: createSchema(map[string]any{
			"parking_lot_id": stringProperty("Use find_nearby_parking to discover valid IDs"),
		}, []string{"parking_lot_id"}),
	}, func(ctx context.Context, req *mcp.CallToolRequest, args struct {
		ParkingLotID string `json:"parking_lot_id"`
	}) (*mcp.CallToolResult, any, error) {
		result, err := t.ParkingToolset.GetParkingInfo(ctx, args.ParkingLotID)
		return handleToolResult(result, err)
	})
}
