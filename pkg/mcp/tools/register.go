// Copyright 2025 The MCP Forge Authors
// SPDX-License-Identifier: Apache-2.0

package tools

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RegisterFunc registers a single tool on an MCP server.
type RegisterFunc func(*mcp.Server)

// parkingToolRegistrations returns the list of parking toolset registration functions
func (t *Toolsets) parkingToolRegistrations() []RegisterFunc {
	return []RegisterFunc{
		t.RegisterFindNearbyParking,
		t.RegisterGetParkingInfo,
	}
}

// Register registers the tools of every enabled toolset on the server.
func (t *Toolsets) Register(s *mcp.Server) {
	// Register parking tools if ParkingToolset is enabled
	if t.ParkingToolset != nil {
		for _, registerFunc := range t.parkingToolRegistrations() {
			registerFunc(s)
		}
	}
}
