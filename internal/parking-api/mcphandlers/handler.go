// Copyright 2025 The MCP Forge Authors
// SPDX-License-Identifier: Apache-2.0

// Package mcphandlers adapts MCP tool interfaces onto the service layer.
package mcphandlers

import (
	"github.com/mlzoo/mcp-forge/internal/parking-api/services"
	"github.com/mlzoo/mcp-forge/pkg/mcp/tools"
)

// MCPHandler is a thin adapter between MCP tool interfaces and the service layer.
type MCPHandler struct {
	services *services.Services
}

var _ tools.ParkingToolsetHandler = (*MCPHandler)(nil)

// NewMCPHandler creates an MCPHandler backed by the service layer.
func NewMCPHandler(svc *services.Services) *MCPHandler {
	return &MCPHandler{services: svc}
}
