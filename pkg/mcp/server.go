// Copyright 2025 The MCP Forge Authors
// SPDX-License-Identifier: Apache-2.0

// Package mcp exposes registered API capabilities as MCP tools.
package mcp

import (
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mlzoo/mcp-forge/pkg/mcp/tools"
)

// NewHTTPServer builds an MCP server over the given toolsets and returns an
// http.Handler serving the streamable HTTP transport.
func NewHTTPServer(tools *tools.Toolsets) http.Handler {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "parking-api",
		Version: "1.0.0",
	}, nil)
	tools.Register(server)
	return mcp.NewStreamableHTTPHandler(func(r *http.Request) *mcp.Server {
		return server
	}, nil)
}

// NewSTDIO builds an MCP server over the given toolsets for stdio transports.
func NewSTDIO(tools *tools.Toolsets) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "parking-cli",
		Version: "1.0.0",
	}, nil)
	tools.Register(server)
	return server
}
