// Copyright 2025 The MCP Forge Authors
// SPDX-License-Identifier: Apache-2.0

package tools

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func setupTestServer(t *testing.T) (*mcp.ClientSession, *MockParkingToolsetHandler) {
	t.Helper()
	mockHandler := NewMockParkingToolsetHandler()
	toolsets := &Toolsets{
		ParkingToolset: mockHandler,
	}
	clientSession := setupTestServerWithToolset(t, toolsets)
	return clientSession, mockHandler
}

// setupTestServerWithToolset creates a test MCP server with the provided toolsets
func setupTestServerWithToolset(t *testing.T, toolsets *Toolsets) *mcp.ClientSession {
	t.Helper()

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "test-parking-api",
		Version: "1.0.0",
	}, nil)

	toolsets.Register(server)

	// Create client connection
	ctx := context.Background()
	clientTransport, serverTransport := mcp.NewInMemoryTransports()

	_, err := server.Connect(ctx, serverTransport, nil)
	if err != nil {
		t.Fatalf("Failed to connect server: %v", err)
	}

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "test-client",
		Version: "1.0.0",
	}, nil)

	clientSession, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("Failed to connect client: %v", err)
	}

	return clientSession
}
