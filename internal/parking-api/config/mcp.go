// Copyright 2025 The MCP Forge Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"

	"github.com/mlzoo/mcp-forge/internal/config"
	"github.com/mlzoo/mcp-forge/pkg/mcp/tools"
)

// MCPConfig defines Model Context Protocol server settings.
type MCPConfig struct {
	// Enabled enables the MCP server endpoint.
	Enabled bool `koanf:"enabled"`
	// MountPath is the HTTP path the MCP endpoint is served under.
	MountPath string `koanf:"mount_path"`
	// Toolsets is the list of enabled MCP toolsets.
	Toolsets []string `koanf:"toolsets"`
}

// MCPDefaults returns the default MCP configuration.
func MCPDefaults() MCPConfig {
	return MCPConfig{
		Enabled:   true,
		MountPath: "/mcp",
		Toolsets: []string{
			string(tools.ToolsetParking),
		},
	}
}

// validToolsets is the set of valid MCP toolset names.
var validToolsets = map[string]bool{
	string(tools.ToolsetParking): true,
}

// Validate validates the MCP configuration.
func (c *MCPConfig) Validate(path *config.Path) config.ValidationErrors {
	var errs config.ValidationErrors

	if c.Enabled {
		if err := config.MustNotBeEmpty(path.Child("mount_path"), c.MountPath); err != nil {
			errs = append(errs, err)
		}
	}

	for i, ts := range c.Toolsets {
		if !validToolsets[ts] {
			errs = append(errs, config.Invalid(path.Child("toolsets").Index(i),
				fmt.Sprintf("unknown toolset %q; valid toolsets: parking", ts)))
		}
	}

	return errs
}

// ParseToolsets converts the toolset strings to a map of ToolsetType for lookup.
func (c *MCPConfig) ParseToolsets() map[tools.ToolsetType]bool {
	result := make(map[tools.ToolsetType]bool, len(c.Toolsets))
	for _, ts := range c.Toolsets {
		result[tools.ToolsetType(ts)] = true
	}
	return result
}
