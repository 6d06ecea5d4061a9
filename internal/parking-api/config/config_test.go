// Copyright 2025 The MCP Forge Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coreconfig "github.com/mlzoo/mcp-forge/internal/config"
	"github.com/mlzoo/mcp-forge/pkg/mcp/tools"
)

func TestDefaults_AreValid(t *testing.T) {
	cfg := Defaults()
	assert.NoError(t, cfg.Validate())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PARKING_API__SERVER__PORT", "9191")
	t.Setenv("PARKING_API__BACKEND__MODE", "mock")
	t.Setenv("PARKING_API__LOGGING__LEVEL", "debug")

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, 9191, cfg.Server.Port)
	assert.Equal(t, BackendModeMock, cfg.Backend.Mode)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_RejectsUnknownBackendMode(t *testing.T) {
	t.Setenv("PARKING_API__BACKEND__MODE", "postgres")

	_, err := Load("", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "backend.mode")
}

func TestBackendConfig_SQLiteRequiresPath(t *testing.T) {
	cfg := BackendDefaults()
	cfg.Mode = BackendModeSQLite
	cfg.SQLite.Path = ""

	errs := cfg.Validate(coreconfig.NewPath("backend"))
	require.Error(t, errs.OrNil())
	assert.Contains(t, errs.OrNil().Error(), "backend.sqlite.path")
}

func TestBackendConfig_MockIgnoresSQLitePath(t *testing.T) {
	cfg := BackendDefaults()
	cfg.Mode = BackendModeMock
	cfg.SQLite.Path = ""

	assert.NoError(t, cfg.Validate(coreconfig.NewPath("backend")).OrNil())
}

func TestMCPConfig_RejectsUnknownToolset(t *testing.T) {
	cfg := MCPDefaults()
	cfg.Toolsets = append(cfg.Toolsets, "kubernetes")

	errs := cfg.Validate(coreconfig.NewPath("mcp"))
	require.Error(t, errs.OrNil())
	assert.Contains(t, errs.OrNil().Error(), "mcp.toolsets[1]")
}

func TestMCPConfig_ParseToolsets(t *testing.T) {
	cfg := MCPDefaults()
	enabled := cfg.ParseToolsets()
	assert.True(t, enabled[tools.ToolsetParking])
}

func TestServerConfig_RejectsInvalidPort(t *testing.T) {
	cfg := ServerDefaults()
	cfg.Port = 0

	errs := cfg.Validate(coreconfig.NewPath("server"))
	require.Error(t, errs.OrNil())
	assert.Contains(t, errs.OrNil().Error(), "server.port")
}
