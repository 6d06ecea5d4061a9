// Copyright 2025 The MCP Forge Authors
// SPDX-License-Identifier: Apache-2.0

// Package config defines the configuration surface of the parking API server.
package config

import (
	"fmt"

	"github.com/spf13/pflag"

	coreconfig "github.com/mlzoo/mcp-forge/internal/config"
)

// EnvPrefix is the environment variable prefix for all settings.
// Nesting uses double underscore: PARKING_API__BACKEND__MODE=sqlite.
const EnvPrefix = "PARKING_API"

// Config is the top-level configuration for the parking API server.
type Config struct {
	// Server defines HTTP server settings.
	Server ServerConfig `koanf:"server"`
	// Backend selects and configures the parking service implementation.
	Backend BackendConfig `koanf:"backend"`
	// MCP defines Model Context Protocol server settings.
	MCP MCPConfig `koanf:"mcp"`
	// Logging defines logging settings.
	Logging LoggingConfig `koanf:"logging"`
}

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		Server:  ServerDefaults(),
		Backend: BackendDefaults(),
		MCP:     MCPDefaults(),
		Logging: LoggingDefaults(),
	}
}

// FlagMappings maps CLI flag names to configuration keys for loader overrides.
func FlagMappings() map[string]string {
	return map[string]string{
		"port":         "server.port",
		"backend-mode": "backend.mode",
	}
}

// Load loads configuration from defaults, the optional YAML file at
// configPath, PARKING_API__* environment variables, and finally any
// explicitly set flags, in increasing priority.
func Load(configPath string, flags *pflag.FlagSet) (*Config, error) {
	loader := coreconfig.NewLoader(EnvPrefix)

	if err := loader.LoadWithDefaults(Defaults(), configPath); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if flags != nil {
		if err := loader.LoadFlags(flags, FlagMappings()); err != nil {
			return nil, fmt.Errorf("failed to apply flag overrides: %w", err)
		}
	}

	var cfg Config
	if err := loader.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// Dump renders the effective configuration as YAML after applying the same
// source priority as Load. Intended for the serve --print-config flag.
func Dump(configPath string, flags *pflag.FlagSet) ([]byte, error) {
	loader := coreconfig.NewLoader(EnvPrefix)

	if err := loader.LoadWithDefaults(Defaults(), configPath); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if flags != nil {
		if err := loader.LoadFlags(flags, FlagMappings()); err != nil {
			return nil, fmt.Errorf("failed to apply flag overrides: %w", err)
		}
	}

	return loader.ToYAML()
}

// Validate validates the whole configuration tree.
func (c *Config) Validate() error {
	var errs coreconfig.ValidationErrors

	errs = append(errs, c.Server.Validate(coreconfig.NewPath("server"))...)
	errs = append(errs, c.Backend.Validate(coreconfig.NewPath("backend"))...)
	errs = append(errs, c.MCP.Validate(coreconfig.NewPath("mcp"))...)
	errs = append(errs, c.Logging.Validate(coreconfig.NewPath("logging"))...)

	return errs.OrNil()
}
