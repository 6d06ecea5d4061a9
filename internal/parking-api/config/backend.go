// Copyright 2025 The MCP Forge Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"github.com/mlzoo/mcp-forge/internal/config"
)

// Backend modes selecting which parking service implementation serves requests.
const (
	// BackendModeMock serves deterministic synthetic data with no I/O.
	BackendModeMock = "mock"
	// BackendModeSQLite serves data from a SQLite database.
	BackendModeSQLite = "sqlite"
)

// BackendConfig selects and configures the parking service implementation.
type BackendConfig struct {
	// Mode is the implementation variant to use (mock, sqlite).
	Mode string `koanf:"mode"`
	// SQLite configures the sqlite backend. Ignored in mock mode.
	SQLite SQLiteConfig `koanf:"sqlite"`
}

// SQLiteConfig defines sqlite backend settings.
type SQLiteConfig struct {
	// Path is the sqlite database file path.
	Path string `koanf:"path"`
	// Seed populates the database with the demo parking lot catalog on startup.
	Seed bool `koanf:"seed"`
}

// BackendDefaults returns the default backend configuration.
func BackendDefaults() BackendConfig {
	return BackendConfig{
		Mode: BackendModeMock,
		SQLite: SQLiteConfig{
			Path: "parking.db",
			Seed: true,
		},
	}
}

// Validate validates the backend configuration.
func (c *BackendConfig) Validate(path *config.Path) config.ValidationErrors {
	var errs config.ValidationErrors

	if err := config.MustBeOneOf(path.Child("mode"), c.Mode, []string{BackendModeMock, BackendModeSQLite}); err != nil {
		errs = append(errs, err)
	}

	if c.Mode == BackendModeSQLite {
		if err := config.MustNotBeEmpty(path.Child("sqlite").Child("path"), c.SQLite.Path); err != nil {
			errs = append(errs, err)
		}
	}

	return errs
}
