// Copyright 2025 The MCP Forge Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
)

type testServerConfig struct {
	Port        int           `koanf:"port"`
	ReadTimeout time.Duration `koanf:"read_timeout"`
}

type testLoggingConfig struct {
	Level string `koanf:"level"`
}

type testConfig struct {
	Server  testServerConfig  `koanf:"server"`
	Logging testLoggingConfig `koanf:"logging"`
}

func testDefaults() testConfig {
	return testConfig{
		Server: testServerConfig{
			Port:        8002,
			ReadTimeout: 15 * time.Second,
		},
		Logging: testLoggingConfig{
			Level: "info",
		},
	}
}

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return path
}

func TestLoader_StructDefaults(t *testing.T) {
	loader := NewLoader("FORGE_TEST")
	if err := loader.LoadWithDefaults(testDefaults(), ""); err != nil {
		t.Fatalf("LoadWithDefaults failed: %v", err)
	}

	var cfg testConfig
	if err := loader.Unmarshal("", &cfg); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if cfg.Server.Port != 8002 {
		t.Errorf("expected port 8002, got %d", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 15*time.Second {
		t.Errorf("expected read_timeout 15s, got %v", cfg.Server.ReadTimeout)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected level info, got %s", cfg.Logging.Level)
	}
}

func TestLoader_ConfigFileOverridesDefaults(t *testing.T) {
	configPath := writeTestConfig(t, `
server:
  port: 9090
  read_timeout: 30s
logging:
  level: debug
`)

	loader := NewLoader("FORGE_TEST")
	if err := loader.LoadWithDefaults(testDefaults(), configPath); err != nil {
		t.Fatalf("LoadWithDefaults failed: %v", err)
	}

	var cfg testConfig
	if err := loader.Unmarshal("", &cfg); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090 from config file, got %d", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 30*time.Second {
		t.Errorf("expected read_timeout 30s from config file, got %v", cfg.Server.ReadTimeout)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected level debug from config file, got %s", cfg.Logging.Level)
	}
}

func TestLoader_EnvVarsOverrideConfigFile(t *testing.T) {
	configPath := writeTestConfig(t, `
server:
  port: 9090
logging:
  level: debug
`)

	// Double underscore for nesting
	t.Setenv("FORGE_TEST__SERVER__PORT", "7070")
	t.Setenv("FORGE_TEST__LOGGING__LEVEL", "warn")

	loader := NewLoader("FORGE_TEST")
	if err := loader.LoadWithDefaults(testDefaults(), configPath); err != nil {
		t.Fatalf("LoadWithDefaults failed: %v", err)
	}

	var cfg testConfig
	if err := loader.Unmarshal("", &cfg); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if cfg.Server.Port != 7070 {
		t.Errorf("expected port 7070 from env, got %d", cfg.Server.Port)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected level warn from env, got %s", cfg.Logging.Level)
	}
}

func TestLoader_MissingConfigFile(t *testing.T) {
	loader := NewLoader("FORGE_TEST")
	err := loader.LoadWithDefaults(testDefaults(), filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing config file, got nil")
	}
}

func TestLoader_FlagOverridesWinOverEnv(t *testing.T) {
	t.Setenv("FORGE_TEST__SERVER__PORT", "7070")

	loader := NewLoader("FORGE_TEST")
	if err := loader.LoadWithDefaults(testDefaults(), ""); err != nil {
		t.Fatalf("LoadWithDefaults failed: %v", err)
	}

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("port", 0, "")
	if err := flags.Parse([]string{"--port", "6060"}); err != nil {
		t.Fatalf("flag parse failed: %v", err)
	}

	if err := loader.LoadFlags(flags, map[string]string{"port": "server.port"}); err != nil {
		t.Fatalf("LoadFlags failed: %v", err)
	}

	var cfg testConfig
	if err := loader.Unmarshal("", &cfg); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if cfg.Server.Port != 6060 {
		t.Errorf("expected port 6060 from flag, got %d", cfg.Server.Port)
	}
}

func TestLoader_UnsetFlagsAreIgnored(t *testing.T) {
	loader := NewLoader("FORGE_TEST")
	if err := loader.LoadWithDefaults(testDefaults(), ""); err != nil {
		t.Fatalf("LoadWithDefaults failed: %v", err)
	}

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("port", 0, "")

	if err := loader.LoadFlags(flags, map[string]string{"port": "server.port"}); err != nil {
		t.Fatalf("LoadFlags failed: %v", err)
	}

	var cfg testConfig
	if err := loader.Unmarshal("", &cfg); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if cfg.Server.Port != 8002 {
		t.Errorf("expected default port 8002, got %d", cfg.Server.Port)
	}
}

func TestLoader_ToYAML(t *testing.T) {
	loader := NewLoader("FORGE_TEST")
	if err := loader.LoadWithDefaults(testDefaults(), ""); err != nil {
		t.Fatalf("LoadWithDefaults failed: %v", err)
	}

	out, err := loader.ToYAML()
	if err != nil {
		t.Fatalf("ToYAML failed: %v", err)
	}
	if len(out) == 0 {
		t.Error("expected non-empty YAML output")
	}
}
