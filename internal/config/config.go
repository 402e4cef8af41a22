// Package config reads server settings from the environment.
package config

import (
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ironsheep/edge-tools-mcp/internal/logger"
)

// Environment variable names.
const (
	EnvLogLevel  = "EDGE_MCP_LOG_LEVEL"
	EnvLogFormat = "EDGE_MCP_LOG_FORMAT"
)

// Config holds the settings for one server process.
type Config struct {
	// LogLevel is the minimum level written to stderr.
	LogLevel zerolog.Level

	// ConsoleLog selects human-readable log lines instead of JSON.
	ConsoleLog bool
}

// FromEnv reads the configuration from the process environment.
func FromEnv() Config {
	return FromLookup(os.LookupEnv)
}

// FromLookup reads the configuration through lookup, which has the signature
// of os.LookupEnv.
func FromLookup(lookup func(string) (string, bool)) Config {
	cfg := Config{LogLevel: zerolog.InfoLevel}
	if v, ok := lookup(EnvLogLevel); ok {
		cfg.LogLevel = logger.ParseLevel(v)
	}
	if v, ok := lookup(EnvLogFormat); ok {
		cfg.ConsoleLog = strings.EqualFold(strings.TrimSpace(v), "console")
	}
	return cfg
}
