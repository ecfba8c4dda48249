// Package config centralizes rxscan configuration loaded from files,
// environment variables and command-line flags.
package config

import (
	"fmt"
)

// Config represents the complete configuration for rxscan. It covers
// the decode cascade, the HTTP server, the drug-database lookup and
// output formatting.
type Config struct {
	// Global settings
	LogLevel string `mapstructure:"log_level" yaml:"log_level" json:"log_level"`
	Verbose  bool   `mapstructure:"verbose" yaml:"verbose" json:"verbose"`

	Decode DecodeConfig `mapstructure:"decode" yaml:"decode" json:"decode"`
	Output OutputConfig `mapstructure:"output" yaml:"output" json:"output"`
	Server ServerConfig `mapstructure:"server" yaml:"server" json:"server"`
	Lookup LookupConfig `mapstructure:"lookup" yaml:"lookup" json:"lookup"`
}

// DecodeConfig contains decode cascade settings.
type DecodeConfig struct {
	// TryHarder enables exhaustive symbol search on the aggressive
	// strategies (slower, more robust).
	TryHarder bool `mapstructure:"try_harder" yaml:"try_harder" json:"try_harder"`
	// MaxSymbols caps how many symbols one attempt may consider when
	// filtering for validity.
	MaxSymbols int `mapstructure:"max_symbols" yaml:"max_symbols" json:"max_symbols"`
}

// OutputConfig contains output formatting settings.
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format" json:"format"` // text or json
}

// ServerConfig contains settings for the serve command.
type ServerConfig struct {
	Host            string `mapstructure:"host" yaml:"host" json:"host"`
	Port            int    `mapstructure:"port" yaml:"port" json:"port"`
	CORSOrigin      string `mapstructure:"cors_origin" yaml:"cors_origin" json:"cors_origin"`
	MaxUploadMB     int64  `mapstructure:"max_upload_mb" yaml:"max_upload_mb" json:"max_upload_mb"`
	TimeoutSec      int    `mapstructure:"timeout_sec" yaml:"timeout_sec" json:"timeout_sec"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout" json:"shutdown_timeout"`
}

// LookupConfig contains drug-database lookup settings.
type LookupConfig struct {
	BaseURL    string `mapstructure:"base_url" yaml:"base_url" json:"base_url"`
	TimeoutSec int    `mapstructure:"timeout_sec" yaml:"timeout_sec" json:"timeout_sec"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		Verbose:  false,
		Decode: DecodeConfig{
			TryHarder:  true,
			MaxSymbols: 4,
		},
		Output: OutputConfig{
			Format: "text",
		},
		Server: ServerConfig{
			Host:            "localhost",
			Port:            8080,
			CORSOrigin:      "*",
			MaxUploadMB:     20,
			TimeoutSec:      30,
			ShutdownTimeout: 10,
		},
		Lookup: LookupConfig{
			BaseURL:    "https://api.fda.gov/drug/ndc.json",
			TimeoutSec: 10,
		},
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level: %q (must be debug, info, warn or error)", c.LogLevel)
	}

	switch c.Output.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid output.format: %q (must be text or json)", c.Output.Format)
	}

	if c.Decode.MaxSymbols < 1 {
		return fmt.Errorf("invalid decode.max_symbols: %d (must be >= 1)", c.Decode.MaxSymbols)
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port: %d", c.Server.Port)
	}
	if c.Server.MaxUploadMB < 1 {
		return fmt.Errorf("invalid server.max_upload_mb: %d (must be >= 1)", c.Server.MaxUploadMB)
	}
	if c.Server.TimeoutSec < 1 {
		return fmt.Errorf("invalid server.timeout_sec: %d (must be >= 1)", c.Server.TimeoutSec)
	}

	if c.Lookup.TimeoutSec < 1 {
		return fmt.Errorf("invalid lookup.timeout_sec: %d (must be >= 1)", c.Lookup.TimeoutSec)
	}
	return nil
}
