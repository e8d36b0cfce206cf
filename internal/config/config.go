// Package config holds the lexicam configuration schema and its loaders.
package config

import "time"

// DefaultBackendURL is the origin the word backend listens on by default.
const DefaultBackendURL = "http://127.0.0.1:8000"

// DefaultLogFile is where logs go when no file is configured.
// The TUI owns the terminal, so logs never go to stdout.
const DefaultLogFile = "lexicam.log"

// LogLevel controls log verbosity.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// IsValid reports whether l is a recognised log level.
func (l LogLevel) IsValid() bool {
	switch l {
	case LogDebug, LogInfo, LogWarn, LogError:
		return true
	}
	return false
}

// Config is the root configuration for lexicam.
type Config struct {
	Backend   BackendConfig   `yaml:"backend"`
	Log       LogConfig       `yaml:"log"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// BackendConfig points the client at the word backend.
type BackendConfig struct {
	// URL is the backend origin, e.g. "http://127.0.0.1:8000".
	URL string `yaml:"url"`

	// Timeout bounds each request. Zero means no timeout.
	Timeout time.Duration `yaml:"timeout"`
}

// LogConfig controls the file logger.
type LogConfig struct {
	File  string   `yaml:"file"`
	Level LogLevel `yaml:"level"`
}

// TelemetryConfig controls OpenTelemetry resource naming.
// Export is enabled by OTEL_EXPORTER_OTLP_ENDPOINT, not by this file.
type TelemetryConfig struct {
	ServiceName string `yaml:"service_name"`
}

// Default returns the configuration used when nothing else is provided.
func Default() *Config {
	return &Config{
		Backend: BackendConfig{URL: DefaultBackendURL},
		Log: LogConfig{
			File:  DefaultLogFile,
			Level: LogInfo,
		},
		Telemetry: TelemetryConfig{ServiceName: "lexicam"},
	}
}
