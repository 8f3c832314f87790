// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// EngineBackend identifies how the docling engine is launched.
type EngineBackend string

const (
	BackendContainer EngineBackend = "container"
	BackendCommand   EngineBackend = "command"
)

// EngineConfig holds settings for the conversion engine.
type EngineConfig struct {
	// Backend selects the launcher: container or command.
	Backend EngineBackend `json:"backend" yaml:"backend" mapstructure:"backend"`

	// Image is the docling image run by the container backend.
	Image string `json:"image" yaml:"image" mapstructure:"image"`

	// Runtime is the container runtime: auto, docker, or podman.
	Runtime string `json:"runtime" yaml:"runtime" mapstructure:"runtime"`

	// Command is the local executable run by the command backend.
	Command string `json:"command" yaml:"command" mapstructure:"command"`
}

// LogConfig holds diagnostic logging settings. Logs go to stderr only.
type LogConfig struct {
	// Level is a zap level name: debug, info, warn, or error.
	Level string `json:"level" yaml:"level" mapstructure:"level"`
}

// Config groups all settings read from flags, environment and config file.
type Config struct {
	Engine EngineConfig `json:"engine" yaml:"engine" mapstructure:"engine"`
	Log    LogConfig    `json:"log" yaml:"log" mapstructure:"log"`
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Engine: EngineConfig{
			Backend: BackendContainer,
			Image:   "docling-json:latest",
			Runtime: "auto",
			Command: "docling-json",
		},
		Log: LogConfig{Level: "warn"},
	}
}
