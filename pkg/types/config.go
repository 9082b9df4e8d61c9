// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared settings for outbound requests to Wikidata and Wikipedia.
type HTTPConfig struct {
	// Timeout is the per-request timeout applied to every upstream call.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent identifies the application to the Wikimedia APIs
	// (e.g. "WikidataSmartSummary/1.0").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// ServerConfig holds settings for the HTTP API.
type ServerConfig struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string `json:"addr" yaml:"addr" mapstructure:"addr"`

	// Mode is the gin mode: debug, release, or test.
	Mode string `json:"mode" yaml:"mode" mapstructure:"mode"`
}

// LogConfig selects the slog handler and level.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Format is one of pretty, json, text.
	Format string `json:"format" yaml:"format" mapstructure:"format"`
}

// JournalConfig controls the optional lookup journal.
type JournalConfig struct {
	// Path is the SQLite database file. Empty disables the journal.
	Path string `json:"path" yaml:"path" mapstructure:"path"`
}

// Config groups all settings of the service.
type Config struct {
	HTTP    HTTPConfig    `json:"http" yaml:"http" mapstructure:"http"`
	Server  ServerConfig  `json:"server" yaml:"server" mapstructure:"server"`
	Log     LogConfig     `json:"log" yaml:"log" mapstructure:"log"`
	Journal JournalConfig `json:"journal" yaml:"journal" mapstructure:"journal"`
}

// Defaults used when neither a config file nor the environment sets a value.
const (
	DefaultUserAgent = "WikidataSmartSummary/1.0"
	DefaultTimeout   = 15 * time.Second
	DefaultAddr      = ":8080"
	DefaultLanguage  = "en"
)

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		HTTP: HTTPConfig{
			Timeout:   DefaultTimeout,
			UserAgent: DefaultUserAgent,
		},
		Server: ServerConfig{
			Addr: DefaultAddr,
			Mode: "release",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "pretty",
		},
	}
}
