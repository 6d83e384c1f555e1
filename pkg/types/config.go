// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// ServerConfig holds settings for the HTTP boundary.
type ServerConfig struct {
	// Addr is the listen address (default ":8080").
	Addr string `json:"addr" yaml:"addr" mapstructure:"addr"`

	// AllowedOrigins lists the CORS origins the web client is served from.
	AllowedOrigins []string `json:"allowed_origins" yaml:"allowed_origins" mapstructure:"allowed_origins"`

	// ReadTimeout bounds reading a request, headers and body (default 10s).
	ReadTimeout time.Duration `json:"read_timeout" yaml:"read_timeout" mapstructure:"read_timeout"`

	// WriteTimeout bounds writing a response (default 10s).
	WriteTimeout time.Duration `json:"write_timeout" yaml:"write_timeout" mapstructure:"write_timeout"`

	// MaxBodyBytes caps the size of a generation request body (default 64 KiB).
	MaxBodyBytes int64 `json:"max_body_bytes" yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
}

// SocialConfig holds settings for the social plan generator.
type SocialConfig struct {
	// MoodboardCap is the maximum number of moodboard keywords (default 10,
	// clamped to 6..10).
	MoodboardCap int `json:"moodboard_cap" yaml:"moodboard_cap" mapstructure:"moodboard_cap"`
}

// OutputFormat selects how a result is rendered.
type OutputFormat string

const (
	OutputMarkdown OutputFormat = "markdown"
	OutputHTML     OutputFormat = "html"
	OutputYAML     OutputFormat = "yaml"
	OutputJSON     OutputFormat = "json"
)

// Extension returns the file extension used when writing a result in f.
func (f OutputFormat) Extension() string {
	switch f {
	case OutputHTML:
		return ".html"
	case OutputYAML:
		return ".yaml"
	case OutputJSON:
		return ".json"
	default:
		return ".md"
	}
}

// OutputConfig holds settings for rendering results.
type OutputConfig struct {
	// Format is the default render format: markdown, html, yaml, or json.
	Format OutputFormat `json:"format" yaml:"format" mapstructure:"format"`

	// Dir is the directory batch runs write into (default "output").
	Dir string `json:"dir" yaml:"dir" mapstructure:"dir"`
}

// LogConfig holds logging settings for the server.
type LogConfig struct {
	// Level is "debug" or "info" (default "info").
	Level string `json:"level" yaml:"level" mapstructure:"level"`
}

// Config groups every section of copy-engine.yaml.
type Config struct {
	Server ServerConfig `json:"server" yaml:"server" mapstructure:"server"`
	Social SocialConfig `json:"social" yaml:"social" mapstructure:"social"`
	Output OutputConfig `json:"output" yaml:"output" mapstructure:"output"`
	Log    LogConfig    `json:"log" yaml:"log" mapstructure:"log"`
}
