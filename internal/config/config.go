// Package config provides configuration loading for the Workspace MCP
// server: an optional YAML file as the base layer, overridden by
// environment variables, overridden by command-line flags.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/obe711/google-workspace-mcp/internal/format"
	"github.com/obe711/google-workspace-mcp/internal/google"
)

// Config holds the complete server configuration.
type Config struct {
	Workspace WorkspaceConfig `yaml:"workspace"`
	Limits    LimitsConfig    `yaml:"limits"`
}

// WorkspaceConfig holds the delegated service-account settings.
type WorkspaceConfig struct {
	// CredentialsFile is the path to the service-account JSON key with
	// domain-wide delegation.
	CredentialsFile string `yaml:"credentials_file"`

	// DefaultUser is the identity impersonated when a tool call does not
	// name one.
	DefaultUser string `yaml:"default_user"`
}

// LimitsConfig holds the output truncation limits.
type LimitsConfig struct {
	// BodyLimit caps message and document body output, in characters.
	BodyLimit int `yaml:"body_limit"`

	// BulkLimit caps spreadsheet, document and presentation dumps, in
	// characters.
	BulkLimit int `yaml:"bulk_limit"`
}

// Load loads configuration from environment variables with defaults.
func Load() (*Config, error) {
	cfg := &Config{}
	cfg.applyDefaults()
	cfg.applyEnvVars()
	return cfg, nil
}

// LoadFromFile loads configuration from a YAML file as the base layer,
// then overrides with environment variables. Returns an error if the
// specified file path does not exist.
func LoadFromFile(path string) (*Config, error) {
	cfg := &Config{}
	cfg.applyDefaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyEnvVars()

	return cfg, nil
}

// Validate checks that the settings required to serve exist.
func (c *Config) Validate() error {
	if c.Workspace.CredentialsFile == "" {
		return fmt.Errorf("service account credentials not configured: set workspace.credentials_file or %s", google.EnvCredentialsFile)
	}
	if c.Limits.BodyLimit <= 0 {
		return fmt.Errorf("limits.body_limit must be positive")
	}
	if c.Limits.BulkLimit <= 0 {
		return fmt.Errorf("limits.bulk_limit must be positive")
	}
	return nil
}

func (c *Config) applyDefaults() {
	c.Limits.BodyLimit = format.DefaultBodyLimit
	c.Limits.BulkLimit = format.DefaultBulkLimit
}

// applyEnvVars overrides configuration with environment variable values.
// Only non-empty environment variables override existing values.
func (c *Config) applyEnvVars() {
	if v := os.Getenv(google.EnvCredentialsFile); v != "" {
		c.Workspace.CredentialsFile = v
	}
	if v := os.Getenv(google.EnvDefaultUser); v != "" {
		c.Workspace.DefaultUser = v
	}
	if v := os.Getenv("GOOGLE_WORKSPACE_BODY_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Limits.BodyLimit = n
		}
	}
	if v := os.Getenv("GOOGLE_WORKSPACE_BULK_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Limits.BulkLimit = n
		}
	}
}
