// Package config provides environment-variable-first configuration loading
// with optional YAML file fallback for the mailenvelope tool.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/shineum/mail-envelope/internal/email"
)

// Config holds the complete application configuration.
type Config struct {
	Render   RenderConfig   `yaml:"render"`
	Defaults DefaultsConfig `yaml:"defaults"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// RenderConfig selects and tunes the output renderer.
type RenderConfig struct {
	Format          string `yaml:"format"`
	GraphSaveToSent bool   `yaml:"graph_save_to_sent"`
}

// DefaultsConfig holds values applied to messages that leave them unset.
type DefaultsConfig struct {
	From     string         `yaml:"from"`
	Sender   string         `yaml:"sender"`
	ReplyTo  []string       `yaml:"reply_to"`
	Priority email.Priority `yaml:"priority"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load loads configuration from environment variables with sensible defaults.
// Environment variables always take precedence.
func Load() (*Config, error) {
	cfg := &Config{}
	cfg.applyDefaults()
	if err := cfg.applyEnvVars(); err != nil {
		return nil, err
	}
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

	// Environment variables always override YAML values
	if err := cfg.applyEnvVars(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults sets sensible default values for all configuration fields.
func (c *Config) applyDefaults() {
	c.Render.Format = "text"
	c.Render.GraphSaveToSent = true
	c.Defaults.Priority = email.PriorityNormal
	c.Logging.Level = "info"
}

// applyEnvVars overrides configuration with environment variable values.
// Only non-empty environment variables override existing values.
func (c *Config) applyEnvVars() error {
	if v := os.Getenv("MAIL_RENDER_FORMAT"); v != "" {
		c.Render.Format = strings.ToLower(v)
	}
	if v := os.Getenv("MAIL_GRAPH_SAVE_TO_SENT"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Render.GraphSaveToSent = b
		}
	}

	if v := os.Getenv("MAIL_DEFAULT_FROM"); v != "" {
		c.Defaults.From = v
	}
	if v := os.Getenv("MAIL_DEFAULT_SENDER"); v != "" {
		c.Defaults.Sender = v
	}
	if v := os.Getenv("MAIL_DEFAULT_REPLY_TO"); v != "" {
		c.Defaults.ReplyTo = splitList(v)
	}
	if v := os.Getenv("MAIL_DEFAULT_PRIORITY"); v != "" {
		p, err := email.ParsePriority(v)
		if err != nil {
			return fmt.Errorf("invalid MAIL_DEFAULT_PRIORITY: %w", err)
		}
		c.Defaults.Priority = p
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = strings.ToLower(v)
	}

	return nil
}

// splitList splits a comma separated list, dropping blank entries.
func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
