package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/camm-health/stayload/internal/model"
)

// Config holds all runtime configuration for a stayload run.
type Config struct {
	FilePath   string // roster file to import/plan/push
	OutPath    string // JSON output for import results
	FromPath   string // JSON input for export
	OutDir     string // directory for generated workbooks
	APIBaseURL string // remote import service base URL
	APITimeout time.Duration
	LogFormat  string // "text" or "json"

	// HeaderAliases adds accepted header spellings per logical field key,
	// tried after the built-in ones.
	HeaderAliases map[string][]string `yaml:"header_aliases"`
}

// yamlConfig is the on-disk YAML structure.
type yamlConfig struct {
	APIURL        string              `yaml:"api_url"`
	HeaderAliases map[string][]string `yaml:"header_aliases"`
}

// LoadFromFile reads a YAML config file and merges its values into Config.
// Flag values win: the file's api_url applies only when no flag set one.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	if c.APIBaseURL == "" {
		c.APIBaseURL = yc.APIURL
	}
	c.HeaderAliases = yc.HeaderAliases
	return c.validateAliases()
}

// validateAliases checks that every alias key names a known logical field.
func (c *Config) validateAliases() error {
	for key := range c.HeaderAliases {
		if _, ok := model.FieldByKey(key); !ok {
			return fmt.Errorf("unknown field %q in header_aliases", key)
		}
	}
	return nil
}

// Validate checks required fields for local file operations.
func (c *Config) Validate() error {
	if c.FilePath == "" {
		return fmt.Errorf("--file is required")
	}
	if _, err := os.Stat(c.FilePath); err != nil {
		return fmt.Errorf("file not accessible: %w", err)
	}
	return nil
}

// ValidateWithAPI checks both the file and the remote service URL.
func (c *Config) ValidateWithAPI() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.APIBaseURL == "" {
		return fmt.Errorf("--api-url or STAYLOAD_API_URL is required")
	}
	return nil
}

// ValidateExport checks the inputs of the export command.
func (c *Config) ValidateExport() error {
	if c.FromPath == "" {
		return fmt.Errorf("--from is required")
	}
	if _, err := os.Stat(c.FromPath); err != nil {
		return fmt.Errorf("records file not accessible: %w", err)
	}
	return nil
}
