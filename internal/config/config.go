// Package config loads postpipe settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/gaurav-prasanna/postpipe/crawl"
	"gopkg.in/yaml.v3"
)

// Formats lists the output formats postpipe can render.
var Formats = []string{"html", "markdown", "json", "pdf"}

// LogLevels lists the accepted log levels.
var LogLevels = []string{"debug", "info", "warn", "error"}

// FetchConfig configures how post sources are loaded.
type FetchConfig struct {
	Timeout   time.Duration `yaml:"timeout"`
	UserAgent string        `yaml:"user_agent"`
}

// UnmarshalYAML decodes the timeout from a duration string such as "15s".
// Keys that are absent keep their current values.
func (f *FetchConfig) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Timeout   string `yaml:"timeout"`
		UserAgent string `yaml:"user_agent"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}

	if raw.Timeout != "" {
		timeout, err := time.ParseDuration(raw.Timeout)
		if err != nil {
			return fmt.Errorf("invalid fetch timeout '%s': %w", raw.Timeout, err)
		}
		f.Timeout = timeout
	}
	if raw.UserAgent != "" {
		f.UserAgent = raw.UserAgent
	}
	return nil
}

// Config represents the postpipe configuration.
type Config struct {
	OutputDir    string      `yaml:"output_dir"`
	Format       string      `yaml:"format"`
	StrictBlocks bool        `yaml:"strict_blocks"`
	Sanitize     bool        `yaml:"sanitize"`
	PostPrefix   string      `yaml:"post_prefix"`
	ExcerptWords int         `yaml:"excerpt_words"`
	LogLevel     string      `yaml:"log_level"`
	Fetch        FetchConfig `yaml:"fetch"`
}

// DefaultConfig returns default configuration.
func DefaultConfig() *Config {
	return &Config{
		Format:       "html",
		PostPrefix:   crawl.DefaultPostPrefix,
		ExcerptWords: 40,
		LogLevel:     "info",
		Fetch: FetchConfig{
			Timeout: 30 * time.Second,
		},
	}
}

// Load reads configuration from path. A missing file yields the defaults;
// fields absent from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configuration values are usable.
func (c *Config) Validate() error {
	if !slices.Contains(Formats, c.Format) {
		return fmt.Errorf("format must be one of %v, got %q", Formats, c.Format)
	}
	if !slices.Contains(LogLevels, c.LogLevel) {
		return fmt.Errorf("log_level must be one of %v, got %q", LogLevels, c.LogLevel)
	}
	if c.ExcerptWords < 0 {
		return fmt.Errorf("excerpt_words must not be negative")
	}
	if c.Fetch.Timeout <= 0 {
		return fmt.Errorf("fetch timeout must be positive")
	}
	return nil
}
