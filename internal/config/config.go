package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mcncl/jsondelta/internal/errors"
)

// Config represents the complete configuration for jsondelta
type Config struct {
	Report  ReportConfig  `yaml:"report"`
	Display DisplayConfig `yaml:"display"`
	Log     LogConfig     `yaml:"log"`
}

// ReportConfig controls the exported report file
type ReportConfig struct {
	// Always writes the report file after every comparison, even when
	// no --output flag is given.
	Always bool `yaml:"always"`
	// Path is the report file written when Always is set.
	Path string `yaml:"path"`
}

// DisplayConfig controls terminal presentation
type DisplayConfig struct {
	// Color is one of "auto", "always" or "never".
	Color string `yaml:"color"`
	// ShowDocuments prints both canonical documents after the delta.
	ShowDocuments bool `yaml:"show_documents"`
}

// LogConfig controls CLI logging
type LogConfig struct {
	Level string `yaml:"level"`
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Report: ReportConfig{
			Always: false,
			Path:   "json_comparison_report.json",
		},
		Display: DisplayConfig{
			Color:         "auto",
			ShowDocuments: false,
		},
		Log: LogConfig{
			Level: "",
		},
	}
}

// LoadConfig loads configuration from a YAML file on top of the defaults
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewConfigError(fmt.Sprintf("failed to read config file '%s'", path), err)
	}

	cfg := NewConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.NewConfigError(fmt.Sprintf("failed to parse config file '%s'", path), err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FindConfigFile searches for a config file in the current directory and
// its parents, returning an empty string when none exists.
func FindConfigFile() string {
	configNames := []string{".jsondelta.yml", ".jsondelta.yaml", "jsondelta.yml", "jsondelta.yaml"}

	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		for _, name := range configNames {
			configPath := filepath.Join(currentDir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return ""
}

func (c *Config) validate() error {
	switch c.Display.Color {
	case "auto", "always", "never":
	default:
		return errors.NewConfigError(
			fmt.Sprintf("invalid display.color value '%s': must be auto, always or never", c.Display.Color),
			nil,
		)
	}
	return nil
}
