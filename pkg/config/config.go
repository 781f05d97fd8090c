// Package config provides configuration loading and management for freqscore.
// It handles loading configuration from YAML files and provides default values.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"freqscore/internal/models"
	"freqscore/pkg/spectral"
)

// Config represents the application configuration loaded from YAML
type Config struct {
	// Dataset layout
	Dataset struct {
		// Root is the directory holding <split>/<label> subdirectories
		Root string `yaml:"root"`

		// Extensions lists the accepted file extensions, dot included
		Extensions []string `yaml:"extensions"`

		// Sections are the (split, label) pairs to score, in report order
		Sections []models.Section `yaml:"sections"`
	} `yaml:"dataset"`

	// Scoring parameters
	Scoring struct {
		// Backend names the DFT implementation (go-dsp, gonum, radix2)
		Backend string `yaml:"backend"`
	} `yaml:"scoring"`

	// Output parameters
	Output struct {
		// Summary appends per-section statistics to the report
		Summary bool `yaml:"summary"`

		// Verbose controls the level of logging output
		Verbose bool `yaml:"verbose"`
	} `yaml:"output"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Dataset.Root = "dataset"
	cfg.Dataset.Extensions = []string{".jpg"}
	cfg.Dataset.Sections = models.DefaultSections()

	cfg.Scoring.Backend = spectral.BackendGoDSP

	cfg.Output.Summary = false
	cfg.Output.Verbose = false

	return cfg
}

// LoadConfig loads configuration from a YAML file
// If the file doesn't exist, it returns the default configuration
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(configPath)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration describes a runnable batch
func (c *Config) Validate() error {
	if c.Dataset.Root == "" {
		return errors.New("dataset root is empty")
	}
	if len(c.Dataset.Extensions) == 0 {
		return errors.New("no dataset extensions configured")
	}
	if len(c.Dataset.Sections) == 0 {
		return errors.New("no dataset sections configured")
	}
	for i, s := range c.Dataset.Sections {
		if s.Split == "" || s.Label == "" {
			return fmt.Errorf("dataset section %d needs both split and label", i)
		}
	}
	if _, err := spectral.NewTransform(c.Scoring.Backend); err != nil {
		return err
	}
	return nil
}

// SaveConfig saves the configuration to a YAML file
func SaveConfig(cfg *Config, configPath string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// CreateDefaultConfigFile creates a default configuration file at the specified path
func CreateDefaultConfigFile(configPath string) error {
	return SaveConfig(DefaultConfig(), configPath)
}
