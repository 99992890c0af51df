package main

import (
	"os"

	// Packages
	yaml "gopkg.in/yaml.v3"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Config is the optional YAML configuration file. Values set on the
// command line or in the environment take precedence over the file.
type Config struct {
	Model   string `yaml:"model"`
	URL     string `yaml:"url"`
	Weather struct {
		Units string `yaml:"units"`
		Lang  string `yaml:"lang"`
		Days  int    `yaml:"days"`
	} `yaml:"weather"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// LoadConfig reads and parses a YAML configuration file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	config := new(Config)
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, err
	}
	return config, nil
}

// Apply fills in global values which were not set on the command line
// or in the environment
func (config *Config) Apply(globals *Globals) {
	if globals.Model == "" {
		globals.Model = config.Model
	}
	if globals.URL == "" {
		globals.URL = config.URL
	}
	if globals.Weather.Units == "" {
		globals.Weather.Units = config.Weather.Units
	}
	if globals.Weather.Lang == "" {
		globals.Weather.Lang = config.Weather.Lang
	}
	if globals.Weather.Days == 0 {
		globals.Weather.Days = config.Weather.Days
	}
}
