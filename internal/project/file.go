package project

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a configuration record from a YAML file. Fields missing from
// the file keep their Default values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read project file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a configuration record from YAML over Default.
func Parse(data []byte) (Config, error) {
	cfg, err := decode(data, Default())
	if err != nil {
		return Config{}, err
	}
	if cfg.Dependencies == nil {
		cfg.Dependencies = []string{}
	}
	return cfg, nil
}

// LoadOverlay reads a YAML file for use as a Merge override.
func LoadOverlay(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read project file: %w", err)
	}
	return Overlay(data)
}

// Overlay decodes YAML into an empty record, so only the fields the document
// sets are non-zero and a later Merge leaves everything else alone.
func Overlay(data []byte) (Config, error) {
	return decode(data, Config{})
}

func decode(data []byte, cfg Config) (Config, error) {
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse project file: %w", err)
	}
	return cfg, nil
}
