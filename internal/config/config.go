package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/RevCBH/livegen/internal/project"
	"gopkg.in/yaml.v3"
)

// ProjectFilename is the per-directory configuration file.
const ProjectFilename = ".livegen.yaml"

// Config holds all configuration for livegen.
// It is immutable after creation via LoadConfig().
type Config struct {
	// Server contains web server settings
	Server ServerConfig `yaml:"server"`

	// Output controls where generated files are written
	Output OutputConfig `yaml:"output"`

	// Strict runs the project pre-check before generating
	Strict bool `yaml:"strict"`

	// Defaults pre-fills the form, the wizard and the generate flags.
	// Empty fields fall back to project.Default().
	Defaults project.Config `yaml:"defaults"`

	// Log contains logging settings
	Log LogConfig `yaml:"log"`
}

// ServerConfig controls the web server.
type ServerConfig struct {
	// Addr is the HTTP listen address (e.g., ":8080")
	Addr string `yaml:"addr"`
}

// OutputConfig controls file generation.
type OutputConfig struct {
	// Dir is the directory live.yml and Dockerfile are written to.
	// Relative paths are resolved from the working directory.
	Dir string `yaml:"dir"`

	// Force overwrites existing files
	Force bool `yaml:"force"`
}

// LogConfig controls logging.
type LogConfig struct {
	// Level is one of debug, info, warn, error
	Level string `yaml:"level"`

	// Dir enables rotated file logging when set
	Dir string `yaml:"dir,omitempty"`

	// JSON switches to JSON log lines
	JSON bool `yaml:"json"`
}

// ProjectDefaults returns the configured defaults over project.Default().
func (c *Config) ProjectDefaults() project.Config {
	return project.Default().Merge(c.Defaults)
}

// LoadConfig loads configuration for the given working directory.
// It applies defaults, then the global file, then the project file,
// then environment overrides, then validates.
//
// Parameters:
//   - workDir: absolute path of the directory livegen runs in
//   - globalPath: path of the user-wide config file ("" skips it)
//
// Returns the validated Config or an error if validation fails.
func LoadConfig(workDir, globalPath string) (*Config, error) {
	cfg := DefaultConfig()

	if globalPath != "" {
		if err := mergeFile(cfg, globalPath); err != nil {
			return nil, fmt.Errorf("global config: %w", err)
		}
	}

	if err := mergeFile(cfg, filepath.Join(workDir, ProjectFilename)); err != nil {
		return nil, fmt.Errorf("project config: %w", err)
	}

	// Apply environment variable overrides
	applyEnvOverrides(cfg)

	// Resolve relative paths
	if !filepath.IsAbs(cfg.Output.Dir) {
		cfg.Output.Dir = filepath.Join(workDir, cfg.Output.Dir)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// mergeFile decodes path over cfg. A missing file is not an error.
func mergeFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
