// Package project holds the configuration record a user builds through the
// form, the wizard or the CLI, together with the catalogue of choices offered
// for each field.
package project

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
)

const (
	DefaultCPU    = "1"
	DefaultMemory = "512"

	// FallbackPythonVersion and FallbackBaseImage replace out-of-catalogue
	// answers in Normalize.
	FallbackPythonVersion = "3.9"
	FallbackBaseImage     = "neuromation/base:python-3.9"
)

// PythonVersions are the selectable interpreter versions.
var PythonVersions = []string{"3.7", "3.8", "3.9", "3.10"}

// BaseImages are the selectable base container images.
var BaseImages = []string{
	"neuromation/base:latest",
	"neuromation/base:python-3.9",
	"neuromation/base:python-3.10",
}

// DefaultDependencies are the packages that can be toggled on.
var DefaultDependencies = []string{"numpy", "pandas", "scipy"}

// Resources are the compute limits. Both values keep the text the user typed.
type Resources struct {
	CPU    string `yaml:"cpu" json:"cpu"`
	Memory string `yaml:"memory" json:"memory"`
}

// UnmarshalJSON accepts each limit as a JSON string or number. Numbers keep
// their literal text, so 0.5 stays "0.5" and 512 stays "512".
func (r *Resources) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	var raw struct {
		CPU    json.RawMessage `json:"cpu"`
		Memory json.RawMessage `json:"memory"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.CPU != nil {
		cpu, err := scalarText(raw.CPU)
		if err != nil {
			return fmt.Errorf("resources.cpu: %w", err)
		}
		r.CPU = cpu
	}
	if raw.Memory != nil {
		memory, err := scalarText(raw.Memory)
		if err != nil {
			return fmt.Errorf("resources.memory: %w", err)
		}
		r.Memory = memory
	}
	return nil
}

func scalarText(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", nil
	}
	if raw[0] == '"' {
		var s string
		err := json.Unmarshal(raw, &s)
		return s, err
	}
	var n json.Number
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&n); err != nil {
		return "", fmt.Errorf("want a string or number, got %s", raw)
	}
	return n.String(), nil
}

// Config is the state of one render. It is passed by value and never mutated
// by the generators.
type Config struct {
	PythonVersion string    `yaml:"python_version" json:"python_version"`
	BaseImage     string    `yaml:"base_image" json:"base_image"`
	Dependencies  []string  `yaml:"dependencies" json:"dependencies"`
	Resources     Resources `yaml:"resources" json:"resources"`
	Command       string    `yaml:"command" json:"command"`
}

// Default returns the initial state of the form.
func Default() Config {
	return Config{
		Dependencies: []string{},
		Resources: Resources{
			CPU:    DefaultCPU,
			Memory: DefaultMemory,
		},
	}
}

// HasDependency reports whether dep is selected.
func (c Config) HasDependency(dep string) bool {
	return slices.Contains(c.Dependencies, dep)
}

// ToggleDependency returns a copy of c with dep removed when it is selected,
// or appended when it is not.
func (c Config) ToggleDependency(dep string) Config {
	deps := make([]string, 0, len(c.Dependencies)+1)
	found := false
	for _, d := range c.Dependencies {
		if d == dep {
			found = true
			continue
		}
		deps = append(deps, d)
	}
	if !found {
		deps = append(deps, dep)
	}
	c.Dependencies = deps
	return c
}

// Merge overlays the non-empty fields of override onto c.
func (c Config) Merge(override Config) Config {
	if override.PythonVersion != "" {
		c.PythonVersion = override.PythonVersion
	}
	if override.BaseImage != "" {
		c.BaseImage = override.BaseImage
	}
	if len(override.Dependencies) > 0 {
		c.Dependencies = slices.Clone(override.Dependencies)
	}
	if override.Resources.CPU != "" {
		c.Resources.CPU = override.Resources.CPU
	}
	if override.Resources.Memory != "" {
		c.Resources.Memory = override.Resources.Memory
	}
	if override.Command != "" {
		c.Command = override.Command
	}
	return c
}

// Catalogue lists every choice the input surfaces offer, plus the defaults.
type Catalogue struct {
	PythonVersions []string `json:"python_versions" yaml:"python_versions"`
	BaseImages     []string `json:"base_images" yaml:"base_images"`
	Dependencies   []string `json:"dependencies" yaml:"dependencies"`
	Defaults       Config   `json:"defaults" yaml:"defaults"`
}

// Options returns the catalogue. The slices are copies.
func Options() Catalogue {
	return Catalogue{
		PythonVersions: slices.Clone(PythonVersions),
		BaseImages:     slices.Clone(BaseImages),
		Dependencies:   slices.Clone(DefaultDependencies),
		Defaults:       Default(),
	}
}
