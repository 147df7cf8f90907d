package project

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/google/go-containerregistry/pkg/name"
)

// ValidationError contains details about what failed validation.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %q)", e.Field, e.Message, fmt.Sprint(e.Value))
}

// Check is an optional pre-check run before generation. The generators accept
// any record; Check reports the fields that would produce a suspicious
// artifact. Returns nil if valid, or joined errors for all failures.
func Check(cfg Config) error {
	var errs []error

	if err := checkPythonVersion(cfg.PythonVersion); err != nil {
		errs = append(errs, err)
	}
	if err := checkBaseImage(cfg.BaseImage); err != nil {
		errs = append(errs, err)
	}

	seen := make(map[string]bool, len(cfg.Dependencies))
	for i, dep := range cfg.Dependencies {
		field := fmt.Sprintf("dependencies[%d]", i)
		switch {
		case seen[dep]:
			errs = append(errs, &ValidationError{Field: field, Value: dep, Message: "duplicate dependency"})
		case !slices.Contains(DefaultDependencies, dep):
			errs = append(errs, &ValidationError{
				Field:   field,
				Value:   dep,
				Message: "must be one of: " + strings.Join(DefaultDependencies, ", "),
			})
		}
		seen[dep] = true
	}

	if err := checkPositive("resources.cpu", cfg.Resources.CPU); err != nil {
		errs = append(errs, err)
	}
	if err := checkPositive("resources.memory", cfg.Resources.Memory); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Findings runs Check and returns one message per failure. The slice is
// empty, never nil, for a clean record.
func Findings(cfg Config) []string {
	msgs := []string{}
	err := Check(cfg)
	if err == nil {
		return msgs
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			msgs = append(msgs, e.Error())
		}
		return msgs
	}
	return append(msgs, err.Error())
}

func checkPythonVersion(v string) error {
	if v == "" {
		return &ValidationError{Field: "python_version", Value: v, Message: "must be set"}
	}
	if _, err := semver.NewVersion(v); err != nil {
		return &ValidationError{Field: "python_version", Value: v, Message: fmt.Sprintf("invalid version: %v", err)}
	}
	if !slices.Contains(PythonVersions, v) {
		return &ValidationError{
			Field:   "python_version",
			Value:   v,
			Message: "must be one of: " + strings.Join(PythonVersions, ", "),
		}
	}
	return nil
}

func checkBaseImage(image string) error {
	if image == "" {
		return &ValidationError{Field: "base_image", Value: image, Message: "must be set"}
	}
	if _, err := name.ParseReference(image); err != nil {
		return &ValidationError{Field: "base_image", Value: image, Message: fmt.Sprintf("invalid image reference: %v", err)}
	}
	if !slices.Contains(BaseImages, image) {
		return &ValidationError{
			Field:   "base_image",
			Value:   image,
			Message: "must be one of: " + strings.Join(BaseImages, ", "),
		}
	}
	return nil
}

func checkPositive(field, v string) error {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return &ValidationError{Field: field, Value: v, Message: "must be a number"}
	}
	if f <= 0 {
		return &ValidationError{Field: field, Value: v, Message: "must be positive"}
	}
	return nil
}

// Normalize replaces out-of-catalogue answers with the fallbacks the wizard
// offers and cleans up the dependency list. Resources and command are left
// untouched.
func Normalize(cfg Config) Config {
	if !slices.Contains(PythonVersions, cfg.PythonVersion) {
		cfg.PythonVersion = FallbackPythonVersion
	}
	if !slices.Contains(BaseImages, cfg.BaseImage) {
		cfg.BaseImage = FallbackBaseImage
	}

	deps := make([]string, 0, len(cfg.Dependencies))
	for _, dep := range cfg.Dependencies {
		dep = strings.TrimSpace(dep)
		if dep == "" || slices.Contains(deps, dep) {
			continue
		}
		deps = append(deps, dep)
	}
	cfg.Dependencies = deps
	return cfg
}

// ParseDependencies splits a comma separated answer into a dependency list.
func ParseDependencies(s string) []string {
	var deps []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			deps = append(deps, part)
		}
	}
	return deps
}
