package web

import (
	"log/slog"
	"net/url"

	"github.com/RevCBH/livegen/internal/generate"
	"github.com/RevCBH/livegen/internal/project"
)

// Config holds server configuration.
type Config struct {
	// Addr is the HTTP listen address (default ":8080")
	Addr string

	// Defaults pre-fills the form; zero value means project.Default()
	Defaults *project.Config

	// Strict makes downloads fail when the project pre-check fails.
	// Previews always render.
	Strict bool

	// Logger receives request and session logs (default slog.Default())
	Logger *slog.Logger
}

// RenderResponse is returned by /api/render and by every preview frame.
type RenderResponse struct {
	LiveYML    string   `json:"live_yml"`
	Dockerfile string   `json:"dockerfile"`
	Checks     []string `json:"checks"`
}

// ErrorResponse is the JSON body of a failed request or preview frame.
type ErrorResponse struct {
	Error  string   `json:"error"`
	Checks []string `json:"checks,omitempty"`
}

// render builds the response for one configuration record.
func render(cfg project.Config) RenderResponse {
	return RenderResponse{
		LiveYML:    generate.LiveYAML(cfg),
		Dockerfile: generate.Dockerfile(cfg),
		Checks:     project.Findings(cfg),
	}
}

// Form field names shared by the HTML form and configFromForm.
const (
	fieldPythonVersion = "python_version"
	fieldBaseImage     = "base_image"
	fieldDependencies  = "dependencies"
	fieldCPU           = "cpu"
	fieldMemory        = "memory"
	fieldCommand       = "command"
)

// configFromForm builds a record from submitted form values. Missing fields
// stay empty; the generators render them as-is.
func configFromForm(values url.Values) project.Config {
	deps := []string{}
	for _, d := range values[fieldDependencies] {
		if d != "" {
			deps = append(deps, d)
		}
	}
	return project.Config{
		PythonVersion: values.Get(fieldPythonVersion),
		BaseImage:     values.Get(fieldBaseImage),
		Dependencies:  deps,
		Resources: project.Resources{
			CPU:    values.Get(fieldCPU),
			Memory: values.Get(fieldMemory),
		},
		Command: values.Get(fieldCommand),
	}
}
