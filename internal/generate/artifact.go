package generate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/RevCBH/livegen/internal/project"
)

// Fixed artifact filenames.
const (
	LiveFilename       = "live.yml"
	DockerfileFilename = "Dockerfile"
)

var (
	// ErrUnknownArtifact is returned for a name that is neither live.yml nor Dockerfile.
	ErrUnknownArtifact = errors.New("unknown artifact")

	// ErrExists is returned by WriteFiles when an artifact is already on disk.
	ErrExists = errors.New("artifact already exists")
)

// Artifact is a rendered file ready to be written or downloaded.
type Artifact struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// generators maps each artifact to the function producing it, in output order.
var generators = []struct {
	name   string
	render func(project.Config) string
}{
	{LiveFilename, LiveYAML},
	{DockerfileFilename, Dockerfile},
}

// Names returns the artifact filenames in output order.
func Names() []string {
	names := make([]string, len(generators))
	for i, g := range generators {
		names[i] = g.name
	}
	return names
}

// Render produces every artifact for cfg.
func Render(cfg project.Config) []Artifact {
	out := make([]Artifact, len(generators))
	for i, g := range generators {
		out[i] = Artifact{Name: g.name, Content: g.render(cfg)}
	}
	return out
}

// ByName renders the single artifact called name.
func ByName(cfg project.Config, name string) (Artifact, error) {
	for _, g := range generators {
		if g.name == name {
			return Artifact{Name: g.name, Content: g.render(cfg)}, nil
		}
	}
	return Artifact{}, fmt.Errorf("%w: %q", ErrUnknownArtifact, name)
}

// WriteFiles renders every artifact into dir and returns the written paths.
// Existing files are left alone unless force is set; the check happens before
// anything is written.
func WriteFiles(dir string, cfg project.Config, force bool) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	artifacts := Render(cfg)
	paths := make([]string, len(artifacts))
	for i, a := range artifacts {
		paths[i] = filepath.Join(dir, a.Name)
		if force {
			continue
		}
		if _, err := os.Stat(paths[i]); err == nil {
			return nil, fmt.Errorf("%w: %s (use --force to overwrite)", ErrExists, paths[i])
		}
	}

	for i, a := range artifacts {
		if err := os.WriteFile(paths[i], []byte(a.Content), 0644); err != nil {
			return nil, fmt.Errorf("write %s: %w", a.Name, err)
		}
	}
	return paths, nil
}
