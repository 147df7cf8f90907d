package cli

import (
	"path/filepath"
	"testing"

	"github.com/RevCBH/livegen/internal/generate"
	"github.com/RevCBH/livegen/internal/project"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCmd(t *testing.T) {
	app, dir := testApp(t)

	good := filepath.Join(dir, "live.yml")
	writeFile(t, good, generate.LiveYAML(project.Config{
		PythonVersion: "3.9",
		Resources:     project.Resources{CPU: "1", Memory: "512"},
	}))
	bad := filepath.Join(dir, "broken.yml")
	writeFile(t, bad, "resources:\n  cpu: 1\n  memory: 512\nenv:\n  PYTHON_VERSION: \"3.9\"\n")

	tests := []struct {
		name    string
		files   []string
		wantErr bool
		stdout  string
		stderr  string
	}{
		{"valid file", []string{good}, false, "is valid", ""},
		{"invalid file", []string{bad}, true, "", "broken.yml"},
		{"missing file", []string{filepath.Join(dir, "missing.yml")}, true, "", "missing.yml"},
		{"mixed", []string{good, bad}, true, "is valid", "broken.yml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _ = testApp(t)
			stdout, stderr, err := run(app, dir, append([]string{"validate"}, tt.files...)...)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Contains(t, stdout, tt.stdout)
			assert.Contains(t, stderr, tt.stderr)
		})
	}
}

func TestValidateCmd_RequiresFile(t *testing.T) {
	app, dir := testApp(t)

	_, _, err := run(app, dir, "validate")
	assert.Error(t, err)
}
