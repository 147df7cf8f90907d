package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/RevCBH/livegen/internal/project"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromptConfig_Answers(t *testing.T) {
	out := new(bytes.Buffer)
	in := strings.NewReader("3.10\n\nscipy, numpy\n2\n\npython serve.py\n")

	rec, err := promptConfig(in, out, wizardDefaults(project.Default()))
	require.NoError(t, err)

	assert.Equal(t, project.Config{
		PythonVersion: "3.10",
		BaseImage:     "neuromation/base:python-3.9",
		Dependencies:  []string{"scipy", "numpy"},
		Resources:     project.Resources{CPU: "2", Memory: "512"},
		Command:       "python serve.py",
	}, rec)

	output := out.String()
	assert.Contains(t, output, "Step 1: Select Python Version")
	assert.Contains(t, output, "Step 5: Define Command")
	assert.Contains(t, output, "Available dependencies: numpy, pandas, scipy")
}

func TestPromptConfig_DefaultsOnEOF(t *testing.T) {
	out := new(bytes.Buffer)

	rec, err := promptConfig(strings.NewReader(""), out, wizardDefaults(project.Default()))
	require.NoError(t, err)

	assert.Equal(t, "3.9", rec.PythonVersion)
	assert.Equal(t, "neuromation/base:python-3.9", rec.BaseImage)
	assert.Equal(t, []string{"numpy", "pandas"}, rec.Dependencies)
	assert.Equal(t, "1", rec.Resources.CPU)
	assert.Equal(t, "512", rec.Resources.Memory)
	assert.Equal(t, "python app.py", rec.Command)
}

func TestPromptConfig_InvalidChoicesFallBack(t *testing.T) {
	out := new(bytes.Buffer)
	in := strings.NewReader("2.7\nubuntu:22.04\nnumpy,,numpy\n")

	rec, err := promptConfig(in, out, wizardDefaults(project.Default()))
	require.NoError(t, err)

	assert.Equal(t, project.FallbackPythonVersion, rec.PythonVersion)
	assert.Equal(t, project.FallbackBaseImage, rec.BaseImage)
	assert.Equal(t, []string{"numpy"}, rec.Dependencies)
	assert.Contains(t, out.String(), "Invalid choice. Defaulting to 3.9.")
	assert.Contains(t, out.String(), "Invalid choice. Defaulting to neuromation/base:python-3.9.")
}

func TestPromptConfig_Exit(t *testing.T) {
	_, err := promptConfig(strings.NewReader("3.9\nEXIT\n"), new(bytes.Buffer), wizardDefaults(project.Default()))
	assert.ErrorIs(t, err, errAborted)
}

func TestWizardDefaults_KeepsConfigured(t *testing.T) {
	cfg := project.Default()
	cfg.BaseImage = "neuromation/base:latest"
	cfg.Dependencies = []string{"scipy"}

	got := wizardDefaults(cfg)
	assert.Equal(t, "3.9", got.PythonVersion)
	assert.Equal(t, "neuromation/base:latest", got.BaseImage)
	assert.Equal(t, []string{"scipy"}, got.Dependencies)
	assert.Equal(t, "python app.py", got.Command)
}

func TestInitCmd_WritesFiles(t *testing.T) {
	app, dir := testApp(t)
	app.stdin = strings.NewReader("3.8\n\n\n4\n1024\n\n")

	stdout, _, err := run(app, dir, "init")
	require.NoError(t, err)
	assert.Contains(t, stdout, "generated 2 files")

	live := readFile(t, filepath.Join(dir, "live.yml"))
	assert.Contains(t, live, "cpu: 4\n")
	assert.Contains(t, live, "memory: 1024Mi")
	dockerfile := readFile(t, filepath.Join(dir, "Dockerfile"))
	assert.Equal(t, "FROM neuromation/base:python-3.9\nRUN pip install numpy pandas\nCMD [\"python app.py\"]", dockerfile)
}

func TestInitCmd_Exit(t *testing.T) {
	app, dir := testApp(t)
	app.stdin = strings.NewReader("exit\n")

	stdout, _, err := run(app, dir, "init")
	require.NoError(t, err)
	assert.Contains(t, stdout, "cancelled")

	_, statErr := os.Stat(filepath.Join(dir, "live.yml"))
	assert.True(t, os.IsNotExist(statErr))
}
