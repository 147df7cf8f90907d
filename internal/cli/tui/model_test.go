package tui

import (
	"errors"
	"strings"
	"testing"

	"github.com/RevCBH/livegen/internal/generate"
	"github.com/RevCBH/livegen/internal/project"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wizardDefaults() project.Config {
	cfg := project.Default()
	cfg.PythonVersion = "3.9"
	cfg.BaseImage = "neuromation/base:python-3.9"
	return cfg
}

func send(m *Model, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func keyType(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModel_Defaults(t *testing.T) {
	m := NewModel(wizardDefaults())

	cfg := m.Config()
	assert.Equal(t, "3.9", cfg.PythonVersion)
	assert.Equal(t, "neuromation/base:python-3.9", cfg.BaseImage)
	assert.Empty(t, cfg.Dependencies)
	assert.Equal(t, "1", cfg.Resources.CPU)
	assert.Equal(t, "512", cfg.Resources.Memory)
	assert.Equal(t, "", cfg.Command)
	assert.Equal(t, FieldPython, m.Focus)
	assert.Equal(t, generate.LiveFilename, m.Preview)
}

func TestUpdate_CyclePythonVersion(t *testing.T) {
	m := NewModel(wizardDefaults())

	send(m, keyType(tea.KeyRight))
	assert.Equal(t, "3.10", m.PythonVersion)

	send(m, keyType(tea.KeyRight))
	assert.Equal(t, "3.7", m.PythonVersion, "cycling wraps around")

	send(m, keyType(tea.KeyLeft), keyType(tea.KeyLeft))
	assert.Equal(t, "3.9", m.PythonVersion)
}

func TestUpdate_CycleFromEmpty(t *testing.T) {
	m := NewModel(project.Default())

	send(m, keyType(tea.KeyLeft))
	assert.Equal(t, "3.10", m.PythonVersion)

	send(m, keyType(tea.KeyTab), keyType(tea.KeyRight))
	assert.Equal(t, "neuromation/base:latest", m.BaseImage)
}

func TestUpdate_FocusWraps(t *testing.T) {
	m := NewModel(wizardDefaults())

	send(m, keyType(tea.KeyShiftTab))
	assert.Equal(t, FieldCommand, m.Focus)

	send(m, keyType(tea.KeyTab))
	assert.Equal(t, FieldPython, m.Focus)
}

func TestUpdate_ToggleDependencies(t *testing.T) {
	m := NewModel(wizardDefaults())
	send(m, keyType(tea.KeyTab), keyType(tea.KeyTab))
	require.Equal(t, FieldDependencies, m.Focus)

	// select scipy then numpy; order follows selection
	send(m, keyType(tea.KeyLeft), keyType(tea.KeySpace))
	send(m, keyType(tea.KeyRight), keyType(tea.KeySpace))
	assert.Equal(t, []string{"scipy", "numpy"}, m.Config().Dependencies)

	send(m, keyType(tea.KeyLeft), keyType(tea.KeySpace))
	assert.Equal(t, []string{"numpy"}, m.Config().Dependencies)
}

func TestUpdate_TextInputs(t *testing.T) {
	m := NewModel(wizardDefaults())
	send(m, keyType(tea.KeyTab), keyType(tea.KeyTab), keyType(tea.KeyTab), keyType(tea.KeyTab))
	require.Equal(t, FieldMemory, m.Focus)

	send(m, keyType(tea.KeyBackspace), keyType(tea.KeyBackspace), keyType(tea.KeyBackspace), runes("2048"))
	assert.Equal(t, "2048", m.Config().Resources.Memory)

	send(m, keyType(tea.KeyTab), runes("python serve.py"))
	assert.Equal(t, "python serve.py", m.Config().Command)
	assert.Contains(t, m.View(), "memory: 2048Mi")
}

func TestUpdate_Confirm(t *testing.T) {
	m := NewModel(wizardDefaults())

	cmd := send(m, keyType(tea.KeyCtrlS))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.Confirmed)
	assert.False(t, m.Cancelled)
	assert.Empty(t, m.View())
}

func TestUpdate_Cancel(t *testing.T) {
	for _, k := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		m := NewModel(wizardDefaults())
		cmd := send(m, keyType(k))
		require.NotNil(t, cmd)
		assert.True(t, m.Cancelled)
		assert.False(t, m.Confirmed)
	}
}

func TestUpdate_CopyPreview(t *testing.T) {
	m := NewModel(wizardDefaults())
	var copied string
	m.SetClipboard(func(s string) error {
		copied = s
		return nil
	})

	send(m, keyType(tea.KeyCtrlY))
	assert.Equal(t, generate.LiveYAML(m.Config()), copied)
	assert.Contains(t, m.Status, "live.yml")

	send(m, keyType(tea.KeyCtrlP), keyType(tea.KeyCtrlY))
	assert.Equal(t, generate.Dockerfile(m.Config()), copied)
	assert.False(t, m.Failed)
}

func TestUpdate_CopyFailure(t *testing.T) {
	m := NewModel(wizardDefaults())
	m.SetClipboard(func(string) error { return errors.New("no clipboard") })

	send(m, keyType(tea.KeyCtrlY))
	assert.True(t, m.Failed)
	assert.Contains(t, m.Status, "no clipboard")
}

func TestView_ShowsBothPreviews(t *testing.T) {
	m := NewModel(wizardDefaults())
	send(m, tea.WindowSizeMsg{Width: 160, Height: 40})

	view := m.View()
	assert.Contains(t, view, "live.yml")
	assert.Contains(t, view, "Dockerfile")
	assert.Contains(t, view, "FROM neuromation/base:python-3.9")
	assert.True(t, strings.Contains(view, "PYTHON_VERSION"), "expected env block in preview")
}

func TestCycle(t *testing.T) {
	opts := []string{"a", "b", "c"}

	assert.Equal(t, "b", cycle(opts, "a", 1))
	assert.Equal(t, "c", cycle(opts, "a", -1))
	assert.Equal(t, "a", cycle(opts, "x", 1))
	assert.Equal(t, "c", cycle(opts, "x", -1))
	assert.Equal(t, "x", cycle(nil, "x", 1))
}
