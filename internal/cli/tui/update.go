package tui

import (
	"fmt"
	"slices"

	"github.com/RevCBH/livegen/internal/generate"
	"github.com/RevCBH/livegen/internal/project"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Cursor blink and other messages go to the focused input.
	return m, m.updateInput(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Cancel):
		m.Cancelled = true
		return m, tea.Quit

	case key.Matches(msg, m.Keys.Confirm):
		m.Confirmed = true
		return m, tea.Quit

	case key.Matches(msg, m.Keys.Copy):
		m.copyPreview()
		return m, nil

	case key.Matches(msg, m.Keys.Switch):
		if m.Preview == generate.LiveFilename {
			m.Preview = generate.DockerfileFilename
		} else {
			m.Preview = generate.LiveFilename
		}
		return m, nil

	case key.Matches(msg, m.Keys.Next):
		return m, m.focus(m.Focus + 1)

	case key.Matches(msg, m.Keys.Prev):
		return m, m.focus(m.Focus - 1)
	}

	switch m.Focus {
	case FieldPython:
		m.PythonVersion = m.cycleKey(msg, project.PythonVersions, m.PythonVersion)
		return m, nil

	case FieldBaseImage:
		m.BaseImage = m.cycleKey(msg, project.BaseImages, m.BaseImage)
		return m, nil

	case FieldDependencies:
		deps := project.DefaultDependencies
		switch {
		case key.Matches(msg, m.Keys.Left):
			m.DepCursor = (m.DepCursor - 1 + len(deps)) % len(deps)
		case key.Matches(msg, m.Keys.Right):
			m.DepCursor = (m.DepCursor + 1) % len(deps)
		case key.Matches(msg, m.Keys.Toggle):
			m.Dependencies = project.Config{Dependencies: m.Dependencies}.
				ToggleDependency(deps[m.DepCursor]).Dependencies
		}
		return m, nil
	}

	return m, m.updateInput(msg)
}

// cycleKey moves through options on left/right.
func (m *Model) cycleKey(msg tea.KeyMsg, options []string, current string) string {
	switch {
	case key.Matches(msg, m.Keys.Left):
		return cycle(options, current, -1)
	case key.Matches(msg, m.Keys.Right):
		return cycle(options, current, 1)
	}
	return current
}

// cycle returns the option delta steps away from current, wrapping around.
// A value outside options starts from either end.
func cycle(options []string, current string, delta int) string {
	if len(options) == 0 {
		return current
	}
	idx := slices.Index(options, current)
	if idx < 0 {
		if delta > 0 {
			return options[0]
		}
		return options[len(options)-1]
	}
	n := len(options)
	return options[((idx+delta)%n+n)%n]
}

// focus moves focus to f, wrapping around, and focuses the matching input.
func (m *Model) focus(f Field) tea.Cmd {
	m.Focus = (f%fieldCount + fieldCount) % fieldCount

	var cmd tea.Cmd
	for i := range m.inputs {
		if i == input(m.Focus) {
			cmd = m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return cmd
}

func (m *Model) updateInput(msg tea.Msg) tea.Cmd {
	i := input(m.Focus)
	if i < 0 {
		return nil
	}
	var cmd tea.Cmd
	m.inputs[i], cmd = m.inputs[i].Update(msg)
	return cmd
}

func (m *Model) copyPreview() {
	if err := m.writeClip(m.previewContent()); err != nil {
		m.Status = fmt.Sprintf("copy failed: %v", err)
		m.Failed = true
		return
	}
	m.Status = fmt.Sprintf("copied %s to clipboard", m.Preview)
	m.Failed = false
}
