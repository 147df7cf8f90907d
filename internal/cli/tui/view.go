package tui

import (
	"slices"
	"strings"

	"github.com/RevCBH/livegen/internal/generate"
	"github.com/RevCBH/livegen/internal/project"
	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model
func (m *Model) View() string {
	if m.Confirmed || m.Cancelled {
		return ""
	}

	var b strings.Builder

	// Header
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	// Form
	b.WriteString(m.renderForm())
	b.WriteString("\n")

	// Preview
	b.WriteString(m.renderPreview())
	b.WriteString("\n")

	// Footer
	b.WriteString(m.renderFooter())

	return b.String()
}

func (m *Model) renderHeader() string {
	return m.Styles.Title.Render("livegen") + "  " +
		m.Styles.Subtitle.Render("Configure live.yml and Dockerfile")
}

// renderForm renders one line per field
func (m *Model) renderForm() string {
	var b strings.Builder
	b.WriteString(m.renderRow(FieldPython, "Python version", m.renderChoice(m.PythonVersion)))
	b.WriteString(m.renderRow(FieldBaseImage, "Base image", m.renderChoice(m.BaseImage)))
	b.WriteString(m.renderRow(FieldDependencies, "Dependencies", m.renderDependencies()))
	b.WriteString(m.renderRow(FieldCPU, "CPU", m.inputs[inputCPU].View()))
	b.WriteString(m.renderRow(FieldMemory, "Memory (Mi)", m.inputs[inputMemory].View()))
	b.WriteString(m.renderRow(FieldCommand, "Command", m.inputs[inputCommand].View()))
	return b.String()
}

func (m *Model) renderRow(f Field, label, value string) string {
	marker := " "
	style := m.Styles.Label
	if m.Focus == f {
		marker = IconFocus
		style = m.Styles.LabelFocused
	}
	return marker + " " + style.Render(label) + " " + value + "\n"
}

func (m *Model) renderChoice(value string) string {
	if value == "" {
		return m.Styles.Placeholder.Render("(none) ←/→ to choose")
	}
	return m.Styles.Value.Render("‹ " + value + " ›")
}

// renderDependencies renders the toggle list: ✓ numpy  · pandas  · scipy
func (m *Model) renderDependencies() string {
	parts := make([]string, len(project.DefaultDependencies))
	for i, dep := range project.DefaultDependencies {
		icon, style := IconOff, m.Styles.Unselected
		if slices.Contains(m.Dependencies, dep) {
			icon, style = IconSelected, m.Styles.Selected
		}
		text := style.Render(icon + " " + dep)
		if m.Focus == FieldDependencies && i == m.DepCursor {
			text = m.Styles.Cursor.Render(icon + " " + dep)
		}
		parts[i] = text
	}
	return strings.Join(parts, "  ")
}

// renderPreview renders both artifacts side by side, the active one highlighted
func (m *Model) renderPreview() string {
	cfg := m.Config()
	panes := make([]string, 0, 2)
	for _, a := range generate.Render(cfg) {
		style := m.Styles.Pane
		if a.Name == m.Preview {
			style = m.Styles.PaneActive
		}
		panes = append(panes, style.Render(m.Styles.PaneTitle.Render(a.Name)+"\n"+a.Content))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, panes...)
}

func (m *Model) renderFooter() string {
	var b strings.Builder
	if m.Status != "" {
		style := m.Styles.Status
		if m.Failed {
			style = m.Styles.StatusError
		}
		b.WriteString(style.Render(m.Status))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.Keys))
	return b.String()
}
