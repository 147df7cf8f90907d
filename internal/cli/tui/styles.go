package tui

import "github.com/charmbracelet/lipgloss"

// Styles contains all lipgloss styles for the wizard
type Styles struct {
	// Header styling
	Title    lipgloss.Style
	Subtitle lipgloss.Style

	// Form styling
	Label        lipgloss.Style
	LabelFocused lipgloss.Style
	Value        lipgloss.Style
	Placeholder  lipgloss.Style
	Selected     lipgloss.Style
	Unselected   lipgloss.Style
	Cursor       lipgloss.Style

	// Preview panes
	Pane       lipgloss.Style
	PaneActive lipgloss.Style
	PaneTitle  lipgloss.Style

	// Footer styling
	Status      lipgloss.Style
	StatusError lipgloss.Style
}

// DefaultStyles returns the default wizard styles
func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		Label:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(16),
		LabelFocused: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true).Width(16),
		Value:        lipgloss.NewStyle().Bold(true),
		Placeholder:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true),
		Selected:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Unselected:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Cursor:       lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Underline(true),

		Pane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		PaneActive: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(0, 1),
		PaneTitle: lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),

		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("42")).MarginTop(1),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).MarginTop(1),
	}
}

// Icons used in the wizard
const (
	IconFocus    = "▸"
	IconSelected = "✓"
	IconOff      = "·"
)
