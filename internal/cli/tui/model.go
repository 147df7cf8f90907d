package tui

import (
	"fmt"
	"slices"

	"github.com/RevCBH/livegen/internal/generate"
	"github.com/RevCBH/livegen/internal/project"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Field identifies a focusable row of the wizard.
type Field int

const (
	FieldPython Field = iota
	FieldBaseImage
	FieldDependencies
	FieldCPU
	FieldMemory
	FieldCommand
	fieldCount
)

// inputs holds the free-text fields in this order.
const (
	inputCPU = iota
	inputMemory
	inputCommand
	inputCount
)

// Model is the bubbletea model for the configuration wizard
type Model struct {
	// Configuration
	Styles Styles
	Keys   KeyMap

	// Form state
	PythonVersion string
	BaseImage     string
	Dependencies  []string
	Focus         Field
	DepCursor     int
	inputs        [inputCount]textinput.Model

	// Preview state
	Preview string // generate.LiveFilename or generate.DockerfileFilename
	Status  string
	Failed  bool
	Width   int
	Height  int

	// Control
	Confirmed bool
	Cancelled bool

	help      help.Model
	writeClip func(string) error
}

// NewModel creates a wizard pre-filled with defaults
func NewModel(defaults project.Config) *Model {
	m := &Model{
		Styles:        DefaultStyles(),
		Keys:          DefaultKeyMap(),
		PythonVersion: defaults.PythonVersion,
		BaseImage:     defaults.BaseImage,
		Dependencies:  slices.Clone(defaults.Dependencies),
		Preview:       generate.LiveFilename,
		help:          help.New(),
		writeClip:     clipboard.WriteAll,
	}
	if m.Dependencies == nil {
		m.Dependencies = []string{}
	}

	values := [inputCount]string{defaults.Resources.CPU, defaults.Resources.Memory, defaults.Command}
	placeholders := [inputCount]string{project.DefaultCPU, project.DefaultMemory, generate.DefaultCommand}
	for i := range m.inputs {
		in := textinput.New()
		in.Prompt = ""
		in.CharLimit = 256
		in.Width = 40
		in.Placeholder = placeholders[i]
		in.SetValue(values[i])
		m.inputs[i] = in
	}
	return m
}

// SetClipboard replaces the clipboard writer.
func (m *Model) SetClipboard(fn func(string) error) {
	m.writeClip = fn
}

// Config returns the configuration record the form currently describes.
func (m *Model) Config() project.Config {
	return project.Config{
		PythonVersion: m.PythonVersion,
		BaseImage:     m.BaseImage,
		Dependencies:  slices.Clone(m.Dependencies),
		Resources: project.Resources{
			CPU:    m.inputs[inputCPU].Value(),
			Memory: m.inputs[inputMemory].Value(),
		},
		Command: m.inputs[inputCommand].Value(),
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// input returns the index of the text input behind f, or -1.
func input(f Field) int {
	switch f {
	case FieldCPU:
		return inputCPU
	case FieldMemory:
		return inputMemory
	case FieldCommand:
		return inputCommand
	}
	return -1
}

// previewContent renders the active preview pane.
func (m *Model) previewContent() string {
	artifact, err := generate.ByName(m.Config(), m.Preview)
	if err != nil {
		return ""
	}
	return artifact.Content
}

// Run shows the wizard and returns the final record. The bool is false when
// the user cancelled.
func Run(defaults project.Config) (project.Config, bool, error) {
	final, err := tea.NewProgram(NewModel(defaults), tea.WithAltScreen()).Run()
	if err != nil {
		return project.Config{}, false, fmt.Errorf("run wizard: %w", err)
	}
	m := final.(*Model)
	return m.Config(), m.Confirmed, nil
}
