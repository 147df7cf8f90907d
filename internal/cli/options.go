package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/RevCBH/livegen/internal/generate"
	"github.com/RevCBH/livegen/internal/project"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	optionsTitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	optionsDefaultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	optionsMutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// NewOptionsCmd creates the options command
func NewOptionsCmd(app *App) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "options",
		Short: "List the selectable values and the defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.loadConfig()
			if err != nil {
				return err
			}

			opts := project.Options()
			opts.Defaults = cfg.ProjectDefaults()
			return printOptions(cmd.OutOrStdout(), opts, format)
		},
	}

	cmd.Flags().StringVarP(&format, "output", "o", "text", "Output format: text, json or yaml")

	return cmd
}

func printOptions(w io.Writer, opts project.Catalogue, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(opts)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(opts); err != nil {
			return err
		}
		return enc.Close()
	case "text", "":
		fmt.Fprint(w, renderOptions(opts))
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
	}
}

// renderOptions lists each catalogue with the default marked by "*".
func renderOptions(opts project.Catalogue) string {
	var b strings.Builder

	section := func(title string, values []string, isDefault func(string) bool) {
		b.WriteString(optionsTitleStyle.Render(title))
		b.WriteString("\n")
		for _, v := range values {
			if isDefault(v) {
				b.WriteString("  " + optionsDefaultStyle.Render("* "+v) + "\n")
			} else {
				b.WriteString("    " + v + "\n")
			}
		}
		b.WriteString("\n")
	}

	d := opts.Defaults
	section("Python versions", opts.PythonVersions, func(v string) bool { return v == d.PythonVersion })
	section("Base images", opts.BaseImages, func(v string) bool { return v == d.BaseImage })
	section("Dependencies", opts.Dependencies, func(v string) bool { return slices.Contains(d.Dependencies, v) })

	b.WriteString(optionsTitleStyle.Render("Resources"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "    cpu: %s\n", d.Resources.CPU)
	fmt.Fprintf(&b, "    memory: %sMi\n", d.Resources.Memory)
	b.WriteString("\n")

	command := d.Command
	if command == "" {
		command = optionsMutedStyle.Render("(" + generate.DefaultCommand + ")")
	}
	b.WriteString(optionsTitleStyle.Render("Command"))
	b.WriteString("\n    " + command + "\n")

	return b.String()
}
