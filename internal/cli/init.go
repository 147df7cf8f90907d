package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/RevCBH/livegen/internal/cli/tui"
	"github.com/RevCBH/livegen/internal/generate"
	"github.com/RevCBH/livegen/internal/project"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// InitOptions holds flags for the init command
type InitOptions struct {
	OutputDir string
	Force     bool
	NoTUI     bool
}

// errAborted is returned by the prompts when the user types "exit".
var errAborted = errors.New("aborted")

// wizardDependencies is preselected when no defaults are configured.
var wizardDependencies = []string{"numpy", "pandas"}

// NewInitCmd creates the init command
func NewInitCmd(app *App) *cobra.Command {
	opts := InitOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Answer a few questions and write live.yml and Dockerfile",
		Long: `Init walks through the configuration interactively.

On a terminal a full-screen wizard shows both files while you edit.
Otherwise, or with --no-tui, it asks one question per line; an empty
answer keeps the default and "exit" quits without writing anything.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.RunInit(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.OutputDir, "output-dir", "o", "", "Directory to write files to")
	cmd.Flags().BoolVar(&opts.Force, "force", false, "Overwrite existing files")
	cmd.Flags().BoolVar(&opts.NoTUI, "no-tui", false, "Use line prompts even on a terminal")

	return cmd
}

// RunInit runs the wizard or the line prompts, then writes the files
func (a *App) RunInit(cmd *cobra.Command, opts InitOptions) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	defaults := wizardDefaults(cfg.ProjectDefaults())

	var rec project.Config
	if !opts.NoTUI && a.stdin == nil && isTerminal() {
		var confirmed bool
		rec, confirmed, err = tui.Run(defaults)
		if err != nil {
			return err
		}
		if !confirmed {
			warningf(out, "cancelled, no files written")
			return nil
		}
	} else {
		rec, err = promptConfig(a.input(), out, defaults)
		if errors.Is(err, errAborted) {
			warningf(out, "cancelled, no files written")
			return nil
		}
		if err != nil {
			return err
		}
	}

	if err := precheck(cmd.ErrOrStderr(), rec, cfg.Strict); err != nil {
		return err
	}

	dir := cfg.Output.Dir
	if opts.OutputDir != "" {
		dir = opts.OutputDir
	}
	return writeArtifacts(out, dir, rec, opts.Force || cfg.Output.Force)
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// wizardDefaults fills the choices the form leaves empty with the wizard's
// fallbacks.
func wizardDefaults(cfg project.Config) project.Config {
	if cfg.PythonVersion == "" {
		cfg.PythonVersion = project.FallbackPythonVersion
	}
	if cfg.BaseImage == "" {
		cfg.BaseImage = project.FallbackBaseImage
	}
	if len(cfg.Dependencies) == 0 {
		cfg.Dependencies = slices.Clone(wizardDependencies)
	}
	if cfg.Command == "" {
		cfg.Command = generate.DefaultCommand
	}
	return cfg
}

// prompter asks one question per line.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// ask prints the question and returns the answer, or def for an empty answer
// or end of input.
func (p *prompter) ask(question, def string) (string, error) {
	fmt.Fprintf(p.out, "%s [%s]: ", question, def)

	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read answer: %w", err)
	}
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(p.out)
	}

	answer := strings.TrimSpace(line)
	if strings.EqualFold(answer, "exit") {
		return "", errAborted
	}
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

// promptConfig runs the five wizard steps. Out-of-catalogue choices fall back
// to the defaults the wizard offers.
func promptConfig(in io.Reader, out io.Writer, defaults project.Config) (project.Config, error) {
	p := &prompter{in: bufio.NewReader(in), out: out}
	var rec project.Config
	var err error

	fmt.Fprintln(out, "Welcome to the live.yml & Dockerfile generator!")

	fmt.Fprintln(out, "\nStep 1: Select Python Version")
	if rec.PythonVersion, err = p.ask(
		fmt.Sprintf("Choose a Python version (%s)", strings.Join(project.PythonVersions, ", ")),
		defaults.PythonVersion,
	); err != nil {
		return rec, err
	}
	if !slices.Contains(project.PythonVersions, rec.PythonVersion) {
		fmt.Fprintf(out, "Invalid choice. Defaulting to %s.\n", project.FallbackPythonVersion)
	}

	fmt.Fprintln(out, "\nStep 2: Select a Base Image")
	if rec.BaseImage, err = p.ask(
		fmt.Sprintf("Choose a base image (%s)", strings.Join(project.BaseImages, ", ")),
		defaults.BaseImage,
	); err != nil {
		return rec, err
	}
	if !slices.Contains(project.BaseImages, rec.BaseImage) {
		fmt.Fprintf(out, "Invalid choice. Defaulting to %s.\n", project.FallbackBaseImage)
	}

	fmt.Fprintln(out, "\nStep 3: Add Dependencies")
	fmt.Fprintf(out, "Available dependencies: %s\n", strings.Join(project.DefaultDependencies, ", "))
	deps, err := p.ask("Enter dependencies separated by commas", strings.Join(defaults.Dependencies, ","))
	if err != nil {
		return rec, err
	}
	rec.Dependencies = project.ParseDependencies(deps)

	fmt.Fprintln(out, "\nStep 4: Configure Resources")
	if rec.Resources.CPU, err = p.ask("Enter CPU cores", defaults.Resources.CPU); err != nil {
		return rec, err
	}
	if rec.Resources.Memory, err = p.ask("Enter memory (Mi)", defaults.Resources.Memory); err != nil {
		return rec, err
	}

	fmt.Fprintln(out, "\nStep 5: Define Command")
	if rec.Command, err = p.ask("Enter the command to run your application", defaults.Command); err != nil {
		return rec, err
	}

	return project.Normalize(rec), nil
}
