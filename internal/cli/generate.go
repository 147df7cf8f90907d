package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/RevCBH/livegen/internal/generate"
	"github.com/RevCBH/livegen/internal/project"
	"github.com/spf13/cobra"
)

// GenerateOptions holds flags for the generate command
type GenerateOptions struct {
	PythonVersion string
	BaseImage     string
	Dependencies  []string
	CPU           string
	Memory        string
	Command       string

	From      string // project YAML file, overridden by flags
	OutputDir string // overrides output.dir
	Force     bool
	Stdout    bool
	Strict    bool
}

// ErrCheckFailed is returned when a strict pre-check rejects the record.
var ErrCheckFailed = errors.New("configuration failed validation")

// NewGenerateCmd creates the generate command
func NewGenerateCmd(app *App) *cobra.Command {
	opts := GenerateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write live.yml and Dockerfile",
		Long: `Generate renders live.yml and Dockerfile from flags, a project file
and the configured defaults, then writes them to the output directory.

Examples:
  livegen generate --python 3.9 --base-image neuromation/base:latest --dep numpy --dep pandas
  livegen generate --from project.yaml --cpu 2 --memory 2048
  livegen generate --stdout --command "python serve.py"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.RunGenerate(cmd, opts)
		},
	}

	// Add flags
	cmd.Flags().StringVar(&opts.PythonVersion, "python", "", "Python version")
	cmd.Flags().StringVar(&opts.BaseImage, "base-image", "", "Base container image")
	cmd.Flags().StringArrayVar(&opts.Dependencies, "dep", nil, "Dependency to install (repeatable)")
	cmd.Flags().StringVar(&opts.CPU, "cpu", "", "CPU limit")
	cmd.Flags().StringVar(&opts.Memory, "memory", "", "Memory limit in Mi")
	cmd.Flags().StringVar(&opts.Command, "command", "", "Start command (default \""+generate.DefaultCommand+"\")")
	cmd.Flags().StringVarP(&opts.From, "from", "f", "", "Read the configuration from a YAML file")
	cmd.Flags().StringVarP(&opts.OutputDir, "output-dir", "o", "", "Directory to write files to")
	cmd.Flags().BoolVar(&opts.Force, "force", false, "Overwrite existing files")
	cmd.Flags().BoolVar(&opts.Stdout, "stdout", false, "Print the files instead of writing them")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "Refuse to generate when the pre-check fails")

	return cmd
}

// RunGenerate resolves the configuration record and emits the artifacts
func (a *App) RunGenerate(cmd *cobra.Command, opts GenerateOptions) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	rec := cfg.ProjectDefaults()
	if opts.From != "" {
		fromFile, err := project.LoadOverlay(opts.From)
		if err != nil {
			return err
		}
		rec = rec.Merge(fromFile)
	}
	rec = rec.Merge(project.Config{
		PythonVersion: opts.PythonVersion,
		BaseImage:     opts.BaseImage,
		Dependencies:  opts.Dependencies,
		Resources: project.Resources{
			CPU:    opts.CPU,
			Memory: opts.Memory,
		},
		Command: opts.Command,
	})

	if err := precheck(cmd.ErrOrStderr(), rec, opts.Strict || cfg.Strict); err != nil {
		return err
	}

	if opts.Stdout {
		printArtifacts(cmd.OutOrStdout(), rec)
		return nil
	}

	dir := cfg.Output.Dir
	if opts.OutputDir != "" {
		dir = opts.OutputDir
	}
	return writeArtifacts(cmd.OutOrStdout(), dir, rec, opts.Force || cfg.Output.Force)
}

// precheck reports pre-check findings. In strict mode findings are fatal,
// otherwise they are printed as warnings.
func precheck(w io.Writer, rec project.Config, strict bool) error {
	checks := project.Findings(rec)
	for _, finding := range checks {
		if strict {
			errorf(w, "%s", finding)
		} else {
			warningf(w, "%s", finding)
		}
	}
	if strict && len(checks) > 0 {
		return ErrCheckFailed
	}
	return nil
}

// printArtifacts writes every artifact to w, each under a header line.
func printArtifacts(w io.Writer, rec project.Config) {
	for i, a := range generate.Render(rec) {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "==> %s <==\n", a.Name)
		fmt.Fprint(w, a.Content)
		if len(a.Content) > 0 && a.Content[len(a.Content)-1] != '\n' {
			fmt.Fprintln(w)
		}
	}
}

// writeArtifacts writes the files into dir and reports each path.
func writeArtifacts(w io.Writer, dir string, rec project.Config, force bool) error {
	paths, err := generate.WriteFiles(dir, rec, force)
	if err != nil {
		return err
	}

	for _, p := range paths {
		generatef(w, "wrote %s", p)
		slog.Debug("artifact written", "path", p)
	}
	successf(w, "generated %d files in %s", len(paths), dir)
	return nil
}
