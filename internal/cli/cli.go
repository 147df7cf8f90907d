package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/RevCBH/livegen/internal/config"
	"github.com/RevCBH/livegen/internal/logger"
	"github.com/spf13/cobra"
)

// VersionInfo holds build metadata set via ldflags
type VersionInfo struct {
	Version string
	Commit  string
	Date    string
}

// App represents the CLI application with all wired dependencies
type App struct {
	// Root command
	rootCmd *cobra.Command

	// Configuration (initialized lazily)
	config *config.Config

	// Flags
	verbose      bool
	workDir      string
	globalConfig string

	// Terminal input for prompts; nil means os.Stdin
	stdin io.Reader

	// Log destination; nil means os.Stderr
	logOutput io.Writer
	logger    *slog.Logger

	// Version information
	versionInfo VersionInfo
}

// New creates a new CLI application
func New() *App {
	app := &App{}
	app.setupRootCmd()
	return app
}

// Execute runs the CLI application
func (a *App) Execute() error {
	return a.rootCmd.Execute()
}

// SetVersion sets the version string for the version command
func (a *App) SetVersion(version, commit, date string) {
	a.versionInfo = VersionInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}

// setupRootCmd configures the root Cobra command
func (a *App) setupRootCmd() {
	a.rootCmd = &cobra.Command{
		Use:   "livegen",
		Short: "Generate live.yml and Dockerfile for Python workloads",
		Long: `livegen renders a live.yml resource descriptor and a matching Dockerfile
from a handful of choices: Python version, base image, dependencies,
CPU and memory limits, and the start command.

Use 'livegen serve' for the browser form, 'livegen init' for the
terminal wizard, or 'livegen generate' for scripted use.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add persistent flags
	a.rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false,
		"Verbose output")
	a.rootCmd.PersistentFlags().StringVarP(&a.workDir, "dir", "C", ".",
		"Working directory holding .livegen.yaml")
	a.rootCmd.PersistentFlags().StringVar(&a.globalConfig, "config", config.GlobalConfigPath(),
		"User config file (empty to skip)")

	a.rootCmd.AddCommand(
		NewServeCmd(a),
		NewGenerateCmd(a),
		NewInitCmd(a),
		NewOptionsCmd(a),
		NewValidateCmd(a),
		NewVersionCmd(a),
	)
}

// loadConfig loads configuration and installs the logger on first use.
func (a *App) loadConfig() (*config.Config, error) {
	if a.config != nil {
		return a.config, nil
	}

	workDir, err := filepath.Abs(a.workDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	cfg, err := config.LoadConfig(workDir, a.globalConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	level := cfg.Log.Level
	if a.verbose {
		level = "debug"
	}
	out := a.logOutput
	if out == nil {
		out = os.Stderr
	}
	log, err := logger.Init(logger.Config{
		Level: level,
		Dir:   cfg.Log.Dir,
		JSON:  cfg.Log.JSON,
	}, out)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	a.logger = log

	a.config = cfg
	return cfg, nil
}

// log returns the logger installed by loadConfig, or the slog default before
// the config is loaded.
func (a *App) log() *slog.Logger {
	if a.logger != nil {
		return a.logger
	}
	return slog.Default()
}

func (a *App) input() io.Reader {
	if a.stdin != nil {
		return a.stdin
	}
	return os.Stdin
}
