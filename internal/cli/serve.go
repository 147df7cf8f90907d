package cli

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/RevCBH/livegen/internal/web"
	"github.com/spf13/cobra"
)

// shutdownTimeout bounds the wait for in-flight requests.
const shutdownTimeout = 10 * time.Second

// ServeOptions holds flags for the serve command
type ServeOptions struct {
	Port   string
	Strict bool
}

// NewServeCmd creates the serve command.
// Usage: livegen serve [--port PORT] [--strict]
func NewServeCmd(app *App) *cobra.Command {
	opts := ServeOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web generator",
		Long: `Starts a web server with the generator form.

The preview updates on every change over a websocket; the download
buttons return live.yml and Dockerfile as files.

Open http://localhost:8080 in your browser to use it.

Press Ctrl+C to stop the server.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.RunServe(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Port, "port", "", "HTTP port to listen on (overrides server.addr)")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "Reject downloads that fail the pre-check")

	return cmd
}

// RunServe runs the web server until a signal arrives or the command context
// is cancelled.
func (a *App) RunServe(cmd *cobra.Command, opts ServeOptions) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	addr := cfg.Server.Addr
	if opts.Port != "" {
		addr = listenAddr(addr, opts.Port)
	}
	defaults := cfg.ProjectDefaults()
	log := a.log().With("component", "web")

	srv, err := web.New(web.Config{
		Addr:     addr,
		Defaults: &defaults,
		Strict:   opts.Strict || cfg.Strict,
		Logger:   log,
	})
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}

	watcher := watchShutdown(shutdownSignals...)
	defer watcher.Stop()

	if err := srv.Start(); err != nil {
		return fmt.Errorf("start server: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Web server listening on http://%s\n", srv.Addr())
	fmt.Fprintln(out, "Press Ctrl+C to stop")

	reason := watcher.Wait(cmd.Context())
	log.Info("shutting down web server", "addr", srv.Addr(), "reason", reason)

	fmt.Fprintln(out, "\nShutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("stop server: %w", err)
	}

	fmt.Fprintln(out, "Server stopped")
	return nil
}

// listenAddr replaces the port of addr, keeping any configured host.
func listenAddr(addr, port string) string {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		host = ""
	}
	return net.JoinHostPort(host, port)
}
