package web

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/RevCBH/livegen/internal/project"
)

// Server serves the generator form, its JSON API and the download endpoints.
type Server struct {
	addr   string
	logger *slog.Logger

	httpServer   *http.Server
	httpListener net.Listener
}

// New creates a new web server with the given configuration.
// Does not start listening - call Start() for that.
func New(cfg Config) (*Server, error) {
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	defaults := project.Default()
	if cfg.Defaults != nil {
		defaults = *cfg.Defaults
	}

	mux := http.NewServeMux()
	mux.Handle("/", IndexHandler(staticFS))
	mux.HandleFunc("GET /api/options", OptionsHandler(defaults))
	mux.HandleFunc("POST /api/render", RenderHandler())
	mux.HandleFunc("GET /api/preview", PreviewHandler(cfg.Logger))
	mux.HandleFunc("POST /download/{name}", DownloadHandler(cfg.Strict, cfg.Logger))

	httpServer := &http.Server{
		Addr:    cfg.Addr,
		Handler: logRequests(cfg.Logger, mux),
	}

	return &Server{
		addr:       cfg.Addr,
		logger:     cfg.Logger,
		httpServer: httpServer,
	}, nil
}

// Handler returns the HTTP handler, for embedding or tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins listening on HTTP.
// Non-blocking - the server runs in a goroutine.
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("HTTP listen: %w", err)
	}
	s.httpListener = listener

	// Update addr with actual address (important for ephemeral ports)
	s.addr = listener.Addr().String()

	go func() {
		if err := s.httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			s.logger.Error("http server stopped", "error", err)
		}
	}()

	s.logger.Info("web server listening", "addr", s.addr)
	return nil
}

// Stop performs graceful shutdown, waiting for in-flight requests until ctx
// expires.
func (s *Server) Stop(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("HTTP shutdown: %w", err)
	}
	return nil
}

// Addr returns the HTTP listen address.
func (s *Server) Addr() string {
	return s.addr
}
