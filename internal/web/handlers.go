package web

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"mime"
	"net/http"
	"strings"

	"github.com/RevCBH/livegen/internal/generate"
	"github.com/RevCBH/livegen/internal/project"
)

// maxBodyBytes bounds request bodies; a configuration record is tiny.
const maxBodyBytes = 64 << 10

// IndexHandler serves the embedded HTML UI.
// Serves index.html for "/" and static files for other paths.
func IndexHandler(staticFS fs.FS) http.Handler {
	subFS, _ := fs.Sub(staticFS, "static")
	return http.FileServer(http.FS(subFS))
}

// OptionsHandler returns the catalogue with the server's defaults.
// GET /api/options
func OptionsHandler(defaults project.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts := project.Options()
		opts.Defaults = defaults
		writeJSON(w, http.StatusOK, opts)
	}
}

// RenderHandler renders both artifacts from a JSON configuration record.
// POST /api/render
// Pre-check findings are reported in "checks" and never block rendering.
func RenderHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var cfg project.Config
		dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err := dec.Decode(&cfg); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid configuration: " + err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, render(cfg))
	}
}

// DownloadHandler offers one artifact as a file download.
// POST /download/{name}
// Accepts the form fields of the UI or a JSON record. In strict mode a record
// failing the pre-check is rejected with 422.
func DownloadHandler(strict bool, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg, err := decodeConfig(w, r)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}

		if strict {
			if checks := project.Findings(cfg); len(checks) > 0 {
				writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
					Error:  "configuration failed validation",
					Checks: checks,
				})
				return
			}
		}

		artifact, err := generate.ByName(cfg, r.PathValue("name"))
		if err != nil {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: err.Error()})
			return
		}

		logger.Info("artifact downloaded", "artifact", artifact.Name, "bytes", len(artifact.Content))

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{
			"filename": artifact.Name,
		}))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(artifact.Content))
	}
}

// decodeConfig reads a record from a JSON body or from form values.
func decodeConfig(w http.ResponseWriter, r *http.Request) (project.Config, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		var cfg project.Config
		if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
			return project.Config{}, errors.New("invalid configuration: " + err.Error())
		}
		return cfg, nil
	}

	if err := r.ParseForm(); err != nil {
		return project.Config{}, errors.New("invalid form: " + err.Error())
	}
	return configFromForm(r.PostForm), nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// isAPIPath reports whether path belongs to the JSON API.
func isAPIPath(path string) bool {
	return strings.HasPrefix(path, "/api/")
}
