package web

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/RevCBH/livegen/internal/project"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	// previewReadLimit bounds one frame; a configuration record is tiny.
	previewReadLimit = 64 << 10
	previewWriteWait = 5 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
}

// PreviewHandler upgrades to a websocket and answers every configuration
// frame with the rendered artifacts. Each frame is rendered on its own; the
// connection holds no form state.
// GET /api/preview
func PreviewHandler(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			// Upgrade already wrote the HTTP error.
			logger.Warn("preview upgrade failed", "error", err)
			return
		}
		defer conn.Close()

		session := uuid.NewString()
		log := logger.With("session", session)
		log.Info("preview connected", "remote", r.RemoteAddr)
		defer log.Info("preview disconnected")

		conn.SetReadLimit(previewReadLimit)

		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					log.Warn("preview read failed", "error", err)
				}
				return
			}

			var reply any
			var cfg project.Config
			if err := json.Unmarshal(data, &cfg); err != nil {
				reply = ErrorResponse{Error: "invalid configuration: " + err.Error()}
			} else {
				reply = render(cfg)
			}

			_ = conn.SetWriteDeadline(time.Now().Add(previewWriteWait))
			if err := conn.WriteJSON(reply); err != nil {
				log.Warn("preview write failed", "error", err)
				return
			}
		}
	}
}
