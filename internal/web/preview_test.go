package web

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/RevCBH/livegen/internal/project"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialPreview(t *testing.T) *websocket.Conn {
	t.Helper()

	ts := httptest.NewServer(PreviewHandler(discardLogger()))
	t.Cleanup(ts.Close)

	url := "ws" + strings.TrimPrefix(ts.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	return conn
}

func TestPreview_RendersEveryFrame(t *testing.T) {
	conn := dialPreview(t)

	cfg := project.Default()
	for _, dep := range []string{"numpy", "scipy"} {
		cfg = cfg.ToggleDependency(dep)
		require.NoError(t, conn.WriteJSON(cfg))

		var resp RenderResponse
		require.NoError(t, conn.ReadJSON(&resp))
		assert.Equal(t, render(cfg), resp)
	}
}

func TestPreview_InvalidFrameKeepsConnection(t *testing.T) {
	conn := dialPreview(t)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("{oops")))

	var errResp ErrorResponse
	require.NoError(t, conn.ReadJSON(&errResp))
	assert.Contains(t, errResp.Error, "invalid configuration")

	require.NoError(t, conn.WriteJSON(project.Config{Command: "python main.py"}))

	var resp RenderResponse
	require.NoError(t, conn.ReadJSON(&resp))
	assert.Contains(t, resp.LiveYML, "command: python main.py")
	assert.True(t, strings.HasSuffix(resp.Dockerfile, `CMD ["python main.py"]`))
}

func TestPreview_ThroughServerMiddleware(t *testing.T) {
	srv := startTestServer(t, Config{})

	conn, _, err := websocket.DefaultDialer.Dial("ws://"+srv.Addr()+"/api/preview", nil)
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	require.NoError(t, conn.WriteJSON(project.Default()))

	var resp RenderResponse
	require.NoError(t, conn.ReadJSON(&resp))
	assert.Contains(t, resp.LiveYML, "memory: 512Mi")
}

func TestPreview_NumericResources(t *testing.T) {
	conn := dialPreview(t)

	frame := `{"python_version":"3.9","resources":{"cpu":0.5,"memory":1024}}`
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(frame)))

	var resp RenderResponse
	require.NoError(t, conn.ReadJSON(&resp))
	assert.Contains(t, resp.LiveYML, "cpu: 0.5\n")
	assert.Contains(t, resp.LiveYML, "memory: 1024Mi")
}
