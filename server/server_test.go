package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/chromana/chromana/workspace"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	root := t.TempDir()
	ws := &workspace.Config{
		Paths: workspace.PathsConfig{
			Icons: filepath.Join(root, "icons"),
			Dist:  filepath.Join(root, "dist"),
			Demo:  filepath.Join(root, "demo"),
		},
		Server: workspace.ServerConfig{Port: 0},
	}
	require.NoError(t, os.MkdirAll(ws.Paths.Dist, 0o755))
	require.NoError(t, os.MkdirAll(ws.Paths.Demo, 0o755))

	srv, err := New(ws, zap.NewNop().Sugar())
	require.NoError(t, err)
	t.Cleanup(srv.cancel)
	return srv
}

func TestNewRequiresDist(t *testing.T) {
	ws := &workspace.Config{
		Paths: workspace.PathsConfig{Dist: filepath.Join(t.TempDir(), "missing")},
	}
	_, err := New(ws, zap.NewNop().Sugar())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dist directory")
}

func TestResolvePrefersDemo(t *testing.T) {
	srv := testServer(t)
	require.NoError(t, os.WriteFile(filepath.Join(srv.ws.Paths.Demo, "magic.html"), []byte("demo"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(srv.ws.Paths.Dist, "magic.html"), []byte("dist"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(srv.ws.Paths.Dist, "font.woff2"), []byte("font"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(srv.ws.Paths.Demo, "index.html"), []byte("index"), 0o644))

	path, ok := srv.resolve("/magic.html")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(srv.ws.Paths.Demo, "magic.html"), path)

	path, ok = srv.resolve("/font.woff2")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(srv.ws.Paths.Dist, "font.woff2"), path)

	path, ok = srv.resolve("/")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(srv.ws.Paths.Demo, "index.html"), path)

	_, ok = srv.resolve("/nope.css")
	assert.False(t, ok)
}

func TestResolveDistPrefix(t *testing.T) {
	srv := testServer(t)
	path, ok := srv.resolve("/dist/magic/Chromana-magic.woff2")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(srv.ws.Paths.Dist, "magic", "Chromana-magic.woff2"), path)
}

func TestResolveRejectsTraversal(t *testing.T) {
	srv := testServer(t)
	secret := filepath.Join(filepath.Dir(srv.ws.Paths.Demo), "secret.txt")
	require.NoError(t, os.WriteFile(secret, []byte("x"), 0o644))

	_, ok := srv.resolve("/../secret.txt")
	assert.False(t, ok, "cleaned path stays inside the served roots")
}

func TestHealthEndpoint(t *testing.T) {
	srv := testServer(t)
	rec := httptest.NewRecorder()
	srv.handleHealth(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestReloadBroadcast(t *testing.T) {
	srv := testServer(t)

	httpSrv := httptest.NewServer(http.HandlerFunc(srv.handleWebSocket))
	defer httpSrv.Close()

	url := "ws" + strings.TrimPrefix(httpSrv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	// Wait for the pumps to register the client.
	require.Eventually(t, func() bool { return srv.clientCount() == 1 },
		2*time.Second, 10*time.Millisecond)

	srv.NotifyReload([]string{"magic"})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg reloadMessage
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, "reload", msg.Type)
	assert.Equal(t, []string{"magic"}, msg.Sets)
}

func TestColorStatus(t *testing.T) {
	assert.Contains(t, colorStatus(200), "200")
	assert.Contains(t, colorStatus(304), "304")
	assert.Contains(t, colorStatus(404), "404")
}

func TestWatcherSetCode(t *testing.T) {
	root := t.TempDir()
	icons := filepath.Join(root, "icons")
	require.NoError(t, os.MkdirAll(icons, 0o755))

	w := &Watcher{ws: &workspace.Config{
		Paths: workspace.PathsConfig{Icons: icons},
	}}

	code, ok := w.setCode(filepath.Join(icons, "magic", "default", "tap.svg"))
	require.True(t, ok)
	assert.Equal(t, "magic", code)

	code, ok = w.setCode(filepath.Join(icons, "magic", "config.toml"))
	require.True(t, ok)
	assert.Equal(t, "magic", code)

	_, ok = w.setCode(filepath.Join(icons, "stray.txt"))
	assert.False(t, ok, "files at the icons root belong to no set")

	_, ok = w.setCode(filepath.Join(root, "elsewhere", "x.svg"))
	assert.False(t, ok)
}
