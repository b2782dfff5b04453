// Package server is the dev preview server: it serves the demo pages
// and built fonts over HTTP, and in watch mode rebuilds icon sets on
// artwork changes and tells connected preview pages to reload over a
// websocket.
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/pterm/pterm"
	"go.uber.org/zap"

	"github.com/chromana/chromana/errors"
	"github.com/chromana/chromana/workspace"
)

// Server serves demo/ and dist/ and coordinates live reload.
type Server struct {
	ws  *workspace.Config
	log *zap.SugaredLogger

	httpServer *http.Server
	upgrader   websocket.Upgrader

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu      sync.Mutex
	clients map[*client]bool
}

// New builds a server for the workspace layout. The dist directory
// must exist; the tool refuses to serve an unbuilt checkout.
func New(ws *workspace.Config, log *zap.SugaredLogger) (*Server, error) {
	if info, err := os.Stat(ws.Paths.Dist); err != nil || !info.IsDir() {
		return nil, errors.WithHint(
			errors.Newf("dist directory %s does not exist", ws.Paths.Dist),
			"run `chromana build` first")
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		ws:  ws,
		log: log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Local dev tool; the preview page is served from this
			// same process.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		ctx:     ctx,
		cancel:  cancel,
		clients: make(map[*client]bool),
	}, nil
}

// Start runs the HTTP server until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/", s.logRequests(s.handleStatic))

	addr := fmt.Sprintf(":%d", s.ws.Server.Port)
	s.httpServer = &http.Server{Addr: addr, Handler: mux}

	s.log.Infow("dev server starting",
		"addr", fmt.Sprintf("http://localhost:%d/", s.ws.Server.Port),
		"dist", s.ws.Paths.Dist,
		"demo", s.ws.Paths.Demo)

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		return s.Stop()
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return errors.Wrap(err, "dev server failed")
		}
		return nil
	}
}

// Stop shuts the server down and waits for client pumps to exit.
func (s *Server) Stop() error {
	s.cancel()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := s.httpServer.Shutdown(shutdownCtx)

	s.mu.Lock()
	for c := range s.clients {
		c.close()
	}
	s.mu.Unlock()
	s.wg.Wait()

	s.log.Info("dev server stopped")
	return err
}

// handleStatic resolves request paths against demo/ first and dist/
// second, so preview pages win over font binaries with the same name.
// The root path serves the demo index.
func (s *Server) handleStatic(w http.ResponseWriter, r *http.Request) {
	path, ok := s.resolve(r.URL.Path)
	if !ok {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, path)
}

// resolve maps a URL path to a file under demo/ or dist/. Traversal
// outside the two roots is rejected.
func (s *Server) resolve(urlPath string) (string, bool) {
	cleaned := filepath.Clean("/" + urlPath)
	if cleaned == "/" {
		cleaned = "/index.html"
	}
	// Requests written against the demo pages reference dist assets as
	// ../dist/...; clients normalize that to /dist/... before sending.
	rel := strings.TrimPrefix(cleaned, "/")

	if strings.HasPrefix(rel, "dist/") {
		return filepath.Join(s.ws.Paths.Dist, strings.TrimPrefix(rel, "dist/")), true
	}

	for _, root := range []string{s.ws.Paths.Demo, s.ws.Paths.Dist} {
		candidate := filepath.Join(root, rel)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
	}
	return "", false
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, `{"status":"ok","clients":%d}`, s.clientCount())
}

// handleWebSocket upgrades a preview page's live-reload connection.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warnw("websocket upgrade failed", "error", err)
		return
	}

	c := newClient(s, conn)
	s.mu.Lock()
	s.clients[c] = true
	s.mu.Unlock()

	s.log.Debugw("preview client connected", "remote", conn.RemoteAddr().String())

	s.wg.Add(2)
	go c.readPump()
	go c.writePump()
}

// NotifyReload tells every connected preview page to refresh.
func (s *Server) NotifyReload(codes []string) {
	msg := reloadMessage{
		Type:      "reload",
		Sets:      codes,
		Timestamp: time.Now().Unix(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for c := range s.clients {
		c.send(msg)
	}
	s.log.Infow("reload broadcast", "sets", codes, "clients", len(s.clients))
}

func (s *Server) clientCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

func (s *Server) removeClient(c *client) {
	s.mu.Lock()
	delete(s.clients, c)
	s.mu.Unlock()
}

// reloadMessage is pushed to preview pages after a watch rebuild.
type reloadMessage struct {
	Type      string   `json:"type"`
	Sets      []string `json:"sets,omitempty"`
	Timestamp int64    `json:"timestamp"`
}

// logRequests wraps a handler with colored request logging.
func (s *Server) logRequests(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next(rec, r)
		s.log.Infof("%s %s %s", r.RemoteAddr, colorStatus(rec.status), r.URL.Path)
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// colorStatus renders an HTTP status code green for success, blue for
// redirects, red for errors.
func colorStatus(code int) string {
	text := fmt.Sprintf("%d", code)
	switch {
	case code < 300:
		return pterm.FgGreen.Sprint(text)
	case code < 400:
		return pterm.FgBlue.Sprint(text)
	default:
		return pterm.FgRed.Sprint(text)
	}
}
