package server

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/chromana/chromana/errors"
	"github.com/chromana/chromana/pipeline"
	"github.com/chromana/chromana/workspace"
)

// pollInterval is how often pending changes are checked for rebuild.
const pollInterval = 200 * time.Millisecond

// Watcher rebuilds icon sets when their artwork or config changes and
// pushes a reload to the preview pages afterwards. Rebuilds are rate
// limited so a burst of editor writes triggers one build, not one per
// file.
type Watcher struct {
	ws      *workspace.Config
	runner  *pipeline.Runner
	server  *Server
	log     *zap.SugaredLogger
	limiter *rate.Limiter
	fsw     *fsnotify.Watcher

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu      sync.Mutex
	pending map[string]bool // set codes touched since the last rebuild
}

// NewWatcher wires a watcher over the icons directory.
func NewWatcher(ws *workspace.Config, runner *pipeline.Runner, srv *Server, log *zap.SugaredLogger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create filesystem watcher")
	}

	debounce := ws.Server.WatchDebounceSecs
	if debounce <= 0 {
		debounce = 1
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		ws:      ws,
		runner:  runner,
		server:  srv,
		log:     log,
		limiter: rate.NewLimiter(rate.Limit(1/debounce), 1),
		fsw:     fsw,
		ctx:     ctx,
		cancel:  cancel,
		pending: make(map[string]bool),
	}

	if err := w.watchTree(ws.Paths.Icons); err != nil {
		fsw.Close()
		cancel()
		return nil, err
	}
	return w, nil
}

// Start begins watching; it returns immediately.
func (w *Watcher) Start() {
	w.wg.Add(2)
	go w.eventLoop()
	go w.rebuildLoop()
	w.log.Infow("watching for changes", "dir", w.ws.Paths.Icons)
}

// Stop shuts the watcher down and waits for in-flight rebuilds.
func (w *Watcher) Stop() {
	w.cancel()
	w.fsw.Close()
	w.wg.Wait()
}

// watchTree registers every directory under root, fsnotify watches are
// not recursive.
func (w *Watcher) watchTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return errors.Wrapf(err, "failed to walk %s", path)
		}
		if d.IsDir() {
			if err := w.fsw.Add(path); err != nil {
				return errors.Wrapf(err, "failed to watch %s", path)
			}
		}
		return nil
	})
}

func (w *Watcher) eventLoop() {
	defer w.wg.Done()

	for {
		select {
		case <-w.ctx.Done():
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Warnw("watch error", "error", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return
	}

	// New subdirectories (fresh style dirs, whole new icon sets) need
	// their own watch.
	if event.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			_ = w.watchTree(event.Name)
		}
	}

	code, ok := w.setCode(event.Name)
	if !ok {
		return
	}

	w.mu.Lock()
	w.pending[code] = true
	w.mu.Unlock()
	w.log.Debugw("change detected", "set", code, "file", event.Name, "op", event.Op.String())
}

// setCode maps a changed path to the icon set containing it.
func (w *Watcher) setCode(path string) (string, bool) {
	rel, err := filepath.Rel(w.ws.Paths.Icons, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", false
	}
	parts := strings.Split(filepath.ToSlash(rel), "/")
	if len(parts) < 2 {
		// A change at the icons root itself is not attributable to a set.
		return "", false
	}
	return parts[0], true
}

// rebuildLoop drains pending changes into rebuilds, at most one per
// debounce window.
func (w *Watcher) rebuildLoop() {
	defer w.wg.Done()

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			w.mu.Lock()
			if len(w.pending) == 0 {
				w.mu.Unlock()
				continue
			}
			if !w.limiter.Allow() {
				w.mu.Unlock()
				continue
			}
			codes := make([]string, 0, len(w.pending))
			for code := range w.pending {
				codes = append(codes, code)
			}
			w.pending = make(map[string]bool)
			w.mu.Unlock()

			w.rebuild(codes)
		}
	}
}

func (w *Watcher) rebuild(codes []string) {
	w.log.Infow("rebuilding changed icon sets", "sets", codes)

	sets, err := pipeline.Discover(w.ws.Paths.Icons)
	if err != nil {
		w.log.Errorw("rebuild discovery failed", "error", err)
		return
	}
	selected, err := pipeline.Select(sets, codes)
	if err != nil {
		// The changed directory may not be a valid icon set (yet).
		w.log.Warnw("rebuild selection failed", "error", err)
		return
	}

	summary, err := w.runner.Run(w.ctx, selected)
	if err != nil {
		w.log.Errorw("rebuild failed", "error", err)
		return
	}

	var rebuilt []string
	for _, res := range summary.Results {
		if res.OK() {
			rebuilt = append(rebuilt, res.Code)
		} else {
			w.log.Errorw("icon set rebuild failed", "set", res.Code, "error", res.Err)
		}
	}
	if len(rebuilt) > 0 && w.server != nil {
		w.server.NotifyReload(rebuilt)
	}
}
