// Package watcher re-registers a bundle file whenever it changes on disk.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/memload/internal/ports"
	"github.com/bft-labs/memload/pkg/bundle"
	"github.com/bft-labs/memload/pkg/log"
)

// DefaultDebounce is the delay used when none is configured.
const DefaultDebounce = 200 * time.Millisecond

// Registrar receives decoded bundles.
type Registrar interface {
	RegisterBundle(b *bundle.Bundle) error
}

// Watcher monitors a single bundle file via its parent directory.
type Watcher struct {
	path     string
	target   Registrar
	logger   ports.Logger
	debounce time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithLogger sets the logger.
func WithLogger(logger ports.Logger) Option {
	return func(w *Watcher) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// WithDebounce sets the delay between the last change event and reloading.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// New creates a watcher for the bundle at path.
func New(path string, target Registrar, opts ...Option) *Watcher {
	w := &Watcher{
		path:     filepath.Clean(path),
		target:   target,
		logger:   log.NewNoopLogger(),
		debounce: DefaultDebounce,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run loads the bundle once, then reloads it on every write or create of the
// file until ctx is cancelled. A failed initial load is returned; later
// failures are logged and the previous registration stays in place.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fsw.Close()

	dir := filepath.Dir(w.path)
	if err := fsw.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	if err := w.reload(); err != nil {
		return err
	}

	defer w.stopTimer()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			// Atomic writers rename a temp file over the target, which shows up as Create.
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.scheduleReload(ctx)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("bundle watcher error", ports.Err(err))
		}
	}
}

func (w *Watcher) scheduleReload(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}

	w.timer = time.AfterFunc(w.debounce, func() {
		if ctx.Err() != nil {
			return
		}
		if err := w.reload(); err != nil {
			w.logger.Error("bundle reload failed", ports.String("path", w.path), ports.Err(err))
		}
	})
}

func (w *Watcher) stopTimer() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
}

func (w *Watcher) reload() error {
	b, err := bundle.ReadFile(w.path)
	if err != nil {
		return err
	}
	if err := w.target.RegisterBundle(b); err != nil {
		return fmt.Errorf("register %s: %w", w.path, err)
	}
	w.logger.Info("bundle registered",
		ports.String("path", w.path),
		ports.DomainField(b.Domain),
		ports.Int("assemblies", len(b.Assemblies)),
		ports.Bytes("bytes", b.TotalBytes()),
	)
	return nil
}
