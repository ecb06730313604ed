// Package watch notices metrology files as they are written and hands each
// one to a handler once it has stopped changing.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/ZanzyTHEbar/surfapi-go/surf/scan"
)

// Handler is called once per settled file, from a single goroutine.
type Handler func(ctx context.Context, path string)

// Config holds the watcher settings.
type Config struct {
	Debounce      time.Duration
	MaxDelay      time.Duration
	Extensions    []string
	QueueCapacity int
}

// Watcher feeds settled files under a set of directories to a Handler.
type Watcher struct {
	fsw     *fsnotify.Watcher
	deb     *Debouncer
	handler Handler
	cfg     Config
	log     zerolog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu      sync.Mutex
	watched map[string]bool
	started bool
}

func New(cfg Config, handler Handler, log zerolog.Logger) (*Watcher, error) {
	if handler == nil {
		return nil, errors.New("watch: nil handler")
	}
	if cfg.Debounce <= 0 {
		return nil, fmt.Errorf("watch: debounce must be positive, got %s", cfg.Debounce)
	}
	if cfg.QueueCapacity <= 0 {
		cfg.QueueCapacity = 64
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	return &Watcher{
		fsw:     fsw,
		deb:     NewDebouncer(cfg.Debounce, cfg.MaxDelay, cfg.QueueCapacity),
		handler: handler,
		cfg:     cfg,
		log:     log,
		watched: make(map[string]bool),
	}, nil
}

// Start watches dirs and their subdirectories until ctx is done or Close
// is called. New subdirectories are picked up as they appear.
func (w *Watcher) Start(ctx context.Context, dirs []string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.started {
		return errors.New("watch: already started")
	}
	for _, dir := range dirs {
		if err := w.addRecursive(dir); err != nil {
			return err
		}
	}
	w.ctx, w.cancel = context.WithCancel(ctx)
	w.started = true

	w.wg.Add(2)
	go w.watchLoop()
	go w.dispatchLoop()
	w.log.Info().Int("dirs", len(dirs)).Msg("watcher started")
	return nil
}

// Watched returns the directories currently registered.
func (w *Watcher) Watched() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]string, 0, len(w.watched))
	for d := range w.watched {
		out = append(out, d)
	}
	return out
}

// Close stops watching and waits for a running handler to return.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.cancel != nil {
		w.cancel()
	}
	w.mu.Unlock()

	err := w.fsw.Close()
	w.deb.Close()
	w.wg.Wait()
	w.log.Info().Msg("watcher closed")
	return err
}

// addRecursive registers root and every directory below it. Callers hold
// w.mu.
func (w *Watcher) addRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if err := w.fsw.Add(path); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		w.watched[path] = true
		return nil
	})
}

func (w *Watcher) watchLoop() {
	defer w.wg.Done()
	for {
		select {
		case <-w.ctx.Done():
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handleEvent(ev)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Warn().Err(err).Msg("watch error")
		}
	}
}

func (w *Watcher) handleEvent(ev fsnotify.Event) {
	if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) {
		return
	}
	if st, err := os.Stat(ev.Name); err == nil && st.IsDir() {
		if ev.Has(fsnotify.Create) {
			w.mu.Lock()
			if err := w.addRecursive(ev.Name); err != nil {
				w.log.Warn().Str("path", ev.Name).Err(err).Msg("failed to watch new directory")
			}
			w.mu.Unlock()
			w.seedDirectory(ev.Name)
		}
		return
	}
	if scan.Match(ev.Name, w.cfg.Extensions) {
		w.deb.Add(ev.Name)
	}
}

// seedDirectory queues files that landed in a new directory before it
// was watched.
func (w *Watcher) seedDirectory(dir string) {
	files, err := scan.Find(dir, scan.Options{Extensions: w.cfg.Extensions, Recursive: true})
	if err != nil {
		w.log.Warn().Str("dir", dir).Err(err).Msg("failed to scan new directory")
		return
	}
	for _, f := range files {
		w.deb.Add(f)
	}
}

func (w *Watcher) dispatchLoop() {
	defer w.wg.Done()
	for {
		select {
		case <-w.ctx.Done():
			return
		case path, ok := <-w.deb.Paths():
			if !ok {
				return
			}
			w.log.Debug().Str("path", path).Msg("file settled")
			w.handler(w.ctx, path)
		}
	}
}
