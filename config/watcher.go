package config

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/Nireus79/Socrates2-sub006/registry"
)

// WatcherConfig configures the domain definition watcher.
type WatcherConfig struct {
	// Dir is the configuration directory to watch.
	Dir string

	// DebounceDelay is how long to wait for more changes before reloading.
	DebounceDelay time.Duration

	// Logger for logging events.
	Logger *slog.Logger
}

// ReloadEvent reports one reload triggered by a file change.
type ReloadEvent struct {
	// Path is the definition file that changed.
	Path string

	// Result is the load outcome for the changed file.
	Result FileResult
}

// Watcher watches a configuration directory and re-registers domains when
// their definition files change. Registry replace semantics make a reload
// equivalent to a fresh registration; readers holding the previous Domain
// keep a consistent snapshot.
type Watcher struct {
	config  WatcherConfig
	loader  *Loader
	reg     *registry.Registry
	watcher *fsnotify.Watcher
	logger  *slog.Logger

	// Debouncing: collect changed paths before processing.
	pendingMu sync.Mutex
	pending   map[string]struct{}

	// Content hashes to skip no-op writes.
	hashMu sync.Mutex
	hashes map[string]string

	events chan ReloadEvent
}

// NewWatcher creates a watcher that reloads into reg.
func NewWatcher(config WatcherConfig, loader *Loader, reg *registry.Registry) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if config.DebounceDelay == 0 {
		config.DebounceDelay = 100 * time.Millisecond
	}

	return &Watcher{
		config:  config,
		loader:  loader,
		reg:     reg,
		watcher: fsw,
		logger:  logger,
		pending: make(map[string]struct{}),
		hashes:  make(map[string]string),
		events:  make(chan ReloadEvent, 16),
	}, nil
}

// Events returns the channel of reload events.
func (w *Watcher) Events() <-chan ReloadEvent {
	return w.events
}

// Start begins watching the configuration directory. It returns once the
// watch is established; processing continues until ctx is cancelled.
func (w *Watcher) Start(ctx context.Context) error {
	if err := w.addWatchesRecursive(w.config.Dir); err != nil {
		return err
	}

	go w.processEvents(ctx)

	w.logger.Info("Domain definition watcher started",
		slog.String("dir", w.config.Dir))
	return nil
}

// Close stops the underlying filesystem watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

func (w *Watcher) addWatchesRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") && path != root {
			return filepath.SkipDir
		}
		return w.watcher.Add(path)
	})
}

func (w *Watcher) processEvents(ctx context.Context) {
	timer := time.NewTimer(w.config.DebounceDelay)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !isDefinitionFile(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}
			w.pendingMu.Lock()
			w.pending[event.Name] = struct{}{}
			w.pendingMu.Unlock()
			timer.Reset(w.config.DebounceDelay)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("Watcher error", slog.String("error", err.Error()))
		case <-timer.C:
			w.flushPending()
		}
	}
}

func (w *Watcher) flushPending() {
	w.pendingMu.Lock()
	paths := make([]string, 0, len(w.pending))
	for path := range w.pending {
		paths = append(paths, path)
	}
	w.pending = make(map[string]struct{})
	w.pendingMu.Unlock()

	for _, path := range paths {
		if !w.contentChanged(path) {
			continue
		}
		result := w.loader.LoadFile(w.reg, path)
		if result.Err != nil {
			w.logger.Warn("Reload failed, keeping previous registration",
				slog.String("path", path),
				slog.String("error", result.Err.Error()))
		} else {
			w.logger.Info("Reloaded domain definition",
				slog.String("domain_id", result.DomainID),
				slog.String("path", path))
		}

		select {
		case w.events <- ReloadEvent{Path: path, Result: result}:
		default:
			// Slow consumer; drop rather than block the watch loop.
		}
	}
}

// contentChanged hashes the file and reports whether it differs from the
// last seen content. Editors often emit several events per save.
func (w *Watcher) contentChanged(path string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	sum := sha256.Sum256(data)
	hash := hex.EncodeToString(sum[:])

	w.hashMu.Lock()
	defer w.hashMu.Unlock()
	if w.hashes[path] == hash {
		return false
	}
	w.hashes[path] = hash
	return true
}

func isDefinitionFile(path string) bool {
	ext := filepath.Ext(path)
	return ext == ".yaml" || ext == ".yml"
}
