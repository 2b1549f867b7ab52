// Package watch reconciles the focus space with external filesystem
// activity: when a file or folder tracked by the space disappears on
// disk, its entry is removed from the store.
package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"

	"tableflip.dev/focus/pkg/entry"
	"tableflip.dev/focus/pkg/space"
)

// DefaultDebounce coalesces filesystem storms so the store sees one
// reconcile pass per burst instead of one per write.
const DefaultDebounce = 100 * time.Millisecond

// Options configures a Watcher.
type Options struct {
	// Debounce overrides DefaultDebounce when positive.
	Debounce time.Duration
	// Excludes are glob patterns (matched against the full path and the
	// base name) for paths the watcher ignores.
	Excludes []string
	// Logger receives watch failures. Defaults to a quiet stderr logger.
	Logger *logrus.Logger
}

// Watcher tracks the parent directories of every file and folder entry in
// the focus space and prunes entries whose backing paths vanish.
type Watcher struct {
	space    *space.Manager
	debounce time.Duration
	excludes []string
	log      *logrus.Logger
}

// New builds a Watcher over the given store.
func New(m *space.Manager, opts Options) *Watcher {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	log := opts.Logger
	if log == nil {
		log = logrus.New()
		log.SetLevel(logrus.WarnLevel)
	}
	return &Watcher{
		space:    m,
		debounce: opts.Debounce,
		excludes: opts.Excludes,
		log:      log,
	}
}

// Run watches until ctx is cancelled. Entries already pruned stay pruned
// on cancellation; partial progress is retained, not rolled back.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				w.log.WithError(err).Warn("watch: close")
			}
		})
	}
	defer closeWatcher()

	// Track directories we already watch so re-syncs after store changes
	// never duplicate watches.
	watched := make(map[string]struct{})
	w.sync(watcher, watched)

	changes := w.space.Subscribe()

	throttle := newPathThrottle(w.debounce)
	defer throttle.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-changes:
			w.sync(watcher, watched)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.log.WithError(err).Warn("watch: watcher error")
		case evt, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if evt.Op&(fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if w.excluded(evt.Name) {
				continue
			}
			throttle.Enqueue(filepath.Clean(evt.Name), w.reconcile)
		}
	}
}

// sync points the watcher at the parent directory of every tracked
// file/folder locator currently in the space.
func (w *Watcher) sync(watcher *fsnotify.Watcher, watched map[string]struct{}) {
	for _, dir := range w.dirs() {
		if _, found := watched[dir]; found {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				w.log.WithField("dir", dir).WithError(err).Warn("watch: add")
			}
			continue
		}
		watched[dir] = struct{}{}
	}
}

func (w *Watcher) dirs() []string {
	var dirs []string
	seen := make(map[string]struct{})
	for _, kind := range []entry.Kind{entry.KindFile, entry.KindFolder} {
		for _, e := range w.space.ByKind(kind) {
			dir := filepath.Dir(e.Locator)
			if _, dup := seen[dir]; dup {
				continue
			}
			seen[dir] = struct{}{}
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

// reconcile handles one coalesced batch of removed/renamed paths. Each
// path is re-checked on disk first: rapid delete-recreate sequences must
// not prune a file that is back.
func (w *Watcher) reconcile(paths []string) {
	for _, path := range paths {
		e := w.space.EntryByLocator(path)
		if e == nil {
			continue
		}
		if _, err := os.Stat(path); err == nil {
			continue
		}
		if w.space.RemoveEntry(e.ID) {
			w.log.WithFields(logrus.Fields{
				"locator": path,
				"id":      e.ID,
			}).Info("watch: pruned entry for missing path")
		}
	}
}

func (w *Watcher) excluded(path string) bool {
	base := filepath.Base(path)
	for _, pattern := range w.excludes {
		if ok, _ := filepath.Match(pattern, path); ok {
			return true
		}
		if ok, _ := filepath.Match(pattern, base); ok {
			return true
		}
	}
	return false
}

// pathThrottle coalesces rapid filesystem notifications so the store sees
// one reconcile per burst of activity instead of one per event.
type pathThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending map[string]struct{}
	delay   time.Duration
}

func newPathThrottle(delay time.Duration) *pathThrottle {
	return &pathThrottle{
		delay:   delay,
		pending: make(map[string]struct{}),
	}
}

func (t *pathThrottle) Enqueue(path string, flush func([]string)) {
	t.mu.Lock()
	t.pending[path] = struct{}{}
	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(flush)
		})
	}
	t.mu.Unlock()
}

func (t *pathThrottle) flush(fn func([]string)) {
	t.mu.Lock()
	pending := t.pending
	t.pending = make(map[string]struct{})
	t.timer = nil
	t.mu.Unlock()

	paths := make([]string, 0, len(pending))
	for path := range pending {
		paths = append(paths, path)
	}
	fn(paths)
}

func (t *pathThrottle) Stop() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
