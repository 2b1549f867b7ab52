package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"tableflip.dev/focus/pkg/entry"
	"tableflip.dev/focus/pkg/space"
)

func TestWatcherPrunesDeletedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tracked.go")
	if err := os.WriteFile(path, []byte("package tracked\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	m := space.New(context.Background(), nil, space.Options{SaveDebounce: 10 * time.Millisecond})
	defer m.Close()
	e := m.AddEntry(path, entry.KindFile, "", "")
	if e == nil {
		t.Fatalf("add entry")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := New(m, Options{Debounce: 20 * time.Millisecond})
	go func() {
		if err := w.Run(ctx); err != nil {
			t.Errorf("watcher run: %v", err)
		}
	}()

	// Allow the watcher goroutine to subscribe to directories before
	// deleting.
	time.Sleep(100 * time.Millisecond)

	if err := os.Remove(path); err != nil {
		t.Fatalf("remove fixture: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for m.Has(path) {
		if time.Now().After(deadline) {
			t.Fatal("timed out waiting for watcher to prune the entry")
		}
		time.Sleep(10 * time.Millisecond)
	}
	if m.Count() != 0 {
		t.Fatalf("expected empty forest after prune, got %d", m.Count())
	}
}

func TestThrottleCoalesces(t *testing.T) {
	throttle := newPathThrottle(20 * time.Millisecond)
	defer throttle.Stop()

	var mu sync.Mutex
	var batches [][]string
	flush := func(paths []string) {
		mu.Lock()
		batches = append(batches, paths)
		mu.Unlock()
	}

	throttle.Enqueue("/a", flush)
	throttle.Enqueue("/b", flush)
	throttle.Enqueue("/a", flush)

	deadline := time.Now().Add(2 * time.Second)
	for {
		mu.Lock()
		n := len(batches)
		mu.Unlock()
		if n > 0 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("throttle never flushed")
		}
		time.Sleep(5 * time.Millisecond)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(batches) != 1 {
		t.Fatalf("expected one coalesced batch, got %d", len(batches))
	}
	if len(batches[0]) != 2 {
		t.Fatalf("expected 2 unique paths, got %v", batches[0])
	}
}

func TestExcludePatterns(t *testing.T) {
	m := space.New(context.Background(), nil, space.Options{})
	defer m.Close()
	w := New(m, Options{Excludes: []string{"*.log", "/tmp/cache/*"}})

	if !w.excluded("/var/app/debug.log") {
		t.Fatalf("base-name pattern should match")
	}
	if !w.excluded("/tmp/cache/item") {
		t.Fatalf("path pattern should match")
	}
	if w.excluded("/src/main.go") {
		t.Fatalf("unexpected exclusion")
	}
}
