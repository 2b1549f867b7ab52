package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"tableflip.dev/focus/pkg/entry"
)

type testConfig struct {
	path string
}

func (c *testConfig) BasePath() string             { return c.path }
func (c *testConfig) Root() string                 { return "" }
func (c *testConfig) SaveDebounce() time.Duration  { return 500 * time.Millisecond }
func (c *testConfig) WatchDebounce() time.Duration { return 100 * time.Millisecond }
func (c *testConfig) Excludes() []string           { return nil }

func TestLoadBeforeFirstSave(t *testing.T) {
	p, err := Load(&testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	if _, err := p.Load(context.Background()); !errors.Is(err, ErrNotExist) {
		t.Fatalf("expected ErrNotExist, got %v", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	p, err := Load(&testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	s := entry.NewSection("Work")
	f := entry.New("/a/one.go", entry.KindFile)
	s.Children = append(s.Children, f)
	doc := &Document{
		LastModified: time.Now().UnixMilli(),
		Entries:      []*entry.Entry{s},
	}
	if err := p.Save(doc); err != nil {
		t.Fatalf("save: %v", err)
	}

	back, err := p.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if back.Version != CurrentVersion {
		t.Fatalf("expected version %s, got %s", CurrentVersion, back.Version)
	}
	if back.LastModified != doc.LastModified {
		t.Fatalf("lastModified mismatch: %d vs %d", back.LastModified, doc.LastModified)
	}
	if len(back.Entries) != 1 {
		t.Fatalf("expected one root entry, got %d", len(back.Entries))
	}
	got := back.Entries[0]
	if got.ID != s.ID || got.Kind != entry.KindSection || got.Label != "Work" {
		t.Fatalf("section did not survive round trip: %+v", got)
	}
	if len(got.Children) != 1 || got.Children[0].ID != f.ID || got.Children[0].Locator != "/a/one.go" {
		t.Fatalf("child did not survive round trip: %+v", got.Children)
	}
}

func TestSaveOverwrites(t *testing.T) {
	p, err := Load(&testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	if err := p.Save(&Document{Entries: []*entry.Entry{entry.NewSection("A")}}); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := p.Save(&Document{Entries: []*entry.Entry{}}); err != nil {
		t.Fatalf("second save: %v", err)
	}
	back, err := p.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(back.Entries) != 0 {
		t.Fatalf("expected the second save to win, got %v", back.Entries)
	}
}
