package entry

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNewAssignsUniqueIDs(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		e := New("/tmp/x.go", KindFile)
		if e.ID == "" {
			t.Fatalf("expected generated id")
		}
		if _, dup := seen[e.ID]; dup {
			t.Fatalf("duplicate id generated: %s", e.ID)
		}
		seen[e.ID] = struct{}{}
	}
}

func TestNewChildrenByKind(t *testing.T) {
	if f := New("/tmp/x.go", KindFile); f.Children != nil {
		t.Fatalf("file should have nil children, got %v", f.Children)
	}
	d := New("/tmp/dir", KindFolder)
	if d.Children == nil {
		t.Fatalf("folder should have a non-nil children list")
	}
	if len(d.Children) != 0 {
		t.Fatalf("folder should start empty, got %d children", len(d.Children))
	}
}

func TestNewSection(t *testing.T) {
	s := NewSection("Active Work")
	if s.Kind != KindSection {
		t.Fatalf("unexpected kind: %s", s.Kind)
	}
	if s.Children == nil {
		t.Fatalf("section should have a non-nil children list")
	}
	if s.Locator != SectionScheme+s.ID {
		t.Fatalf("unexpected synthetic locator: %s", s.Locator)
	}
	if s.DisplayName() != "Active Work" {
		t.Fatalf("unexpected display name: %s", s.DisplayName())
	}
}

func TestDisplayName(t *testing.T) {
	cases := []struct {
		name  string
		entry *Entry
		want  string
	}{
		{"label wins", &Entry{Kind: KindFile, Locator: "/a/b.go", Label: "custom"}, "custom"},
		{"file base name", &Entry{Kind: KindFile, Locator: "/a/b.go"}, "b.go"},
		{"folder trailing slash", &Entry{Kind: KindFolder, Locator: "/a/pkg/"}, "pkg"},
		{"unlabeled section", &Entry{Kind: KindSection}, UntitledSection},
	}
	for _, tc := range cases {
		if got := tc.entry.DisplayName(); got != tc.want {
			t.Fatalf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind(" Folder ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if k != KindFolder {
		t.Fatalf("got %s", k)
	}
	if _, err := ParseKind("workspace"); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
	if !KindSection.IsContainer() || KindFile.IsContainer() {
		t.Fatalf("container classification wrong")
	}
}

func TestTimestampRoundTrip(t *testing.T) {
	ts := Timestamp{Time: time.Date(2024, 3, 9, 12, 30, 0, 0, time.UTC)}
	data, err := json.Marshal(ts)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back Timestamp
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Equal(ts.Time) {
		t.Fatalf("round trip mismatch: %v != %v", back, ts)
	}
}

func TestTimestampEmpty(t *testing.T) {
	var ts Timestamp
	data, err := json.Marshal(ts)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `""` {
		t.Fatalf("zero timestamp should marshal to empty string, got %s", data)
	}
	var back Timestamp
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.IsZero() {
		t.Fatalf("expected zero timestamp")
	}
}
