// Package space owns the in-memory focus space: a forest of curated file,
// folder and section entries that persists across sessions independently
// of the real project tree.
package space

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"tableflip.dev/focus/pkg/entry"
	"tableflip.dev/focus/pkg/store"
	"tableflip.dev/focus/pkg/tree"
)

// DefaultSaveDebounce is the quiet period after the last mutation in a
// burst before the forest is persisted.
const DefaultSaveDebounce = 500 * time.Millisecond

// Options configures a Manager.
type Options struct {
	// Root is the directory relative paths are computed against. When
	// empty, relative paths fall back to the locator's base name.
	Root string
	// SaveDebounce overrides DefaultSaveDebounce when positive.
	SaveDebounce time.Duration
	// Logger receives persistence failure reports. Defaults to a quiet
	// stderr logger.
	Logger *logrus.Logger
}

// Manager is the sole mutable owner of the forest. Every mutation runs to
// completion under the manager's lock, schedules a debounced save, and
// fires a change notification after it is fully applied. External code
// that obtains an *entry.Entry from a query holds a live view owned by
// the manager, not a snapshot.
type Manager struct {
	mu     sync.Mutex
	ops    *tree.Ops
	forest []*entry.Entry

	persistence store.Persistence
	opts        Options
	log         *logrus.Logger

	dirty  bool
	timer  *time.Timer
	subs   []chan struct{}
	closed bool
}

// New builds a Manager and loads the persisted forest. A missing or
// corrupt document degrades to an empty forest rather than failing; load
// problems are logged, never surfaced.
func New(ctx context.Context, p store.Persistence, opts Options) *Manager {
	if opts.SaveDebounce <= 0 {
		opts.SaveDebounce = DefaultSaveDebounce
	}
	log := opts.Logger
	if log == nil {
		log = logrus.New()
		log.SetLevel(logrus.WarnLevel)
	}

	m := &Manager{
		ops:         tree.NewOps(),
		forest:      []*entry.Entry{},
		persistence: p,
		opts:        opts,
		log:         log,
	}

	if p != nil {
		doc, err := p.Load(ctx)
		switch {
		case errors.Is(err, store.ErrNotExist):
			// First run.
		case err != nil:
			log.WithError(err).Warn("space: could not load persisted focus space, starting empty")
		default:
			m.forest = doc.Entries
		}
	}
	return m
}

// AddEntry creates a file or folder entry for the locator and inserts it
// into the forest: as a child of parentID when that resolves to a section,
// at root level otherwise. Sections are created through CreateSection, so
// a section kind here returns nil. No duplicate check is performed;
// duplicate locators are a supported caller-level policy.
func (m *Manager) AddEntry(locator string, kind entry.Kind, parentID, label string) *entry.Entry {
	if locator == "" || kind == entry.KindSection {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	e := entry.New(locator, kind)
	e.Label = label
	e.Metadata.RelativePath = m.relativePath(locator)

	m.insert(e, parentID)
	m.committed()
	return e
}

// AddAll creates entries for several locators in one batch, skipping blank
// items so one bad locator does not abort the rest. Cache invalidation is
// paid once and a single change notification fires at the end.
func (m *Manager) AddAll(locators []string, kind entry.Kind, parentID string) []*entry.Entry {
	if kind == entry.KindSection {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.ops.StartBatch()
	added := make([]*entry.Entry, 0, len(locators))
	for _, locator := range locators {
		if strings.TrimSpace(locator) == "" {
			continue
		}
		e := entry.New(locator, kind)
		e.Metadata.RelativePath = m.relativePath(locator)
		m.insert(e, parentID)
		added = append(added, e)
	}
	m.ops.EndBatch()

	if len(added) > 0 {
		m.committed()
	}
	return added
}

// insert places e under a section parent when parentID resolves to one,
// at root level otherwise. Callers hold the lock.
func (m *Manager) insert(e *entry.Entry, parentID string) {
	if parentID != "" {
		if parent := m.ops.FindByID(m.forest, parentID); parent != nil && parent.IsSection() {
			e.Metadata.Order = len(parent.Children)
			m.ops.AddChild(parent, e)
			return
		}
	}
	e.Metadata.Order = len(m.forest)
	m.forest = m.ops.AddRoot(m.forest, e)
}

// CreateSection creates a named grouping container at root level.
func (m *Manager) CreateSection(label string) *entry.Entry {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := entry.NewSection(label)
	s.Metadata.Order = len(m.forest)
	m.forest = m.ops.AddRoot(m.forest, s)
	m.committed()
	return s
}

// RemoveEntry detaches the entry from its parent (or from root level) and
// discards its entire subtree. Unknown ids return false without side
// effects.
func (m *Manager) RemoveEntry(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	forest, removed := m.ops.RemoveByID(m.forest, id)
	if !removed {
		return false
	}
	m.forest = forest
	m.committed()
	return true
}

// Rename sets the display label override. An empty label clears the
// override back to the derived name.
func (m *Manager) Rename(id, label string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	e := m.ops.FindByID(m.forest, id)
	if e == nil {
		return false
	}
	e.Label = label
	m.committed()
	return true
}

// MoveToSection detaches the entry and reinserts it as the last child of
// the section, or at root level when sectionID is empty. Moves into
// non-sections, into the entry itself, or into any of its own descendants
// are rejected and leave the forest unchanged.
func (m *Manager) MoveToSection(id, sectionID string) bool {
	return m.moveToSection(id, sectionID, -1)
}

// MoveToSectionWithPosition is MoveToSection with an explicit insertion
// index, clamped to the destination bounds.
func (m *Manager) MoveToSectionWithPosition(id, sectionID string, position int) bool {
	if position < 0 {
		position = 0
	}
	return m.moveToSection(id, sectionID, position)
}

func (m *Manager) moveToSection(id, sectionID string, position int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	moved := m.ops.FindByID(m.forest, id)
	if moved == nil {
		return false
	}
	if sectionID != "" {
		target := m.ops.FindByID(m.forest, sectionID)
		if target == nil || !target.IsSection() {
			return false
		}
		// The tree algebra does no cycle checking, so self-containment
		// (and the deeper move-into-own-descendant case) is rejected here.
		if sectionID == id || inSubtree(moved, sectionID) {
			return false
		}
	}

	var ok bool
	if position < 0 {
		m.forest, ok = m.ops.Move(m.forest, id, sectionID)
	} else {
		m.forest, ok = m.ops.MoveWithPosition(m.forest, id, sectionID, position)
	}
	if !ok {
		return false
	}
	m.committed()
	return true
}

// Reorder repositions an entry within its current container. Non-empty
// parents must be sections: folder children mirror the filesystem and are
// not reorderable through the store.
func (m *Manager) Reorder(id string, newIndex int, parentID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if parentID != "" {
		parent := m.ops.FindByID(m.forest, parentID)
		if parent == nil || !parent.IsSection() {
			return false
		}
	}
	if !m.ops.Reorder(m.forest, id, newIndex, parentID) {
		return false
	}
	m.committed()
	return true
}

// Entry returns the entry with the given id, or nil.
func (m *Manager) Entry(id string) *entry.Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ops.FindByID(m.forest, id)
}

// EntryByLocator returns the first entry (pre-order) with the locator.
func (m *Manager) EntryByLocator(locator string) *entry.Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ops.FindByLocator(m.forest, locator)
}

// Resolve normalizes a user-supplied token to an entry: by id first, then
// by locator, then by the first pre-order display-name match. Command
// surfaces resolve to an id through this before calling any mutation
// operation; the core operations themselves only accept ids.
func (m *Manager) Resolve(token string) *entry.Entry {
	if token == "" {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if e := m.ops.FindByID(m.forest, token); e != nil {
		return e
	}
	if e := m.ops.FindByLocator(m.forest, token); e != nil {
		return e
	}
	for _, e := range m.ops.Flatten(m.forest) {
		if e.DisplayName() == token {
			return e
		}
	}
	return nil
}

// Entries returns the root-level forest when parentID is empty, otherwise
// that parent's children. Unknown parents yield nil.
func (m *Manager) Entries(parentID string) []*entry.Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	if parentID == "" {
		return m.forest
	}
	parent := m.ops.FindByID(m.forest, parentID)
	if parent == nil {
		return nil
	}
	return parent.Children
}

// TopLevel returns the root-level entries in display order.
func (m *Manager) TopLevel() []*entry.Entry {
	return m.Entries("")
}

// Has reports whether any entry in the forest carries the locator.
func (m *Manager) Has(locator string) bool {
	return m.EntryByLocator(locator) != nil
}

// Flatten returns every entry in pre-order.
func (m *Manager) Flatten() []*entry.Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ops.Flatten(m.forest)
}

// ByKind returns every entry of the given kind in pre-order.
func (m *Manager) ByKind(kind entry.Kind) []*entry.Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ops.ByKind(m.forest, kind)
}

// Count returns the total number of entries.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ops.Count(m.forest)
}

// ClearAll empties the forest entirely.
func (m *Manager) ClearAll() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.forest = []*entry.Entry{}
	m.ops.Invalidate()
	m.committed()
}

// Subscribe returns a channel that receives a no-payload signal after
// every successful mutation. Signals are delivered strictly after the
// mutation is fully applied. Slow consumers miss intermediate signals
// rather than blocking mutations; they re-pull state through the query
// operations anyway.
func (m *Manager) Subscribe() <-chan struct{} {
	m.mu.Lock()
	defer m.mu.Unlock()

	ch := make(chan struct{}, 1)
	m.subs = append(m.subs, ch)
	return ch
}

// Flush persists any pending changes immediately. Intended for shutdown
// paths where waiting out the debounce would lose the last delta.
func (m *Manager) Flush() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	return m.saveLocked()
}

// Close flushes pending changes and stops the manager.
func (m *Manager) Close() error {
	err := m.Flush()
	m.mu.Lock()
	m.closed = true
	m.mu.Unlock()
	return err
}

// committed runs after every successful mutation with the lock held: mark
// dirty, (re)arm the save debounce, and notify subscribers.
func (m *Manager) committed() {
	m.dirty = true
	if m.timer == nil {
		m.timer = time.AfterFunc(m.opts.SaveDebounce, m.saveAfterDebounce)
	} else {
		m.timer.Reset(m.opts.SaveDebounce)
	}
	for _, ch := range m.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

func (m *Manager) saveAfterDebounce() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}
	if err := m.saveLocked(); err != nil {
		m.log.WithError(err).Error("space: debounced save failed")
	}
}

// saveLocked persists the forest when dirty. A save failure is reported
// but never rolls back in-memory state.
func (m *Manager) saveLocked() error {
	if !m.dirty || m.persistence == nil {
		return nil
	}
	doc := &store.Document{
		Version:      store.CurrentVersion,
		LastModified: time.Now().UnixMilli(),
		Entries:      m.forest,
	}
	if err := m.persistence.Save(doc); err != nil {
		return err
	}
	m.dirty = false
	return nil
}

func (m *Manager) relativePath(locator string) string {
	if m.opts.Root != "" {
		if rel, err := filepath.Rel(m.opts.Root, locator); err == nil && !strings.HasPrefix(rel, "..") {
			return rel
		}
	}
	return filepath.Base(locator)
}

// inSubtree reports whether id appears anywhere inside root's subtree
// (excluding root itself).
func inSubtree(root *entry.Entry, id string) bool {
	for _, child := range root.Children {
		if child.ID == id || inSubtree(child, id) {
			return true
		}
	}
	return false
}
