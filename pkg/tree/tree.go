// Package tree implements the structural algebra for the focus space
// forest: lookups, mutations, traversal, and serialization. Every
// structural query or mutation goes through an Ops value; no other
// package walks Children directly.
package tree

import (
	"tableflip.dev/focus/pkg/entry"
)

// Ops carries the lazy lookup caches shared by all forest operations. The
// forest itself stays owned by the caller; Ops never retains a copy of it,
// only cached references keyed by identity.
//
// Any structural mutation invalidates both caches, except while batch mode
// is active: StartBatch suppresses invalidation and EndBatch performs
// exactly one. Batch mode is a cache-coherence optimization only; it does
// not provide atomicity or rollback.
type Ops struct {
	byID      map[string]*entry.Entry
	byLocator map[string]*entry.Entry
	batching  bool
}

// NewOps returns an Ops with empty caches.
func NewOps() *Ops {
	return &Ops{
		byID:      make(map[string]*entry.Entry),
		byLocator: make(map[string]*entry.Entry),
	}
}

// FindByID returns the entry with the given id, or nil when the forest does
// not contain it. Lookups are cached until the next invalidation.
func (o *Ops) FindByID(forest []*entry.Entry, id string) *entry.Entry {
	if id == "" {
		return nil
	}
	if e, ok := o.byID[id]; ok {
		return e
	}
	e := findPreOrder(forest, func(candidate *entry.Entry) bool {
		return candidate.ID == id
	})
	if e != nil {
		o.byID[id] = e
	}
	return e
}

// FindByLocator returns the first entry (in pre-order) whose locator equals
// the given canonical string. Duplicate locators are legal, so first match
// is deterministic but carries no semantic preference.
func (o *Ops) FindByLocator(forest []*entry.Entry, locator string) *entry.Entry {
	if locator == "" {
		return nil
	}
	if e, ok := o.byLocator[locator]; ok {
		return e
	}
	e := findPreOrder(forest, func(candidate *entry.Entry) bool {
		return candidate.Locator == locator
	})
	if e != nil {
		o.byLocator[locator] = e
	}
	return e
}

// FindParent returns the parent of the entry with the given id, or nil for
// root-level and unknown ids. Parent lookups are cheap and are deliberately
// never cached, so they need no coverage from the invalidation protocol.
func (o *Ops) FindParent(forest []*entry.Entry, childID string) *entry.Entry {
	if childID == "" {
		return nil
	}
	return findParentIn(forest, childID)
}

func findParentIn(nodes []*entry.Entry, childID string) *entry.Entry {
	for _, node := range nodes {
		for _, child := range node.Children {
			if child.ID == childID {
				return node
			}
		}
		if found := findParentIn(node.Children, childID); found != nil {
			return found
		}
	}
	return nil
}

// AddChild appends child to parent's children, creating the list when the
// parent has none yet.
func (o *Ops) AddChild(parent, child *entry.Entry) {
	if parent.Children == nil {
		parent.Children = []*entry.Entry{}
	}
	parent.Children = append(parent.Children, child)
	o.invalidate()
}

// AddRoot appends e to the root-level forest and returns the updated slice.
func (o *Ops) AddRoot(forest []*entry.Entry, e *entry.Entry) []*entry.Entry {
	forest = append(forest, e)
	o.invalidate()
	return forest
}

// RemoveByID removes the entry and its entire subtree from wherever it is
// found, root level first, then each root's subtree. It returns the updated
// root slice and whether anything was removed. Ids are unique, so the first
// match is the only match.
func (o *Ops) RemoveByID(forest []*entry.Entry, id string) ([]*entry.Entry, bool) {
	for i, node := range forest {
		if node.ID == id {
			forest = append(forest[:i], forest[i+1:]...)
			o.invalidate()
			return forest, true
		}
	}
	for _, node := range forest {
		if removeFromSubtree(node, id) {
			o.invalidate()
			return forest, true
		}
	}
	return forest, false
}

func removeFromSubtree(node *entry.Entry, id string) bool {
	for i, child := range node.Children {
		if child.ID == id {
			node.Children = append(node.Children[:i], node.Children[i+1:]...)
			return true
		}
	}
	for _, child := range node.Children {
		if removeFromSubtree(child, id) {
			return true
		}
	}
	return false
}

// Move detaches the entry from its current location and appends it at the
// end of the new parent's children, or at root level when newParentID is
// empty. It fails when the entry or the destination does not exist, or when
// the destination cannot hold children.
//
// Move performs no cycle checking. Callers that can be handed a container
// as the moved entry must reject self-containment before calling (the
// space.Manager does).
func (o *Ops) Move(forest []*entry.Entry, id, newParentID string) ([]*entry.Entry, bool) {
	return o.move(forest, id, newParentID, -1)
}

// MoveWithPosition is Move with an explicit insertion index, clamped to
// [0, len] of the destination. Out-of-range positions land at the end
// rather than failing.
func (o *Ops) MoveWithPosition(forest []*entry.Entry, id, newParentID string, position int) ([]*entry.Entry, bool) {
	if position < 0 {
		position = 0
	}
	return o.move(forest, id, newParentID, position)
}

// move implements Move and MoveWithPosition; position < 0 means "append".
func (o *Ops) move(forest []*entry.Entry, id, newParentID string, position int) ([]*entry.Entry, bool) {
	var parent *entry.Entry
	if newParentID != "" {
		parent = o.FindByID(forest, newParentID)
		if parent == nil || !parent.Kind.IsContainer() {
			return forest, false
		}
	}
	if o.FindByID(forest, id) == nil {
		return forest, false
	}

	forest, moved := detach(forest, id)
	if moved == nil {
		return forest, false
	}

	if parent == nil {
		forest = insertAt(forest, moved, position)
	} else {
		parent.Children = insertAt(parent.Children, moved, position)
	}
	o.invalidate()
	return forest, true
}

// detach removes the entry from the forest without discarding its subtree,
// returning the updated root slice and the detached entry.
func detach(forest []*entry.Entry, id string) ([]*entry.Entry, *entry.Entry) {
	for i, node := range forest {
		if node.ID == id {
			return append(forest[:i], forest[i+1:]...), node
		}
	}
	for _, node := range forest {
		if found := detachFromSubtree(node, id); found != nil {
			return forest, found
		}
	}
	return forest, nil
}

func detachFromSubtree(node *entry.Entry, id string) *entry.Entry {
	for i, child := range node.Children {
		if child.ID == id {
			node.Children = append(node.Children[:i], node.Children[i+1:]...)
			return child
		}
	}
	for _, child := range node.Children {
		if found := detachFromSubtree(child, id); found != nil {
			return found
		}
	}
	return nil
}

// insertAt inserts e into list at the given index, clamped to [0, len].
// A negative index appends.
func insertAt(list []*entry.Entry, e *entry.Entry, position int) []*entry.Entry {
	if position < 0 || position >= len(list) {
		return append(list, e)
	}
	list = append(list, nil)
	copy(list[position+1:], list[position:])
	list[position] = e
	return list
}

// Reorder repositions an entry within its current container (root level
// when parentID is empty) without changing its parent. The new index is
// clamped to the container bounds. It fails when the entry is not a direct
// member of that exact container.
func (o *Ops) Reorder(forest []*entry.Entry, id string, newIndex int, parentID string) bool {
	container := forest
	if parentID != "" {
		parent := o.FindByID(forest, parentID)
		if parent == nil {
			return false
		}
		container = parent.Children
	}

	from := -1
	for i, node := range container {
		if node.ID == id {
			from = i
			break
		}
	}
	if from == -1 {
		return false
	}

	to := newIndex
	if to < 0 {
		to = 0
	}
	if to > len(container)-1 {
		to = len(container) - 1
	}
	if to != from {
		e := container[from]
		if from < to {
			copy(container[from:to], container[from+1:to+1])
		} else {
			copy(container[to+1:from+1], container[to:from])
		}
		container[to] = e
	}
	o.invalidate()
	return true
}

// Flatten returns every entry exactly once in pre-order: each root, then
// its children, their children, and so on. The result is fully
// materialized; the forests this store targets hold hundreds of entries,
// not millions.
func (o *Ops) Flatten(forest []*entry.Entry) []*entry.Entry {
	var out []*entry.Entry
	var walk func(nodes []*entry.Entry)
	walk = func(nodes []*entry.Entry) {
		for _, node := range nodes {
			out = append(out, node)
			walk(node.Children)
		}
	}
	walk(forest)
	return out
}

// ByKind filters Flatten by kind, preserving pre-order.
func (o *Ops) ByKind(forest []*entry.Entry, kind entry.Kind) []*entry.Entry {
	var out []*entry.Entry
	for _, e := range o.Flatten(forest) {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// Depth returns the nesting depth of the entry with the given id, 0 for
// root-level entries and -1 when the id is not in the forest.
func (o *Ops) Depth(forest []*entry.Entry, id string) int {
	return depthIn(forest, id, 0)
}

func depthIn(nodes []*entry.Entry, id string, current int) int {
	for _, node := range nodes {
		if node.ID == id {
			return current
		}
		if d := depthIn(node.Children, id, current+1); d != -1 {
			return d
		}
	}
	return -1
}

// PathTo returns the root-to-target path inclusive, or an empty slice when
// the id is not in the forest.
func (o *Ops) PathTo(forest []*entry.Entry, id string) []*entry.Entry {
	return pathIn(forest, id, nil)
}

func pathIn(nodes []*entry.Entry, id string, prefix []*entry.Entry) []*entry.Entry {
	for _, node := range nodes {
		path := append(prefix, node)
		if node.ID == id {
			out := make([]*entry.Entry, len(path))
			copy(out, path)
			return out
		}
		if found := pathIn(node.Children, id, path); len(found) > 0 {
			return found
		}
	}
	return nil
}

// Count returns the total number of entries in the forest.
func (o *Ops) Count(forest []*entry.Entry) int {
	return len(o.Flatten(forest))
}

// StartBatch suppresses cache invalidation so a caller can run several
// mutations and pay the invalidation cost once.
func (o *Ops) StartBatch() {
	o.batching = true
}

// EndBatch re-enables invalidation and performs exactly one, synchronously.
func (o *Ops) EndBatch() {
	o.batching = false
	o.Invalidate()
}

// Invalidate drops both lookup caches.
func (o *Ops) Invalidate() {
	o.byID = make(map[string]*entry.Entry)
	o.byLocator = make(map[string]*entry.Entry)
}

func (o *Ops) invalidate() {
	if o.batching {
		return
	}
	o.Invalidate()
}

func findPreOrder(nodes []*entry.Entry, match func(*entry.Entry) bool) *entry.Entry {
	for _, node := range nodes {
		if match(node) {
			return node
		}
		if found := findPreOrder(node.Children, match); found != nil {
			return found
		}
	}
	return nil
}
