// Package entry defines the node model for the focus space forest.
package entry

import (
	"path"
	"strings"

	"github.com/google/uuid"
)

// UntitledSection is the display name for sections created without a label.
const UntitledSection = "Untitled Section"

// SectionScheme prefixes the synthetic locator assigned to sections. A
// section locator carries no filesystem meaning; it only keeps the locator
// field populated so lookups by locator stay total.
const SectionScheme = "section://"

// New creates a file or folder entry pointing at the given locator with a
// fresh unique id. Folders start with an empty (non-nil) children list.
func New(locator string, kind Kind) *Entry {
	e := &Entry{
		ID:       uuid.NewString(),
		Kind:     kind,
		Locator:  locator,
		Metadata: &Metadata{DateAdded: Now()},
	}
	if kind.IsContainer() {
		e.Children = []*Entry{}
	}
	return e
}

// NewSection creates a grouping container with a synthetic locator.
func NewSection(label string) *Entry {
	id := uuid.NewString()
	return &Entry{
		ID:       id,
		Kind:     KindSection,
		Locator:  SectionScheme + id,
		Label:    label,
		Children: []*Entry{},
		Metadata: &Metadata{DateAdded: Now()},
	}
}

// Entry is a single node in the focus space: a file, a folder, or a section.
// Sibling order inside Children (and inside the root-level forest) is the
// only source of display order.
type Entry struct {
	ID       string    `json:"id"`
	Kind     Kind      `json:"kind"`
	Locator  string    `json:"locator"`
	Label    string    `json:"label,omitempty"`
	Children []*Entry  `json:"children,omitempty"`
	Metadata *Metadata `json:"metadata,omitempty"`
}

// Metadata carries informational fields that are not required for
// structural correctness.
type Metadata struct {
	DateAdded    Timestamp `json:"dateAdded,omitempty"`
	RelativePath string    `json:"relativePath,omitempty"`
	Order        int       `json:"order,omitempty"`
	GitStatus    string    `json:"gitStatus,omitempty"`
}

// DisplayName returns the label when set, otherwise a name derived from the
// locator's final path segment. Unlabeled sections fall back to
// "Untitled Section".
func (e *Entry) DisplayName() string {
	if e.Label != "" {
		return e.Label
	}
	if e.Kind == KindSection {
		return UntitledSection
	}
	name := path.Base(strings.TrimSuffix(e.Locator, "/"))
	if name == "." || name == "/" || name == "" {
		return e.Locator
	}
	return name
}

// IsSection reports whether the entry is a pure grouping container.
func (e *Entry) IsSection() bool {
	return e.Kind == KindSection
}

// HasChildren reports whether the entry currently holds any children.
func (e *Entry) HasChildren() bool {
	return len(e.Children) > 0
}

func (e *Entry) String() string {
	return e.DisplayName()
}
