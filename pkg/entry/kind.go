package entry

import (
	"fmt"
	"strings"
)

// Kind identifies what an entry in the focus space represents.
type Kind string

const (
	// KindFile is a single file backed by a real filesystem location.
	KindFile Kind = "file"
	// KindFolder is a directory backed by a real filesystem location.
	KindFolder Kind = "folder"
	// KindSection is a pure grouping container with no filesystem backing.
	KindSection Kind = "section"
)

// AllKinds returns the list of supported entry kinds.
func AllKinds() []Kind {
	return []Kind{
		KindFile,
		KindFolder,
		KindSection,
	}
}

// ParseKind converts a string to a Kind or returns an error for unknown values.
func ParseKind(raw string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(raw)))
	if k == "" {
		return KindFile, nil
	}
	for _, candidate := range AllKinds() {
		if candidate == k {
			return candidate, nil
		}
	}
	return KindFile, fmt.Errorf("entry: unknown kind %q", raw)
}

// MustKind parses the input and panics on error. Intended for tests/config.
func MustKind(raw string) Kind {
	k, err := ParseKind(raw)
	if err != nil {
		panic(err)
	}
	return k
}

// IsContainer reports whether entries of this kind carry a children list.
// Files never do; folders and sections always do, even when empty.
func (k Kind) IsContainer() bool {
	return k == KindFolder || k == KindSection
}
