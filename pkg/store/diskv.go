// Package store is the persistence boundary for the focus space. It owns
// the persisted document format and a diskv-backed implementation; the
// in-memory forest always remains the source of truth even when the
// persisted copy lags.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/focus/pkg/entry"
)

// CurrentVersion is the document schema version written on save.
const CurrentVersion = "1.0.0"

// ErrNotExist reports that no document has been persisted yet.
var ErrNotExist = errors.New("store: no persisted focus space")

// Document is the wire format for a persisted focus space: the root-level
// forest in display order plus versioning metadata.
type Document struct {
	Version      string         `json:"version"`
	LastModified int64          `json:"lastModified"` // epoch milliseconds
	Entries      []*entry.Entry `json:"entries"`
}

// Persistence defines the persistence contract for the focus space.
type Persistence interface {
	Load(ctx context.Context) (*Document, error)
	Save(doc *Document) error
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

const spaceKey = "space"

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) Load(ctx context.Context) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := p.d.Read(spaceKey)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotExist
		}
		return nil, fmt.Errorf("store: read document: %w", err)
	}
	doc := &Document{}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("store: parse document: %w", err)
	}
	if doc.Version == "" {
		doc.Version = CurrentVersion
	}
	if doc.Entries == nil {
		doc.Entries = []*entry.Entry{}
	}
	return doc, nil
}

func (p *persistence) Save(doc *Document) error {
	if doc.Version == "" {
		doc.Version = CurrentVersion
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("store: marshal document: %w", err)
	}
	if err := p.d.Write(spaceKey, data); err != nil {
		return fmt.Errorf("store: write document: %w", err)
	}
	return nil
}

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "/")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1] + ".json",
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	name := strings.TrimSuffix(pathKey.FileName, ".json")
	if len(pathKey.Path) == 0 {
		return name
	}
	return strings.Join(pathKey.Path, "/") + "/" + name
}
