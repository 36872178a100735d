// Package store persists the name list and last winner as a single key-value blob.
package store

import (
	"context"
	"errors"
	"fmt"
)

// Storage keys, shared by every backend
const (
	KeyNames  = "students"
	KeyWinner = "winner"
)

// Backend kinds accepted by Open
const (
	KindFile   = "file"
	KindSQLite = "sqlite"
)

// ErrUnknownBackend is returned by Open for an unsupported kind
var ErrUnknownBackend = errors.New("unknown store backend")

// Snapshot is everything that survives a restart
type Snapshot struct {
	Names  []string `json:"students"`
	Winner string   `json:"winner,omitempty"`
}

// Backend reads and writes a Snapshot
// Missing data loads as an empty Snapshot without error
type Backend interface {
	Load(ctx context.Context) (Snapshot, error)
	Save(ctx context.Context, snap Snapshot) error
	Close() error
}

// Open returns the backend of the given kind rooted at path
func Open(kind, path string) (Backend, error) {
	switch kind {
	case KindFile, "":
		return NewFileBackend(path), nil
	case KindSQLite:
		return OpenSQLite(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, kind)
	}
}
