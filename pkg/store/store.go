// Package store provides named snapshot storage for block diagram
// models.
//
// A snapshot is a named, versioned copy of a model's wire document.
// Every save assigns a fresh revision ID, so a caller can detect that a
// snapshot changed underneath it by comparing revisions.
//
// Three backends implement the Store interface:
//   - file: a directory of JSON files, for single-machine use
//   - redis: key/value storage for shared short-lived snapshots
//   - mongo: document storage for durable shared snapshots
package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/blockforge/blockforge/pkg/errors"
	"github.com/blockforge/blockforge/pkg/io"
)

// Snapshot is a named model document plus its version metadata.
type Snapshot struct {
	Name      string      `json:"name" bson:"name"`
	Revision  string      `json:"revision" bson:"revision"`
	CreatedAt time.Time   `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time   `json:"updated_at" bson:"updated_at"`
	Document  io.Document `json:"document" bson:"document"`
}

// Info is the listing form of a snapshot: metadata without the document.
type Info struct {
	Name        string    `json:"name" bson:"name"`
	Revision    string    `json:"revision" bson:"revision"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
	Blocks      int       `json:"blocks" bson:"blocks"`
	Connections int       `json:"connections" bson:"connections"`
}

// Store is the interface for snapshot storage backends.
type Store interface {
	// Save stores the document under name, creating or overwriting the
	// snapshot. It returns the stored snapshot with its new revision.
	Save(ctx context.Context, name string, doc io.Document) (Snapshot, error)

	// Load retrieves the snapshot stored under name. It returns an error
	// carrying the SNAPSHOT_NOT_FOUND code if no such snapshot exists.
	Load(ctx context.Context, name string) (Snapshot, error)

	// List returns metadata for every stored snapshot, sorted by name.
	List(ctx context.Context) ([]Info, error)

	// Delete removes the snapshot stored under name. It returns an error
	// carrying the SNAPSHOT_NOT_FOUND code if no such snapshot exists.
	Delete(ctx context.Context, name string) error

	// Close releases backend resources.
	Close() error
}

// newRevision mints a revision ID for a save.
func newRevision() string {
	return uuid.NewString()
}

// stamp fills in revision and timestamps for a snapshot about to be
// written. CreatedAt is preserved from prev when the snapshot already
// existed.
func stamp(name string, doc io.Document, prev *Snapshot) Snapshot {
	now := time.Now().UTC()
	snap := Snapshot{
		Name:      name,
		Revision:  newRevision(),
		CreatedAt: now,
		UpdatedAt: now,
		Document:  doc,
	}
	if prev != nil {
		snap.CreatedAt = prev.CreatedAt
	}
	return snap
}

// infoOf projects a snapshot to its listing form.
func infoOf(s Snapshot) Info {
	return Info{
		Name:        s.Name,
		Revision:    s.Revision,
		UpdatedAt:   s.UpdatedAt,
		Blocks:      len(s.Document.Blocks),
		Connections: len(s.Document.Connections),
	}
}

// notFound builds the standard missing-snapshot error.
func notFound(name string) error {
	return errors.New(errors.ErrCodeSnapshotNotFound, "snapshot %q not found", name)
}
