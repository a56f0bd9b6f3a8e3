package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/blockforge/blockforge/pkg/errors"
	"github.com/blockforge/blockforge/pkg/io"
)

// FileStore keeps snapshots as JSON files in a directory, one file per
// snapshot. Suited to single-machine CLI use.
type FileStore struct {
	dir string
}

// NewFileStore creates a file-backed snapshot store in dir. The
// directory is created if it doesn't exist. An empty dir selects
// ~/.config/blockforge/snapshots.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		dir = filepath.Join(home, ".config", "blockforge", "snapshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create snapshot directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// Save writes the document as a snapshot file. An existing snapshot is
// replaced atomically via a temp-file rename, keeping its CreatedAt.
func (s *FileStore) Save(ctx context.Context, name string, doc io.Document) (Snapshot, error) {
	if err := errors.ValidateSnapshotName(name); err != nil {
		return Snapshot{}, err
	}

	var prev *Snapshot
	if existing, err := s.read(name); err == nil {
		prev = &existing
	}

	snap := stamp(name, doc, prev)
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return Snapshot{}, fmt.Errorf("encode snapshot %s: %w", name, err)
	}

	tmp, err := os.CreateTemp(s.dir, name+".*.tmp")
	if err != nil {
		return Snapshot{}, fmt.Errorf("write snapshot %s: %w", name, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return Snapshot{}, fmt.Errorf("write snapshot %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return Snapshot{}, fmt.Errorf("write snapshot %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), s.path(name)); err != nil {
		os.Remove(tmp.Name())
		return Snapshot{}, fmt.Errorf("write snapshot %s: %w", name, err)
	}
	return snap, nil
}

// Load reads the snapshot file stored under name.
func (s *FileStore) Load(ctx context.Context, name string) (Snapshot, error) {
	if err := errors.ValidateSnapshotName(name); err != nil {
		return Snapshot{}, err
	}
	return s.read(name)
}

func (s *FileStore) read(name string) (Snapshot, error) {
	data, err := os.ReadFile(s.path(name))
	if os.IsNotExist(err) {
		return Snapshot{}, notFound(name)
	}
	if err != nil {
		return Snapshot{}, fmt.Errorf("read snapshot %s: %w", name, err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, errors.Wrap(errors.ErrCodeMalformedSnapshot, err, "decode snapshot %s", name)
	}
	return snap, nil
}

// List returns metadata for every snapshot file, sorted by name.
// Unreadable entries are skipped rather than failing the whole listing.
func (s *FileStore) List(ctx context.Context) ([]Info, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}

	infos := make([]Info, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		name := strings.TrimSuffix(e.Name(), ".json")
		snap, err := s.read(name)
		if err != nil {
			continue
		}
		infos = append(infos, infoOf(snap))
	}

	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos, nil
}

// Delete removes the snapshot file stored under name.
func (s *FileStore) Delete(ctx context.Context, name string) error {
	if err := errors.ValidateSnapshotName(name); err != nil {
		return err
	}
	err := os.Remove(s.path(name))
	if os.IsNotExist(err) {
		return notFound(name)
	}
	return err
}

// Close does nothing for the file store.
func (s *FileStore) Close() error { return nil }

// Ensure FileStore implements Store.
var _ Store = (*FileStore)(nil)
