package store

import (
	"context"
	"testing"

	"github.com/blockforge/blockforge/pkg/config"
	"github.com/blockforge/blockforge/pkg/errors"
	"github.com/blockforge/blockforge/pkg/io"
	"github.com/blockforge/blockforge/pkg/model"
)

func sampleDoc(t *testing.T) io.Document {
	t.Helper()
	m := model.New()
	root := m.CreateBlock(model.KindLogical, 0, 0, "")
	m.CreateBlock(model.KindFunctional, 10, 50, root)
	m.CreateConnection("block_0", "block_1", "", "")
	return io.FromModel(m)
}

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestFileStoreSaveLoad(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	doc := sampleDoc(t)

	saved, err := s.Save(ctx, "main", doc)
	if err != nil {
		t.Fatal(err)
	}
	if saved.Revision == "" {
		t.Error("Save should assign a revision")
	}
	if saved.CreatedAt.IsZero() || saved.UpdatedAt.IsZero() {
		t.Error("Save should stamp timestamps")
	}

	loaded, err := s.Load(ctx, "main")
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Revision != saved.Revision {
		t.Errorf("Revision = %q, want %q", loaded.Revision, saved.Revision)
	}
	if len(loaded.Document.Blocks) != 2 || len(loaded.Document.Connections) != 1 {
		t.Errorf("loaded document = %s", loaded.Document)
	}
}

func TestFileStoreResaveRotatesRevision(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	doc := sampleDoc(t)

	first, err := s.Save(ctx, "main", doc)
	if err != nil {
		t.Fatal(err)
	}
	second, err := s.Save(ctx, "main", doc)
	if err != nil {
		t.Fatal(err)
	}

	if second.Revision == first.Revision {
		t.Error("resave should mint a new revision")
	}
	if !second.CreatedAt.Equal(first.CreatedAt) {
		t.Errorf("CreatedAt changed on resave: %v != %v", second.CreatedAt, first.CreatedAt)
	}
}

func TestFileStoreLoadMissing(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Load(context.Background(), "absent")
	if !errors.Is(err, errors.ErrCodeSnapshotNotFound) {
		t.Errorf("code = %q, want SNAPSHOT_NOT_FOUND", errors.GetCode(err))
	}
}

func TestFileStoreDelete(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	if _, err := s.Save(ctx, "main", sampleDoc(t)); err != nil {
		t.Fatal(err)
	}
	if err := s.Delete(ctx, "main"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Load(ctx, "main"); !errors.Is(err, errors.ErrCodeSnapshotNotFound) {
		t.Error("snapshot should be gone after delete")
	}
	if err := s.Delete(ctx, "main"); !errors.Is(err, errors.ErrCodeSnapshotNotFound) {
		t.Error("deleting a missing snapshot should report SNAPSHOT_NOT_FOUND")
	}
}

func TestFileStoreList(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	doc := sampleDoc(t)

	for _, name := range []string{"zeta", "alpha", "mid"} {
		if _, err := s.Save(ctx, name, doc); err != nil {
			t.Fatal(err)
		}
	}

	infos, err := s.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(infos) != 3 {
		t.Fatalf("len = %d, want 3", len(infos))
	}
	for i, want := range []string{"alpha", "mid", "zeta"} {
		if infos[i].Name != want {
			t.Errorf("infos[%d].Name = %q, want %q", i, infos[i].Name, want)
		}
	}
	if infos[0].Blocks != 2 || infos[0].Connections != 1 {
		t.Errorf("info counts = %d/%d, want 2/1", infos[0].Blocks, infos[0].Connections)
	}
}

func TestFileStoreRejectsBadNames(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	doc := sampleDoc(t)

	for _, name := range []string{"", "../escape", "a/b", "a\\b"} {
		if _, err := s.Save(ctx, name, doc); err == nil {
			t.Errorf("Save(%q) should fail", name)
		}
	}
}

func TestOpenUnknownBackend(t *testing.T) {
	_, err := Open(context.Background(), config.Server{Store: "postgres"})
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("code = %q, want INVALID_INPUT", errors.GetCode(err))
	}
}

func TestOpenFileBackend(t *testing.T) {
	s, err := Open(context.Background(), config.Server{Store: "file", StoreDir: t.TempDir()})
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	if _, ok := s.(*FileStore); !ok {
		t.Errorf("Open returned %T, want *FileStore", s)
	}
}
