package persist

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStorageRoundTrip(t *testing.T) {
	t.Parallel()

	path := DefaultPath(t.TempDir())
	s := NewFileStorage(path)
	ctx := context.Background()

	if _, err := s.Read(ctx); !errors.Is(err, ErrNotFound) {
		t.Fatalf("read of missing document: err = %v, want ErrNotFound", err)
	}

	doc := []byte(`{"schema_version":2}`)
	if err := s.Write(ctx, doc); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := s.Read(ctx)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != string(doc) {
		t.Errorf("read back %q, want %q", got, doc)
	}
}

func TestFileStorageWriteCreatesDirectory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "deeper", "state.json")
	s := NewFileStorage(path)

	if err := s.Write(context.Background(), []byte(`{}`)); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("document missing after write: %v", err)
	}
}

func TestFileStorageWriteLeavesNoTempFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s := NewFileStorage(DefaultPath(dir))

	if err := s.Write(context.Background(), []byte(`{}`)); err != nil {
		t.Fatalf("write: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the document in %s, found %d entries", dir, len(entries))
	}
}
