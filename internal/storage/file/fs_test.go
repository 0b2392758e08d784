package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/AustinJGreen/goyahtzee/internal/storage"
	"github.com/AustinJGreen/goyahtzee/internal/storage/storagetest"
)

func TestFS(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) storage.Store {
		return NewFS(t.TempDir())
	})
}

func TestListIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	s := NewFS(dir)
	if err := s.Save(context.Background(), "game", "Round: 1\n"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir, "sub"+saveExt), 0o755); err != nil {
		t.Fatal(err)
	}
	names, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(names) != 1 || names[0] != "game" {
		t.Errorf("List: got %v; want [game]", names)
	}
}

func TestMissingDirectory(t *testing.T) {
	s := NewFS(filepath.Join(t.TempDir(), "not", "yet"))
	names, err := s.List(context.Background())
	if err != nil || len(names) != 0 {
		t.Errorf("List: got %v, %v", names, err)
	}
	results, err := s.Results(context.Background(), 10)
	if err != nil || len(results) != 0 {
		t.Errorf("Results: got %v, %v", results, err)
	}
}
