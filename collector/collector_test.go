package collector

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"webpconv/models"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func relPaths(items []models.SourceItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.RelativePath
	}
	return out
}

func TestCollectDirectoryTree(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "a.png"))
	touch(t, filepath.Join(root, "b.JPG"))
	touch(t, filepath.Join(root, "notes.txt"))
	touch(t, filepath.Join(root, ".hidden.png"))
	touch(t, filepath.Join(root, ".cache", "c.png"))
	touch(t, filepath.Join(root, "sub", "c.bmp"))
	touch(t, filepath.Join(root, "sub", "deeper", "d.jpeg"))

	items, err := Collect([]string{root})
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}

	want := []string{
		"a.png",
		"b.JPG",
		filepath.Join("sub", "c.bmp"),
		filepath.Join("sub", "deeper", "d.jpeg"),
	}
	got := relPaths(items)
	if len(got) != len(want) {
		t.Fatalf("expected %d items, got %d (%v)", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("item %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestCollectSingleFile(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "photo.jpeg")
	touch(t, file)

	items, err := Collect([]string{file})
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].RelativePath != "photo.jpeg" {
		t.Errorf("expected relative path photo.jpeg, got %s", items[0].RelativePath)
	}
}

func TestCollectUnsupportedFileSkipped(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "readme.txt")
	touch(t, file)

	items, err := Collect([]string{file})
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected no items for unsupported file, got %d", len(items))
	}
}

func TestCollectMissingInputFails(t *testing.T) {
	_, err := Collect([]string{filepath.Join(t.TempDir(), "nope")})
	if err == nil {
		t.Fatal("expected error for missing input")
	}
	var ce *models.CollectionError
	if !errors.As(err, &ce) {
		t.Errorf("expected CollectionError, got %T: %v", err, err)
	}
}

func TestCollectDeduplicatesOverlappingRoots(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "a.png")
	touch(t, file)

	items, err := Collect([]string{root, file})
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item after dedupe, got %d", len(items))
	}
	// First root wins: attribution comes from the directory walk.
	if items[0].RelativePath != "a.png" {
		t.Errorf("expected a.png, got %s", items[0].RelativePath)
	}
}

func TestCollectSkipsSymlinkCycle(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "sub", "a.png"))
	if err := os.Symlink(root, filepath.Join(root, "sub", "loop")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	items, err := Collect([]string{root})
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}
	if len(items) != 1 {
		t.Errorf("expected 1 item despite cycle, got %d", len(items))
	}
}
