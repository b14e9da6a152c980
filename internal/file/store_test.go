package file

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestStoreCreateAndOpen(t *testing.T) {
	store := NewStore(t.TempDir())

	if err := store.Create("notes.txt", "hello"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	content, err := store.Open("notes.txt")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if content != "hello" {
		t.Errorf("Open content = %q, want %q", content, "hello")
	}
	if store.Current() == "" {
		t.Error("Current should be set after Open")
	}
}

func TestStoreCreateNestedDirs(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	if err := store.Create(filepath.Join("a", "b", "deep.txt"), "x"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "a", "b", "deep.txt")); err != nil {
		t.Errorf("nested file not created: %v", err)
	}
}

func TestStoreOpenMissing(t *testing.T) {
	store := NewStore(t.TempDir())

	if _, err := store.Open("absent.txt"); err == nil {
		t.Error("Open of missing file should fail")
	}
	if store.Current() != "" {
		t.Error("Current should stay empty after failed Open")
	}
}

func TestStoreSave(t *testing.T) {
	store := NewStore(t.TempDir())

	if err := store.Save("x"); !errors.Is(err, ErrNoCurrentFile) {
		t.Errorf("Save without file = %v, want ErrNoCurrentFile", err)
	}

	if err := store.Create("doc.txt", "v1"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := store.Save("v2"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	content, err := store.Open("doc.txt")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if content != "v2" {
		t.Errorf("content after Save = %q, want %q", content, "v2")
	}
}

func TestStoreSaveAs(t *testing.T) {
	store := NewStore(t.TempDir())

	if err := store.SaveAs("copy.txt", "body"); err != nil {
		t.Fatalf("SaveAs failed: %v", err)
	}
	if filepath.Base(store.Current()) != "copy.txt" {
		t.Errorf("Current = %q, want copy.txt", store.Current())
	}
}

func TestStoreDelete(t *testing.T) {
	store := NewStore(t.TempDir())

	if err := store.Create("gone.txt", ""); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := store.Delete("gone.txt"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if store.Current() != "" {
		t.Error("Current should clear after deleting current file")
	}
	for _, r := range store.Recent() {
		if filepath.Base(r) == "gone.txt" {
			t.Error("deleted file should leave the recent list")
		}
	}
	if err := store.Delete("gone.txt"); err == nil {
		t.Error("deleting a missing file should fail")
	}
}

func TestStoreRecentOrder(t *testing.T) {
	store := NewStore(t.TempDir())

	for _, name := range []string{"a.txt", "b.txt", "c.txt"} {
		if err := store.Create(name, ""); err != nil {
			t.Fatalf("Create %s failed: %v", name, err)
		}
	}
	if _, err := store.Open("a.txt"); err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	recent := store.Recent()
	if len(recent) != 3 {
		t.Fatalf("len(Recent) = %d, want 3", len(recent))
	}
	if filepath.Base(recent[0]) != "a.txt" {
		t.Errorf("most recent = %q, want a.txt", recent[0])
	}
}

func TestStoreRecentCapacity(t *testing.T) {
	store := NewStore(t.TempDir())
	store.SetMaxRecent(3)

	for _, name := range []string{"1", "2", "3", "4", "5"} {
		if err := store.Create(name+".txt", ""); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	recent := store.Recent()
	if len(recent) != 3 {
		t.Fatalf("len(Recent) = %d, want 3", len(recent))
	}
	if filepath.Base(recent[0]) != "5.txt" {
		t.Errorf("most recent = %q, want 5.txt", recent[0])
	}
}

func TestStoreExport(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	path, err := store.Export("out", "a < b", "html")
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if filepath.Ext(path) != ".html" {
		t.Errorf("export path = %q, want .html extension", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading export failed: %v", err)
	}
	if !strings.Contains(string(data), "a &lt; b") {
		t.Error("html export should escape content")
	}

	if _, err := store.Export("plain", "body", "txt"); err != nil {
		t.Errorf("txt export failed: %v", err)
	}
	if _, err := store.Export("bad", "body", "docx"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("unknown format = %v, want ErrUnsupportedFormat", err)
	}
}

func TestStoreList(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	if err := store.Create("f.txt", "abc"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatalf("Mkdir failed: %v", err)
	}

	entries, err := store.List("")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}

	var sawFile, sawDir bool
	for _, e := range entries {
		switch e.Name {
		case "f.txt":
			sawFile = true
			if e.IsDir {
				t.Error("f.txt reported as directory")
			}
			if e.Size != 3 {
				t.Errorf("f.txt size = %d, want 3", e.Size)
			}
		case "sub":
			sawDir = true
			if !e.IsDir {
				t.Error("sub reported as file")
			}
		}
	}
	if !sawFile || !sawDir {
		t.Error("List should report both file and directory")
	}
}
