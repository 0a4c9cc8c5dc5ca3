package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestStore(t *testing.T) *MediaStore {
	t.Helper()
	store, err := NewMediaStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewMediaStore: %v", err)
	}
	return store
}

func TestSaveImage(t *testing.T) {
	store := newTestStore(t)

	relPath, err := store.SaveImage(42, "xray.png", strings.NewReader("image-bytes"))
	if err != nil {
		t.Fatalf("SaveImage: %v", err)
	}
	want := filepath.Join("FILES", "42", "xray.png")
	if relPath != want {
		t.Errorf("relPath = %q, want %q", relPath, want)
	}
	if !store.Exists(relPath) {
		t.Error("saved image does not exist")
	}
}

func TestSaveImageStripsDirectoryComponents(t *testing.T) {
	store := newTestStore(t)

	relPath, err := store.SaveImage(1, "../../escape.png", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("SaveImage: %v", err)
	}
	want := filepath.Join("FILES", "1", "escape.png")
	if relPath != want {
		t.Errorf("relPath = %q, want %q", relPath, want)
	}
}

func TestRemoveImageToleratesMissingFile(t *testing.T) {
	store := newTestStore(t)

	// Must not panic or fail on a path that was never written.
	store.RemoveImage(filepath.Join("FILES", "9", "gone.png"))
	store.RemoveImage("")
}

func TestRemoveReportFiles(t *testing.T) {
	store := newTestStore(t)

	first, err := store.SaveImage(7, "a.png", strings.NewReader("a"))
	if err != nil {
		t.Fatalf("SaveImage: %v", err)
	}
	second, err := store.SaveImage(7, "b.png", strings.NewReader("b"))
	if err != nil {
		t.Fatalf("SaveImage: %v", err)
	}
	other, err := store.SaveImage(8, "c.png", strings.NewReader("c"))
	if err != nil {
		t.Fatalf("SaveImage: %v", err)
	}

	store.RemoveReportFiles(7)

	if store.Exists(first) || store.Exists(second) {
		t.Error("report 7 files still exist after removal")
	}
	if !store.Exists(other) {
		t.Error("report 8 files were removed")
	}

	// Removing an already-removed directory is silent.
	store.RemoveReportFiles(7)
}

func TestSaveTemplateOverwritesInPlace(t *testing.T) {
	store := newTestStore(t)

	relPath, err := store.SaveTemplate("Bulgaria", strings.NewReader("first version"))
	if err != nil {
		t.Fatalf("SaveTemplate: %v", err)
	}
	want := filepath.Join("DOC_TEMPLATES", "Bulgaria_template.docx")
	if relPath != want {
		t.Errorf("relPath = %q, want %q", relPath, want)
	}

	secondPath, err := store.SaveTemplate("Bulgaria", strings.NewReader("second version"))
	if err != nil {
		t.Fatalf("SaveTemplate overwrite: %v", err)
	}
	if secondPath != relPath {
		t.Errorf("overwrite path = %q, want same path %q", secondPath, relPath)
	}

	content, err := os.ReadFile(filepath.Join(store.root, relPath))
	if err != nil {
		t.Fatalf("read template: %v", err)
	}
	if string(content) != "second version" {
		t.Errorf("template content = %q, want %q", content, "second version")
	}
}

func TestRemoveTemplateErrorsOnMissingFile(t *testing.T) {
	store := newTestStore(t)

	relPath, err := store.SaveTemplate("Serbia", strings.NewReader("doc"))
	if err != nil {
		t.Fatalf("SaveTemplate: %v", err)
	}
	if err := store.RemoveTemplate(relPath); err != nil {
		t.Fatalf("RemoveTemplate: %v", err)
	}
	if store.Exists(relPath) {
		t.Error("template still exists after removal")
	}

	// Second removal must propagate the error, unlike image cleanup.
	if err := store.RemoveTemplate(relPath); err == nil {
		t.Error("expected error removing missing template, got nil")
	}
}

func TestNewMediaStoreRejectsEmptyRoot(t *testing.T) {
	if _, err := NewMediaStore(""); err == nil {
		t.Error("expected error for empty root, got nil")
	}
}
