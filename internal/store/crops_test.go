package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCropStoreWritesFile(t *testing.T) {
	dir := t.TempDir()
	s := NewCropStore(dir, "/crops")

	url, err := s.Store("sess-1", []byte("jpeg bytes"), "add")
	if err != nil {
		t.Fatalf("Store failed: %v", err)
	}
	if !strings.HasPrefix(url, "/crops/sess-1/add_") || !strings.HasSuffix(url, ".jpg") {
		t.Errorf("unexpected crop URL: %s", url)
	}

	entries, err := os.ReadDir(filepath.Join(dir, "sess-1"))
	if err != nil {
		t.Fatalf("reading crop dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected one crop file, got %d", len(entries))
	}
	data, err := os.ReadFile(filepath.Join(dir, "sess-1", entries[0].Name()))
	if err != nil {
		t.Fatalf("reading crop: %v", err)
	}
	if string(data) != "jpeg bytes" {
		t.Error("crop contents do not round-trip")
	}
}

func TestCropStoreDistinctFilesSameMillisecond(t *testing.T) {
	dir := t.TempDir()
	s := NewCropStore(dir, "/crops")

	// Back-to-back writes share a millisecond timestamp; each must still
	// land in its own file.
	for i := 0; i < 5; i++ {
		if _, err := s.Store("sess-1", []byte("jpeg bytes"), "add"); err != nil {
			t.Fatalf("Store %d failed: %v", i, err)
		}
	}
	entries, err := os.ReadDir(filepath.Join(dir, "sess-1"))
	if err != nil {
		t.Fatalf("reading crop dir: %v", err)
	}
	if len(entries) != 5 {
		t.Fatalf("expected 5 crop files, got %d", len(entries))
	}
}

func TestCropStoreRejectsEmptyCrop(t *testing.T) {
	s := NewCropStore(t.TempDir(), "/crops")
	if _, err := s.Store("sess-1", nil, "add"); err == nil {
		t.Fatal("expected an error for an empty crop")
	}
}
