package store

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"
)

// CropStore writes event crops to disk for audit. Failures are the
// caller's to ignore: a lost crop must never block a cart mutation.
type CropStore struct {
	dir     string
	baseURL string
	seq     atomic.Uint64
}

func NewCropStore(dir, baseURL string) *CropStore {
	return &CropStore{dir: dir, baseURL: baseURL}
}

// Store saves one crop and returns its serving URL.
func (s *CropStore) Store(sessionID string, imageData []byte, action string) (string, error) {
	if len(imageData) == 0 {
		return "", fmt.Errorf("empty crop")
	}

	dir := filepath.Join(s.dir, sessionID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create crop dir: %w", err)
	}

	// The sequence suffix keeps two crops written in the same millisecond
	// from landing on the same path.
	filename := fmt.Sprintf("%s_%s_%04d.jpg", action,
		time.Now().Format("2006-01-02_15-04-05.000"), s.seq.Add(1))
	fullpath := filepath.Join(dir, filename)
	if err := os.WriteFile(fullpath, imageData, 0644); err != nil {
		return "", fmt.Errorf("save crop %s: %w", filename, err)
	}

	log.Printf("Crop saved: %s (%d bytes)", fullpath, len(imageData))
	return fmt.Sprintf("%s/%s/%s", s.baseURL, sessionID, filename), nil
}
