package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/daybook/daybook/internal/config"
)

// Slot is a single named durable location on disk. The whole document is read
// once at startup and overwritten wholesale on every change.
type Slot struct {
	path string
}

// Open prepares the durable slot described by the storage configuration,
// creating the containing directory if needed.
func Open(cfg config.Storage) (*Slot, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("could not create storage directory %s: %w", cfg.Dir, err)
	}
	return &Slot{path: filepath.Join(cfg.Dir, cfg.File)}, nil
}

// NewSlot points at an explicit file path. Used by tests.
func NewSlot(path string) *Slot {
	return &Slot{path: path}
}

func (s *Slot) Path() string {
	return s.path
}

// Read returns the full document. A missing file surfaces as os.ErrNotExist,
// which callers treat as an empty store.
func (s *Slot) Read() ([]byte, error) {
	return os.ReadFile(s.path)
}

// Write replaces the full document atomically: the data is written to a
// temporary file next to the slot and renamed over it, so a crash mid-write
// never leaves a half-written document behind.
func (s *Slot) Write(data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("could not create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("could not write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("could not close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("could not replace %s: %w", s.path, err)
	}
	return nil
}
