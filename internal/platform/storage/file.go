package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileStorage persists the blob as a single file on disk. Writes go
// through a temp file and rename so a crash mid-write never leaves a
// truncated blob behind.
type FileStorage struct {
	path string
}

// NewFileStorage returns a FileStorage writing to path. The parent
// directory is created on first write, not here.
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

// Read returns the file contents, or ErrNotFound if the file does not
// exist yet.
func (s *FileStorage) Read(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}
	return data, nil
}

// Write atomically replaces the file contents.
func (s *FileStorage) Write(_ context.Context, data []byte) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing %s: %w", s.path, err)
	}
	return nil
}
