package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestMemoryStorage_ReadBeforeWrite(t *testing.T) {
	s := NewMemoryStorage(nil)

	_, err := s.Read(context.Background())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStorage_RoundTrip(t *testing.T) {
	s := NewMemoryStorage(nil)
	ctx := context.Background()

	if err := s.Write(ctx, []byte(`{"symptoms":[]}`)); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	got, err := s.Read(ctx)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if string(got) != `{"symptoms":[]}` {
		t.Errorf("unexpected blob: %s", got)
	}
}

func TestMemoryStorage_ReadReturnsCopy(t *testing.T) {
	s := NewMemoryStorage([]byte("original"))
	ctx := context.Background()

	got, _ := s.Read(ctx)
	got[0] = 'X'

	again, _ := s.Read(ctx)
	if string(again) != "original" {
		t.Errorf("stored blob was mutated through a read: %s", again)
	}
}

func TestFileStorage_ReadMissingFile(t *testing.T) {
	s := NewFileStorage(filepath.Join(t.TempDir(), "nope.json"))

	_, err := s.Read(context.Background())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFileStorage_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "health.json")
	s := NewFileStorage(path)
	ctx := context.Background()

	if err := s.Write(ctx, []byte(`{"healthScore":{"overall":72}}`)); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	got, err := s.Read(ctx)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if string(got) != `{"healthScore":{"overall":72}}` {
		t.Errorf("unexpected blob: %s", got)
	}
}

func TestFileStorage_WriteReplacesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "health.json")
	s := NewFileStorage(path)
	ctx := context.Background()

	if err := s.Write(ctx, []byte("first")); err != nil {
		t.Fatalf("first write failed: %v", err)
	}
	if err := s.Write(ctx, []byte("second")); err != nil {
		t.Fatalf("second write failed: %v", err)
	}

	got, err := s.Read(ctx)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if string(got) != "second" {
		t.Errorf("expected latest write, got %s", got)
	}
}

func TestFileStorage_NoTempFileLeftBehind(t *testing.T) {
	dir := t.TempDir()
	s := NewFileStorage(filepath.Join(dir, "health.json"))

	if err := s.Write(context.Background(), []byte("x")); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("readdir failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "health.json" {
		t.Errorf("unexpected directory contents: %v", entries)
	}
}
