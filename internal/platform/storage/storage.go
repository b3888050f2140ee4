// Package storage provides durable blob storage for the dashboard's
// persisted aggregate. It defines the Storage interface, an in-memory
// implementation suitable for testing and development, a file-backed
// implementation, and a Postgres-backed implementation.
//
// The whole dashboard dataset lives under a single fixed key; callers
// read and write it as one opaque blob.
package storage

import (
	"context"
	"errors"
	"sync"
)

// Key is the fixed storage key the aggregate blob lives under.
const Key = "murarihealth_data"

// ErrNotFound is returned by Read when no blob has been written yet.
var ErrNotFound = errors.New("no stored data")

// Storage is the contract for blob storage backends. Read returns the
// stored blob or ErrNotFound; Write replaces it.
type Storage interface {
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, data []byte) error
}

// MemoryStorage is a thread-safe, in-memory Storage for testing/dev.
// The zero value is ready to use.
type MemoryStorage struct {
	mu   sync.RWMutex
	data []byte
}

// NewMemoryStorage returns a MemoryStorage, optionally pre-populated.
func NewMemoryStorage(initial []byte) *MemoryStorage {
	s := &MemoryStorage{}
	if initial != nil {
		s.data = append([]byte(nil), initial...)
	}
	return s
}

// Read returns a copy of the stored blob.
func (s *MemoryStorage) Read(_ context.Context) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.data == nil {
		return nil, ErrNotFound
	}
	return append([]byte(nil), s.data...), nil
}

// Write replaces the stored blob.
func (s *MemoryStorage) Write(_ context.Context, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = append([]byte(nil), data...)
	return nil
}
