package attachment

import (
	"bytes"
	"context"
	"io"
	"sync"

	"jobdesk/internal/core/apperr"
)

// MemStore 纯内存实现，供测试和本地试跑（upload.backend: memory）。
type MemStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func NewMemStore() *MemStore {
	return &MemStore{blobs: make(map[string][]byte)}
}

func (s *MemStore) Save(_ context.Context, originalName string, r io.Reader) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	id := NewFileID(originalName)
	s.mu.Lock()
	s.blobs[id] = b
	s.mu.Unlock()
	return id, nil
}

func (s *MemStore) Open(_ context.Context, id string) (io.ReadCloser, error) {
	s.mu.RLock()
	b, ok := s.blobs[id]
	s.mu.RUnlock()
	if !ok {
		return nil, apperr.NotFound("File not found")
	}
	return io.NopCloser(bytes.NewReader(b)), nil
}

// Len 当前存储的 blob 数，测试用。
func (s *MemStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.blobs)
}
