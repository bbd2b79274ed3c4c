package storage

import (
	"context"
	"fmt"
	"sync"
)

// MockObjectStorage is an in-memory ObjectStorage for tests and local runs.
type MockObjectStorage struct {
	mu      sync.RWMutex
	objects map[string]mockObject
}

type mockObject struct {
	data        []byte
	contentType string
}

// NewMockObjectStorage creates an empty in-memory object storage.
func NewMockObjectStorage() *MockObjectStorage {
	return &MockObjectStorage{objects: make(map[string]mockObject)}
}

// Put stores an object.
func (m *MockObjectStorage) Put(ctx context.Context, key string, data []byte, contentType string) error {
	if key == "" {
		return ErrInvalidKey
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.objects[key] = mockObject{
		data:        append([]byte(nil), data...),
		contentType: contentType,
	}
	return nil
}

// Get retrieves an object.
func (m *MockObjectStorage) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, ErrInvalidKey
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	obj, ok := m.objects[key]
	if !ok {
		return nil, fmt.Errorf("get object %s: %w", key, ErrObjectNotFound)
	}
	return append([]byte(nil), obj.data...), nil
}

// Len reports the number of stored objects.
func (m *MockObjectStorage) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.objects)
}
