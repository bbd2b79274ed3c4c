package storage

import (
	"context"
	"errors"
	"testing"
)

func TestMockObjectStoragePutGet(t *testing.T) {
	store := NewMockObjectStorage()

	if err := store.Put(context.Background(), "2026-08-28T10:00:00Z", []byte(`{"ids":[]}`), "application/json"); err != nil {
		t.Fatalf("Put() unexpected error: %v", err)
	}
	if store.Len() != 1 {
		t.Errorf("Len() = %d, want 1", store.Len())
	}

	data, err := store.Get(context.Background(), "2026-08-28T10:00:00Z")
	if err != nil {
		t.Fatalf("Get() unexpected error: %v", err)
	}
	if string(data) != `{"ids":[]}` {
		t.Errorf("Get() = %q, want stored payload", data)
	}
}

func TestMockObjectStorageMissingKey(t *testing.T) {
	store := NewMockObjectStorage()

	_, err := store.Get(context.Background(), "absent")
	if !errors.Is(err, ErrObjectNotFound) {
		t.Errorf("Get() error = %v, want ErrObjectNotFound", err)
	}
}

func TestMockObjectStorageEmptyKey(t *testing.T) {
	store := NewMockObjectStorage()

	if err := store.Put(context.Background(), "", []byte("x"), "text/plain"); !errors.Is(err, ErrInvalidKey) {
		t.Errorf("Put() error = %v, want ErrInvalidKey", err)
	}
}
