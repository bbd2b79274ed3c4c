// Package storage abstracts object storage behind the operations this
// system needs.
package storage

import (
	"context"
	"errors"
)

// Storage errors
var (
	// ErrInvalidKey is returned when an empty object key is supplied
	ErrInvalidKey = errors.New("invalid object key")

	// ErrObjectNotFound is returned when the requested object is absent
	ErrObjectNotFound = errors.New("object not found")
)

// ObjectStorage stores opaque objects under string keys. Implementations
// make exactly one attempt per call; there is no retry layer.
type ObjectStorage interface {
	// Put stores an object, overwriting any existing object with the key.
	Put(ctx context.Context, key string, data []byte, contentType string) error

	// Get retrieves an object by key.
	Get(ctx context.Context, key string) ([]byte, error)
}
