package repositories

import (
	"errors"
	"fmt"
)

// Common repository errors
var (
	// ErrNotFound is returned when a record is not found
	ErrNotFound = errors.New("record not found")

	// ErrConnection is returned when the document store is unreachable
	ErrConnection = errors.New("document store connection error")
)

// RepositoryError carries operation context around an underlying error.
type RepositoryError struct {
	Op     string // Operation that failed
	Entity string // Entity type
	Key    string // Record key (if applicable)
	Err    error  // Underlying error
}

// Error implements the error interface.
func (e *RepositoryError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("%s %s failed for key %s: %v", e.Entity, e.Op, e.Key, e.Err)
	}
	return fmt.Sprintf("%s %s failed: %v", e.Entity, e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *RepositoryError) Unwrap() error {
	return e.Err
}

// NewRepositoryError creates a new repository error.
func NewRepositoryError(op, entity, key string, err error) *RepositoryError {
	return &RepositoryError{Op: op, Entity: entity, Key: key, Err: err}
}

// IsNotFound checks whether an error chain ends in ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
