package repository

import "errors"

var (
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when a unique column (slug, sku, email, url)
	// would be duplicated. Field names the offending column.
	ErrConflict = errors.New("conflict")
)

// ConflictError wraps ErrConflict with the column that collided so the
// usecase can report a validation error against that field.
type ConflictError struct {
	Field string
}

func (e *ConflictError) Error() string { return "conflict: " + e.Field }

func (e *ConflictError) Unwrap() error { return ErrConflict }
