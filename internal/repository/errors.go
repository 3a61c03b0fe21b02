package repository

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrDuplicateIdentity = errors.New("identity already exists")

	// ErrPersistence wraps a failed durable flush. The in-memory mutation is
	// not rolled back: callers receive the entity together with this error.
	ErrPersistence = errors.New("failed to persist state")
)
