package storage

import "errors"

// Sentinel errors shared by all store implementations.
var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("storage: not found")

	// ErrDuplicateKey indicates a record with the same key already exists.
	ErrDuplicateKey = errors.New("storage: duplicate key")

	// ErrInvalidInput indicates a record missing required fields.
	ErrInvalidInput = errors.New("storage: invalid input")
)
