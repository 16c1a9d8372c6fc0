package entities

import "errors"

var (
	// ErrNotFound is returned when a lookup by id matches no row.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidInput is returned when a record fails its required-field
	// contract before any store call is made.
	ErrInvalidInput = errors.New("invalid input")
)
