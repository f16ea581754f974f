// Package common defines shared sentinel errors used across NoteKeeper
// layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Store-level errors.
	ErrNotFound    = errors.New("not found")
	ErrPersistence = errors.New("persistence failure")

	// Auth-specific errors.
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNoSessionActive    = errors.New("no user logged in")

	// Note-specific errors.
	ErrNoteNotFound = errors.New("note not found")

	// Input validation errors (checked by callers, not the stores).
	ErrValidation = errors.New("validation error")
)
