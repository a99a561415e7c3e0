package storage

import "errors"

// Common client storage errors
var (
	// ErrAuthNotFound indicates that no session data exists (not signed in)
	ErrAuthNotFound = errors.New("authentication data not found")

	// ErrNoSnapshot indicates that no cached lead snapshot exists yet
	ErrNoSnapshot = errors.New("no lead snapshot found")
)
