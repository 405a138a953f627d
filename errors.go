package keyscope

import "errors"

// Engine errors.
var (
	// ErrWindowNotRegistered indicates a query against a window that
	// has no shortcut registrations at all.
	ErrWindowNotRegistered = errors.New("no shortcuts registered for window")

	// ErrStateNotRegistered indicates a query against a state that has
	// no shortcut registrations for the window.
	ErrStateNotRegistered = errors.New("no shortcuts registered for state")
)
