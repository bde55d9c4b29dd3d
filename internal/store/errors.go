package store

import "errors"

var (
	// ErrNotFound is returned when an id addresses no stored record.
	ErrNotFound = errors.New("store: not found")

	// ErrInUse rejects deleting an artist or venue that concerts still
	// reference. Callers surface it as a conflict, not a failure.
	ErrInUse = errors.New("store: record is referenced by concerts")

	// ErrUnknownTicketType aborts order creation when a requested line item
	// points at a ticket type that does not exist.
	ErrUnknownTicketType = errors.New("store: unknown ticket type")

	// ErrUsernameTaken rejects registering a duplicate username.
	ErrUsernameTaken = errors.New("store: username already taken")
)
