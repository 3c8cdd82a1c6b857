package service

import "errors"

// Service-level error taxonomy. Handlers map these onto HTTP statuses;
// anything else is a persistence failure surfaced as an opaque server error.
var (
	ErrForbidden = errors.New("insufficient role for this operation")
	ErrConflict  = errors.New("conflicting state or duplicate unique key")
	ErrNotFound  = errors.New("entity not found")
)
