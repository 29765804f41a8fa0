package domain

import "errors"

// Sentinel errors for domain-level error discrimination.
// Stores wrap these so the resolution logic can classify per-attempt failures
// without leaking infrastructure details to the caller.
var (
	ErrNotFound     = errors.New("not found")
	ErrSchemaAbsent = errors.New("schema absent")
	ErrAccessDenied = errors.New("access denied")
	ErrInvalidInput = errors.New("invalid input")
)
