package types

import "errors"

// Standard error kinds. Store operations wrap these with context; callers
// classify with errors.Is.
var (
	// ErrValidation marks malformed input: a position outside the vehicle
	// kind's set, a negative mileage, a malformed date, an empty plate or
	// record type.
	ErrValidation = errors.New("validation failed")

	// ErrConstraint marks a uniqueness violation, typically a duplicate plate.
	ErrConstraint = errors.New("constraint violated")

	// ErrNotFound marks an operation addressing an id that does not exist.
	ErrNotFound = errors.New("not found")
)
