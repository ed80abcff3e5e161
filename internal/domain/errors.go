package domain

import "errors"

// Sentinel errors for plan validation. Callers match with errors.Is.
var (
	// ErrInvalidRate is returned when the annual rate is zero or negative.
	// The annuity growth factor divides by the rate, so a zero rate would
	// otherwise propagate a division by zero instead of a usable error.
	ErrInvalidRate = errors.New("annual rate must be greater than zero")

	// ErrNegativeInput is returned for negative principal, contribution, or years.
	ErrNegativeInput = errors.New("monetary inputs and years must not be negative")

	// ErrUnknownTiming is returned when the contribution timing is not one of
	// the two supported modes.
	ErrUnknownTiming = errors.New("unknown contribution timing")
)
