package domain

import "errors"

// Domain errors represent error conditions in the memload domain.
// These errors are returned by the public API and can be checked with errors.Is.
//
// A missing registration or a missing assembly name is never an error: lookups
// report absence through their boolean result so callers can fall back.
var (
	// ErrMismatchedInput is returned when a bulk registration carries a different
	// number of names and images.
	ErrMismatchedInput = errors.New("memload: mismatched names and images")

	// ErrCapacityOverflow is the panic value raised when the entry store cannot
	// grow without overflowing its capacity arithmetic.
	ErrCapacityOverflow = errors.New("memload: store capacity overflow")

	// ErrInvalidImage is returned when an assembly payload cannot be decoded.
	ErrInvalidImage = errors.New("memload: invalid assembly image")

	// ErrInvalidBundle is returned when a bundle file cannot be decoded.
	ErrInvalidBundle = errors.New("memload: invalid bundle")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("memload: invalid configuration")
)
