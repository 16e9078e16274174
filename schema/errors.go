package schema

import "errors"

// Error kinds shared by the scoring engine. Callers match them with errors.Is.
var (
	// ErrInvalidInput is returned when a candidate lacks a required field or a
	// value lies outside the domain the formula can process.
	ErrInvalidInput = errors.New("invalid input")

	// ErrConfigInvariant is returned when a weight configuration breaks its
	// summation or range contract.
	ErrConfigInvariant = errors.New("configuration invariant violation")
)
