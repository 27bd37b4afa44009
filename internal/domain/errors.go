package domain

import "errors"

// Domain errors represent error conditions in the candecode domain.
// These errors are returned by the public API and can be checked with errors.Is.
var (
	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("candecode: invalid configuration")

	// ErrSchemaLoad is returned when the DBC schema cannot be parsed.
	// It is fatal and surfaced before the pipeline starts.
	ErrSchemaLoad = errors.New("candecode: schema load failed")

	// ErrSignalRange indicates a signal bit span that does not fit the
	// reconciled payload, or an unsupported bit width. It is recovered at
	// frame granularity and recorded as a DecodeError.
	ErrSignalRange = errors.New("candecode: signal exceeds payload range")
)
