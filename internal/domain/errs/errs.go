// Package errs defines the sentinel errors shared across domain services.
package errs

import "errors"

var (
	// ErrNotFound signals that a requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrPatientNotFound signals that a referenced patient does not exist.
	ErrPatientNotFound = errors.New("patient not found")

	// ErrInvalidRange signals a date range whose start falls after its end.
	ErrInvalidRange = errors.New("start date must not be after end date")
)
