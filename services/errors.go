package services

import (
	"errors"
	"fmt"
)

// Error taxonomy. Every failure is terminal for the triggering action;
// nothing in this package retries automatically.
var (
	// ErrValidation marks a required field missing or empty. Nothing has
	// been written when it is returned.
	ErrValidation = errors.New("validation failed")

	// ErrStore marks a failed data-store call. Earlier completed steps of
	// a multi-step sequence are not rolled back.
	ErrStore = errors.New("store operation failed")

	// ErrNotFound marks a mutation aimed at an unknown record. Absence of
	// a prior client or consultation is NOT an error and is returned as a
	// nil result instead.
	ErrNotFound = errors.New("not found")

	// ErrExternalService marks a failed call to an outside collaborator
	// such as the payment provider.
	ErrExternalService = errors.New("external service failed")

	// ErrSuperseded marks a debounced lookup whose originating input was
	// replaced by newer input before its result could apply.
	ErrSuperseded = errors.New("lookup superseded by newer input")
)

func validationErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func storeErr(err error) error {
	return fmt.Errorf("%w: %v", ErrStore, err)
}
