/*
errors.go - Centralized error types for the rental core

All failures here are local, non-retryable validation or state errors. They
surface immediately to the caller; nothing is retried or suppressed, and no
mutation happens before validation succeeds.
*/
package rental

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidName is returned when a company is constructed with a
	// blank or whitespace-only name.
	ErrInvalidName = errors.New("name cannot be null or empty")

	// ErrScooterRented is returned when starting a rent on a scooter that
	// is absent from the available set.
	ErrScooterRented = errors.New("scooter is already rented")

	// ErrScooterNotRented is returned when ending a rent on a scooter that
	// was never started.
	ErrScooterNotRented = errors.New("scooter is not rented out")

	// ErrNoOpenRecord is returned by the ledger when no open record exists
	// for the scooter being closed.
	ErrNoOpenRecord = errors.New("no open rental record")

	// ErrNoRentalsInYear is returned when a year-filtered income query
	// matches zero records.
	ErrNoRentalsInYear = errors.New("no rentals in given year")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

type AlreadyRentedError struct {
	ScooterID string
}

func (e *AlreadyRentedError) Error() string {
	return fmt.Sprintf("scooter is already rented: %s", e.ScooterID)
}

func (e *AlreadyRentedError) Unwrap() error { return ErrScooterRented }

type NotRentedError struct {
	ScooterID string
}

func (e *NotRentedError) Error() string {
	return fmt.Sprintf("scooter is not rented out: %s", e.ScooterID)
}

func (e *NotRentedError) Unwrap() error { return ErrScooterNotRented }

type NoRentalsInYearError struct {
	Year int
}

func (e *NoRentalsInYearError) Error() string {
	return fmt.Sprintf("there are no rentals in %d", e.Year)
}

func (e *NoRentalsInYearError) Unwrap() error { return ErrNoRentalsInYear }
