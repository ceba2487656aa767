/*
errors.go - Centralized error types for the fleet package

Sentinel errors for errors.Is checks; structured errors carry the offending
id or price and unwrap to the sentinel.
*/
package fleet

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidID is returned when an id is empty or whitespace-only.
	ErrInvalidID = errors.New("id cannot be null or empty")

	// ErrInvalidPrice is returned when a price per minute is not positive.
	ErrInvalidPrice = errors.New("price per minute must be positive")

	// ErrDuplicateID is returned when adding a scooter whose id already exists.
	ErrDuplicateID = errors.New("scooter id must be unique")

	// ErrScooterNotFound is returned when an id has no matching scooter.
	ErrScooterNotFound = errors.New("scooter does not exist")

	// ErrNoScootersAvailable is returned when every scooter is rented out.
	ErrNoScootersAvailable = errors.New("there are no scooters currently available")

	// ErrScooterRentedOut is returned when removing a scooter that is rented.
	ErrScooterRentedOut = errors.New("scooter is rented out")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

type InvalidPriceError struct {
	Price decimal.Decimal
}

func (e *InvalidPriceError) Error() string {
	return fmt.Sprintf("invalid price per minute: %s", e.Price)
}

func (e *InvalidPriceError) Unwrap() error { return ErrInvalidPrice }

type DuplicateIDError struct {
	ID string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("scooter id must be unique: %s", e.ID)
}

func (e *DuplicateIDError) Unwrap() error { return ErrDuplicateID }

type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("scooter does not exist: %s", e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrScooterNotFound }

type RentedOutError struct {
	ID string
}

func (e *RentedOutError) Error() string {
	return fmt.Sprintf("scooter is rented out: %s", e.ID)
}

func (e *RentedOutError) Unwrap() error { return ErrScooterRentedOut }
