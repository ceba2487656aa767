/*
ledger.go - The rental ledger

PURPOSE:
  Wraps a Store with the rental-specific invariant: at most one open record
  exists per scooter at any instant. The ledger is the exclusive owner of
  its records; the company and the income calculator only read or trigger
  mutation through the operations below.
*/
package rental

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Ledger is the ordered collection of rental records, active and completed.
type Ledger struct {
	store Store
}

func NewLedger(store Store) *Ledger {
	return &Ledger{store: store}
}

// Open appends a new open record for the scooter.
// Fails with AlreadyRentedError if an open record already exists; callers
// normally prevent this by checking availability first, but the ledger
// enforces the invariant regardless.
func (l *Ledger) Open(ctx context.Context, scooterID string, pricePerMinute decimal.Decimal, start time.Time) (Record, error) {
	open, err := l.store.HasOpen(ctx, scooterID)
	if err != nil {
		return Record{}, err
	}
	if open {
		return Record{}, &AlreadyRentedError{ScooterID: scooterID}
	}

	rec := Record{
		ID:             uuid.NewString(),
		ScooterID:      scooterID,
		PricePerMinute: pricePerMinute,
		Start:          start,
	}
	if err := l.store.Append(ctx, rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// Close sets the end timestamp on the scooter's open record and returns it.
// Fails with ErrNoOpenRecord if the scooter has no rental in progress.
func (l *Ledger) Close(ctx context.Context, scooterID string, end time.Time) (Record, error) {
	return l.store.CloseFirstOpen(ctx, scooterID, end)
}

// All returns every record in ledger order, for reporting.
func (l *Ledger) All(ctx context.Context) ([]Record, error) {
	return l.store.All(ctx)
}

// CloseAll force-closes every open record at the given instant and returns
// how many were closed. This is a deliberate, explicit mutation: income
// reports that include open rentals only value them as of "now", they never
// close them as a side effect.
func (l *Ledger) CloseAll(ctx context.Context, asOf time.Time) (int, error) {
	return l.store.CloseAll(ctx, asOf)
}
