/*
store.go - Persistence interface for rental records

PURPOSE:
  Defines the boundary between the ledger and its storage. The ledger owns
  the business rules (one open record per scooter, pricing at close time);
  the Store only persists and retrieves records.

MUTATION CONTRACT:
  Records are append-only with one exception: an open record's End timestamp
  is set exactly once, by CloseFirstOpen or CloseAll. No other field is ever
  updated, and records are never deleted.

IMPLEMENTATIONS:
  - rental/store/memory.go: in-memory, the default (the system is in-memory
    by design; persistence is opt-in)
  - store/sqlite/sqlite.go: SQLite-backed, for a durable ledger
*/
package rental

import (
	"context"
	"time"
)

// Store handles persistence of rental records.
type Store interface {
	// Append adds a new record. Insertion order is preserved and defines
	// ledger order.
	Append(ctx context.Context, rec Record) error

	// CloseFirstOpen sets the end timestamp on the first open record (in
	// ledger order) for the scooter and returns the closed record.
	// Fails with ErrNoOpenRecord if no open record exists.
	CloseFirstOpen(ctx context.Context, scooterID string, end time.Time) (Record, error)

	// HasOpen reports whether an open record exists for the scooter.
	HasOpen(ctx context.Context, scooterID string) (bool, error)

	// All returns every record in ledger order.
	All(ctx context.Context) ([]Record, error)

	// CloseAll closes every open record at the given instant and returns
	// how many were closed. This is the explicit bulk variant of
	// CloseFirstOpen; income reporting never mutates records itself.
	CloseAll(ctx context.Context, asOf time.Time) (int, error)
}
