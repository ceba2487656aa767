/*
Package rental is the core of the scooter-rental engine: the append-only
rental ledger, income aggregation, and the company facade that coordinates
fleet availability with the ledger.

KEY CONCEPTS:
  - Record: one rental session. The per-minute rate is captured from the
    scooter when the rental starts and never re-read, so later price changes
    do not retroactively affect open or closed rentals.
  - Ledger: append-only collection of Records behind a Store interface.
  - IncomeCalculator: pure aggregation over Records (completed or all).
  - Company: the lifecycle state machine (start rent / end rent / report).

SEE ALSO:
  - pricing: per-interval cost computation
  - fleet: scooter existence and availability
*/
package rental

import (
	"time"

	"github.com/shopspring/decimal"
)

// Record is a single rental session in the ledger.
//
// INVARIANTS:
//   - Start and PricePerMinute are immutable after creation.
//   - End is set exactly once, by closing the record; never cleared.
//   - Records are never deleted (history is needed for income reports).
type Record struct {
	ID             string          // ledger-unique record id
	ScooterID      string          // copied from the scooter at rental start
	PricePerMinute decimal.Decimal // captured at start time
	Start          time.Time
	End            *time.Time // nil = open / in progress
}

// Open reports whether the rental is still in progress.
func (r Record) Open() bool { return r.End == nil }

// StartedIn reports whether the rental started in the given calendar year.
func (r Record) StartedIn(year int) bool { return r.Start.Year() == year }

// =============================================================================
// CLOCK - Injectable source of "now" for deterministic tests
// =============================================================================

// Clock supplies the current timestamp used at rent-start and rent-end.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }

// FixedClock always returns the same instant. For tests and replays.
type FixedClock struct {
	T time.Time
}

func (c FixedClock) Now() time.Time { return c.T }
