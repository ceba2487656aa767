/*
company.go - The rental company facade and lifecycle state machine

PURPOSE:
  Coordinates the fleet directory and the rental ledger so the two stay
  consistent: a scooter's Rented flag is true iff the ledger holds an open
  record for it. Every transition goes through StartRent or EndRent; no
  other code path flips the flag or closes records.

STATE MACHINE (per scooter):
  Available -> StartRent -> Rented -> EndRent -> Available

ORDERING:
  Validation happens before any mutation (fail fast, no partial state).
  On StartRent the flag is claimed before the record is opened, so the
  scooter cannot be removed from the fleet while its record is being
  acquired; a failed open releases the claim. On EndRent the record is
  closed before the flag is cleared.

CONCURRENCY:
  StartRent and EndRent are read-then-write sequences (check availability,
  then mutate). A single mutex per company serializes them, which is what
  lets the engine be exposed over HTTP. The Rented flag itself changes
  only through Directory.SetRented, under the directory's own lock, so
  fleet listings served concurrently never race with a rent transition.
*/
package rental

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/bluescooters/rental-engine/fleet"
	"github.com/bluescooters/rental-engine/pricing"
)

// Company exposes start/end/report operations over a fleet and a ledger.
type Company struct {
	mu        sync.Mutex
	name      string
	directory fleet.Directory
	ledger    *Ledger
	engine    pricing.Engine
	income    *IncomeCalculator
	clock     Clock
}

// NewCompany validates the name and wires the collaborators together.
func NewCompany(name string, directory fleet.Directory, ledger *Ledger, engine pricing.Engine, clock Clock) (*Company, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrInvalidName
	}
	return &Company{
		name:      name,
		directory: directory,
		ledger:    ledger,
		engine:    engine,
		income:    NewIncomeCalculator(engine, clock),
		clock:     clock,
	}, nil
}

func (c *Company) Name() string { return c.name }

// StartRent begins a rental session for the scooter.
func (c *Company) StartRent(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	scooter, err := c.directory.ByID(id)
	if err != nil {
		return err
	}

	available, err := c.directory.Available()
	if err != nil {
		return err
	}
	if !contains(available, scooter) {
		return &AlreadyRentedError{ScooterID: id}
	}

	if err := c.directory.SetRented(scooter.ID, true); err != nil {
		return err
	}
	if _, err := c.ledger.Open(ctx, scooter.ID, scooter.PricePerMinute, c.clock.Now()); err != nil {
		_ = c.directory.SetRented(scooter.ID, false)
		return err
	}
	return nil
}

// EndRent closes the scooter's rental session and returns its price.
func (c *Company) EndRent(ctx context.Context, id string) (decimal.Decimal, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	scooter, err := c.directory.ByID(id)
	if err != nil {
		return decimal.Zero, err
	}

	// An empty available set just means every scooter is out, which is a
	// perfectly valid state to end a rent in.
	available, err := c.directory.Available()
	if err != nil && !errors.Is(err, fleet.ErrNoScootersAvailable) {
		return decimal.Zero, err
	}
	if contains(available, scooter) {
		return decimal.Zero, &NotRentedError{ScooterID: id}
	}

	rec, err := c.ledger.Close(ctx, scooter.ID, c.clock.Now())
	if err != nil {
		return decimal.Zero, err
	}
	if err := c.directory.SetRented(scooter.ID, false); err != nil {
		return decimal.Zero, err
	}

	return c.engine.Price(rec.Start, *rec.End, rec.PricePerMinute)
}

// CalculateIncome reports total income across the ledger. A nil year means
// all years; includeOpen values in-progress rentals as ending now without
// closing them.
func (c *Company) CalculateIncome(ctx context.Context, year *int, includeOpen bool) (decimal.Decimal, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.ledger.All(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	if year == nil {
		return c.income.SumIncome(records, includeOpen)
	}
	return c.income.SumIncomeForYear(records, includeOpen, *year)
}

func contains(scooters []*fleet.Scooter, target *fleet.Scooter) bool {
	for _, s := range scooters {
		if s.ID == target.ID {
			return true
		}
	}
	return false
}
