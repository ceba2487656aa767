/*
income.go - Income aggregation over rental records

PURPOSE:
  Sums per-rental prices across a set of records, optionally filtered to a
  calendar year (by rental start) or restricted to completed rentals.

PURITY:
  SumIncome is a pure projection. When open rentals are included, they are
  valued as if they ended at the clock's current instant, but the records
  themselves are never mutated. Actually closing open records is a separate
  explicit operation (Ledger.CloseAll).
*/
package rental

import (
	"github.com/shopspring/decimal"

	"github.com/bluescooters/rental-engine/pricing"
)

// IncomeCalculator aggregates pricing results across rental records.
type IncomeCalculator struct {
	engine pricing.Engine
	clock  Clock
}

func NewIncomeCalculator(engine pricing.Engine, clock Clock) *IncomeCalculator {
	return &IncomeCalculator{engine: engine, clock: clock}
}

// SumIncome totals the price of the given records, rounded once to 2
// decimals. Open records are skipped when includeOpen is false, and valued
// as ending now when it is true.
func (c *IncomeCalculator) SumIncome(records []Record, includeOpen bool) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, rec := range records {
		if rec.Open() && !includeOpen {
			continue
		}
		end := c.clock.Now()
		if rec.End != nil {
			end = *rec.End
		}
		price, err := c.engine.Price(rec.Start, end, rec.PricePerMinute)
		if err != nil {
			return decimal.Zero, err
		}
		sum = sum.Add(price)
	}
	return sum.Round(2), nil
}

// SumIncomeForYear totals income for rentals that started in the given year.
// Fails with NoRentalsInYearError when no rental started in that year; it
// never silently returns zero for an empty year.
func (c *IncomeCalculator) SumIncomeForYear(records []Record, includeOpen bool, year int) (decimal.Decimal, error) {
	var filtered []Record
	for _, rec := range records {
		if rec.StartedIn(year) {
			filtered = append(filtered, rec)
		}
	}
	if len(filtered) == 0 {
		return decimal.Zero, &NoRentalsInYearError{Year: year}
	}
	return c.SumIncome(filtered, includeOpen)
}
