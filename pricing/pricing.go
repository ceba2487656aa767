/*
Package pricing computes the cost of a single rental interval under the
tiered, day-capped tariff.

PURPOSE:
  Billing is per-minute, but no calendar day of a rental may cost more than
  the daily cap (20.00 by default). A rental that spans several days is
  decomposed into a first partial day, whole intervening days, and a last
  partial day, each capped independently.

KEY CONCEPTS:
  - Engine: capability interface so the rental core and tests can substitute
    pricing implementations.
  - Calculator: the production tariff. Stateless; safe to share.

PRECISION:
  All money arithmetic uses decimal.Decimal. Results are rounded once, to
  2 decimal places, half away from zero. Per-day segments are capped but
  never rounded individually.

SEE ALSO:
  - rental/income.go: aggregates Engine results across a ledger
  - rental/company.go: prices a rental at end-rent time
*/
package pricing

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultDailyCap is the maximum chargeable amount per calendar day.
var DefaultDailyCap = decimal.RequireFromString("20.00")

const minutesPerDay = 24 * 60

// Engine prices a single rental interval.
type Engine interface {
	// Price returns the cost of renting from start to end at the given
	// per-minute rate. end must not precede start.
	Price(start, end time.Time, ratePerMinute decimal.Decimal) (decimal.Decimal, error)
}

// =============================================================================
// CALCULATOR - Tiered per-minute tariff with a daily cap
// =============================================================================

// Calculator implements Engine. Zero state beyond the cap; a single instance
// can serve any number of concurrent callers.
type Calculator struct {
	DailyCap decimal.Decimal
}

// NewCalculator returns a Calculator using DefaultDailyCap.
func NewCalculator() *Calculator {
	return &Calculator{DailyCap: DefaultDailyCap}
}

// Price computes the rental cost for [start, end].
// Returns InvalidIntervalError when end precedes start.
func (c *Calculator) Price(start, end time.Time, ratePerMinute decimal.Decimal) (decimal.Decimal, error) {
	if end.Before(start) {
		return decimal.Zero, &InvalidIntervalError{Start: start, End: end}
	}
	if sameCalendarDay(start, end) {
		return c.singleDay(start, end, ratePerMinute), nil
	}
	return c.multiDay(start, end, ratePerMinute), nil
}

// singleDay bills the elapsed minutes, capped at the daily maximum.
func (c *Calculator) singleDay(start, end time.Time, rate decimal.Decimal) decimal.Decimal {
	price := minutesBetween(start, end).Mul(rate)
	if price.GreaterThan(c.DailyCap) {
		price = c.DailyCap
	}
	return price.Round(2)
}

// multiDay decomposes the interval into first partial day, full intervening
// days, and last partial day. Every full day hits the cap, so it contributes
// the cap directly. Only the final sum is rounded.
func (c *Calculator) multiDay(start, end time.Time, rate decimal.Decimal) decimal.Decimal {
	firstDay := decimal.NewFromInt(minutesPerDay).Sub(minutesOfDay(start)).Mul(rate)
	if firstDay.GreaterThan(c.DailyCap) {
		firstDay = c.DailyCap
	}

	lastDay := minutesOfDay(end).Mul(rate)
	if lastDay.GreaterThan(c.DailyCap) {
		lastDay = c.DailyCap
	}

	fullDays := calendarDaysBetween(start, end) - 1
	middle := c.DailyCap.Mul(decimal.NewFromInt(int64(fullDays)))

	return firstDay.Add(lastDay).Add(middle).Round(2)
}

// =============================================================================
// CALENDAR HELPERS
// =============================================================================

// sameCalendarDay compares full calendar dates, not just day-of-month, so
// intervals like Sep 1 -> Oct 1 are billed as multi-day.
func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// minutesBetween returns the elapsed minutes from a to b, with fractional
// minutes preserved down to second resolution.
func minutesBetween(a, b time.Time) decimal.Decimal {
	seconds := decimal.NewFromInt(int64(b.Sub(a) / time.Second))
	return seconds.Div(decimal.NewFromInt(60))
}

// minutesOfDay returns the wall-clock minutes since midnight.
func minutesOfDay(t time.Time) decimal.Decimal {
	seconds := int64(t.Hour())*3600 + int64(t.Minute())*60 + int64(t.Second())
	return decimal.NewFromInt(seconds).Div(decimal.NewFromInt(60))
}

// calendarDaysBetween counts whole calendar dates from start's date to end's
// date, ignoring time of day.
func calendarDaysBetween(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(s) / (24 * time.Hour))
}
