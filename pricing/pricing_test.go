package pricing_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bluescooters/rental-engine/pricing"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func at(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.UTC)
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// =============================================================================
// TARIFF TABLE
// =============================================================================

func TestPrice_TariffTable(t *testing.T) {
	calc := pricing.NewCalculator()

	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		rate  string
		want  string
	}{
		{"exactly one day hits the cap", at(2022, time.September, 1, 0, 0), at(2022, time.September, 2, 0, 0), "0.15", "20.00"},
		{"one day plus two minutes", at(2022, time.September, 1, 0, 0), at(2022, time.September, 2, 0, 2), "0.15", "20.30"},
		{"two minutes", at(2022, time.September, 1, 0, 0), at(2022, time.September, 1, 0, 2), "0.15", "0.30"},
		{"long afternoon capped", at(2022, time.September, 1, 12, 0), at(2022, time.September, 1, 16, 30), "0.15", "20.00"},
		{"just over an hour", at(2022, time.September, 1, 9, 0), at(2022, time.September, 1, 10, 2), "0.15", "9.30"},
		{"into midnight capped", at(2022, time.September, 1, 9, 0), at(2022, time.September, 2, 0, 0), "0.15", "20.00"},
		{"capped first day plus morning", at(2022, time.September, 1, 9, 0), at(2022, time.September, 2, 2, 0), "0.15", "38.00"},
		{"two capped days", at(2022, time.September, 1, 9, 0), at(2022, time.September, 2, 10, 0), "0.15", "40.00"},
		{"spanning a full middle day", at(2022, time.September, 1, 9, 0), at(2022, time.September, 3, 10, 0), "0.15", "60.00"},
		{"late start cheap first day", at(2022, time.September, 1, 23, 0), at(2022, time.September, 3, 10, 0), "0.15", "49.00"},
		{"one hour across midnight double-capped", at(2022, time.September, 1, 23, 30), at(2022, time.September, 2, 0, 30), "1.00", "40.00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := calc.Price(tc.start, tc.end, money(tc.rate))
			require.NoError(t, err)
			assert.True(t, got.Equal(money(tc.want)), "want %s, got %s", tc.want, got)
		})
	}
}

// =============================================================================
// EDGE CASES
// =============================================================================

func TestPrice_ZeroDuration_IsFree(t *testing.T) {
	calc := pricing.NewCalculator()
	start := at(2022, time.September, 1, 9, 0)

	got, err := calc.Price(start, start, money("0.15"))

	require.NoError(t, err)
	assert.True(t, got.IsZero(), "zero-duration rental should cost 0, got %s", got)
}

func TestPrice_EndBeforeStart_Fails(t *testing.T) {
	calc := pricing.NewCalculator()

	_, err := calc.Price(at(2022, time.September, 2, 0, 0), at(2022, time.September, 1, 0, 0), money("0.15"))

	require.Error(t, err)
	assert.ErrorIs(t, err, pricing.ErrInvalidInterval)
	var ivErr *pricing.InvalidIntervalError
	assert.ErrorAs(t, err, &ivErr)
}

func TestPrice_SameDayOfMonth_AcrossMonths_IsMultiDay(t *testing.T) {
	// GIVEN: Aug 1 10:00 -> Sep 1 10:00, same day-of-month number
	// WHEN: Pricing the interval
	// THEN: Billed as multi-day (30 full days at the cap plus two capped
	//       partial days), not as a single 10-minute-equivalent day

	calc := pricing.NewCalculator()

	got, err := calc.Price(at(2022, time.August, 1, 10, 0), at(2022, time.September, 1, 10, 0), money("0.15"))

	require.NoError(t, err)
	assert.True(t, got.Equal(money("640.00")), "want 640.00, got %s", got)
}

func TestPrice_SameDay_NeverExceedsCap(t *testing.T) {
	calc := pricing.NewCalculator()
	start := at(2022, time.September, 1, 0, 0)

	for _, minutes := range []int{1, 59, 134, 600, 1439} {
		end := start.Add(time.Duration(minutes) * time.Minute)
		got, err := calc.Price(start, end, money("3.50"))
		require.NoError(t, err)
		assert.False(t, got.GreaterThan(pricing.DefaultDailyCap),
			"%d minutes priced at %s exceeds the daily cap", minutes, got)
	}
}

func TestPrice_ResultHasAtMostTwoDecimals(t *testing.T) {
	calc := pricing.NewCalculator()

	// 7 minutes at 0.333 = 2.331 raw; must come back rounded
	got, err := calc.Price(at(2022, time.September, 1, 9, 0), at(2022, time.September, 1, 9, 7), money("0.333"))

	require.NoError(t, err)
	assert.True(t, got.Equal(got.Round(2)), "result %s not rounded to 2 decimals", got)
	assert.True(t, got.Equal(money("2.33")), "want 2.33, got %s", got)
}
