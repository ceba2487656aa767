package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bluescooters/rental-engine/rental"
	"github.com/bluescooters/rental-engine/rental/store"
)

func rec(id, scooterID string, start time.Time) rental.Record {
	return rental.Record{
		ID:             id,
		ScooterID:      scooterID,
		PricePerMinute: decimal.RequireFromString("0.15"),
		Start:          start,
	}
}

func TestMemory_CloseFirstOpen_PicksLedgerOrder(t *testing.T) {
	// GIVEN: Two open records for the same scooter (should not happen via
	//        the ledger, but the store contract is order-based regardless)
	m := store.NewMemory()
	ctx := context.Background()
	start := time.Date(2022, 9, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, m.Append(ctx, rec("r1", "Scooter-1", start)))
	require.NoError(t, m.Append(ctx, rec("r2", "Scooter-1", start.Add(time.Hour))))

	closedRec, err := m.CloseFirstOpen(ctx, "Scooter-1", start.Add(2*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, "r1", closedRec.ID)

	closedRec, err = m.CloseFirstOpen(ctx, "Scooter-1", start.Add(3*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, "r2", closedRec.ID)
}

func TestMemory_CloseFirstOpen_NothingOpen_Fails(t *testing.T) {
	m := store.NewMemory()

	_, err := m.CloseFirstOpen(context.Background(), "Scooter-1", time.Now())

	assert.ErrorIs(t, err, rental.ErrNoOpenRecord)
}

func TestMemory_HasOpen(t *testing.T) {
	m := store.NewMemory()
	ctx := context.Background()
	start := time.Date(2022, 9, 1, 9, 0, 0, 0, time.UTC)

	openBefore, err := m.HasOpen(ctx, "Scooter-1")
	require.NoError(t, err)
	assert.False(t, openBefore)

	require.NoError(t, m.Append(ctx, rec("r1", "Scooter-1", start)))

	openAfter, err := m.HasOpen(ctx, "Scooter-1")
	require.NoError(t, err)
	assert.True(t, openAfter)
}

func TestMemory_All_ReturnsDetachedCopies(t *testing.T) {
	// Mutating a returned record must not leak back into the store.
	m := store.NewMemory()
	ctx := context.Background()
	start := time.Date(2022, 9, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, m.Append(ctx, rec("r1", "Scooter-1", start)))
	_, err := m.CloseFirstOpen(ctx, "Scooter-1", start.Add(time.Hour))
	require.NoError(t, err)

	records, err := m.All(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)

	tampered := start.Add(48 * time.Hour)
	*records[0].End = tampered

	fresh, err := m.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, start.Add(time.Hour), *fresh[0].End)
}

func TestMemory_CloseAll_CountsClosedRecords(t *testing.T) {
	m := store.NewMemory()
	ctx := context.Background()
	start := time.Date(2022, 9, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, m.Append(ctx, rec("r1", "Scooter-1", start)))
	require.NoError(t, m.Append(ctx, rec("r2", "Scooter-2", start)))
	require.NoError(t, m.Append(ctx, rec("r3", "Scooter-3", start)))
	_, err := m.CloseFirstOpen(ctx, "Scooter-2", start.Add(time.Hour))
	require.NoError(t, err)

	closed, err := m.CloseAll(ctx, start.Add(2*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 2, closed)

	again, err := m.CloseAll(ctx, start.Add(3*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 0, again)
}
