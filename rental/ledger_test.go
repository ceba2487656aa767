package rental_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bluescooters/rental-engine/rental"
	"github.com/bluescooters/rental-engine/rental/store"
)

func newTestLedger() *rental.Ledger {
	return rental.NewLedger(store.NewMemory())
}

func TestLedger_Open_AssignsRecordID(t *testing.T) {
	ledger := newTestLedger()
	ctx := context.Background()

	rec, err := ledger.Open(ctx, "Scooter-1", money("0.15"), time.Date(2022, 9, 1, 9, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID)
	assert.True(t, rec.Open())
}

func TestLedger_Open_SecondOpenForSameScooter_Fails(t *testing.T) {
	// At most one open record per scooter, even if the caller skipped the
	// availability check.
	ledger := newTestLedger()
	ctx := context.Background()
	start := time.Date(2022, 9, 1, 9, 0, 0, 0, time.UTC)

	_, err := ledger.Open(ctx, "Scooter-1", money("0.15"), start)
	require.NoError(t, err)

	_, err = ledger.Open(ctx, "Scooter-1", money("0.15"), start.Add(time.Hour))
	assert.ErrorIs(t, err, rental.ErrScooterRented)
}

func TestLedger_Close_NoOpenRecord_Fails(t *testing.T) {
	ledger := newTestLedger()

	_, err := ledger.Close(context.Background(), "Scooter-1", time.Now())

	assert.ErrorIs(t, err, rental.ErrNoOpenRecord)
}

func TestLedger_Close_SetsEndExactlyOnce(t *testing.T) {
	ledger := newTestLedger()
	ctx := context.Background()
	start := time.Date(2022, 9, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(30 * time.Minute)

	_, err := ledger.Open(ctx, "Scooter-1", money("0.15"), start)
	require.NoError(t, err)

	rec, err := ledger.Close(ctx, "Scooter-1", end)
	require.NoError(t, err)
	require.NotNil(t, rec.End)
	assert.Equal(t, end, *rec.End)

	// Closing again finds nothing open
	_, err = ledger.Close(ctx, "Scooter-1", end.Add(time.Hour))
	assert.ErrorIs(t, err, rental.ErrNoOpenRecord)
}

func TestLedger_CloseAll_ClosesEveryOpenRecord(t *testing.T) {
	ledger := newTestLedger()
	ctx := context.Background()
	start := time.Date(2022, 9, 1, 9, 0, 0, 0, time.UTC)

	_, err := ledger.Open(ctx, "Scooter-1", money("0.15"), start)
	require.NoError(t, err)
	_, err = ledger.Open(ctx, "Scooter-2", money("0.20"), start)
	require.NoError(t, err)
	_, err = ledger.Close(ctx, "Scooter-1", start.Add(time.Hour))
	require.NoError(t, err)

	asOf := start.Add(2 * time.Hour)
	closed, err := ledger.CloseAll(ctx, asOf)
	require.NoError(t, err)
	assert.Equal(t, 1, closed)

	records, err := ledger.All(ctx)
	require.NoError(t, err)
	for _, rec := range records {
		require.NotNil(t, rec.End, "record %s still open after CloseAll", rec.ID)
	}
}

func TestLedger_All_PreservesInsertionOrder(t *testing.T) {
	ledger := newTestLedger()
	ctx := context.Background()
	start := time.Date(2022, 9, 1, 9, 0, 0, 0, time.UTC)

	// Later start timestamp appended first: ledger order is call order,
	// not timestamp order.
	_, err := ledger.Open(ctx, "Scooter-2", money("0.20"), start.Add(time.Hour))
	require.NoError(t, err)
	_, err = ledger.Open(ctx, "Scooter-1", money("0.15"), start)
	require.NoError(t, err)

	records, err := ledger.All(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Scooter-2", records[0].ScooterID)
	assert.Equal(t, "Scooter-1", records[1].ScooterID)
}
