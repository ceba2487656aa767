// Package store provides rental.Store implementations.
package store

import (
	"context"
	"sync"
	"time"

	"github.com/bluescooters/rental-engine/rental"
)

// =============================================================================
// MEMORY STORE - In-memory implementation (the default)
// =============================================================================

// Memory keeps records in a slice; insertion order is ledger order.
type Memory struct {
	mu      sync.RWMutex
	records []rental.Record
}

func NewMemory() *Memory {
	return &Memory{}
}

// Append adds a record at the end of the ledger.
func (m *Memory) Append(_ context.Context, rec rental.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, rec)
	return nil
}

// CloseFirstOpen sets the end timestamp on the first open record for the
// scooter, in ledger order.
func (m *Memory) CloseFirstOpen(_ context.Context, scooterID string, end time.Time) (rental.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.records {
		if m.records[i].ScooterID == scooterID && m.records[i].End == nil {
			e := end
			m.records[i].End = &e
			return m.records[i], nil
		}
	}
	return rental.Record{}, rental.ErrNoOpenRecord
}

// HasOpen reports whether any open record exists for the scooter.
func (m *Memory) HasOpen(_ context.Context, scooterID string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := range m.records {
		if m.records[i].ScooterID == scooterID && m.records[i].End == nil {
			return true, nil
		}
	}
	return false, nil
}

// All returns a copy of the ledger. End pointers are copied too, so callers
// cannot reach back into stored records.
func (m *Memory) All(_ context.Context) ([]rental.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]rental.Record, len(m.records))
	for i, rec := range m.records {
		if rec.End != nil {
			e := *rec.End
			rec.End = &e
		}
		out[i] = rec
	}
	return out, nil
}

// CloseAll closes every open record at asOf.
func (m *Memory) CloseAll(_ context.Context, asOf time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	closed := 0
	for i := range m.records {
		if m.records[i].End == nil {
			e := asOf
			m.records[i].End = &e
			closed++
		}
	}
	return closed, nil
}
