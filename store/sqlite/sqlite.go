/*
Package sqlite provides a SQLite-backed implementation of rental.Store.

PURPOSE:
  A durable rental ledger with the same semantics as the in-memory store:
  insertion order is ledger order (rowid), records are append-only, and the
  only mutation ever applied is setting ended_at exactly once.

SCHEMA:
  rentals(id, scooter_id, price_per_minute, started_at, ended_at)
  - price_per_minute stored as TEXT to keep decimal exactness
  - timestamps stored as RFC3339 text in UTC
  - ended_at NULL = open record

CONCURRENCY:
  Uses sync.Mutex around writes; SQLite is opened in WAL mode so readers
  don't block.

USAGE:
  st, err := sqlite.New("./rentals.db")  // or ":memory:"
  defer st.Close()
  ledger := rental.NewLedger(st)

SEE ALSO:
  - rental/store.go: interface definition
  - rental/store/memory.go: in-memory implementation
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/bluescooters/rental-engine/rental"
)

// Store implements rental.Store using SQLite.
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

// New opens (or creates) the database at dbPath. Use ":memory:" for an
// in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS rentals (
		id TEXT PRIMARY KEY,
		scooter_id TEXT NOT NULL,
		price_per_minute TEXT NOT NULL,
		started_at TEXT NOT NULL,
		ended_at TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_rentals_scooter_open ON rentals(scooter_id, ended_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// rental.Store IMPLEMENTATION
// =============================================================================

func (s *Store) Append(ctx context.Context, rec rental.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO rentals (id, scooter_id, price_per_minute, started_at, ended_at)
		 VALUES (?, ?, ?, ?, NULL)`,
		rec.ID, rec.ScooterID, rec.PricePerMinute.String(), formatTime(rec.Start))
	return err
}

func (s *Store) CloseFirstOpen(ctx context.Context, scooterID string, end time.Time) (rental.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row := s.db.QueryRowContext(ctx,
		`SELECT id, scooter_id, price_per_minute, started_at
		 FROM rentals
		 WHERE scooter_id = ? AND ended_at IS NULL
		 ORDER BY rowid LIMIT 1`,
		scooterID)

	var rec rental.Record
	var rate, started string
	if err := row.Scan(&rec.ID, &rec.ScooterID, &rate, &started); err != nil {
		if err == sql.ErrNoRows {
			return rental.Record{}, rental.ErrNoOpenRecord
		}
		return rental.Record{}, err
	}

	var err error
	if rec.PricePerMinute, err = decimal.NewFromString(rate); err != nil {
		return rental.Record{}, fmt.Errorf("corrupt price for record %s: %w", rec.ID, err)
	}
	if rec.Start, err = parseTime(started); err != nil {
		return rental.Record{}, fmt.Errorf("corrupt start for record %s: %w", rec.ID, err)
	}

	if _, err := s.db.ExecContext(ctx,
		`UPDATE rentals SET ended_at = ? WHERE id = ?`,
		formatTime(end), rec.ID); err != nil {
		return rental.Record{}, err
	}

	e := end
	rec.End = &e
	return rec, nil
}

func (s *Store) HasOpen(ctx context.Context, scooterID string) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM rentals WHERE scooter_id = ? AND ended_at IS NULL`,
		scooterID).Scan(&n)
	return n > 0, err
}

func (s *Store) All(ctx context.Context) ([]rental.Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, scooter_id, price_per_minute, started_at, ended_at
		 FROM rentals ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []rental.Record
	for rows.Next() {
		var rec rental.Record
		var rate, started string
		var ended sql.NullString
		if err := rows.Scan(&rec.ID, &rec.ScooterID, &rate, &started, &ended); err != nil {
			return nil, err
		}
		if rec.PricePerMinute, err = decimal.NewFromString(rate); err != nil {
			return nil, fmt.Errorf("corrupt price for record %s: %w", rec.ID, err)
		}
		if rec.Start, err = parseTime(started); err != nil {
			return nil, fmt.Errorf("corrupt start for record %s: %w", rec.ID, err)
		}
		if ended.Valid {
			e, err := parseTime(ended.String)
			if err != nil {
				return nil, fmt.Errorf("corrupt end for record %s: %w", rec.ID, err)
			}
			rec.End = &e
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (s *Store) CloseAll(ctx context.Context, asOf time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx,
		`UPDATE rentals SET ended_at = ? WHERE ended_at IS NULL`,
		formatTime(asOf))
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}

// =============================================================================
// TIME ENCODING
// =============================================================================

const timeLayout = time.RFC3339Nano

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(timeLayout, s)
}
