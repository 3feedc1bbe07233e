package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"shiftpay/internal/domain"
)

// Store implements ports.EntryStore on a local SQLite file. It backs
// the CLI, which keeps its data next to the user's config instead of
// in a server-side database.
type Store struct {
	db *sql.DB
}

// NewStore opens (and if needed creates) the database at dbPath and
// brings its schema up to date.
func NewStore(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := runMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{db: db}, nil
}

// UpsertEntries mirrors the MySQL store: one row per (day, start_time),
// re-imports update in place.
func (s *Store) UpsertEntries(ctx context.Context, entries []domain.ShiftEntry) error {
	if len(entries) == 0 {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	const q = `
INSERT INTO shift_entries (day, start_time, end_time, hourly_rate, note)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(day, start_time) DO UPDATE SET
  end_time=excluded.end_time,
  hourly_rate=excluded.hourly_rate,
  note=excluded.note;
`
	for _, e := range entries {
		if _, err := tx.ExecContext(ctx, q,
			e.Day.Format(domain.DayFormat), e.Start, e.End, e.HourlyRate, e.Note,
		); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

// ListEntries returns entries with a day in [from, to], ordered by day
// and start time.
func (s *Store) ListEntries(ctx context.Context, from, to time.Time) ([]domain.ShiftEntry, error) {
	const q = `
SELECT id, day, start_time, end_time, hourly_rate, note
FROM shift_entries
WHERE day BETWEEN ? AND ?
ORDER BY day, start_time;
`
	rows, err := s.db.QueryContext(ctx, q, from.Format(domain.DayFormat), to.Format(domain.DayFormat))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.ShiftEntry
	for rows.Next() {
		var (
			e   domain.ShiftEntry
			day string
		)
		if err := rows.Scan(&e.ID, &day, &e.Start, &e.End, &e.HourlyRate, &e.Note); err != nil {
			return nil, err
		}
		d, err := time.Parse(domain.DayFormat, day)
		if err != nil {
			return nil, fmt.Errorf("bad day %q in row %d: %w", day, e.ID, err)
		}
		e.Day = d
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
