package mysql

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"shiftpay/internal/domain"
)

// Store implements ports.EntryStore on a MySQL table.
type Store struct {
	db  *sql.DB
	log *slog.Logger
}

// NewStore opens a MySQL connection using the provided DSN.
// Example DSN: user:pass@tcp(host:3306)/dbname?parseTime=true&multiStatements=true
func NewStore(ctx context.Context, dsn string, log *slog.Logger) (*Store, error) {
	if dsn == "" {
		return nil, errors.New("mysql: DSN is required")
	}
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}
	// Conservative pool defaults; can be adjusted via env later.
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	c, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(c); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db, log: log}, nil
}

// UpsertEntries writes entries keyed by (day, start_time). A re-import
// of the same window updates rows in place instead of duplicating.
func (s *Store) UpsertEntries(ctx context.Context, entries []domain.ShiftEntry) error {
	if len(entries) == 0 {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}
	const q = `
INSERT INTO shift_entries
  (day, start_time, end_time, hourly_rate, note)
VALUES
  (?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  end_time=VALUES(end_time),
  hourly_rate=VALUES(hourly_rate),
  note=VALUES(note);
`
	stmt, err := tx.PrepareContext(ctx, q)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, e := range entries {
		if _, err := stmt.ExecContext(
			ctx,
			e.Day.Format(domain.DayFormat),
			e.Start,
			e.End,
			e.HourlyRate,
			e.Note,
		); err != nil {
			tx.Rollback()
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	s.log.Info("mysql store upserted entries", slog.Int("count", len(entries)))
	return nil
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
		var e domain.ShiftEntry
		if err := rows.Scan(&e.ID, &e.Day, &e.Start, &e.End, &e.HourlyRate, &e.Note); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Close closes the underlying DB. Not part of ports.EntryStore to keep
// the interface minimal.
func (s *Store) Close() error { return s.db.Close() }
