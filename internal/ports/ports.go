package ports

import (
	"context"
	"time"

	"shiftpay/internal/domain"
)

// PunchSource fetches punched shifts from an external clock system.
type PunchSource interface {
	ListPunches(ctx context.Context, from, to time.Time) ([]domain.ShiftEntry, error)
}

// EntryStore persists shift entries keyed by calendar day. Both the
// MySQL store used by the daemon and the SQLite store used by the CLI
// implement it; Close stays off the interface to keep ports minimal.
type EntryStore interface {
	UpsertEntries(ctx context.Context, entries []domain.ShiftEntry) error
	ListEntries(ctx context.Context, from, to time.Time) ([]domain.ShiftEntry, error)
}
