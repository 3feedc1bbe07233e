package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"shiftpay/internal/ports"
)

// ImportUseCase coordinates fetching punched shifts and landing them
// in the entry store.
type ImportUseCase struct {
	Log     *slog.Logger
	Punches ports.PunchSource
	Store   ports.EntryStore
}

func (uc *ImportUseCase) Run(ctx context.Context, from, to time.Time) error {
	if uc.Punches == nil || uc.Store == nil {
		return errors.New("usecase not initialized: missing dependencies")
	}
	uc.Log.Info("fetching punched shifts", slog.Time("from", from), slog.Time("to", to))

	entries, err := uc.Punches.ListPunches(ctx, from, to)
	if err != nil {
		return err
	}
	uc.Log.Info("fetched punched shifts", slog.Int("count", len(entries)))

	if len(entries) == 0 {
		uc.Log.Info("no shifts to import")
		return nil
	}

	if err := uc.Store.UpsertEntries(ctx, entries); err != nil {
		return err
	}
	uc.Log.Info("import completed", slog.Int("count", len(entries)))
	return nil
}
