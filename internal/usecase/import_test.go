package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"shiftpay/internal/domain"
)

type fakePunches struct {
	entries []domain.ShiftEntry
	err     error
}

func (f fakePunches) ListPunches(_ context.Context, _, _ time.Time) ([]domain.ShiftEntry, error) {
	return f.entries, f.err
}

func TestImportRun(t *testing.T) {
	store := &fakeStore{}
	uc := &ImportUseCase{
		Log: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Punches: fakePunches{entries: []domain.ShiftEntry{
			{Day: day("2025-08-04"), Start: "08:00", End: "16:30", HourlyRate: 18},
			{Day: day("2025-08-05"), Start: "08:00", End: "16:00", HourlyRate: 18},
		}},
		Store: store,
	}

	if err := uc.Run(context.Background(), day("2025-08-01"), day("2025-08-31")); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(store.entries) != 2 {
		t.Errorf("stored %d entries, want 2", len(store.entries))
	}
}

func TestImportRunEmpty(t *testing.T) {
	store := &fakeStore{}
	uc := &ImportUseCase{
		Log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		Punches: fakePunches{},
		Store:   store,
	}
	if err := uc.Run(context.Background(), day("2025-08-01"), day("2025-08-31")); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(store.entries) != 0 {
		t.Errorf("stored %d entries, want 0", len(store.entries))
	}
}

func TestImportRunSourceError(t *testing.T) {
	wantErr := errors.New("punch api down")
	uc := &ImportUseCase{
		Log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		Punches: fakePunches{err: wantErr},
		Store:   &fakeStore{},
	}
	if err := uc.Run(context.Background(), day("2025-08-01"), day("2025-08-31")); !errors.Is(err, wantErr) {
		t.Errorf("Run error = %v, want %v", err, wantErr)
	}
}

func TestImportRunMissingDeps(t *testing.T) {
	uc := &ImportUseCase{Log: slog.New(slog.NewTextHandler(io.Discard, nil))}
	if err := uc.Run(context.Background(), time.Now(), time.Now()); err == nil {
		t.Error("expected error for missing dependencies")
	}
}
