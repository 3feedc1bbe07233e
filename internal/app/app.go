package app

import (
	"context"
	"errors"
	"log/slog"
	"time"

	msql "shiftpay/internal/adapter/mysql"
	"shiftpay/internal/adapter/punch"
	"shiftpay/internal/config"
	"shiftpay/internal/migrate"
	"shiftpay/internal/ports"
	"shiftpay/internal/usecase"
)

// App wires adapters and use cases for the daemon.
type App struct {
	log      *slog.Logger
	store    ports.EntryStore
	importer *usecase.ImportUseCase
	reporter *usecase.ReportUseCase
}

func New(log *slog.Logger, cfg config.Config) (*App, error) {
	// Run migrations before opening the store for use.
	if err := migrate.Run(context.Background(), cfg.MySQL.DSN, log); err != nil {
		return nil, err
	}
	store, err := msql.NewStore(context.Background(), cfg.MySQL.DSN, log)
	if err != nil {
		return nil, err
	}

	var src ports.PunchSource
	if cfg.Punch.APIToken != "" {
		src = punch.NewClient(cfg.Punch.BaseURL, cfg.Punch.APIToken, log)
	}
	return NewFromParts(log, store, src), nil
}

// NewFromParts assembles an App from already-built dependencies.
// Tests use it to run the HTTP surface against fakes; src may be nil
// when no punch-clock is configured.
func NewFromParts(log *slog.Logger, store ports.EntryStore, src ports.PunchSource) *App {
	a := &App{
		log:      log,
		store:    store,
		reporter: &usecase.ReportUseCase{Log: log, Store: store},
	}
	if src != nil {
		a.importer = &usecase.ImportUseCase{Log: log, Punches: src, Store: store}
	}
	return a
}

// ErrImportNotConfigured is returned when no punch-clock token is set.
var ErrImportNotConfigured = errors.New("punch import not configured")

// RunImport pulls punched shifts for [from, to] into the store.
func (a *App) RunImport(ctx context.Context, from, to time.Time) error {
	if a.importer == nil {
		return ErrImportNotConfigured
	}
	return a.importer.Run(ctx, from, to)
}

// Report prices all stored entries with a day in [from, to].
func (a *App) Report(ctx context.Context, from, to time.Time) (usecase.Report, error) {
	return a.reporter.Range(ctx, from, to)
}

// MonthReport prices a YYYY-MM month.
func (a *App) MonthReport(ctx context.Context, month string) (usecase.Report, error) {
	return a.reporter.Month(ctx, month)
}
