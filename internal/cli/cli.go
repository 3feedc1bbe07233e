// Package cli implements the shiftpay command line tool. It keeps a
// local SQLite database and prices shifts with the same calculator
// core the daemon serves over HTTP.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"shiftpay/internal/adapter/sqlite"
	"shiftpay/internal/config"
	"shiftpay/internal/usecase"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	config *config.FileConfig
	store  *sqlite.Store
	root   *cobra.Command
	log    *slog.Logger
}

// NewApp creates the CLI application around the given config.
func NewApp(cfg *config.FileConfig) *App {
	a := &App{
		config: cfg,
		log:    slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})),
	}

	a.root = &cobra.Command{
		Use:   "shiftpay",
		Short: "Shift pay calculator and tracker",
		Long: `Shiftpay prices worked shifts: regular time up to the 15:30
daily cutoff, overtime after it at 1.5x, minus a fixed 30 minute
lunch break. Entries live in a local database; compute works
without one.`,
		SilenceUsage: true,
	}

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.computeCmd())
	a.root.AddCommand(a.addCmd())
	a.root.AddCommand(a.listCmd())
	a.root.AddCommand(a.reportCmd())
	a.root.AddCommand(a.exportCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "shiftpay %s (commit: %s)\n", Version, Commit)
		},
	}
}

// ensureStore opens the local database on first use.
func (a *App) ensureStore() error {
	if a.store != nil {
		return nil
	}
	store, err := sqlite.NewStore(a.config.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("opening database %s: %w", a.config.Storage.DBPath, err)
	}
	a.store = store
	return nil
}

func (a *App) reporter() *usecase.ReportUseCase {
	return &usecase.ReportUseCase{Log: a.log, Store: a.store}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases the database if it was opened.
func (a *App) Close() error {
	if a.store != nil {
		return a.store.Close()
	}
	return nil
}
