package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"shiftpay/internal/app"
	"shiftpay/internal/config"
)

func main() {
	// Flags
	once := flag.Bool("once", false, "Run a single punch import and exit")
	interval := flag.Duration("interval", 0, "Import interval; 0 disables periodic imports")
	daily := flag.Bool("daily", false, "Import yesterday's punches at local midnight (uses SCHED_TZ)")
	from := flag.String("from", "", "Import window start, YYYY-MM-DD (default: today - 1 day)")
	to := flag.String("to", "", "Import window end, YYYY-MM-DD (default: today)")
	addr := flag.String("addr", "", "HTTP listen address (overrides HTTP_ADDR)")
	verbose := flag.Bool("v", false, "Enable verbose logging")
	flag.Parse()

	// Logger
	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if *addr != "" {
		cfg.HTTP.Addr = *addr
	}

	now := time.Now().UTC()
	toTime := parseDay(*to, now, logger)
	fromTime := parseDay(*from, toTime.AddDate(0, 0, -1), logger)

	// App
	application, err := app.New(logger, cfg)
	if err != nil {
		logger.Error("failed to initialize app", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Context with signal handling
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if *once {
		if err := application.RunImport(ctx, fromTime, toTime); err != nil {
			logger.Error("import failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("import completed")
		return
	}

	g, ctx := errgroup.WithContext(ctx)

	// HTTP API
	srv := application.HTTPServer(cfg.HTTP.Addr)
	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", cfg.HTTP.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	// Scheduled imports
	switch {
	case *daily:
		g.Go(func() error { return runDaily(ctx, application, cfg.Sched.Timezone, logger) })
	case *interval > 0:
		g.Go(func() error { return runPeriodic(ctx, application, *interval, logger) })
	}

	if err := g.Wait(); err != nil {
		logger.Error("daemon stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("shutting down")
}

// runDaily imports the previous local day shortly after each midnight.
func runDaily(ctx context.Context, application *app.App, tz string, log *slog.Logger) error {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Error("invalid SCHED_TZ", slog.String("tz", tz), slog.String("error", err.Error()))
		return err
	}
	log.Info("starting daily import at midnight", slog.String("tz", tz))
	for {
		next := nextMidnight(time.Now().In(loc))
		dur := time.Until(next)
		log.Info("sleeping until next midnight", slog.Time("next", next), slog.Duration("sleep", dur))
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(dur):
			end := next
			start := end.AddDate(0, 0, -1)
			if err := application.RunImport(ctx, start, end); err != nil {
				log.Error("daily import failed", slog.String("error", err.Error()))
			} else {
				log.Info("daily import completed", slog.Time("from", start), slog.Time("to", end))
			}
		}
	}
}

func runPeriodic(ctx context.Context, application *app.App, interval time.Duration, log *slog.Logger) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	log.Info("starting periodic import", slog.Duration("interval", interval))
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			end := time.Now().UTC()
			start := end.AddDate(0, 0, -1)
			if err := application.RunImport(ctx, start, end); err != nil {
				log.Error("periodic import failed", slog.String("error", err.Error()))
			}
		}
	}
}

// parseDay parses a YYYY-MM-DD boundary; empty returns defaultVal.
func parseDay(val string, defaultVal time.Time, log *slog.Logger) time.Time {
	if val == "" {
		return defaultVal
	}
	d, err := time.Parse("2006-01-02", val)
	if err != nil {
		log.Error("invalid day flag, expected YYYY-MM-DD", slog.String("value", val))
		os.Exit(1)
	}
	return d
}

// nextMidnight returns the first midnight after t in t's location.
func nextMidnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location()).Add(24 * time.Hour)
}
