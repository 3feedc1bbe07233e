package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"shiftpay/internal/adapter/csvexport"
	"shiftpay/internal/domain"
)

// HTTPServer returns a configured http.Server exposing the calculator
// and the stored-entry surfaces. Call ListenAndServe on the returned
// server in a goroutine and Shutdown it on exit.
func (a *App) HTTPServer(addr string) *http.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// /v1/pay?start=HH:MM&end=HH:MM&rate=N
	// Stateless compute; nothing is stored.
	mux.HandleFunc("/v1/pay", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		q := r.URL.Query()
		rate, err := strconv.ParseFloat(q.Get("rate"), 64)
		if err != nil || rate < 0 {
			writeError(w, http.StatusBadRequest, "bad_request", errors.New("rate must be a non-negative number"))
			return
		}
		summary, err := domain.ComputePay(q.Get("start"), q.Get("end"), rate)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, errorKind(err), err)
			return
		}
		writeJSON(w, http.StatusOK, summary)
	})

	mux.HandleFunc("/v1/entries", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			a.handleListEntries(w, r)
		case http.MethodPost:
			a.handleCreateEntry(w, r)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// /v1/report?month=YYYY-MM
	mux.HandleFunc("/v1/report", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		month := r.URL.Query().Get("month")
		if month == "" {
			writeError(w, http.StatusBadRequest, "bad_request", errors.New("month is required, expected YYYY-MM"))
			return
		}
		rep, err := a.MonthReport(r.Context(), month)
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", err)
			return
		}
		writeJSON(w, http.StatusOK, rep)
	})

	// /v1/export.csv?from=YYYY-MM-DD&to=YYYY-MM-DD
	mux.HandleFunc("/v1/export.csv", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		from, to, err := dayRange(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", err)
			return
		}
		rep, err := a.Report(r.Context(), from, to)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal", err)
			return
		}
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="shiftpay.csv"`)
		if err := csvexport.Write(w, rep.Shifts); err != nil {
			a.log.Error("csv export failed", slog.String("error", err.Error()))
		}
	})

	// /v1/import?from=YYYY-MM-DD&to=YYYY-MM-DD
	mux.HandleFunc("/v1/import", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		from, to, err := dayRange(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", err)
			return
		}
		if err := a.RunImport(r.Context(), from, to); err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, ErrImportNotConfigured) {
				status = http.StatusServiceUnavailable
			}
			writeError(w, status, "import_failed", err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"status": "ok",
			"from":   from.Format(domain.DayFormat),
			"to":     to.Format(domain.DayFormat),
		})
	})

	srv := &http.Server{Addr: addr, Handler: loggingMiddleware(a.log, mux)}
	a.log.Info("http server configured", slog.String("addr", addr))
	return srv
}

func (a *App) handleListEntries(w http.ResponseWriter, r *http.Request) {
	from, to, err := dayRange(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	rep, err := a.Report(r.Context(), from, to)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal", err)
		return
	}
	out := make([]entryPayload, 0, len(rep.Shifts))
	for _, s := range rep.Shifts {
		out = append(out, entryPayload{
			ID:         s.Entry.ID,
			Day:        s.Entry.Day.Format(domain.DayFormat),
			Start:      s.Entry.Start,
			End:        s.Entry.End,
			HourlyRate: s.Entry.HourlyRate,
			Note:       s.Entry.Note,
			Summary:    &s.Summary,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"entries": out,
		"skipped": rep.Skipped,
		"totals":  rep.Totals,
	})
}

func (a *App) handleCreateEntry(w http.ResponseWriter, r *http.Request) {
	var in entryPayload
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("invalid JSON body: %w", err))
		return
	}
	day, err := time.Parse(domain.DayFormat, in.Day)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", errors.New("day must be YYYY-MM-DD"))
		return
	}
	if in.HourlyRate < 0 {
		writeError(w, http.StatusBadRequest, "bad_request", errors.New("hourly_rate must be non-negative"))
		return
	}
	entry := domain.ShiftEntry{
		Day:        day,
		Start:      in.Start,
		End:        in.End,
		HourlyRate: in.HourlyRate,
		Note:       in.Note,
	}
	// Price the entry up front so the caller learns about a bad shift
	// now, but store it regardless; a degenerate shift is still a
	// record of what was punched.
	summary, payErr := entry.Pay()
	if err := a.store.UpsertEntries(r.Context(), []domain.ShiftEntry{entry}); err != nil {
		writeError(w, http.StatusInternalServerError, "internal", err)
		return
	}
	resp := map[string]any{"status": "ok"}
	if payErr != nil {
		resp["warning"] = payErr.Error()
		resp["kind"] = errorKind(payErr)
	} else {
		resp["summary"] = summary
	}
	writeJSON(w, http.StatusCreated, resp)
}

type entryPayload struct {
	ID         int64              `json:"id,omitempty"`
	Day        string             `json:"day"`
	Start      string             `json:"start"`
	End        string             `json:"end"`
	HourlyRate float64            `json:"hourly_rate"`
	Note       string             `json:"note,omitempty"`
	Summary    *domain.PaySummary `json:"summary,omitempty"`
}

// dayRange reads from/to query params as YYYY-MM-DD days. When both
// are absent it defaults to the current calendar month.
func dayRange(r *http.Request) (from, to time.Time, err error) {
	q := r.URL.Query()
	fromStr, toStr := q.Get("from"), q.Get("to")
	if fromStr == "" && toStr == "" {
		now := time.Now().UTC()
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		return first, first.AddDate(0, 1, -1), nil
	}
	from, err = time.Parse(domain.DayFormat, fromStr)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("from must be YYYY-MM-DD")
	}
	to, err = time.Parse(domain.DayFormat, toStr)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("to must be YYYY-MM-DD")
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, errors.New("to is before from")
	}
	return from, to, nil
}

// errorKind maps calculator failures to stable wire identifiers.
func errorKind(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidTimeFormat):
		return "invalid_time_format"
	case errors.Is(err, domain.ErrZeroOrNegativeDuration):
		return "zero_or_negative_duration"
	case errors.Is(err, domain.ErrNoWorkableTime):
		return "no_workable_time"
	}
	return "internal"
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, kind string, err error) {
	writeJSON(w, status, map[string]any{
		"status": "error",
		"kind":   kind,
		"error":  err.Error(),
	})
}

// loggingMiddleware provides basic request logging.
func loggingMiddleware(log *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Info("http request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote", r.RemoteAddr),
			slog.Duration("dur", time.Since(start)),
		)
	})
}
