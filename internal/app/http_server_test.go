package app

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"shiftpay/internal/domain"
)

type memStore struct {
	entries []domain.ShiftEntry
}

func (m *memStore) UpsertEntries(_ context.Context, entries []domain.ShiftEntry) error {
	m.entries = append(m.entries, entries...)
	return nil
}

func (m *memStore) ListEntries(_ context.Context, from, to time.Time) ([]domain.ShiftEntry, error) {
	var out []domain.ShiftEntry
	for _, e := range m.entries {
		if e.Day.Before(from) || e.Day.After(to) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func newTestServer(t *testing.T, store *memStore) *httptest.Server {
	t.Helper()
	a := NewFromParts(slog.New(slog.NewTextHandler(io.Discard, nil)), store, nil)
	srv := httptest.NewServer(a.HTTPServer(":0").Handler)
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string, wantStatus int) map[string]any {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != wantStatus {
		t.Fatalf("GET %s status = %d, want %d", url, resp.StatusCode, wantStatus)
	}
	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	return body
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t, &memStore{})
	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}
}

func TestPayEndpoint(t *testing.T) {
	srv := newTestServer(t, &memStore{})

	body := getJSON(t, srv.URL+"/v1/pay?start=14:00&end=17:00&rate=20", http.StatusOK)
	if body["regular_minutes"].(float64) != 60 || body["overtime_minutes"].(float64) != 90 {
		t.Errorf("unexpected summary: %v", body)
	}
	if body["total_pay"].(float64) != 65 {
		t.Errorf("total_pay = %v, want 65", body["total_pay"])
	}
}

func TestPayEndpointErrors(t *testing.T) {
	srv := newTestServer(t, &memStore{})

	tests := []struct {
		name     string
		query    string
		status   int
		wantKind string
	}{
		{name: "bad time", query: "start=9am&end=17:00&rate=20", status: http.StatusUnprocessableEntity, wantKind: "invalid_time_format"},
		{name: "shift eaten by lunch", query: "start=09:00&end=09:15&rate=20", status: http.StatusUnprocessableEntity, wantKind: "no_workable_time"},
		{name: "missing rate", query: "start=09:00&end=17:00", status: http.StatusBadRequest, wantKind: "bad_request"},
		{name: "negative rate", query: "start=09:00&end=17:00&rate=-4", status: http.StatusBadRequest, wantKind: "bad_request"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := getJSON(t, srv.URL+"/v1/pay?"+tt.query, tt.status)
			if body["kind"] != tt.wantKind {
				t.Errorf("kind = %v, want %v", body["kind"], tt.wantKind)
			}
		})
	}
}

func TestCreateAndListEntries(t *testing.T) {
	store := &memStore{}
	srv := newTestServer(t, store)

	payload := `{"day":"2025-08-05","start":"14:00","end":"17:00","hourly_rate":20}`
	resp, err := http.Post(srv.URL+"/v1/entries", "application/json", strings.NewReader(payload))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("POST status = %d", resp.StatusCode)
	}
	if len(store.entries) != 1 {
		t.Fatalf("stored %d entries", len(store.entries))
	}

	body := getJSON(t, srv.URL+"/v1/entries?from=2025-08-01&to=2025-08-31", http.StatusOK)
	entries := body["entries"].([]any)
	if len(entries) != 1 {
		t.Fatalf("listed %d entries", len(entries))
	}
	totals := body["totals"].(map[string]any)
	if totals["total_pay"].(float64) != 65 {
		t.Errorf("totals = %v", totals)
	}
}

func TestCreateEntryWarnsOnDegenerateShift(t *testing.T) {
	store := &memStore{}
	srv := newTestServer(t, store)

	payload := `{"day":"2025-08-05","start":"09:00","end":"09:15","hourly_rate":20}`
	resp, err := http.Post(srv.URL+"/v1/entries", "application/json", strings.NewReader(payload))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("POST status = %d", resp.StatusCode)
	}
	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body["kind"] != "no_workable_time" {
		t.Errorf("kind = %v", body["kind"])
	}
	// Stored anyway; reports skip it.
	if len(store.entries) != 1 {
		t.Errorf("stored %d entries", len(store.entries))
	}
}

func TestMonthReportEndpoint(t *testing.T) {
	day, _ := time.Parse(domain.DayFormat, "2025-08-05")
	store := &memStore{entries: []domain.ShiftEntry{
		{ID: 1, Day: day, Start: "09:00", End: "15:30", HourlyRate: 10},
	}}
	srv := newTestServer(t, store)

	body := getJSON(t, srv.URL+"/v1/report?month=2025-08", http.StatusOK)
	totals := body["totals"].(map[string]any)
	if totals["regular_hours"].(float64) != 6 {
		t.Errorf("totals = %v", totals)
	}

	getJSON(t, srv.URL+"/v1/report", http.StatusBadRequest)
	getJSON(t, srv.URL+"/v1/report?month=August", http.StatusBadRequest)
}

func TestExportCSVEndpoint(t *testing.T) {
	day, _ := time.Parse(domain.DayFormat, "2025-08-05")
	store := &memStore{entries: []domain.ShiftEntry{
		{ID: 1, Day: day, Start: "14:00", End: "17:00", HourlyRate: 20},
	}}
	srv := newTestServer(t, store)

	resp, err := http.Get(srv.URL + "/v1/export.csv?from=2025-08-01&to=2025-08-31")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("Content-Type = %q", ct)
	}
	records, err := csv.NewReader(resp.Body).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Errorf("got %d CSV records, want 2", len(records))
	}
}

func TestImportEndpointUnconfigured(t *testing.T) {
	srv := newTestServer(t, &memStore{})

	resp, err := http.Post(srv.URL+"/v1/import?from=2025-08-01&to=2025-08-31", "application/json", nil)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", resp.StatusCode)
	}
}
