package punch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"shiftpay/internal/domain"
)

// Client implements ports.PunchSource against a punch-clock HTTP API.
// The API returns raw clock strings; they are stored as-is and only
// validated when an entry is priced.
type Client struct {
	baseURL  string
	apiToken string
	http     *http.Client
	log      *slog.Logger
}

func NewClient(baseURL, apiToken string, log *slog.Logger) *Client {
	return &Client{
		baseURL:  baseURL,
		apiToken: apiToken,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: log,
	}
}

// ListPunches fetches punches whose day falls in [from, to].
// GET /api/v1/punches?from=YYYY-MM-DD&to=YYYY-MM-DD
func (c *Client) ListPunches(ctx context.Context, from, to time.Time) ([]domain.ShiftEntry, error) {
	if c.apiToken == "" {
		return nil, errors.New("punch: missing api token")
	}
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, err
	}
	u.Path = "/api/v1/punches"
	q := u.Query()
	q.Set("from", from.Format(domain.DayFormat))
	q.Set("to", to.Format(domain.DayFormat))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("punch: unexpected status %d: %s", resp.StatusCode, string(body))
	}

	var raw []rawPunch
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, err
	}

	out := make([]domain.ShiftEntry, 0, len(raw))
	for _, r := range raw {
		day, err := time.Parse(domain.DayFormat, r.Day)
		if err != nil {
			return nil, fmt.Errorf("punch: bad day %q: %w", r.Day, err)
		}
		out = append(out, domain.ShiftEntry{
			Day:        day,
			Start:      r.ClockIn,
			End:        r.ClockOut,
			HourlyRate: r.HourlyRate,
			Note:       r.Note,
		})
	}
	c.log.Debug("punch api returned entries", slog.Int("count", len(out)))
	return out, nil
}

// rawPunch mirrors the punch-clock API JSON.
type rawPunch struct {
	Day        string  `json:"day"`
	ClockIn    string  `json:"clock_in"`
	ClockOut   string  `json:"clock_out"`
	HourlyRate float64 `json:"hourly_rate"`
	Note       string  `json:"note"`
}
