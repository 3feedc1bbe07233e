package domain

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name      string
		start     TimeOfDay
		end       TimeOfDay
		wantStart int
		wantEnd   int
	}{
		{name: "same day", start: TimeOfDay{9, 0}, end: TimeOfDay{17, 0}, wantStart: 540, wantEnd: 1020},
		{name: "crosses midnight", start: TimeOfDay{23, 0}, end: TimeOfDay{1, 0}, wantStart: 1380, wantEnd: 1500},
		{name: "end equals start rolls a full day", start: TimeOfDay{8, 0}, end: TimeOfDay{8, 0}, wantStart: 480, wantEnd: 480 + MinutesPerDay},
		{name: "one minute", start: TimeOfDay{12, 0}, end: TimeOfDay{12, 1}, wantStart: 720, wantEnd: 721},
		{name: "end just before start", start: TimeOfDay{12, 1}, end: TimeOfDay{12, 0}, wantStart: 721, wantEnd: 720 + MinutesPerDay},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.start, tt.end)
			if err != nil {
				t.Fatalf("Normalize(%v, %v) unexpected error: %v", tt.start, tt.end, err)
			}
			if got.Start != tt.wantStart || got.End != tt.wantEnd {
				t.Errorf("Normalize(%v, %v) = [%d, %d), want [%d, %d)",
					tt.start, tt.end, got.Start, got.End, tt.wantStart, tt.wantEnd)
			}
			if got.End <= got.Start {
				t.Errorf("interval invariant violated: end %d <= start %d", got.End, got.Start)
			}
		})
	}
}

func TestShiftIntervalDuration(t *testing.T) {
	si, err := Normalize(TimeOfDay{23, 0}, TimeOfDay{1, 0})
	if err != nil {
		t.Fatal(err)
	}
	if si.Duration() != 120 {
		t.Errorf("Duration() = %d, want 120", si.Duration())
	}
}
