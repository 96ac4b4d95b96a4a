package filter

import (
	"errors"
	"testing"
	"time"
)

func TestIsSet(t *testing.T) {
	for v, want := range map[string]bool{
		"":         false,
		"all":      false,
		"ALL":      false,
		" ":        false,
		"positive": true,
		"Sales":    true,
	} {
		if got := IsSet(v); got != want {
			t.Errorf("IsSet(%q) = %v, want %v", v, got, want)
		}
	}
}

func TestLimit(t *testing.T) {
	tests := []struct{ in, want int }{
		{0, DefaultLimit},
		{-5, DefaultLimit},
		{20, 20},
		{5000, MaxLimit},
	}
	for _, tt := range tests {
		if got := Limit(tt.in); got != tt.want {
			t.Errorf("Limit(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestSince(t *testing.T) {
	now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		window  string
		want    time.Time
		wantOK  bool
		wantErr error
	}{
		{"", time.Time{}, false, nil},
		{"all", time.Time{}, false, nil},
		{"7d", now.AddDate(0, 0, -7), true, nil},
		{"30", now.AddDate(0, 0, -30), true, nil},
		{"90D", now.AddDate(0, 0, -90), true, nil},
		{"0d", time.Time{}, false, ErrInvalidTimeWindow},
		{"week", time.Time{}, false, ErrInvalidTimeWindow},
		{"3650d", now.AddDate(0, 0, -MaxDays), true, nil},
		{"3651d", time.Time{}, false, ErrInvalidTimeWindow},
		{"200000d", time.Time{}, false, ErrInvalidTimeWindow},
		{"1000000000000000000d", time.Time{}, false, ErrInvalidTimeWindow},
	}

	for _, tt := range tests {
		got, ok, err := Since(now, tt.window)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("Since(%q) err = %v, want %v", tt.window, err, tt.wantErr)
			continue
		}
		if ok != tt.wantOK || !got.Equal(tt.want) {
			t.Errorf("Since(%q) = %v, %v; want %v, %v", tt.window, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestDaysBounds(t *testing.T) {
	tests := []struct {
		window  string
		want    int
		wantErr error
	}{
		{"1d", 1, nil},
		{"3650", MaxDays, nil},
		{"3651d", 0, ErrInvalidTimeWindow},
		{"1000000000000000000d", 0, ErrInvalidTimeWindow},
		{"99999999999999999999999d", 0, ErrInvalidTimeWindow},
		{"-7d", 0, ErrInvalidTimeWindow},
	}

	for _, tt := range tests {
		got, err := Days(tt.window)
		if !errors.Is(err, tt.wantErr) || got != tt.want {
			t.Errorf("Days(%q) = %d, %v; want %d, %v", tt.window, got, err, tt.want, tt.wantErr)
		}
	}
}

func TestSinceNeverAfterNow(t *testing.T) {
	now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	for _, w := range []string{"1d", "365d", "3650d"} {
		got, ok, err := Since(now, w)
		if err != nil || !ok || !got.Before(now) {
			t.Errorf("Since(%q) = %v, %v, %v; want a bound before now", w, got, ok, err)
		}
	}
}

func TestStartOfDayAndDateKey(t *testing.T) {
	ts := time.Date(2026, 10, 15, 23, 30, 0, 0, time.FixedZone("ICT", 7*3600))

	if got := StartOfDay(ts); !got.Equal(time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("StartOfDay = %v", got)
	}
	if got := DateKey(ts); got != "2026-10-15" {
		t.Errorf("DateKey = %q", got)
	}
}
