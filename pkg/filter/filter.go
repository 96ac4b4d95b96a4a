// Package filter holds the option semantics shared by every listing query.
package filter

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

const (
	// All disables the filter it is given to.
	All = "all"

	DefaultLimit = 50
	MaxLimit     = 1000

	// MaxDays is the widest accepted time window, about ten years.
	MaxDays = 3650
)

var ErrInvalidTimeWindow = errors.New("invalid time window")

// IsSet reports whether v constrains its field.
func IsSet(v string) bool {
	v = strings.TrimSpace(v)
	return v != "" && !strings.EqualFold(v, All)
}

// Limit normalizes a requested row limit.
func Limit(n int) int {
	switch {
	case n <= 0:
		return DefaultLimit
	case n > MaxLimit:
		return MaxLimit
	}
	return n
}

// Days parses a time window token: "Nd" or a bare day count between 1 and
// MaxDays.
func Days(window string) (int, error) {
	w := strings.ToLower(strings.TrimSpace(window))
	w = strings.TrimSuffix(w, "d")

	n, err := strconv.Atoi(w)
	if err != nil || n <= 0 || n > MaxDays {
		return 0, ErrInvalidTimeWindow
	}
	return n, nil
}

// Since converts a time window into the lower bound of created_at. The
// returned bool is false when the window is empty or All.
func Since(now time.Time, window string) (time.Time, bool, error) {
	if !IsSet(window) {
		return time.Time{}, false, nil
	}
	n, err := Days(window)
	if err != nil {
		return time.Time{}, false, err
	}
	return now.AddDate(0, 0, -n), true, nil
}

// StartOfDay truncates t to midnight UTC.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DateKey formats t as the UTC calendar date used to bucket trends.
func DateKey(t time.Time) string {
	return t.UTC().Format(time.DateOnly)
}
