// Package datekey converts calendar dates to and from the canonical
// YYYY-MM-DD keys used by the completion ledger.
//
// Keys are derived from a date's local calendar components, never from
// UTC-shifted instants. Two distinct calendar days never collide, and the
// same calendar day always yields the same key regardless of time of day.
package datekey

import (
	"fmt"
	"time"
)

// Key returns the canonical key for t's local calendar day.
func Key(t time.Time) string {
	y, m, d := t.Date()
	return fmt.Sprintf("%04d-%02d-%02d", y, int(m), d)
}

// Parse is the inverse of Key. The returned time is anchored at local midday
// so that re-deriving day-of-week or formatting cannot be nudged into a
// neighboring day by timezone or DST rounding.
func Parse(key string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", key, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date key %q: %w", key, err)
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 12, 0, 0, 0, time.Local), nil
}

// WeekStart returns the Sunday at or before t, with the time of day zeroed.
func WeekStart(t time.Time) time.Time {
	y, m, d := t.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	return midnight.AddDate(0, 0, -int(midnight.Weekday()))
}

// MonthStart returns the first day of t's month, with the time of day zeroed.
func MonthStart(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

// AddDays moves t by n calendar days, preserving the time of day.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// DaysBetween counts calendar days from a through b inclusive.
// Returns 0 when b is an earlier calendar day than a.
func DaysBetween(a, b time.Time) int {
	start := midday(a)
	end := midday(b)
	if end.Before(start) {
		return 0
	}
	// Midday-to-midday spans are a whole number of days give or take DST
	// shifts, which never exceed a couple of hours; rounding absorbs them.
	return int(end.Sub(start).Round(24*time.Hour)/(24*time.Hour)) + 1
}

// SameDay reports whether a and b fall on the same local calendar day.
func SameDay(a, b time.Time) bool {
	return Key(a) == Key(b)
}

func midday(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 12, 0, 0, 0, t.Location())
}
