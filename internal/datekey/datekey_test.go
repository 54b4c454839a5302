package datekey

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey_ZeroPadding(t *testing.T) {
	d := time.Date(2026, time.March, 7, 23, 59, 59, 0, time.Local)
	assert.Equal(t, "2026-03-07", Key(d))
}

func TestKey_IgnoresTimeOfDay(t *testing.T) {
	day := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.Local)
	night := time.Date(2026, time.September, 1, 23, 59, 0, 0, time.Local)
	assert.Equal(t, Key(day), Key(night))
}

func TestParse_RoundTrip(t *testing.T) {
	dates := []time.Time{
		time.Date(2026, time.January, 1, 0, 0, 0, 0, time.Local),
		time.Date(2026, time.June, 15, 18, 30, 0, 0, time.Local),
		time.Date(2024, time.February, 29, 4, 0, 0, 0, time.Local),
		time.Date(2026, time.December, 31, 23, 59, 59, 0, time.Local),
	}
	for _, d := range dates {
		parsed, err := Parse(Key(d))
		require.NoError(t, err)
		assert.True(t, SameDay(d, parsed), "round trip should stay on %s", Key(d))
	}
}

func TestParse_AnchorsAtMidday(t *testing.T) {
	parsed, err := Parse("2026-09-01")
	require.NoError(t, err)
	assert.Equal(t, 12, parsed.Hour())
	assert.Equal(t, time.Tuesday, parsed.Weekday())
}

func TestParse_Invalid(t *testing.T) {
	for _, key := range []string{"", "2026-9-1", "not-a-date", "2026-13-01", "20260901"} {
		_, err := Parse(key)
		assert.Error(t, err, "key %q should not parse", key)
	}
}

func TestWeekStart(t *testing.T) {
	// 2026-09-06 is a Sunday.
	sunday := time.Date(2026, time.September, 6, 0, 0, 0, 0, time.Local)
	for i := 0; i < 7; i++ {
		d := AddDays(sunday, i)
		ws := WeekStart(d)
		assert.Equal(t, Key(sunday), Key(ws), "week start of %s", Key(d))
		assert.Equal(t, 0, ws.Hour())
	}
}

func TestWeekStart_SundayIsItself(t *testing.T) {
	sunday := time.Date(2026, time.September, 6, 15, 45, 0, 0, time.Local)
	assert.Equal(t, "2026-09-06", Key(WeekStart(sunday)))
}

func TestMonthStart(t *testing.T) {
	d := time.Date(2026, time.September, 21, 8, 0, 0, 0, time.Local)
	assert.Equal(t, "2026-09-01", Key(MonthStart(d)))
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		days int
	}{
		{"same day", "2026-09-01", "2026-09-01", 1},
		{"ten day window", "2026-09-01", "2026-09-10", 10},
		{"across month", "2026-08-30", "2026-09-02", 4},
		{"across year", "2025-12-30", "2026-01-02", 4},
		{"reversed", "2026-09-10", "2026-09-01", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := Parse(tt.a)
			require.NoError(t, err)
			b, err := Parse(tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.days, DaysBetween(a, b))
		})
	}
}

func TestAddDays_BackwardScan(t *testing.T) {
	d, err := Parse("2026-03-01")
	require.NoError(t, err)
	assert.Equal(t, "2026-02-28", Key(AddDays(d, -1)))
	assert.Equal(t, "2026-02-01", Key(AddDays(d, -28)))
}
