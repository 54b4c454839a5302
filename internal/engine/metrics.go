package engine

import (
	"math"
	"time"

	"github.com/roach88/ritual/internal/datekey"
	"github.com/roach88/ritual/internal/state"
)

// Streak counts consecutive completed days for the ritual, ending at asOf.
//
// If asOf itself is not completed, counting starts at the previous day: a
// ritual not yet done today does not break yesterday's streak, but does not
// count itself either. The walk stops at the first gap, so the cost is
// proportional to the streak length.
func (e *Engine) Streak(name string, asOf time.Time) int {
	n := state.NormalizeName(name)
	day := asOf
	if !e.completed(datekey.Key(day), n) {
		day = datekey.AddDays(day, -1)
	}

	streak := 0
	for e.completed(datekey.Key(day), n) {
		streak++
		day = datekey.AddDays(day, -1)
	}
	return streak
}

// StreakNow is Streak anchored at the engine clock's current day.
func (e *Engine) StreakNow(name string) int {
	return e.Streak(name, e.clock.Now())
}

// CompletionPercentage computes the ritual's completion rate over the
// inclusive window [windowStart, windowEnd], rounded to the nearest percent.
//
// The eligible window is clamped to the ritual's AddedAt day: days before the
// ritual existed count toward neither numerator nor denominator. A window
// with zero eligible days yields 0.
func (e *Engine) CompletionPercentage(name string, windowStart, windowEnd time.Time) int {
	n := state.NormalizeName(name)
	start := windowStart
	if idx := e.findRitual(n); idx >= 0 {
		added := e.doc.Rituals[idx].AddedAt
		if datekey.Key(added) > datekey.Key(start) {
			start = added
		}
	}

	total := datekey.DaysBetween(start, windowEnd)
	if total == 0 {
		return 0
	}

	done := 0
	day := start
	for i := 0; i < total; i++ {
		if e.completed(datekey.Key(day), n) {
			done++
		}
		day = datekey.AddDays(day, 1)
	}
	return int(math.Round(100 * float64(done) / float64(total)))
}

// WeeklySummary aggregates completion across one week, excluding days in the
// future relative to the engine clock.
type WeeklySummary struct {
	WeekStart   string `json:"week_start"`
	WeekEnd     string `json:"week_end"`
	DaysCounted int    `json:"days_counted"`
	PerfectDays int    `json:"perfect_days"`
	Completed   int    `json:"completed"`
	Possible    int    `json:"possible"`
	Percent     int    `json:"percent"`
}

// WeeklyCompletionSummary sums completed-count over ritual-count across the
// seven days of the week containing anchor. Future days contribute to neither
// numerator nor denominator.
func (e *Engine) WeeklyCompletionSummary(anchor time.Time) WeeklySummary {
	weekStart := datekey.WeekStart(anchor)
	todayKey := datekey.Key(e.clock.Now())

	summary := WeeklySummary{
		WeekStart: datekey.Key(weekStart),
		WeekEnd:   datekey.Key(datekey.AddDays(weekStart, 6)),
	}
	for i := 0; i < 7; i++ {
		key := datekey.Key(datekey.AddDays(weekStart, i))
		if key > todayKey {
			// Date keys sort chronologically, so a plain string
			// comparison detects future days.
			continue
		}
		summary.DaysCounted++
		summary.Completed += len(e.doc.Completions[key])
		summary.Possible += len(e.doc.Rituals)
		if e.IsPerfectDay(key) {
			summary.PerfectDays++
		}
	}
	if summary.Possible > 0 {
		summary.Percent = int(math.Round(100 * float64(summary.Completed) / float64(summary.Possible)))
	}
	return summary
}
