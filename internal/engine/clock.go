package engine

import "time"

// Clock supplies the engine's notion of "now". Streaks, weekly summaries and
// milestone checks are all anchored to the clock's current day, so tests
// inject a fixed clock to pin "today" in place.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns the current local time.
func (SystemClock) Now() time.Time { return time.Now() }
