package engine

import (
	"context"
	"fmt"

	"github.com/roach88/ritual/internal/state"
)

// CheckMilestones compares the ritual's current streak against the configured
// thresholds and returns the thresholds that fire now.
//
// A threshold fires only when the streak exactly equals it, and at most once
// ever per ritual: the firing is recorded durably in the MarkerStore, so a
// streak that drops and later climbs back to the same value does not fire
// again. Streaks themselves are recomputed, never stored, which is why the
// fired state needs independent persistence.
func (e *Engine) CheckMilestones(ctx context.Context, name string) ([]int, error) {
	n := state.NormalizeName(name)
	streak := e.StreakNow(n)

	var fired []int
	for _, threshold := range e.milestones {
		if streak != threshold {
			continue
		}
		inserted, err := e.markers.MarkFired(ctx, n, threshold)
		if err != nil {
			return nil, fmt.Errorf("milestone marker: %w", err)
		}
		if inserted {
			e.log.Debug("milestone fired", "ritual", n, "threshold", threshold)
			fired = append(fired, threshold)
		}
	}
	return fired, nil
}

// Milestones returns the configured thresholds in ascending order.
func (e *Engine) Milestones() []int {
	out := make([]int, len(e.milestones))
	copy(out, e.milestones)
	return out
}
