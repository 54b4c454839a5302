package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/ritual/internal/datekey"
)

func TestCheckMilestones_FiresAtExactThreshold(t *testing.T) {
	ctx := context.Background()
	te := newTestEngine(Options{})
	complete(t, te, "draw", 0, 1, 2, 3, 4, 5, 6)
	require.Equal(t, 7, te.StreakNow("draw"))

	fired, err := te.CheckMilestones(ctx, "draw")
	require.NoError(t, err)
	assert.Equal(t, []int{7}, fired)
}

func TestCheckMilestones_NoFireBetweenThresholds(t *testing.T) {
	ctx := context.Background()
	te := newTestEngine(Options{})
	complete(t, te, "draw", 0, 1, 2)

	fired, err := te.CheckMilestones(ctx, "draw")
	require.NoError(t, err)
	assert.Empty(t, fired, "a streak of 3 matches no threshold")
}

func TestCheckMilestones_FiresAtMostOnceEver(t *testing.T) {
	ctx := context.Background()
	te := newTestEngine(Options{})
	complete(t, te, "draw", 0, 1, 2, 3, 4, 5, 6)

	fired, err := te.CheckMilestones(ctx, "draw")
	require.NoError(t, err)
	require.Equal(t, []int{7}, fired)

	// Streak drops below 7 (unmark two days), then climbs back to exactly 7.
	for _, ago := range []int{5, 6} {
		_, err := te.Toggle(datekey.Key(datekey.AddDays(day0, -ago)), "draw")
		require.NoError(t, err)
	}
	require.Equal(t, 5, te.StreakNow("draw"))
	complete(t, te, "draw", 5, 6)
	require.Equal(t, 7, te.StreakNow("draw"))

	fired, err = te.CheckMilestones(ctx, "draw")
	require.NoError(t, err)
	assert.Empty(t, fired, "the 7-day milestone must not fire a second time")
}

func TestCheckMilestones_PerRitual(t *testing.T) {
	ctx := context.Background()
	te := newTestEngine(Options{Milestones: []int{2}})
	complete(t, te, "draw", 0, 1)
	complete(t, te, "mascot", 0, 1)

	fired, err := te.CheckMilestones(ctx, "draw")
	require.NoError(t, err)
	assert.Equal(t, []int{2}, fired)

	fired, err = te.CheckMilestones(ctx, "mascot")
	require.NoError(t, err)
	assert.Equal(t, []int{2}, fired, "firing state is keyed per ritual")
}

func TestMilestones_DefaultThresholds(t *testing.T) {
	te := newTestEngine(Options{})
	assert.Equal(t, []int{7, 30, 100, 365}, te.Milestones())
}
