package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedClock(t *testing.T) {
	start := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)
	c := NewFixedClock(start)

	assert.Equal(t, start, c.Now())
	assert.Equal(t, start, c.Now(), "Now must not advance the clock")

	c.Advance(3 * time.Hour)
	assert.Equal(t, start.Add(3*time.Hour), c.Now())

	c.AdvanceDays(2)
	assert.Equal(t, 3, c.Now().Day())

	c.Set(start)
	assert.Equal(t, start, c.Now())
}
