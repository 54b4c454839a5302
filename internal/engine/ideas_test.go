package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/ritual/internal/state"
)

func TestAddIdea(t *testing.T) {
	te := newTestEngine(Options{})

	idea, err := te.AddIdea("  paint the fence ")
	require.NoError(t, err)
	assert.Equal(t, "paint the fence", idea.Text)
	assert.NotEmpty(t, idea.ID)
	assert.False(t, idea.Completed)
	assert.Equal(t, day0, idea.CreatedAt)
}

func TestAddIdea_UniqueIDs(t *testing.T) {
	te := newTestEngine(Options{})

	a, err := te.AddIdea("one")
	require.NoError(t, err)
	b, err := te.AddIdea("two")
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestAddIdea_EmptyText(t *testing.T) {
	te := newTestEngine(Options{})

	_, err := te.AddIdea("   ")
	var oe *OpError
	require.ErrorAs(t, err, &oe)
	assert.Equal(t, ErrCodeEmptyText, oe.Code)
}

func TestToggleIdea(t *testing.T) {
	te := newTestEngine(Options{})
	idea, err := te.AddIdea("one")
	require.NoError(t, err)

	done, err := te.ToggleIdea(idea.ID)
	require.NoError(t, err)
	assert.True(t, done)

	done, err = te.ToggleIdea(idea.ID)
	require.NoError(t, err)
	assert.False(t, done)
}

func TestToggleIdea_NotFound(t *testing.T) {
	te := newTestEngine(Options{})
	_, err := te.ToggleIdea("ghost")
	assert.True(t, IsNotFound(err))
}

func TestRemoveIdea(t *testing.T) {
	te := newTestEngine(Options{})
	idea, err := te.AddIdea("one")
	require.NoError(t, err)

	require.NoError(t, te.RemoveIdea(idea.ID))
	assert.Empty(t, te.Ideas())
	assert.True(t, IsNotFound(te.RemoveIdea(idea.ID)))
}

func TestIdeas_IncompleteFirstStableOtherwise(t *testing.T) {
	te := newTestEngine(Options{})
	a, err := te.AddIdea("a")
	require.NoError(t, err)
	_, err = te.AddIdea("b")
	require.NoError(t, err)
	c, err := te.AddIdea("c")
	require.NoError(t, err)

	_, err = te.ToggleIdea(a.ID)
	require.NoError(t, err)
	_, err = te.ToggleIdea(c.ID)
	require.NoError(t, err)

	texts := make([]string, 0, 3)
	for _, idea := range te.Ideas() {
		texts = append(texts, idea.Text)
	}
	assert.Equal(t, []string{"b", "a", "c"}, texts,
		"incomplete before completed, insertion order preserved within groups")
}

func TestIdeaAgeDays(t *testing.T) {
	created := time.Date(2026, time.August, 29, 8, 0, 0, 0, time.Local)
	idea := state.Idea{CreatedAt: created}

	assert.Equal(t, 3, IdeaAgeDays(idea, created.Add(72*time.Hour)))
	assert.Equal(t, 0, IdeaAgeDays(idea, created.Add(12*time.Hour)))
	assert.Equal(t, 0, IdeaAgeDays(idea, created.Add(-time.Hour)), "clock skew floors at zero")
}
