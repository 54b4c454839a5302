package engine

import (
	"slices"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/roach88/ritual/internal/state"
)

// Ideas returns the backlog in display order: incomplete ideas first,
// otherwise preserving insertion order.
func (e *Engine) Ideas() []state.Idea {
	out := slices.Clone(e.doc.Ideas)
	sort.SliceStable(out, func(i, j int) bool {
		return !out[i].Completed && out[j].Completed
	})
	return out
}

// AddIdea appends a note to the backlog with a fresh UUIDv7 id. Fails with
// EMPTY_TEXT when the trimmed text is empty.
func (e *Engine) AddIdea(text string) (state.Idea, error) {
	trimmed := state.NormalizeText(text)
	if trimmed == "" {
		return state.Idea{}, newEmptyTextError()
	}

	idea := state.Idea{
		// UUIDv7 ids sort by creation time, which keeps raw blobs
		// readable when debugging.
		ID:        uuid.Must(uuid.NewV7()).String(),
		Text:      trimmed,
		CreatedAt: e.clock.Now(),
	}
	e.doc.Ideas = append(e.doc.Ideas, idea)
	if err := e.save(); err != nil {
		return state.Idea{}, err
	}
	e.log.Debug("idea added", "idea", idea.ID)
	return idea, nil
}

// ToggleIdea flips the completion flag and returns the resulting state.
// Fails with NOT_FOUND for an unknown id.
func (e *Engine) ToggleIdea(id string) (bool, error) {
	idx := e.findIdea(id)
	if idx < 0 {
		return false, newIdeaNotFoundError(id)
	}
	e.doc.Ideas[idx].Completed = !e.doc.Ideas[idx].Completed
	if err := e.save(); err != nil {
		return false, err
	}
	return e.doc.Ideas[idx].Completed, nil
}

// RemoveIdea deletes the idea. Fails with NOT_FOUND for an unknown id.
func (e *Engine) RemoveIdea(id string) error {
	idx := e.findIdea(id)
	if idx < 0 {
		return newIdeaNotFoundError(id)
	}
	e.doc.Ideas = slices.Delete(e.doc.Ideas, idx, idx+1)
	if err := e.save(); err != nil {
		return err
	}
	e.log.Debug("idea removed", "idea", id)
	return nil
}

// IdeaAgeDays returns whole days elapsed since the idea was created, floored
// at zero.
func IdeaAgeDays(idea state.Idea, now time.Time) int {
	days := int(now.Sub(idea.CreatedAt).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

func (e *Engine) findIdea(id string) int {
	return slices.IndexFunc(e.doc.Ideas, func(i state.Idea) bool {
		return i.ID == id
	})
}
