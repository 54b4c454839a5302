package engine

import (
	"context"
	"fmt"
	"slices"

	"github.com/roach88/ritual/internal/state"
)

// Rituals returns the ritual definitions in display order (insertion order).
func (e *Engine) Rituals() []state.Ritual {
	return slices.Clone(e.doc.Rituals)
}

// HasRitual reports whether the normalized name exists in the store.
func (e *Engine) HasRitual(name string) bool {
	return e.findRitual(state.NormalizeName(name)) >= 0
}

// AddRitual appends a new ritual, stamping AddedAt from the engine clock.
//
// Fails with EMPTY_NAME when the name normalizes to empty, DUPLICATE_RITUAL
// when the normalized name already exists, and CAPACITY_EXCEEDED when the
// store is at its configured maximum.
func (e *Engine) AddRitual(name string) (state.Ritual, error) {
	n := state.NormalizeName(name)
	if n == "" {
		return state.Ritual{}, newEmptyNameError()
	}
	if e.findRitual(n) >= 0 {
		return state.Ritual{}, newDuplicateError(n)
	}
	if len(e.doc.Rituals) >= e.maxRituals {
		return state.Ritual{}, newCapacityError(n, e.maxRituals)
	}

	ritual := state.Ritual{Name: n, AddedAt: e.clock.Now()}
	e.doc.Rituals = append(e.doc.Rituals, ritual)
	if err := e.save(); err != nil {
		return state.Ritual{}, err
	}
	e.log.Debug("ritual added", "ritual", n)
	return ritual, nil
}

// RenameRitual changes a ritual's identity and rewrites every ledger entry
// and milestone marker from the old name to the new one. The ledger rewrite
// and the store update land in the same saved snapshot; callers never observe
// one without the other.
func (e *Engine) RenameRitual(ctx context.Context, oldName, newName string) error {
	from := state.NormalizeName(oldName)
	to := state.NormalizeName(newName)
	if to == "" {
		return newEmptyNameError()
	}
	idx := e.findRitual(from)
	if idx < 0 {
		return newRitualNotFoundError(from)
	}
	if to == from {
		return nil
	}
	if e.findRitual(to) >= 0 {
		return newDuplicateError(to)
	}

	e.doc.Rituals[idx].Name = to
	e.renameAcrossLedger(from, to)
	if err := e.markers.RenameRitual(ctx, from, to); err != nil {
		return fmt.Errorf("rename markers: %w", err)
	}
	if err := e.save(); err != nil {
		return err
	}
	e.log.Debug("ritual renamed", "from", from, "to", to)
	return nil
}

// RemoveRitual deletes a ritual and cascades: every ledger entry drops the
// name and its milestone markers are pruned. Fails with NOT_FOUND when the
// ritual doesn't exist.
func (e *Engine) RemoveRitual(ctx context.Context, name string) error {
	n := state.NormalizeName(name)
	idx := e.findRitual(n)
	if idx < 0 {
		return newRitualNotFoundError(n)
	}

	e.doc.Rituals = slices.Delete(e.doc.Rituals, idx, idx+1)
	e.removeAcrossLedger(n)
	if err := e.markers.PruneRitual(ctx, n); err != nil {
		return fmt.Errorf("prune markers: %w", err)
	}
	if err := e.save(); err != nil {
		return err
	}
	e.log.Debug("ritual removed", "ritual", n)
	return nil
}

// findRitual returns the index of the normalized name, or -1.
func (e *Engine) findRitual(name string) int {
	return slices.IndexFunc(e.doc.Rituals, func(r state.Ritual) bool {
		return r.Name == name
	})
}
