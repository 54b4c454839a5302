package engine

import (
	"slices"

	"github.com/roach88/ritual/internal/state"
)

// Toggle flips ledger membership for (dateKey, ritual name) and returns the
// resulting state: true when the toggle marked the ritual done, false when it
// unmarked it. Toggling twice always restores the original membership.
//
// dateKey must be a canonical datekey.Key value. The name does not have to
// exist in the ritual store; toggling an unknown name is accepted so a
// presentation layer racing a deletion cannot corrupt state.
func (e *Engine) Toggle(dateKey, name string) (bool, error) {
	n := state.NormalizeName(name)
	if n == "" {
		return false, newEmptyNameError()
	}

	entry := e.doc.Completions[dateKey]
	idx := slices.Index(entry, n)
	completed := idx < 0
	if completed {
		e.doc.Completions[dateKey] = append(entry, n)
	} else {
		entry = slices.Delete(entry, idx, idx+1)
		if len(entry) == 0 {
			// Empty entries are pruned so absence and emptiness stay
			// indistinguishable in the persisted blob.
			delete(e.doc.Completions, dateKey)
		} else {
			e.doc.Completions[dateKey] = entry
		}
	}

	if err := e.save(); err != nil {
		return false, err
	}
	e.log.Debug("completion toggled", "date", dateKey, "ritual", n, "completed", completed)
	return completed, nil
}

// CompletedOn returns the set of ritual names completed on the given day.
// Days with no entry yield an empty set.
func (e *Engine) CompletedOn(dateKey string) []string {
	return slices.Clone(e.doc.Completions[dateKey])
}

// IsPerfectDay reports whether every currently-defined ritual was completed
// on the given day. A day with zero rituals defined is never perfect.
func (e *Engine) IsPerfectDay(dateKey string) bool {
	count := len(e.doc.Rituals)
	return count > 0 && len(e.doc.Completions[dateKey]) == count
}

// renameAcrossLedger replaces oldName with newName in every day's set,
// leaving the rest of each set untouched.
func (e *Engine) renameAcrossLedger(oldName, newName string) {
	for day, entry := range e.doc.Completions {
		if idx := slices.Index(entry, oldName); idx >= 0 {
			entry[idx] = newName
			e.doc.Completions[day] = entry
		}
	}
}

// removeAcrossLedger deletes name from every day's set, pruning entries that
// become empty.
func (e *Engine) removeAcrossLedger(name string) {
	for day, entry := range e.doc.Completions {
		idx := slices.Index(entry, name)
		if idx < 0 {
			continue
		}
		entry = slices.Delete(entry, idx, idx+1)
		if len(entry) == 0 {
			delete(e.doc.Completions, day)
		} else {
			e.doc.Completions[day] = entry
		}
	}
}
