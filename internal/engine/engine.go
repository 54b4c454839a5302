package engine

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/roach88/ritual/internal/state"
)

// DefaultMaxRituals caps the ritual store when no explicit limit is
// configured. The cap is a hard invariant: adds beyond it are rejected, not
// silently dropped.
const DefaultMaxRituals = 6

// DefaultMilestones are the streak thresholds that fire a one-time milestone.
var DefaultMilestones = []int{7, 30, 100, 365}

// Saver persists the aggregate document. The engine calls it after every
// successful mutation with the full, consistent in-memory snapshot.
type Saver interface {
	Save(doc *state.Document) error
}

// MarkerStore records milestone firings durably, outside the aggregate
// document. A marker, once written, is never cleared by streak changes; it is
// only re-keyed on rename and pruned on ritual deletion.
type MarkerStore interface {
	// MarkFired records that the ritual reached the threshold. Returns
	// true iff this call inserted the marker, i.e. the milestone had not
	// fired before.
	MarkFired(ctx context.Context, ritual string, threshold int) (bool, error)

	// RenameRitual re-keys all markers from oldName to newName.
	RenameRitual(ctx context.Context, oldName, newName string) error

	// PruneRitual deletes all markers for the ritual.
	PruneRitual(ctx context.Context, ritual string) error
}

// Options configures an Engine. Zero values fall back to defaults.
type Options struct {
	MaxRituals int
	Milestones []int
	Clock      Clock
	Logger     *slog.Logger
}

// Engine owns the aggregate document and exposes every mutation and query
// the presentation layer is allowed to perform.
type Engine struct {
	doc        *state.Document
	store      Saver
	markers    MarkerStore
	maxRituals int
	milestones []int
	clock      Clock
	log        *slog.Logger
}

// New creates an engine over an already-loaded document.
func New(doc *state.Document, store Saver, markers MarkerStore, opts Options) *Engine {
	if doc.Completions == nil {
		doc.Completions = map[string][]string{}
	}
	e := &Engine{
		doc:        doc,
		store:      store,
		markers:    markers,
		maxRituals: opts.MaxRituals,
		milestones: opts.Milestones,
		clock:      opts.Clock,
		log:        opts.Logger,
	}
	if e.maxRituals <= 0 {
		e.maxRituals = DefaultMaxRituals
	}
	if len(e.milestones) == 0 {
		e.milestones = DefaultMilestones
	}
	if e.clock == nil {
		e.clock = SystemClock{}
	}
	if e.log == nil {
		e.log = slog.Default()
	}
	return e
}

// Document returns the engine's aggregate document. Callers must treat it as
// read-only; all mutation goes through engine operations.
func (e *Engine) Document() *state.Document {
	return e.doc
}

// save persists the current snapshot. Called at the end of every mutation.
func (e *Engine) save() error {
	if err := e.store.Save(e.doc); err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}

// completed reports ledger membership for (day, ritual).
func (e *Engine) completed(dateKey, name string) bool {
	return slices.Contains(e.doc.Completions[dateKey], name)
}
