package harness

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/roach88/ritual/internal/datekey"
	"github.com/roach88/ritual/internal/engine"
	"github.com/roach88/ritual/internal/markers"
	"github.com/roach88/ritual/internal/state"
	"github.com/roach88/ritual/internal/store"
	"github.com/roach88/ritual/internal/testutil"
)

// defaultStart anchors scenarios that omit an explicit start date.
const defaultStart = "2026-09-01"

// TraceEvent records one observable outcome of a scenario step.
type TraceEvent struct {
	Type    string `json:"type"`
	Ritual  string `json:"ritual,omitempty"`
	To      string `json:"to,omitempty"`
	Text    string `json:"text,omitempty"`
	Date    string `json:"date,omitempty"`
	Days    int    `json:"days,omitempty"`
	Streak  int    `json:"streak,omitempty"`
	Fired   []int  `json:"fired,omitempty"`
	Perfect bool   `json:"perfect,omitempty"`
	Error   string `json:"error,omitempty"`
}

// RitualState is a ritual's standing at the end of a scenario.
type RitualState struct {
	Name   string `json:"name"`
	Streak int    `json:"streak"`
}

// FinalState captures the board after the last step ran.
type FinalState struct {
	Date    string        `json:"date"`
	Rituals []RitualState `json:"rituals"`
	Ideas   []string      `json:"ideas,omitempty"`
}

// Result holds the trace and any assertion failures from a scenario run.
type Result struct {
	Trace  []TraceEvent
	Final  FinalState
	Errors []string
}

// NewResult creates an empty result.
func NewResult() *Result {
	return &Result{}
}

func (r *Result) addEvent(ev TraceEvent) {
	r.Trace = append(r.Trace, ev)
}

// AddError records an assertion failure.
func (r *Result) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
}

// Passed reports whether the scenario ran without assertion failures.
func (r *Result) Passed() bool {
	return len(r.Errors) == 0
}

// Run executes a scenario and returns its result.
//
// Each scenario runs against a fresh state file in a temp directory and an
// in-memory milestone store, with a fixed clock starting at scenario.Start.
func Run(scenario *Scenario) (*Result, error) {
	startKey := scenario.Start
	if startKey == "" {
		startKey = defaultStart
	}
	start, err := datekey.Parse(startKey)
	if err != nil {
		return nil, fmt.Errorf("invalid start date: %w", err)
	}
	clock := testutil.NewFixedClock(start)

	dir, err := os.MkdirTemp("", "ritual-harness-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create scratch dir: %w", err)
	}
	defer os.RemoveAll(dir)

	gateway := store.NewGateway(filepath.Join(dir, "state.json"), nil, nil)

	mk, err := markers.Open(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to open milestone store: %w", err)
	}
	defer mk.Close()

	doc := state.NewDocument()
	for _, name := range scenario.Rituals {
		doc.Rituals = append(doc.Rituals, state.Ritual{
			Name:    state.NormalizeName(name),
			AddedAt: clock.Now(),
		})
	}

	eng := engine.New(doc, gateway, mk, engine.Options{
		MaxRituals: scenario.MaxRituals,
		Clock:      clock,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	ctx := context.Background()
	result := NewResult()
	for i, step := range scenario.Steps {
		if err := executeStep(ctx, eng, clock, step, result); err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
	}

	result.Final = captureFinal(eng, clock)
	return result, nil
}

func executeStep(ctx context.Context, eng *engine.Engine, clock *testutil.FixedClock, step Step, result *Result) error {
	switch {
	case step.Add != "":
		_, err := eng.AddRitual(step.Add)
		return record(result, step, TraceEvent{Type: "add", Ritual: state.NormalizeName(step.Add)}, err)

	case step.Rename != nil:
		err := eng.RenameRitual(ctx, step.Rename.From, step.Rename.To)
		ev := TraceEvent{
			Type:   "rename",
			Ritual: state.NormalizeName(step.Rename.From),
			To:     state.NormalizeName(step.Rename.To),
		}
		return record(result, step, ev, err)

	case step.Remove != "":
		err := eng.RemoveRitual(ctx, step.Remove)
		return record(result, step, TraceEvent{Type: "remove", Ritual: state.NormalizeName(step.Remove)}, err)

	case step.Done != "":
		key := step.On
		if key == "" {
			key = datekey.Key(clock.Now())
		}
		name := state.NormalizeName(step.Done)
		completed, err := eng.Toggle(key, name)
		if err != nil {
			return record(result, step, TraceEvent{Type: "done", Ritual: name, Date: key}, err)
		}
		ev := TraceEvent{Type: "undone", Ritual: name, Date: key}
		if completed {
			ev.Type = "done"
			fired, err := eng.CheckMilestones(ctx, name)
			if err != nil {
				return fmt.Errorf("milestone check for %q: %w", name, err)
			}
			ev.Fired = fired
		}
		ev.Streak = eng.StreakNow(name)
		ev.Perfect = eng.IsPerfectDay(key)
		return record(result, step, ev, nil)

	case step.Idea != "":
		_, err := eng.AddIdea(step.Idea)
		return record(result, step, TraceEvent{Type: "idea", Text: state.NormalizeText(step.Idea)}, err)

	case step.Advance > 0:
		clock.AdvanceDays(step.Advance)
		result.addEvent(TraceEvent{Type: "advance", Date: datekey.Key(clock.Now()), Days: step.Advance})
		return nil
	}
	return fmt.Errorf("step has no action")
}

// record resolves a step's outcome against its expect_error clause.
// Unexpected errors abort the run; expected ones become trace events.
func record(result *Result, step Step, ev TraceEvent, err error) error {
	if err != nil {
		if step.ExpectError == "" {
			return err
		}
		code := errCode(err)
		ev.Error = code
		result.addEvent(ev)
		if code != step.ExpectError {
			result.AddError(fmt.Sprintf("expected error %s, got %s", step.ExpectError, code))
		}
		return nil
	}
	if step.ExpectError != "" {
		result.AddError(fmt.Sprintf("expected error %s, step succeeded", step.ExpectError))
	}
	result.addEvent(ev)
	return nil
}

func errCode(err error) string {
	var opErr *engine.OpError
	if errors.As(err, &opErr) {
		return string(opErr.Code)
	}
	return err.Error()
}

func captureFinal(eng *engine.Engine, clock *testutil.FixedClock) FinalState {
	final := FinalState{
		Date:    datekey.Key(clock.Now()),
		Rituals: []RitualState{},
	}
	for _, r := range eng.Rituals() {
		final.Rituals = append(final.Rituals, RitualState{
			Name:   r.Name,
			Streak: eng.StreakNow(r.Name),
		})
	}
	for _, idea := range eng.Ideas() {
		final.Ideas = append(final.Ideas, idea.Text)
	}
	return final
}
