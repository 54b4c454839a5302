// Package store persists the aggregate document as a single JSON file.
//
// The document is loaded wholesale and saved wholesale; there are no partial
// writes. Saves go through a temp file and an atomic rename, so a load never
// observes a half-written blob. A malformed blob degrades to a fresh default
// state instead of failing: habit data is not mission-critical and
// availability wins over strict consistency.
package store

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/roach88/ritual/internal/state"
)

// DefaultRituals seeds a fresh state on first run.
var DefaultRituals = []string{"moving my body", "draw", "mascot"}

// ErrMalformedState marks a blob that could not be decoded. Load recovers
// from it; the sentinel exists so callers can detect the degradation.
var ErrMalformedState = errors.New("malformed persisted state")

// Gateway loads and saves the aggregate document at a fixed path.
type Gateway struct {
	path     string
	defaults []string
	log      *slog.Logger
}

// NewGateway creates a gateway for the given state file path. defaults are
// the ritual names seeded into a fresh state; nil means DefaultRituals.
func NewGateway(path string, defaults []string, log *slog.Logger) *Gateway {
	if defaults == nil {
		defaults = DefaultRituals
	}
	if log == nil {
		log = slog.Default()
	}
	return &Gateway{path: path, defaults: defaults, log: log}
}

// Path returns the state file location.
func (g *Gateway) Path() string { return g.path }

// Load reads the persisted document.
//
// A missing file yields a fresh default state, which is saved immediately so
// the first run leaves a blob behind. A malformed blob also yields a fresh
// default state but is NOT overwritten until the next mutation saves, leaving
// the corrupt file in place for manual recovery. now stamps AddedAt on
// default rituals and on rituals migrated from the legacy shape.
func (g *Gateway) Load(now time.Time) (*state.Document, error) {
	data, err := os.ReadFile(g.path)
	if errors.Is(err, os.ErrNotExist) {
		doc := g.defaultDocument(now)
		if err := g.Save(doc); err != nil {
			return nil, fmt.Errorf("seed fresh state: %w", err)
		}
		g.log.Debug("initialized fresh state", "path", g.path)
		return doc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read state: %w", err)
	}

	doc, err := state.Decode(data, now)
	if err != nil {
		g.log.Warn("state file is malformed, starting fresh",
			"path", g.path, "error", errors.Join(ErrMalformedState, err))
		return g.defaultDocument(now), nil
	}
	return doc, nil
}

// Save writes the document atomically: serialize, write to a temp file in
// the same directory, rename over the target.
func (g *Gateway) Save(doc *state.Document) error {
	data, err := state.Encode(doc)
	if err != nil {
		return fmt.Errorf("save state: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(g.path), 0o750); err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	tmp := g.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o640); err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	if err := os.Rename(tmp, g.path); err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}

func (g *Gateway) defaultDocument(now time.Time) *state.Document {
	doc := state.NewDocument()
	for _, name := range g.defaults {
		doc.Rituals = append(doc.Rituals, state.Ritual{
			Name:    state.NormalizeName(name),
			AddedAt: now,
		})
	}
	return doc
}
