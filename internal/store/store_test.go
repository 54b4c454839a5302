package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/ritual/internal/state"
)

var now = time.Date(2026, time.September, 1, 9, 0, 0, 0, time.UTC)

func newTestGateway(t *testing.T) *Gateway {
	t.Helper()
	return NewGateway(filepath.Join(t.TempDir(), "state.json"), nil, nil)
}

func TestLoad_MissingFileSeedsDefaults(t *testing.T) {
	g := newTestGateway(t)

	doc, err := g.Load(now)
	require.NoError(t, err)

	require.Len(t, doc.Rituals, 3)
	assert.Equal(t, "moving my body", doc.Rituals[0].Name)
	assert.Equal(t, "draw", doc.Rituals[1].Name)
	assert.Equal(t, "mascot", doc.Rituals[2].Name)
	assert.Equal(t, now, doc.Rituals[0].AddedAt)

	// First run leaves a blob behind.
	_, err = os.Stat(g.Path())
	assert.NoError(t, err)
}

func TestLoad_CustomDefaults(t *testing.T) {
	g := NewGateway(filepath.Join(t.TempDir(), "state.json"), []string{"Read "}, nil)

	doc, err := g.Load(now)
	require.NoError(t, err)
	require.Len(t, doc.Rituals, 1)
	assert.Equal(t, "read", doc.Rituals[0].Name, "defaults are normalized")
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	g := newTestGateway(t)

	doc := state.NewDocument()
	doc.Rituals = []state.Ritual{{Name: "draw", AddedAt: now}}
	doc.Completions["2026-08-30"] = []string{"draw"}
	doc.Ideas = []state.Idea{{ID: "idea-1", Text: "try gouache", CreatedAt: now}}

	require.NoError(t, g.Save(doc))

	got, err := g.Load(now.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, doc, got)
}

func TestSave_OverwritesAtomically(t *testing.T) {
	g := newTestGateway(t)

	first := state.NewDocument()
	first.Rituals = []state.Ritual{{Name: "draw", AddedAt: now}}
	require.NoError(t, g.Save(first))

	second := state.NewDocument()
	second.Rituals = []state.Ritual{{Name: "mascot", AddedAt: now}}
	require.NoError(t, g.Save(second))

	got, err := g.Load(now)
	require.NoError(t, err)
	assert.Equal(t, second, got)

	_, err = os.Stat(g.Path() + ".tmp")
	assert.True(t, os.IsNotExist(err), "temp file must not linger after save")
}

func TestLoad_LegacyShapeMigrates(t *testing.T) {
	g := newTestGateway(t)
	blob := `{"rituals": ["Draw", "mascot"], "completions": {"2026-08-30": ["draw"]}}`
	require.NoError(t, os.WriteFile(g.Path(), []byte(blob), 0o640))

	doc, err := g.Load(now)
	require.NoError(t, err)

	require.Len(t, doc.Rituals, 2)
	assert.Equal(t, "draw", doc.Rituals[0].Name)
	assert.Equal(t, now, doc.Rituals[0].AddedAt, "migration stamps a fresh AddedAt")
	assert.Equal(t, []string{"draw"}, doc.Completions["2026-08-30"])
}

func TestLoad_MalformedDegradesToDefaults(t *testing.T) {
	g := newTestGateway(t)
	require.NoError(t, os.WriteFile(g.Path(), []byte("{not json"), 0o640))

	doc, err := g.Load(now)
	require.NoError(t, err, "malformed state must not fail the load")
	assert.Len(t, doc.Rituals, 3, "degrades to fresh defaults")

	// The corrupt file is left in place for manual recovery.
	data, err := os.ReadFile(g.Path())
	require.NoError(t, err)
	assert.Equal(t, "{not json", string(data))
}
