package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.cue")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o640))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.cue"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `
dataDir:        "/tmp/rituals"
maxRituals:     3
milestones:     [5, 10]
defaultRituals: ["read"]
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/rituals", cfg.DataDir)
	assert.Equal(t, 3, cfg.MaxRituals)
	assert.Equal(t, []int{5, 10}, cfg.Milestones)
	assert.Equal(t, []string{"read"}, cfg.DefaultRituals)
}

func TestLoad_PartialConfigKeepsSchemaDefaults(t *testing.T) {
	path := writeConfig(t, `maxRituals: 10`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.MaxRituals)
	assert.Equal(t, []int{7, 30, 100, 365}, cfg.Milestones)
	assert.Equal(t, []string{"moving my body", "draw", "mascot"}, cfg.DefaultRituals)
}

func TestLoad_RejectsWrongTypes(t *testing.T) {
	for _, content := range []string{
		`maxRituals: "six"`,
		`maxRituals: 0`,
		`milestones: [7, -1]`,
	} {
		_, err := Load(writeConfig(t, content))
		assert.Error(t, err, "config %q should fail validation", content)
	}
}

func TestLoad_RejectsInvalidSyntax(t *testing.T) {
	_, err := Load(writeConfig(t, `maxRituals: {{`))
	assert.Error(t, err)
}

func TestDefault_MatchesSchemaDefaults(t *testing.T) {
	// An empty config file must decode to the same values Default returns,
	// apart from DataDir which is empty both ways.
	cfg, err := Load(writeConfig(t, ``))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
