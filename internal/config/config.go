// Package config loads the CLI configuration from an optional CUE file,
// validated against an embedded schema.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

//go:embed schema.cue
var schemaCUE string

// Config holds everything the CLI wires into the engine and stores.
type Config struct {
	DataDir        string   `json:"dataDir"`
	MaxRituals     int      `json:"maxRituals"`
	Milestones     []int    `json:"milestones"`
	DefaultRituals []string `json:"defaultRituals"`
}

// Default returns the configuration used when no config file exists.
// Values mirror the defaults in schema.cue.
func Default() Config {
	return Config{
		MaxRituals:     6,
		Milestones:     []int{7, 30, 100, 365},
		DefaultRituals: []string{"moving my body", "draw", "mascot"},
	}
}

// Load reads and validates a CUE config file. The file is unified with the
// embedded schema: missing fields take schema defaults, type mismatches and
// unknown constraints fail. A missing file yields Default().
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return Config{}, fmt.Errorf("compile config schema: %w", err)
	}

	value := ctx.CompileBytes(data, cue.Filename(path))
	if err := value.Err(); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	unified := schema.Unify(value)
	if err := unified.Validate(); err != nil {
		return Config{}, fmt.Errorf("validate config %s: %w", path, err)
	}

	var cfg Config
	if err := unified.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config %s: %w", path, err)
	}
	return cfg, nil
}
