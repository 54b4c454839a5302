package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/roach88/ritual/internal/config"
	"github.com/roach88/ritual/internal/datekey"
	"github.com/roach88/ritual/internal/engine"
	"github.com/roach88/ritual/internal/markers"
	"github.com/roach88/ritual/internal/store"
)

// App wires the engine and its stores for one command invocation.
// Commands open it, perform one operation, and close it.
type App struct {
	Config  config.Config
	Clock   engine.Clock
	Gateway *store.Gateway
	Markers *markers.Store
	Engine  *engine.Engine
}

// openApp resolves configuration, loads the aggregate state and opens the
// marker database.
//
// Resolution order for the data directory: --data flag, then the config
// file's dataDir, then the per-user config directory.
func openApp(opts *RootOptions) (*App, error) {
	cfgPath := opts.ConfigPath
	if cfgPath == "" {
		baseDir, err := defaultDataDir()
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "resolve config path", err)
		}
		cfgPath = filepath.Join(baseDir, "config.cue")
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "load config", err)
	}

	dataDir := opts.DataDir
	if dataDir == "" {
		dataDir = cfg.DataDir
	}
	if dataDir == "" {
		dataDir, err = defaultDataDir()
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "resolve data directory", err)
		}
	}

	clock := engine.SystemClock{}
	gateway := store.NewGateway(filepath.Join(dataDir, "state.json"), cfg.DefaultRituals, slog.Default())
	doc, err := gateway.Load(clock.Now())
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "load state", err)
	}

	mk, err := markers.Open(filepath.Join(dataDir, "milestones.db"))
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "open milestone markers", err)
	}

	eng := engine.New(doc, gateway, mk, engine.Options{
		MaxRituals: cfg.MaxRituals,
		Milestones: cfg.Milestones,
		Clock:      clock,
		Logger:     slog.Default(),
	})

	return &App{
		Config:  cfg,
		Clock:   clock,
		Gateway: gateway,
		Markers: mk,
		Engine:  eng,
	}, nil
}

// Close releases the marker database handle.
func (a *App) Close() error {
	return a.Markers.Close()
}

// resolveDateKey turns an --on flag value into a canonical date key.
// Empty means the clock's current day.
func (a *App) resolveDateKey(on string) (string, error) {
	if on == "" {
		return datekey.Key(a.Clock.Now()), nil
	}
	d, err := datekey.Parse(on)
	if err != nil {
		return "", WrapExitError(ExitCommandError, "invalid date", err)
	}
	return datekey.Key(d), nil
}

func defaultDataDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("no user config directory: %w", err)
	}
	return filepath.Join(base, "ritual"), nil
}

// todayKey is a convenience for commands anchored to the current day.
func (a *App) todayKey() string {
	return datekey.Key(a.Clock.Now())
}

// now returns the clock's current instant.
func (a *App) now() time.Time {
	return a.Clock.Now()
}
