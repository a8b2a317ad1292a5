package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/nybblesio/ckong/internal/config"
	"github.com/nybblesio/ckong/internal/machine"
	"github.com/nybblesio/ckong/internal/statsview"
	"github.com/nybblesio/ckong/internal/storage"
	"github.com/nybblesio/ckong/internal/tilemap"
)

// app holds what every command needs: the resolved configuration and the
// root logger.
type app struct {
	cfg     config.Config
	paths   config.PathsConfig
	dataDir string
	log     *log.Logger
	logFile io.Closer

	stopStats func()
}

// setup loads the configuration, creates the data directory and opens the
// log file. The terminal belongs to the TUI, so logs never go to stderr.
func setup(preset string) (*app, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	switch p := config.DifficultyPreset(preset); p {
	case "":
	case config.DifficultyEasy, config.DifficultyNormal, config.DifficultyHard, config.DifficultyFixed:
		config.ApplyDifficultyPreset(&cfg, p)
	default:
		return nil, fmt.Errorf("unknown difficulty %q (easy, normal, hard, fixed)", preset)
	}
	if flagFPS > 0 {
		cfg.Render.FPS = flagFPS
	}

	dataDir := flagDataDir
	if dataDir == "" {
		dataDir = config.DataDir()
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create data directory %s: %w", dataDir, err)
	}
	paths := cfg.Paths.Resolve(dataDir)

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	a := &app{cfg: cfg, paths: paths, dataDir: dataDir}
	var out io.Writer = io.Discard
	if paths.Log != "" {
		f, err := os.OpenFile(paths.Log, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("cannot open log file %s: %w", paths.Log, err)
		}
		out = f
		a.logFile = f
	}
	a.log = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "ckong",
		Level:           level,
	})

	if flagStatsview {
		a.stopStats = statsview.Launch(flagStatsAddr, a.log.WithPrefix("statsview"))
	}
	return a, nil
}

func (a *app) close() {
	if a.stopStats != nil {
		a.stopStats()
	}
	if a.logFile != nil {
		a.logFile.Close()
	}
}

// loadMaps reads the tile-map file, falling back to the built-in maps.
func (a *app) loadMaps() *tilemap.Table {
	maps, err := tilemap.Load(a.paths.TileMaps)
	if err != nil {
		a.log.Warn("using built-in tile maps", "path", a.paths.TileMaps, "err", err)
	}
	return maps
}

// loadMachine reads the machine file, falling back to a fresh machine.
func (a *app) loadMachine() *machine.Machine {
	m, err := machine.Load(a.paths.Machine)
	if err != nil {
		a.log.Warn("using fresh machine", "path", a.paths.Machine, "err", err)
	}
	return m
}

// openStore opens the score history. The game still runs without it.
func (a *app) openStore() *storage.Store {
	store, err := storage.Open(a.paths.Scores)
	if err != nil {
		a.log.Warn("score history unavailable", "path", a.paths.Scores, "err", err)
		return nil
	}
	return store
}

// loadWindow reads the frame offset.
func (a *app) loadWindow() config.Window {
	w, err := config.LoadWindow(a.paths.Window)
	if err != nil {
		a.log.Warn("ignoring window config", "path", a.paths.Window, "err", err)
		return config.Window{}
	}
	return w
}

// terminalSize returns the terminal size, or 80x24 if it cannot be read.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}
