package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nybblesio/ckong/internal/assets"
	"github.com/nybblesio/ckong/internal/config"
	"github.com/nybblesio/ckong/internal/core"
	"github.com/nybblesio/ckong/internal/game"
	"github.com/nybblesio/ckong/internal/platform/tui"
	"github.com/nybblesio/ckong/internal/state"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Insert a coin and play",
	Long: `Boot the machine and start the attract loop.

Controls:
  5/Tab        - Insert coin
  Enter/1      - Start
  Arrows/WASD  - Move and climb
  Space/Z      - Jump
  Ctrl+S       - Screenshot
  ?            - Toggle help
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Five lives, slower bonus countdown
  normal - Default rules, speeds up as stages are cleared
  hard   - Two lives, faster bonus countdown
  fixed  - No speed-up

Examples:
  ckong play
  ckong play --difficulty hard
  ckong play --fps 30`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setup(flagDifficulty)
		if err != nil {
			return err
		}
		defer a.close()
		return runGame(a, game.StateBoot)
	},
}

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit the stage tile maps",
	Long: `Open the tile-map editor on the first stage map.

Controls:
  Arrows       - Move the cursor
  [ / ]        - Previous / next map
  Z / X        - Previous / next palette of the cell
  C / V        - Previous / next tile of the cell
  Y / P        - Copy selection / paste
  Tab          - Tile picker
  G            - Palette picker
  Enter        - Menu (fill, save, exit)

Examples:
  ckong edit
  ckong edit --data ./work`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setup("")
		if err != nil {
			return err
		}
		defer a.close()
		return runGame(a, game.StateEditor)
	},
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// runGame builds an engine, starts it in the given state and runs the TUI
// until the player quits or the state stack empties.
func runGame(a *app, start state.ID) error {
	opts := game.Options{
		Config:  a.cfg,
		Paths:   a.paths,
		Bank:    assets.MustLoad(),
		Maps:    a.loadMaps(),
		Machine: a.loadMachine(),
		Logger:  a.log,
	}
	if store := a.openStore(); store != nil {
		defer store.Close()
		opts.Scores = store
	}

	engine := game.NewEngine(opts)
	if err := engine.Start(start); err != nil {
		return fmt.Errorf("cannot start: %w", err)
	}

	win := a.loadWindow()
	width, height := terminalSize()
	runErr := tui.Run(engine, tui.Options{
		Runtime: core.RuntimeConfig{
			TickRate: a.cfg.Render.FPS,
			Scale:    a.cfg.Render.Scale,
			OffsetX:  win.X,
			OffsetY:  win.Y,
		},
		HoldMs:         a.cfg.Input.HoldMs,
		ScreenshotDir:  a.paths.Screenshots,
		AutoScale:      a.cfg.Render.Scale == 0,
		Logger:         a.log.WithPrefix("tui"),
		TerminalWidth:  width,
		TerminalHeight: height,
	})

	if err := engine.Shutdown(); err != nil {
		a.log.Error("shutdown failed", "err", err)
	}
	if err := config.SaveWindow(a.paths.Window, win); err != nil {
		a.log.Warn("cannot save window config", "err", err)
	}
	if runErr != nil {
		return fmt.Errorf("game stopped: %w", runErr)
	}
	return nil
}
