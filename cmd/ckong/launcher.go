package main

import (
	"github.com/spf13/cobra"

	"github.com/nybblesio/ckong/internal/game"
	"github.com/nybblesio/ckong/internal/platform/tui"
)

// runLauncher shows the launcher menu until Quit is chosen. Each game or
// editor session returns to the menu when it ends.
func runLauncher(_ *cobra.Command, _ []string) error {
	a, err := setup("")
	if err != nil {
		return err
	}
	defer a.close()

	// Menu loop
	for {
		width, height := terminalSize()
		choice, err := tui.RunMenu(width, height)
		if err != nil {
			return err
		}

		switch choice {
		case tui.ChoicePlay:
			if err := runGame(a, game.StateBoot); err != nil {
				a.log.Error("game ended with error", "err", err)
				return err
			}
		case tui.ChoiceEdit:
			if err := runGame(a, game.StateEditor); err != nil {
				a.log.Error("editor ended with error", "err", err)
				return err
			}
		case tui.ChoiceScores:
			store := a.openStore()
			goBack, sbErr := tui.RunScoreboard(store, a.loadMachine(), width, height)
			if store != nil {
				store.Close()
			}
			if sbErr != nil {
				return sbErr
			}
			if !goBack {
				return nil // User quit from scoreboard
			}
		default:
			return nil
		}
	}
}
