// ckong is a Donkey Kong style arcade game and tile-map editor for the
// terminal.
//
// Usage:
//
//	ckong                - Launcher menu
//	ckong play           - Insert a coin and play
//	ckong edit           - Edit the stage tile maps
//	ckong scores         - Show the score history
//	ckong maps reset     - Rewrite the tile-map file with the built-in maps
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: from config, 60)
//	--config <path>      - Game config YAML
//	--data <dir>         - Data directory (default: ~/.ckong)
//	--log-level <level>  - debug, info, warn or error
//	--statsview          - Serve runtime stats (needs -tags statsview)
//	--statsview-addr     - Address of the stats server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nybblesio/ckong/internal/statsview"
)

var (
	// Global flags
	flagFPS       int
	flagConfig    string
	flagDataDir   string
	flagLogLevel  string
	flagStatsview bool
	flagStatsAddr string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ckong",
	Short: "ckong - climb the girders in your terminal",
	Long: `ckong is a Donkey Kong style arcade game with a built-in tile-map
editor, drawn in the terminal with half-block characters.

Available commands:
  play     - Insert a coin and play
  edit     - Edit the stage tile maps
  scores   - View the score history
  maps     - Reset or inspect the tile-map file

Running ckong without a command opens the launcher menu.

Examples:
  ckong play
  ckong play --difficulty hard
  ckong edit --data ./work
  ckong scores`,
	SilenceUsage: true,
	RunE:         runLauncher,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate in frames per second (0 = config value)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data", "", "Data directory (default ~/.ckong)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagStatsview, "statsview", false, "Serve runtime statistics over HTTP")
	rootCmd.PersistentFlags().StringVar(&flagStatsAddr, "statsview-addr", statsview.DefaultAddr, "Address of the statistics server")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(mapsCmd)
}
