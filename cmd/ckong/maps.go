package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/nybblesio/ckong/internal/tilemap"
)

var mapsCmd = &cobra.Command{
	Use:   "maps",
	Short: "Reset or inspect the tile-map file",
}

var mapsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Rewrite the tile-map file with the built-in maps",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setup("")
		if err != nil {
			return err
		}
		defer a.close()

		if err := tilemap.DefaultTable().Save(a.paths.TileMaps); err != nil {
			return err
		}
		a.log.Info("tile maps reset", "path", a.paths.TileMaps)
		fmt.Printf("Wrote built-in tile maps to %s\n", a.paths.TileMaps)
		return nil
	},
}

var mapsInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show which maps differ from the built-in ones",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setup("")
		if err != nil {
			return err
		}
		defer a.close()

		maps, err := tilemap.Load(a.paths.TileMaps)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			fmt.Printf("%s does not exist; the built-in maps are used.\n", a.paths.TileMaps)
			return nil
		case err != nil:
			return err
		}

		defaults := tilemap.DefaultTable()
		fmt.Printf("Tile maps in %s\n\n", a.paths.TileMaps)
		for i := 0; i < tilemap.Count; i++ {
			changed := countChanged(maps.Map(i), defaults.Map(i))
			label := "built-in"
			if changed > 0 {
				label = fmt.Sprintf("%d cells edited", changed)
			}
			fmt.Printf("  %2d  %s\n", i, label)
		}
		return nil
	},
}

func init() {
	mapsCmd.AddCommand(mapsResetCmd)
	mapsCmd.AddCommand(mapsInfoCmd)
}

// countChanged returns how many cells of m differ from base.
func countChanged(m, base *tilemap.Map) int {
	n := 0
	for y := 0; y < tilemap.Height; y++ {
		for x := 0; x < tilemap.Width; x++ {
			if *m.At(x, y) != *base.At(x, y) {
				n++
			}
		}
	}
	return n
}
