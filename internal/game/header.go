package game

import (
	"github.com/nybblesio/ckong/internal/assets"
	"github.com/nybblesio/ckong/internal/tilemap"
	"github.com/nybblesio/ckong/internal/video"
)

// Header layout, in cells.
const (
	maxLifeIcons = 6
	blinkPeriod  = 250
)

// drawHighScore writes the machine high score centered in the top rows.
func drawHighScore(ctx *Context) {
	ctx.Video.BgString(0, 11, assets.PaletteTextRed, true, "HIGH SCORE")
	ctx.Video.BgPrintf(1, 13, assets.PaletteText, true, "%06d", ctx.Machine.HighScore())
}

// drawHeader writes the full in-game header and starts the 1UP blinker.
func drawHeader(ctx *Context) {
	drawHighScore(ctx)

	ctx.Video.BgString(0, 5, assets.PaletteTextRed, true, "1UP")
	ctx.Video.Blink(0, 5, 1, 3, blinkPeriod, nil)

	updateScore(ctx)
	updateLives(ctx)
	updateBonus(ctx)
}

func updateScore(ctx *Context) {
	ctx.Video.BgPrintf(1, 3, assets.PaletteText, true, "%06d", ctx.Player.Score)
	if ctx.Player.Score > ctx.Machine.HighScore() {
		ctx.Video.BgPrintf(1, 13, assets.PaletteText, true, "%06d", ctx.Player.Score)
	}
}

// updateLives draws one icon per reserve life and the level counter.
func updateLives(ctx *Context) {
	for i := 0; i < maxLifeIcons; i++ {
		cell := ctx.Video.Tile(3+i, 3)
		if cell == nil {
			continue
		}
		if i < ctx.Player.Lives-1 {
			cell.Set(tilemap.TileLife, assets.PaletteLives)
		} else {
			cell.Set(video.BlankTile, 0)
		}
	}
	ctx.Video.BgPrintf(3, 23, assets.PaletteTextCyan, true, "L=%02d", ctx.Player.Level)
}

func updateBonus(ctx *Context) {
	ctx.Video.BgString(4, 24, assets.PaletteTextCyan, true, "BONUS")
	ctx.Video.BgPrintf(5, 25, assets.PaletteTextYellow, true, "%04d", ctx.Player.Bonus)
}
