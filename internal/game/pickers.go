package game

import (
	"github.com/nybblesio/ckong/internal/assets"
	"github.com/nybblesio/ckong/internal/core"
	"github.com/nybblesio/ckong/internal/video"
)

// Tile picker grid: a page of 128 tiles, 16 per row, one empty cell
// between neighbours.
const (
	pickPageSize = 128
	pickColumns  = 16
	pickTop      = 4
)

func pickCell(tile int) (x, y int) {
	i := tile % pickPageSize
	return (i % pickColumns) * 2, pickTop + (i/pickColumns)*2
}

// pickTileState chooses the editor pen tile.
type pickTileState struct {
	selected int
	page     int
	cursor   *video.Blinker
}

func (s *pickTileState) Enter(ctx *Context) {
	s.selected = int(ctx.editor.tile)
	s.page = -1
	s.show(ctx)
}

// show redraws the page when the selection left it and moves the cursor.
func (s *pickTileState) show(ctx *Context) {
	if page := s.selected / pickPageSize; page != s.page {
		s.page = page
		ctx.resetScreen()
		ctx.Video.BgPrintf(1, 2, assets.PaletteTextRed, true, "TILES PAGE %d", s.page+1)
		for i := 0; i < pickPageSize; i++ {
			x, y := pickCell(i)
			if cell := ctx.Video.Tile(x, y); cell != nil {
				cell.Set(uint16(s.page*pickPageSize+i), ctx.editor.palette)
			}
		}
	}
	ctx.Video.StopBlink(s.cursor)
	x, y := pickCell(s.selected)
	s.cursor = ctx.Video.Blink(y, x, 1, 1, blinkPeriod, nil)
	ctx.Video.BgPrintf(1, 22, assets.PaletteTextYellow, true, "TILE %02X", s.selected)
}

func (s *pickTileState) move(ctx *Context, delta int) {
	s.selected = (s.selected + delta + video.TileMax) % video.TileMax
	s.show(ctx)
}

func (s *pickTileState) Update(ctx *Context) {
	in := ctx.Controller
	switch {
	case in.Pressed(core.ButtonDpadLeft):
		s.move(ctx, -1)
	case in.Pressed(core.ButtonDpadRight):
		s.move(ctx, 1)
	case in.Pressed(core.ButtonDpadUp):
		s.move(ctx, -pickColumns)
	case in.Pressed(core.ButtonDpadDown):
		s.move(ctx, pickColumns)
	case in.Pressed(core.ButtonLeftShoulder):
		s.move(ctx, -pickPageSize)
	case in.Pressed(core.ButtonRightShoulder):
		s.move(ctx, pickPageSize)
	case in.Pressed(core.ButtonA):
		e := &ctx.editor
		e.tile = uint16(s.selected)
		if entry := e.entry(ctx); entry != nil {
			entry.Tile = e.tile
			e.dirty = true
		}
		ctx.Pop()
	case in.Pressed(core.ButtonB):
		ctx.Pop()
	}
}

func (s *pickTileState) Leave(ctx *Context) {
	ctx.Video.ClearBlinkers()
	s.cursor = nil
}

// Palette picker grid: 8 by 8 swatches of the four palette entries.
const (
	swatchColumns = 8
	swatchWidth   = 32
	swatchHeight  = 24
	swatchTop     = 40
)

// pickPaletteState chooses the editor pen palette.
type pickPaletteState struct {
	selected int
}

func (s *pickPaletteState) Enter(ctx *Context) {
	s.selected = int(ctx.editor.palette)
	ctx.resetScreen()
	ctx.Video.BgString(1, 2, assets.PaletteTextRed, true, "PALETTES")
}

func (s *pickPaletteState) move(delta int) {
	s.selected = (s.selected + delta + video.PaletteMax) % video.PaletteMax
}

func swatchRect(p int) core.Rect {
	return core.NewRect((p%swatchColumns)*swatchWidth, swatchTop+(p/swatchColumns)*swatchHeight,
		swatchWidth, swatchHeight)
}

func (s *pickPaletteState) Update(ctx *Context) {
	in := ctx.Controller
	switch {
	case in.Pressed(core.ButtonDpadLeft):
		s.move(-1)
	case in.Pressed(core.ButtonDpadRight):
		s.move(1)
	case in.Pressed(core.ButtonDpadUp):
		s.move(-swatchColumns)
	case in.Pressed(core.ButtonDpadDown):
		s.move(swatchColumns)
	case in.Pressed(core.ButtonA):
		e := &ctx.editor
		e.palette = uint8(s.selected)
		if entry := e.entry(ctx); entry != nil {
			entry.Palette = e.palette
			e.dirty = true
		}
		ctx.Pop()
		return
	case in.Pressed(core.ButtonB):
		ctx.Pop()
		return
	}

	ctx.Video.BgPrintf(1, 22, assets.PaletteTextYellow, true, "PAL %02d", s.selected)
	bank := ctx.Video.Bank()
	for p := 0; p < video.PaletteMax; p++ {
		pal, ok := bank.Palette(uint8(p))
		if !ok {
			continue
		}
		r := swatchRect(p)
		for i, color := range pal {
			ctx.Video.FillRect(core.NewRect(r.X+4+i*6, r.Y+4, 6, 16), color)
		}
	}
	if (ctx.Ticks/blinkPeriod)%2 == 0 {
		r := swatchRect(s.selected)
		ctx.Video.Rect(core.NewRect(r.X+1, r.Y+1, r.W-2, r.H-2), video.HighlightColor)
	}
}

func (s *pickPaletteState) Leave(*Context) {}
