package game

import (
	"github.com/nybblesio/ckong/internal/assets"
	"github.com/nybblesio/ckong/internal/core"
	"github.com/nybblesio/ckong/internal/tilemap"
	"github.com/nybblesio/ckong/internal/timer"
	"github.com/nybblesio/ckong/internal/video"
)

// editorSession survives the pushes and pops between the editor and its
// menu and pickers.
type editorSession struct {
	ready    bool
	mapIndex int
	cx, cy   int
	tile     uint16
	palette  uint8

	anchored bool
	ax, ay   int
	clip     *clipboard
	dirty    bool
}

func (e *editorSession) current(ctx *Context) *tilemap.Map {
	return ctx.Maps.Map(e.mapIndex)
}

func (e *editorSession) entry(ctx *Context) *tilemap.Entry {
	return e.current(ctx).At(e.cx, e.cy)
}

// refreshCell copies a map entry into its background cell.
func (e *editorSession) refreshCell(ctx *Context, x, y int) {
	entry := e.current(ctx).At(x, y)
	cell := ctx.Video.Tile(x, y)
	if entry == nil || cell == nil {
		return
	}
	flags := video.BgFlags(entry.Flags).With(video.BgEnabled | video.BgChanged)
	if x == e.cx && y == e.cy {
		flags = flags.With(video.BgSelect)
	}
	cell.Tile = entry.Tile
	cell.Palette = entry.Palette
	cell.Flags = flags
}

func (e *editorSession) refresh(ctx *Context) {
	ctx.Video.SetBackground(e.current(ctx))
	if cell := ctx.Video.Tile(e.cx, e.cy); cell != nil {
		cell.Flags = cell.Flags.With(video.BgSelect | video.BgChanged)
	}
}

// put writes entry at (x, y) in the current map.
func (e *editorSession) put(ctx *Context, x, y int, entry tilemap.Entry) {
	if dst := e.current(ctx).At(x, y); dst != nil {
		*dst = entry
		e.dirty = true
		e.refreshCell(ctx, x, y)
	}
}

// pen returns the entry the fill commands and pickers write.
func (e *editorSession) pen() tilemap.Entry {
	return tilemap.Entry{Tile: e.tile, Palette: e.palette}
}

func (e *editorSession) moveCursor(ctx *Context, dx, dy int) {
	ox, oy := e.cx, e.cy
	e.cx = core.Clamp(e.cx+dx, 0, tilemap.Width-1)
	e.cy = core.Clamp(e.cy+dy, 0, tilemap.Height-1)
	e.refreshCell(ctx, ox, oy)
	e.refreshCell(ctx, e.cx, e.cy)
}

// copySelection takes the rectangle between the anchor and the cursor,
// replacing any previous clipboard.
func (e *editorSession) copySelection(ctx *Context) {
	if !e.anchored {
		e.anchored = true
		e.ax, e.ay = e.cx, e.cy
		return
	}
	e.anchored = false
	e.clip = copyRegion(e.current(ctx), e.ax, e.ay, e.cx, e.cy)
	ctx.Log.Debug("copied", "width", e.clip.width, "height", e.clip.height)
}

// paste writes the clipboard at the cursor and releases it.
func (e *editorSession) paste(ctx *Context) {
	if e.clip == nil {
		return
	}
	e.clip.pasteInto(e.current(ctx), e.cx, e.cy)
	e.clip = nil
	e.dirty = true
	e.refresh(ctx)
}

// save writes the whole tile-map table. A failed save keeps the session
// dirty.
func (e *editorSession) save(ctx *Context) {
	if err := ctx.Maps.Save(ctx.Paths.TileMaps); err != nil {
		ctx.Log.Error("cannot save tile maps", "path", ctx.Paths.TileMaps, "err", err)
		return
	}
	ctx.Log.Info("tile maps saved", "path", ctx.Paths.TileMaps)
	e.dirty = false
}

// editorState edits the background tile maps cell by cell.
type editorState struct {
	help     *timer.Timer
	showHelp bool
}

func (s *editorState) Enter(ctx *Context) {
	e := &ctx.editor
	if !e.ready {
		*e = editorSession{
			ready:    true,
			mapIndex: tilemap.MapStage1,
			cx:       tilemap.Width / 2,
			cy:       tilemap.Height / 2,
			tile:     tilemap.TileGirder,
			palette:  tilemap.PaletteGirder,
		}
	}
	ctx.resetScreen()
	ctx.Video.ClipRect(core.NewRect(0, 0, core.ScreenWidth, core.ScreenHeight))
	e.refresh(ctx)

	s.showHelp = true
	s.help = ctx.Timers.Start(ctx.Ticks, ctx.Config.Timing.Blink*4, func(*timer.Timer, uint32) bool {
		s.showHelp = !s.showHelp
		return true
	}, nil)
}

func (s *editorState) Update(ctx *Context) {
	e := &ctx.editor
	in := ctx.Controller

	switch {
	case in.Pressed(core.ButtonDpadLeft):
		e.moveCursor(ctx, -1, 0)
	case in.Pressed(core.ButtonDpadRight):
		e.moveCursor(ctx, 1, 0)
	case in.Pressed(core.ButtonDpadUp):
		e.moveCursor(ctx, 0, -1)
	case in.Pressed(core.ButtonDpadDown):
		e.moveCursor(ctx, 0, 1)
	}

	switch {
	case in.Pressed(core.ButtonLeftShoulder):
		e.mapIndex = (e.mapIndex + tilemap.Count - 1) % tilemap.Count
		e.refresh(ctx)
	case in.Pressed(core.ButtonRightShoulder):
		e.mapIndex = (e.mapIndex + 1) % tilemap.Count
		e.refresh(ctx)
	}

	if entry := e.entry(ctx); entry != nil {
		edited := *entry
		switch {
		case in.Pressed(core.ButtonA):
			edited.Palette = uint8((int(edited.Palette) + video.PaletteMax - 1) % video.PaletteMax)
		case in.Pressed(core.ButtonB):
			edited.Palette = uint8((int(edited.Palette) + 1) % video.PaletteMax)
		case in.Pressed(core.ButtonX):
			edited.Tile = uint16((int(edited.Tile) + video.TileMax - 1) % video.TileMax)
		case in.Pressed(core.ButtonY):
			edited.Tile = uint16((int(edited.Tile) + 1) % video.TileMax)
		}
		if edited != *entry {
			e.tile, e.palette = edited.Tile, edited.Palette
			e.put(ctx, e.cx, e.cy, edited)
		}
	}

	switch {
	case in.Pressed(core.ButtonLeftStick):
		e.copySelection(ctx)
	case in.Pressed(core.ButtonRightStick):
		e.paste(ctx)
	case in.Pressed(core.ButtonStart):
		ctx.Push(StateEditorMenu)
		return
	case in.Pressed(core.ButtonBack):
		ctx.Push(StateEditorPickTile)
		return
	case in.Pressed(core.ButtonGuide):
		ctx.Push(StateEditorPickPalette)
		return
	}

	s.drawStatus(ctx)
}

func (s *editorState) drawStatus(ctx *Context) {
	e := &ctx.editor
	entry := e.entry(ctx)
	ctx.Video.Text(0, 248, core.ColorWhite, "MAP %02d  X %02d Y %02d  T %02X P %02d",
		e.mapIndex, e.cx, e.cy, entry.Tile, entry.Palette)
	if e.anchored {
		ctx.Video.Text(0, 240, core.ColorYellow, "COPY FROM %02d,%02d", e.ax, e.ay)
	}
	if s.showHelp {
		ctx.Video.Text(0, 0, core.ColorCyan, "START MENU  BACK TILES  GUIDE PALETTES")
	}
}

func (s *editorState) Leave(ctx *Context) {
	ctx.Timers.Stop(s.help)
	s.help = nil
}

// Menu items, in display order.
const (
	menuFillRow = iota
	menuFillColumn
	menuFillMap
	menuSave
	menuExit
	menuCount
)

var menuLabels = [menuCount]string{"FILL ROW", "FILL COLUMN", "FILL MAP", "SAVE", "EXIT"}

const (
	menuTop  = 11
	menuLeft = 8
)

// editorMenuState is the modal command menu drawn over the map.
type editorMenuState struct {
	selected int
}

func (s *editorMenuState) Enter(ctx *Context) {
	s.selected = menuFillRow
	for y := menuTop; y < menuTop+menuCount*2+3; y++ {
		for x := menuLeft; x < menuLeft+16; x++ {
			if cell := ctx.Video.Tile(x, y); cell != nil {
				cell.Set(video.BlankTile, 0)
				cell.Flags = cell.Flags.Without(video.BgSelect)
			}
		}
	}
	ctx.Video.BgString(menuTop+1, menuLeft+4, assets.PaletteTextRed, true, "EDITOR")
	s.draw(ctx)
}

func (s *editorMenuState) draw(ctx *Context) {
	for i, label := range menuLabels {
		marker, palette := " ", assets.PaletteText
		if i == s.selected {
			marker, palette = ">", assets.PaletteTextYellow
		}
		row := menuTop + 3 + i*2
		ctx.Video.BgString(row, menuLeft+1, palette, true, marker)
		ctx.Video.BgString(row, menuLeft+3, palette, true, label)
	}
}

func (s *editorMenuState) Update(ctx *Context) {
	in := ctx.Controller
	switch {
	case in.Pressed(core.ButtonDpadUp):
		s.selected = (s.selected + menuCount - 1) % menuCount
		s.draw(ctx)
	case in.Pressed(core.ButtonDpadDown):
		s.selected = (s.selected + 1) % menuCount
		s.draw(ctx)
	case in.Pressed(core.ButtonB):
		ctx.Pop()
	case in.Pressed(core.ButtonA):
		s.run(ctx)
	}
}

func (s *editorMenuState) run(ctx *Context) {
	e := &ctx.editor
	m := e.current(ctx)
	pen := e.pen()

	switch s.selected {
	case menuFillRow:
		for x := 0; x < tilemap.Width; x++ {
			*m.At(x, e.cy) = pen
		}
		e.dirty = true
	case menuFillColumn:
		for y := 0; y < tilemap.Height; y++ {
			*m.At(e.cx, y) = pen
		}
		e.dirty = true
	case menuFillMap:
		m.Fill(pen.Tile, pen.Palette)
		e.dirty = true
	case menuSave:
		e.save(ctx)
	case menuExit:
		if e.dirty {
			e.save(ctx)
		}
		ctx.Quit()
		ctx.Pop()
		ctx.Pop()
		return
	}
	// Popping re-enters the editor, which redraws the map.
	ctx.Pop()
}

func (s *editorMenuState) Leave(*Context) {}
