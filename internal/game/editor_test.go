package game

import (
	"testing"

	"github.com/nybblesio/ckong/internal/core"
	"github.com/nybblesio/ckong/internal/tilemap"
	"github.com/nybblesio/ckong/internal/video"
)

func startEditor(t *testing.T) *driver {
	t.Helper()
	d := newDriver(t, nil)
	if err := d.e.Start(StateEditor); err != nil {
		t.Fatalf("Start() = %v", err)
	}
	d.step(1)
	return d
}

func TestEditorCursor(t *testing.T) {
	d := startEditor(t)
	e := &d.ctx.editor

	d.press(core.ButtonDpadRight)
	if e.cx != tilemap.Width/2+1 || e.cy != tilemap.Height/2 {
		t.Fatalf("cursor = %d,%d, expected %d,%d", e.cx, e.cy, tilemap.Width/2+1, tilemap.Height/2)
	}
	if !d.ctx.Video.Tile(e.cx, e.cy).Flags.Has(video.BgSelect) {
		t.Error("cursor cell not selected")
	}
	if d.ctx.Video.Tile(e.cx-1, e.cy).Flags.Has(video.BgSelect) {
		t.Error("previous cell still selected")
	}

	e.cx, e.cy = 0, 0
	d.press(core.ButtonDpadLeft)
	d.press(core.ButtonDpadUp)
	if e.cx != 0 || e.cy != 0 {
		t.Errorf("cursor = %d,%d, expected clamped to 0,0", e.cx, e.cy)
	}
}

func TestEditorRepeatedTaps(t *testing.T) {
	d := startEditor(t)
	e := &d.ctx.editor
	startX := e.cx

	for i := 0; i < 3; i++ {
		d.press(core.ButtonDpadRight)
	}
	if e.cx != startX+3 {
		t.Errorf("cx = %d after three taps, expected %d", e.cx, startX+3)
	}
}

func TestEditorEditsCell(t *testing.T) {
	d := startEditor(t)
	e := &d.ctx.editor
	before := *e.entry(d.ctx)

	d.press(core.ButtonY)
	d.press(core.ButtonB)

	got := *e.entry(d.ctx)
	wantTile := uint16((int(before.Tile) + 1) % video.TileMax)
	wantPalette := uint8((int(before.Palette) + 1) % video.PaletteMax)
	if got.Tile != wantTile || got.Palette != wantPalette {
		t.Errorf("entry = %+v, expected tile %#x palette %d", got, wantTile, wantPalette)
	}
	cell := d.ctx.Video.Tile(e.cx, e.cy)
	if cell.Tile != wantTile || cell.Palette != wantPalette {
		t.Errorf("cell = %#x/%d, expected %#x/%d", cell.Tile, cell.Palette, wantTile, wantPalette)
	}
	if !e.dirty {
		t.Error("session not dirty after edit")
	}

	d.press(core.ButtonX)
	if e.entry(d.ctx).Tile != before.Tile {
		t.Errorf("tile = %#x after X, expected %#x", e.entry(d.ctx).Tile, before.Tile)
	}
}

func TestEditorSwitchesMaps(t *testing.T) {
	d := startEditor(t)
	e := &d.ctx.editor

	d.press(core.ButtonLeftShoulder)
	if e.mapIndex != tilemap.MapIntro {
		t.Errorf("mapIndex = %d, expected %d", e.mapIndex, tilemap.MapIntro)
	}
	d.press(core.ButtonLeftShoulder)
	if e.mapIndex != tilemap.Count-1 {
		t.Errorf("mapIndex = %d, expected wrap to %d", e.mapIndex, tilemap.Count-1)
	}
	d.press(core.ButtonRightShoulder)
	if e.mapIndex != tilemap.MapIntro {
		t.Errorf("mapIndex = %d, expected %d", e.mapIndex, tilemap.MapIntro)
	}
}

func TestEditorCopyPaste(t *testing.T) {
	d := startEditor(t)
	e := &d.ctx.editor
	m := e.current(d.ctx)

	*m.At(5, 5) = tilemap.Entry{Tile: 0x21, Palette: 1}
	*m.At(6, 5) = tilemap.Entry{Tile: 0x22, Palette: 2}
	e.cx, e.cy = 5, 5

	d.press(core.ButtonLeftStick)
	if !e.anchored || e.clip != nil {
		t.Fatalf("anchored=%v clip=%v, expected anchor only", e.anchored, e.clip)
	}
	d.press(core.ButtonDpadRight)
	d.press(core.ButtonLeftStick)
	if e.clip == nil || e.clip.width != 2 || e.clip.height != 1 {
		t.Fatalf("clip = %+v, expected 2x1", e.clip)
	}

	e.cx, e.cy = 10, 12
	d.press(core.ButtonRightStick)
	if e.clip != nil {
		t.Error("clipboard not released by paste")
	}
	if got := *m.At(10, 12); got.Tile != 0x21 || got.Palette != 1 {
		t.Errorf("At(10,12) = %+v, expected tile 0x21 palette 1", got)
	}
	if got := *m.At(11, 12); got.Tile != 0x22 || got.Palette != 2 {
		t.Errorf("At(11,12) = %+v, expected tile 0x22 palette 2", got)
	}

	// Nothing left to paste.
	*m.At(20, 20) = tilemap.Entry{Tile: 0x30}
	e.cx, e.cy = 20, 20
	d.press(core.ButtonRightStick)
	if m.At(20, 20).Tile != 0x30 {
		t.Errorf("At(20,20) = %#x, expected untouched 0x30", m.At(20, 20).Tile)
	}
}

func TestClipboardEdges(t *testing.T) {
	var m tilemap.Map
	m.Fill(tilemap.TileGirder, 3)

	c := copyRegion(&m, 31, 31, 30, 30)
	if c.width != 2 || c.height != 2 || len(c.cells) != 4 {
		t.Fatalf("clip = %dx%d (%d cells), expected 2x2", c.width, c.height, len(c.cells))
	}

	var dst tilemap.Map
	c.pasteInto(&dst, 31, 31)
	if dst.At(31, 31).Tile != tilemap.TileGirder {
		t.Errorf("At(31,31) = %#x, expected girder", dst.At(31, 31).Tile)
	}
}

func TestEditorMenuFillRow(t *testing.T) {
	d := startEditor(t)
	e := &d.ctx.editor

	d.press(core.ButtonStart)
	if d.top() != StateEditorMenu {
		t.Fatalf("top = %s, expected editor-menu", d.ctx.States.Name(d.top()))
	}
	d.press(core.ButtonA)
	if d.top() != StateEditor {
		t.Fatalf("top = %s, expected editor", d.ctx.States.Name(d.top()))
	}

	pen := e.pen()
	for x := 0; x < tilemap.Width; x++ {
		if got := *e.current(d.ctx).At(x, e.cy); got != pen {
			t.Fatalf("At(%d,%d) = %+v, expected %+v", x, e.cy, got, pen)
		}
	}
	if cell := d.ctx.Video.Tile(0, e.cy); cell.Tile != pen.Tile {
		t.Errorf("cell tile = %#x, expected redrawn %#x", cell.Tile, pen.Tile)
	}
}

func TestEditorMenuSaveAndExit(t *testing.T) {
	d := startEditor(t)
	e := &d.ctx.editor
	d.press(core.ButtonY)

	d.press(core.ButtonStart)
	for i := 0; i < menuSave; i++ {
		d.press(core.ButtonDpadDown)
	}
	d.press(core.ButtonA)
	if e.dirty {
		t.Error("session dirty after save")
	}

	table, err := tilemap.Load(d.ctx.Paths.TileMaps)
	if err != nil {
		t.Fatalf("tilemap.Load() = %v", err)
	}
	if *table.Map(e.mapIndex) != *e.current(d.ctx) {
		t.Error("saved map differs from the edited map")
	}

	d.press(core.ButtonStart)
	d.press(core.ButtonDpadUp) // wraps to exit
	d.press(core.ButtonA)
	if !d.e.Done() {
		t.Error("Done() = false after exit")
	}
	if d.ctx.States.Depth() != 0 {
		t.Errorf("Depth() = %d after exit, expected 0", d.ctx.States.Depth())
	}
}

func TestPickTile(t *testing.T) {
	d := startEditor(t)
	e := &d.ctx.editor
	pen := e.tile

	d.press(core.ButtonBack)
	if d.top() != StateEditorPickTile {
		t.Fatalf("top = %s, expected editor-pick-tile", d.ctx.States.Name(d.top()))
	}
	d.press(core.ButtonDpadRight)
	d.press(core.ButtonDpadDown)
	d.press(core.ButtonA)

	want := uint16((int(pen) + 1 + pickColumns) % video.TileMax)
	if d.top() != StateEditor {
		t.Fatalf("top = %s, expected editor", d.ctx.States.Name(d.top()))
	}
	if e.tile != want || e.entry(d.ctx).Tile != want {
		t.Errorf("pen = %#x entry = %#x, expected %#x", e.tile, e.entry(d.ctx).Tile, want)
	}
	if d.ctx.Video.Tile(e.cx, e.cy).Tile != want {
		t.Errorf("cell tile = %#x, expected %#x", d.ctx.Video.Tile(e.cx, e.cy).Tile, want)
	}
}

func TestPickPalette(t *testing.T) {
	d := startEditor(t)
	e := &d.ctx.editor
	pen := e.palette

	d.press(core.ButtonGuide)
	if d.top() != StateEditorPickPalette {
		t.Fatalf("top = %s, expected editor-pick-palette", d.ctx.States.Name(d.top()))
	}
	d.press(core.ButtonDpadUp)
	d.press(core.ButtonB)
	if e.palette != pen {
		t.Errorf("palette = %d after cancel, expected %d", e.palette, pen)
	}

	d.press(core.ButtonGuide)
	d.press(core.ButtonDpadDown)
	d.press(core.ButtonA)
	want := uint8((int(pen) + swatchColumns) % video.PaletteMax)
	if e.palette != want || e.entry(d.ctx).Palette != want {
		t.Errorf("palette = %d entry = %d, expected %d", e.palette, e.entry(d.ctx).Palette, want)
	}
}
