// Package video composites the background tile grid, the pre-pass raster
// primitives and the sprite pool into one RGBA surface per frame.
package video

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/nybblesio/ckong/internal/core"
	"github.com/nybblesio/ckong/internal/tilemap"
)

// HighlightColor outlines background cells carrying BgSelect.
var HighlightColor = core.ColorYellow

// Compositor owns the background and foreground surfaces together with the
// control blocks that describe them. It is not safe for concurrent use; the
// frame loop is its only caller.
type Compositor struct {
	bank *Bank
	log  *log.Logger

	bg *core.Surface
	fg *core.Surface

	cells    [GridWidth * GridHeight]TileControlBlock
	sprites  [SpriteMax]SpriteControlBlock
	blinkers [BlinkersMax]Blinker

	pre  queue[Command]
	post queue[TextCommand]

	clip    core.Rect
	now     uint32
	dropped int
}

// New creates a compositor drawing from bank. A nil logger discards output.
func New(bank *Bank, logger *log.Logger) *Compositor {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	c := &Compositor{
		bank: bank,
		log:  logger,
		bg:   core.NewSurface(core.ScreenWidth, core.ScreenHeight),
		fg:   core.NewSurface(core.ScreenWidth, core.ScreenHeight),
		pre:  newQueue[Command](PreCommandsMax),
		post: newQueue[TextCommand](PostCommandsMax),
		clip: DefaultClip,
	}
	c.ResetBackground()
	return c
}

// DefaultClip is the sprite clip region: the full screen minus the top
// text strip.
var DefaultClip = core.NewRect(0, TileHeight, core.ScreenWidth, core.ScreenHeight-TileHeight)

func screenRect() core.Rect {
	return core.NewRect(0, 0, core.ScreenWidth, core.ScreenHeight)
}

// Bank returns the art bank.
func (c *Compositor) Bank() *Bank { return c.bank }

// Surface returns the composited frame.
func (c *Compositor) Surface() *core.Surface { return c.fg }

// Now returns the tick of the last Update.
func (c *Compositor) Now() uint32 { return c.now }

// Tile returns the background cell at column x, row y, or nil when the
// coordinates fall outside the grid.
func (c *Compositor) Tile(x, y int) *TileControlBlock {
	if x < 0 || x >= GridWidth || y < 0 || y >= GridHeight {
		return nil
	}
	return &c.cells[y*GridWidth+x]
}

// Sprite returns sprite block n, or nil when n is out of range.
func (c *Compositor) Sprite(n int) *SpriteControlBlock {
	if n < 0 || n >= SpriteMax {
		return nil
	}
	return &c.sprites[n]
}

// ResetSprites clears every sprite block.
func (c *Compositor) ResetSprites() {
	for i := range c.sprites {
		c.sprites[i] = SpriteControlBlock{}
	}
}

// ResetBackground sets every cell to the blank tile and schedules a full
// redraw.
func (c *Compositor) ResetBackground() {
	c.FillBackground(BlankTile, 0)
}

// FillBackground sets every cell to tile and palette.
func (c *Compositor) FillBackground(tile uint16, palette uint8) {
	for i := range c.cells {
		c.cells[i] = TileControlBlock{}
		c.cells[i].Set(tile, palette)
	}
}

// SetBackground copies a tile map into the grid. Every copied cell is
// enabled and marked changed. A nil map resets the background.
func (c *Compositor) SetBackground(m *tilemap.Map) {
	if m == nil {
		c.ResetBackground()
		return
	}
	for i := range c.cells {
		e := m[i]
		c.cells[i] = TileControlBlock{
			Tile:    e.Tile,
			Palette: e.Palette,
			Flags:   BgFlags(e.Flags).With(BgEnabled | BgChanged),
		}
	}
}

// Invalidate marks every background cell changed.
func (c *Compositor) Invalidate() {
	for i := range c.cells {
		c.cells[i].MarkChanged()
	}
}

// BgString writes text into row y starting at column x. Writing stops at
// the grid edge or after MaxBgText runes. It returns the number of cells
// written.
func (c *Compositor) BgString(y, x int, palette uint8, enabled bool, text string) int {
	n := 0
	for _, r := range truncateRunes(text, MaxBgText) {
		cell := c.Tile(x+n, y)
		if cell == nil {
			break
		}
		cell.Tile = GlyphTile(r)
		cell.Palette = palette
		if enabled {
			cell.Flags = cell.Flags.With(BgEnabled)
		} else {
			cell.Flags = cell.Flags.Without(BgEnabled)
		}
		cell.MarkChanged()
		n++
	}
	return n
}

// BgPrintf formats and writes text like BgString.
func (c *Compositor) BgPrintf(y, x int, palette uint8, enabled bool, format string, args ...any) int {
	return c.BgString(y, x, palette, enabled, fmt.Sprintf(format, args...))
}

// ClipRect restricts sprite and stamped-tile drawing to r.
func (c *Compositor) ClipRect(r core.Rect) {
	c.clip = r.Intersect(screenRect())
}

// ClipRectClear restores DefaultClip.
func (c *Compositor) ClipRectClear() {
	c.clip = DefaultClip
}

// FillRect queues a filled rectangle for the pre-pass.
func (c *Compositor) FillRect(r core.Rect, color core.Color) bool {
	return c.queuePre(Command{Kind: CmdFillRect, Bounds: r, Color: color})
}

// Rect queues a rectangle outline for the pre-pass.
func (c *Compositor) Rect(r core.Rect, color core.Color) bool {
	return c.queuePre(Command{Kind: CmdRect, Bounds: r, Color: color})
}

// HLine queues a horizontal line for the pre-pass.
func (c *Compositor) HLine(x, y, length int, color core.Color) bool {
	return c.queuePre(Command{Kind: CmdHLine, Bounds: core.NewRect(x, y, length, 1), Color: color})
}

// VLine queues a vertical line for the pre-pass.
func (c *Compositor) VLine(x, y, length int, color core.Color) bool {
	return c.queuePre(Command{Kind: CmdVLine, Bounds: core.NewRect(x, y, 1, length), Color: color})
}

// StampTile queues a background tile bitmap drawn at pixel position (x, y)
// with palette entry 0 treated as transparent.
func (c *Compositor) StampTile(x, y int, tile uint16, palette uint8, flags SprFlags) bool {
	return c.queuePre(Command{
		Kind:    CmdStampTile,
		Bounds:  core.NewRect(x, y, TileWidth, TileHeight),
		Tile:    tile,
		Palette: palette,
		Flags:   flags,
	})
}

// Text queues post-pass text at pixel position (x, y). The formatted
// string is cut to MaxPostText bytes.
func (c *Compositor) Text(x, y int, color core.Color, format string, args ...any) bool {
	text := truncateBytes(fmt.Sprintf(format, args...), MaxPostText)
	if !c.post.push(TextCommand{X: x, Y: y, Color: color, Text: text}) {
		c.dropped++
		return false
	}
	return true
}

func (c *Compositor) queuePre(cmd Command) bool {
	if !c.pre.push(cmd) {
		c.dropped++
		return false
	}
	return true
}

// PendingPost returns the number of queued post-pass commands.
func (c *Compositor) PendingPost() int { return c.post.len() }

// DrainPost hands every queued post-pass command to fn in queue order and
// empties the queue.
func (c *Compositor) DrainPost(fn func(TextCommand)) {
	for _, cmd := range c.post.items {
		fn(cmd)
	}
	c.post.reset()
}

// Dropped returns the number of queued commands discarded because a queue
// was full.
func (c *Compositor) Dropped() int { return c.dropped }

// Begin records the tick of the frame about to run, so blinkers started
// by the states this frame count from it.
func (c *Compositor) Begin(now uint32) {
	c.now = now
}

// Update runs one compositor frame: blinkers, background raster, the
// background copy, the pre-pass queue and finally the sprite pool.
func (c *Compositor) Update(now uint32) {
	c.now = now
	if n := c.pre.dropped + c.post.dropped; n > 0 {
		c.log.Debug("command queue overflow", "dropped", n)
	}

	c.updateBlinkers(now)
	c.rasterBackground()
	c.fg.CopyFrom(c.bg)
	c.drainPre()
	c.rasterSprites()
}
