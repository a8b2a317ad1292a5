package game

import "github.com/nybblesio/ckong/internal/tilemap"

// clipboard is a rectangle of copied map entries. The editor session owns
// at most one; it is replaced on copy and released on paste.
type clipboard struct {
	width, height int
	cells         []tilemap.Entry
}

// copyRegion copies the inclusive rectangle spanned by two corners.
func copyRegion(m *tilemap.Map, x0, y0, x1, y1 int) *clipboard {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	c := &clipboard{width: x1 - x0 + 1, height: y1 - y0 + 1}
	c.cells = make([]tilemap.Entry, 0, c.width*c.height)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if e := m.At(x, y); e != nil {
				c.cells = append(c.cells, *e)
			} else {
				c.cells = append(c.cells, tilemap.Entry{Tile: tilemap.TileBlank})
			}
		}
	}
	return c
}

// pasteInto writes the clipboard with its top-left corner at (x, y).
// Cells falling outside the map are dropped.
func (c *clipboard) pasteInto(m *tilemap.Map, x, y int) {
	for row := 0; row < c.height; row++ {
		for col := 0; col < c.width; col++ {
			if e := m.At(x+col, y+row); e != nil {
				*e = c.cells[row*c.width+col]
			}
		}
	}
}
