package video

import "github.com/nybblesio/ckong/internal/core"

func (c *Compositor) rasterBackground() {
	pix := c.bg.Pix()
	pitch := c.bg.Pitch()
	for i := range c.cells {
		cell := &c.cells[i]
		if !cell.Flags.Has(BgChanged) {
			continue
		}

		tile, pal, flags := cell.Tile, cell.Palette, cell.Flags
		if !flags.Has(BgEnabled) {
			tile, pal, flags = BlankTile, 0, BgNone
		}
		palette, ok := c.bank.Palette(pal)
		if !ok {
			continue
		}
		bitmap, ok := c.bank.Tile(tile)
		if !ok {
			continue
		}

		px := (i % GridWidth) * TileWidth
		py := (i / GridWidth) * TileHeight
		hflip := flags.Has(BgHFlip)
		vflip := flags.Has(BgVFlip)
		for y := 0; y < TileHeight; y++ {
			sy := y
			if vflip {
				sy = TileHeight - 1 - y
			}
			off := (py+y)*pitch + px*core.BytesPerPixel
			for x := 0; x < TileWidth; x++ {
				sx := x
				if hflip {
					sx = TileWidth - 1 - x
				}
				e := palette[bitmap[sy*TileWidth+sx]&(PaletteEntries-1)]
				pix[off] = e.R
				pix[off+1] = e.G
				pix[off+2] = e.B
				pix[off+3] = 0xff
				off += core.BytesPerPixel
			}
		}

		if cell.Flags.Has(BgSelect) {
			c.bg.DrawRect(core.NewRect(px, py, TileWidth, TileHeight), HighlightColor)
		}
		cell.Flags = cell.Flags.Without(BgChanged)
	}
}

func (c *Compositor) drainPre() {
	for _, cmd := range c.pre.items {
		switch cmd.Kind {
		case CmdFillRect:
			c.fg.FillRect(cmd.Bounds, cmd.Color)
		case CmdRect:
			c.fg.DrawRect(cmd.Bounds, cmd.Color)
		case CmdHLine:
			c.fg.DrawHLine(cmd.Bounds.X, cmd.Bounds.Y, cmd.Bounds.W, cmd.Color)
		case CmdVLine:
			c.fg.DrawVLine(cmd.Bounds.X, cmd.Bounds.Y, cmd.Bounds.H, cmd.Color)
		case CmdStampTile:
			c.stampTile(cmd)
		}
	}
	c.pre.reset()
}

func (c *Compositor) stampTile(cmd Command) {
	palette, ok := c.bank.Palette(cmd.Palette)
	if !ok {
		return
	}
	bitmap, ok := c.bank.Tile(cmd.Tile)
	if !ok {
		return
	}
	hflip := cmd.Flags.Has(SprHFlip)
	vflip := cmd.Flags.Has(SprVFlip)
	for y := 0; y < TileHeight; y++ {
		sy := y
		if vflip {
			sy = TileHeight - 1 - y
		}
		for x := 0; x < TileWidth; x++ {
			sx := x
			if hflip {
				sx = TileWidth - 1 - x
			}
			idx := bitmap[sy*TileWidth+sx] & (PaletteEntries - 1)
			if idx == 0 {
				continue
			}
			dx, dy := cmd.Bounds.X+x, cmd.Bounds.Y+y
			if !c.clip.Contains(dx, dy) {
				continue
			}
			e := palette[idx]
			c.fg.Set(dx, dy, core.RGB(e.R, e.G, e.B))
		}
	}
}

// rasterSprites draws enabled sprites in pool order so later blocks land on
// top. Pixels whose palette entry has zero alpha, or that fall outside the
// clip rectangle, are skipped individually.
func (c *Compositor) rasterSprites() {
	clip := c.clip
	for i := range c.sprites {
		s := &c.sprites[i]
		if !s.Flags.Has(SprEnabled) {
			continue
		}
		palette, ok := c.bank.Palette(s.Palette)
		if !ok {
			continue
		}
		bitmap, ok := c.bank.Sprite(s.Tile)
		if !ok {
			continue
		}

		hflip := s.Flags.Has(SprHFlip)
		vflip := s.Flags.Has(SprVFlip)
		for y := 0; y < SpriteHeight; y++ {
			dy := int(s.Y) + y
			if dy < clip.Y || dy >= clip.Bottom() {
				continue
			}
			sy := y
			if vflip {
				sy = SpriteHeight - 1 - y
			}
			for x := 0; x < SpriteWidth; x++ {
				dx := int(s.X) + x
				if dx < clip.X || dx >= clip.Right() {
					continue
				}
				sx := x
				if hflip {
					sx = SpriteWidth - 1 - x
				}
				e := palette[bitmap[sy*SpriteWidth+sx]&(PaletteEntries-1)]
				if e.A == 0 {
					continue
				}
				c.fg.Set(dx, dy, core.RGB(e.R, e.G, e.B))
			}
		}
	}
}
