package video

// TileControlBlock is one background cell.
type TileControlBlock struct {
	Tile    uint16
	Flags   BgFlags
	Palette uint8
	Data1   uint32
	Data2   uint32
}

// MarkChanged sets the dirty flag so the next raster pass redraws the cell.
func (b *TileControlBlock) MarkChanged() {
	b.Flags = b.Flags.With(BgChanged)
}

// Set replaces tile and palette and marks the cell dirty.
func (b *TileControlBlock) Set(tile uint16, palette uint8) {
	b.Tile = tile
	b.Palette = palette
	b.Flags = b.Flags.With(BgEnabled | BgChanged)
}

// SpriteControlBlock is one foreground draw entry for the current frame.
type SpriteControlBlock struct {
	X, Y    int16
	Tile    uint16
	Flags   SprFlags
	Palette uint8
	Data1   uint32
	Data2   uint32
}
