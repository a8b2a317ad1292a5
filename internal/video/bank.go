package video

import "github.com/nybblesio/ckong/internal/core"

// Geometry of the emulated video hardware.
const (
	TileWidth    = 8
	TileHeight   = 8
	GridWidth    = core.ScreenWidth / TileWidth
	GridHeight   = core.ScreenHeight / TileHeight
	SpriteWidth  = 16
	SpriteHeight = 16

	TileMax    = 256
	SpriteMax  = 128
	PaletteMax = 64

	// PaletteEntries is the number of colors in one palette; bitmap
	// pixels are 2-bit indices into it.
	PaletteEntries = 4
)

// TileBitmap is an 8x8 grid of palette indices.
type TileBitmap [TileWidth * TileHeight]uint8

// SpriteBitmap is a 16x16 grid of palette indices.
type SpriteBitmap [SpriteWidth * SpriteHeight]uint8

// Palette maps a bitmap pixel to a color. Entry 0 is conventionally
// transparent for sprites.
type Palette [PaletteEntries]core.Color

// Bank is the immutable set of bitmaps and palettes the compositor draws
// from. A lookup miss is reported through the ok result and the caller skips
// the raster operation.
type Bank struct {
	tiles    []TileBitmap
	sprites  []SpriteBitmap
	palettes []Palette
}

// NewBank creates a bank, truncating each table to its hardware limit.
func NewBank(tiles []TileBitmap, sprites []SpriteBitmap, palettes []Palette) *Bank {
	if len(tiles) > TileMax {
		tiles = tiles[:TileMax]
	}
	if len(palettes) > PaletteMax {
		palettes = palettes[:PaletteMax]
	}
	return &Bank{tiles: tiles, sprites: sprites, palettes: palettes}
}

// Tile returns the background tile bitmap for index.
func (b *Bank) Tile(index uint16) (*TileBitmap, bool) {
	if b == nil || int(index) >= len(b.tiles) {
		return nil, false
	}
	return &b.tiles[index], true
}

// Sprite returns the sprite bitmap for index.
func (b *Bank) Sprite(index uint16) (*SpriteBitmap, bool) {
	if b == nil || int(index) >= len(b.sprites) {
		return nil, false
	}
	return &b.sprites[index], true
}

// Palette returns the palette for index.
func (b *Bank) Palette(index uint8) (*Palette, bool) {
	if b == nil || int(index) >= len(b.palettes) {
		return nil, false
	}
	return &b.palettes[index], true
}

// TileCount returns the number of tile bitmaps.
func (b *Bank) TileCount() int { return len(b.tiles) }

// SpriteCount returns the number of sprite bitmaps.
func (b *Bank) SpriteCount() int { return len(b.sprites) }

// PaletteCount returns the number of palettes.
func (b *Bank) PaletteCount() int { return len(b.palettes) }
