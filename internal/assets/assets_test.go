package assets

import (
	"testing"

	"github.com/nybblesio/ckong/internal/core"
	"github.com/nybblesio/ckong/internal/tilemap"
	"github.com/nybblesio/ckong/internal/video"
)

func TestLoad(t *testing.T) {
	bank, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if bank.TileCount() != video.TileMax {
		t.Errorf("TileCount() = %d, expected %d", bank.TileCount(), video.TileMax)
	}
	if bank.PaletteCount() != video.PaletteMax {
		t.Errorf("PaletteCount() = %d, expected %d", bank.PaletteCount(), video.PaletteMax)
	}
	if bank.SpriteCount() != SpriteCount {
		t.Errorf("SpriteCount() = %d, expected %d", bank.SpriteCount(), SpriteCount)
	}
}

func TestGlyphsHavePixels(t *testing.T) {
	bank := MustLoad()
	for _, r := range "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ.-=?!:/<>," {
		bitmap, ok := bank.Tile(video.GlyphTile(r))
		if !ok {
			t.Fatalf("glyph %q missing", r)
		}
		lit := 0
		for _, px := range bitmap {
			if px != 0 {
				lit++
			}
		}
		if lit == 0 {
			t.Errorf("glyph %q is empty", r)
		}
	}
}

func TestWellKnownTiles(t *testing.T) {
	bank := MustLoad()
	for _, index := range []uint16{tilemap.TileGirder, tilemap.TileLadder, tilemap.TileLife, TileBoot, TileCursor} {
		bitmap, _ := bank.Tile(index)
		if *bitmap == (video.TileBitmap{}) {
			t.Errorf("tile 0x%02x is empty", index)
		}
	}
	blank, _ := bank.Tile(tilemap.TileBlank)
	if *blank != (video.TileBitmap{}) {
		t.Error("blank tile should have no pixels")
	}
}

func TestSpritePalettesTransparent(t *testing.T) {
	bank := MustLoad()
	for _, index := range []uint8{PaletteMario, PaletteDonkeyKong, PalettePauline, PaletteOilBarrel, PaletteOilFire, PaletteBonus} {
		p, ok := bank.Palette(index)
		if !ok {
			t.Fatalf("palette %d missing", index)
		}
		if p[0].A != 0 {
			t.Errorf("palette %d entry 0 alpha = %d, expected 0", index, p[0].A)
		}
	}
}

func TestDerivedPalettes(t *testing.T) {
	bank := MustLoad()
	base, _ := bank.Palette(1)
	derived, _ := bank.Palette(17)
	if derived[0] != base[0] {
		t.Errorf("derived entry 0 = %v, expected %v", derived[0], base[0])
	}
	if expected := base[1].Scale(3, 4); derived[1] != expected {
		t.Errorf("derived entry 1 = %v, expected %v", derived[1], expected)
	}
	last, _ := bank.Palette(video.PaletteMax - 1)
	if last[1] == (core.Color{}) && base[1] != (core.Color{}) {
		t.Error("last palette should be derived")
	}
}

func TestDecodeBitmapErrors(t *testing.T) {
	tests := []struct {
		name string
		rows []string
	}{
		{"short", []string{"........"}},
		{"narrow", []string{".......", ".......", ".......", ".......", ".......", ".......", ".......", "......."}},
		{"bad pixel", []string{"....x...", "........", "........", "........", "........", "........", "........", "........"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var dst video.TileBitmap
			if err := decodeBitmap(dst[:], YAMLBitmap{Name: tt.name, Rows: tt.rows}, video.TileWidth, video.TileHeight); err == nil {
				t.Error("decodeBitmap() expected error")
			}
		})
	}
}
