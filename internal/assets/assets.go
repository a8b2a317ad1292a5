// Package assets decodes the embedded tile, sprite and palette art into a
// video bank.
package assets

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nybblesio/ckong/internal/core"
	"github.com/nybblesio/ckong/internal/video"
)

//go:embed tiles.yaml
var tilesYAML []byte

//go:embed sprites.yaml
var spritesYAML []byte

//go:embed palettes.yaml
var palettesYAML []byte

// Palette slots assigned in palettes.yaml.
const (
	PaletteText       uint8 = 0
	PaletteTextRed    uint8 = 1
	PaletteLives      uint8 = 2
	PaletteMario      uint8 = 8
	PaletteDonkeyKong uint8 = 9
	PalettePauline    uint8 = 10
	PaletteOilBarrel  uint8 = 11
	PaletteOilFire    uint8 = 12
	PaletteBonus      uint8 = 13
	PaletteTextYellow uint8 = 14
	PaletteTextCyan   uint8 = 15
)

// Tile slots used outside the font.
const (
	TileBoot   uint16 = 0x4d
	TileCursor uint16 = 0xd0
)

// SpriteCount is the number of sprite bitmap slots in the bank.
const SpriteCount = 64

// YAMLBitmap is one bitmap entry of tiles.yaml or sprites.yaml.
type YAMLBitmap struct {
	Index int      `yaml:"index"`
	Name  string   `yaml:"name"`
	Rows  []string `yaml:"rows"`
}

// YAMLPalette is one entry of palettes.yaml.
type YAMLPalette struct {
	Index  int      `yaml:"index"`
	Name   string   `yaml:"name"`
	Colors []string `yaml:"colors"`
}

type tileFile struct {
	Tiles []YAMLBitmap `yaml:"tiles"`
}

type spriteFile struct {
	Sprites []YAMLBitmap `yaml:"sprites"`
}

type paletteFile struct {
	Palettes []YAMLPalette `yaml:"palettes"`
}

// Load decodes the embedded art.
func Load() (*video.Bank, error) {
	var tf tileFile
	if err := yaml.Unmarshal(tilesYAML, &tf); err != nil {
		return nil, fmt.Errorf("assets: tiles: %w", err)
	}
	var sf spriteFile
	if err := yaml.Unmarshal(spritesYAML, &sf); err != nil {
		return nil, fmt.Errorf("assets: sprites: %w", err)
	}
	var pf paletteFile
	if err := yaml.Unmarshal(palettesYAML, &pf); err != nil {
		return nil, fmt.Errorf("assets: palettes: %w", err)
	}

	tiles := make([]video.TileBitmap, video.TileMax)
	for _, t := range tf.Tiles {
		if t.Index < 0 || t.Index >= len(tiles) {
			return nil, fmt.Errorf("assets: tile %q: index %d out of range", t.Name, t.Index)
		}
		if err := decodeBitmap(tiles[t.Index][:], t, video.TileWidth, video.TileHeight); err != nil {
			return nil, err
		}
	}

	sprites := make([]video.SpriteBitmap, SpriteCount)
	for _, s := range sf.Sprites {
		if s.Index < 0 || s.Index >= len(sprites) {
			return nil, fmt.Errorf("assets: sprite %q: index %d out of range", s.Name, s.Index)
		}
		if err := decodeBitmap(sprites[s.Index][:], s, video.SpriteWidth, video.SpriteHeight); err != nil {
			return nil, err
		}
	}

	palettes, err := decodePalettes(pf.Palettes)
	if err != nil {
		return nil, err
	}
	return video.NewBank(tiles, sprites, palettes), nil
}

// MustLoad is Load for callers that cannot continue without art.
func MustLoad() *video.Bank {
	bank, err := Load()
	if err != nil {
		panic(err)
	}
	return bank
}

func decodeBitmap(dst []uint8, b YAMLBitmap, width, height int) error {
	if len(b.Rows) != height {
		return fmt.Errorf("assets: %q: %d rows, expected %d", b.Name, len(b.Rows), height)
	}
	for y, row := range b.Rows {
		if len(row) != width {
			return fmt.Errorf("assets: %q row %d: %d pixels, expected %d", b.Name, y, len(row), width)
		}
		for x, ch := range row {
			var v uint8
			switch ch {
			case '.', ' ', '0':
				v = 0
			case '1', '2', '3':
				v = uint8(ch - '0')
			default:
				return fmt.Errorf("assets: %q row %d: bad pixel %q", b.Name, y, ch)
			}
			dst[y*width+x] = v
		}
	}
	return nil
}

func decodePalettes(entries []YAMLPalette) ([]video.Palette, error) {
	palettes := make([]video.Palette, video.PaletteMax)
	defined := make([]bool, video.PaletteMax)
	for _, p := range entries {
		if p.Index < 0 || p.Index >= video.PaletteMax {
			return nil, fmt.Errorf("assets: palette %q: index %d out of range", p.Name, p.Index)
		}
		if len(p.Colors) != video.PaletteEntries {
			return nil, fmt.Errorf("assets: palette %q: %d colors, expected %d", p.Name, len(p.Colors), video.PaletteEntries)
		}
		for i, s := range p.Colors {
			c, ok := core.ParseColor(strings.TrimSpace(s))
			if !ok {
				return nil, fmt.Errorf("assets: palette %q: bad color %q", p.Name, s)
			}
			palettes[p.Index][i] = c
		}
		defined[p.Index] = true
	}

	// Undefined slots are shaded copies of the hand-drawn ones, darkening
	// with each pass over the base set.
	base := 0
	for _, ok := range defined {
		if !ok {
			break
		}
		base++
	}
	if base == 0 {
		return palettes, nil
	}
	passes := (video.PaletteMax + base - 1) / base
	for i := range palettes {
		if defined[i] {
			continue
		}
		src := palettes[i%base]
		pass := i / base
		for j, c := range src {
			if j == 0 {
				palettes[i][j] = c
				continue
			}
			palettes[i][j] = c.Scale(passes-pass, passes)
		}
	}
	return palettes, nil
}
