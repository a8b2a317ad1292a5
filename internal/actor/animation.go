package actor

import (
	"fmt"

	"github.com/nybblesio/ckong/internal/assets"
	"github.com/nybblesio/ckong/internal/video"
)

// Authoring limits for the animation table.
const (
	MaxFrames     = 32
	MaxFrameTiles = 32
)

// FrameTile is one sprite stamped relative to the actor position.
type FrameTile struct {
	DX, DY  int16
	Tile    uint16
	Palette uint8
	Flags   video.SprFlags
}

// Frame is a set of tiles shown for Delay milliseconds.
type Frame struct {
	Delay uint32
	Tiles []FrameTile
}

// Animation is an immutable sequence of frames shared by every actor
// playing it.
type Animation struct {
	Frames []Frame
}

// FrameCount returns the number of frames.
func (a *Animation) FrameCount() int { return len(a.Frames) }

// Kind names an entry of the animation table.
type Kind uint8

const (
	KindNone Kind = iota
	KindMarioStandLeft
	KindMarioStandRight
	KindMarioWalkLeft
	KindMarioWalkRight
	KindMarioJumpLeft
	KindMarioJumpRight
	KindMarioClimb
	KindDonkeyKongClimb
	KindDonkeyKongStand
	KindPaulineStandRight
	KindPaulineHelp
	KindOilBarrel
	KindOilFire
	KindBonus100
	kindCount
)

var kindNames = [kindCount]string{
	"none",
	"mario-stand-left",
	"mario-stand-right",
	"mario-walk-left",
	"mario-walk-right",
	"mario-jump-left",
	"mario-jump-right",
	"mario-climb",
	"donkey-kong-climb",
	"donkey-kong-stand",
	"pauline-stand-right",
	"pauline-help",
	"oil-barrel",
	"oil-fire",
	"bonus-100",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

func single(tile uint16, palette uint8, flags video.SprFlags) []FrameTile {
	return []FrameTile{{Tile: tile, Palette: palette, Flags: flags}}
}

// quad lays out a 32x32 figure from four consecutive sprite bitmaps.
func quad(base uint16, palette uint8) []FrameTile {
	return []FrameTile{
		{DX: 0, DY: 0, Tile: base, Palette: palette},
		{DX: 16, DY: 0, Tile: base + 1, Palette: palette},
		{DX: 0, DY: 16, Tile: base + 2, Palette: palette},
		{DX: 16, DY: 16, Tile: base + 3, Palette: palette},
	}
}

// mirror flips a quad horizontally by swapping its columns.
func mirror(base uint16, palette uint8) []FrameTile {
	return []FrameTile{
		{DX: 0, DY: 0, Tile: base + 1, Palette: palette, Flags: video.SprHFlip},
		{DX: 16, DY: 0, Tile: base, Palette: palette, Flags: video.SprHFlip},
		{DX: 0, DY: 16, Tile: base + 3, Palette: palette, Flags: video.SprHFlip},
		{DX: 16, DY: 16, Tile: base + 2, Palette: palette, Flags: video.SprHFlip},
	}
}

func pauline(body uint16) []FrameTile {
	return []FrameTile{
		{DX: 0, DY: 0, Tile: assets.SpritePaulineHead, Palette: assets.PalettePauline},
		{DX: 0, DY: 16, Tile: body, Palette: assets.PalettePauline},
	}
}

func mario(tile uint16, flags video.SprFlags) []FrameTile {
	return single(tile, assets.PaletteMario, flags)
}

// Mario's bitmaps face right; the left-facing clips flip them.
var catalog = map[Kind]*Animation{
	KindMarioStandLeft:  {Frames: []Frame{{Tiles: mario(assets.SpriteMarioStand, video.SprHFlip)}}},
	KindMarioStandRight: {Frames: []Frame{{Tiles: mario(assets.SpriteMarioStand, video.SprNone)}}},
	KindMarioWalkLeft: {Frames: []Frame{
		{Delay: 66, Tiles: mario(assets.SpriteMarioStand, video.SprHFlip)},
		{Delay: 66, Tiles: mario(assets.SpriteMarioWalk1, video.SprHFlip)},
		{Delay: 66, Tiles: mario(assets.SpriteMarioWalk2, video.SprHFlip)},
	}},
	KindMarioWalkRight: {Frames: []Frame{
		{Delay: 66, Tiles: mario(assets.SpriteMarioStand, video.SprNone)},
		{Delay: 66, Tiles: mario(assets.SpriteMarioWalk1, video.SprNone)},
		{Delay: 66, Tiles: mario(assets.SpriteMarioWalk2, video.SprNone)},
	}},
	KindMarioJumpLeft:  {Frames: []Frame{{Tiles: mario(assets.SpriteMarioJump, video.SprHFlip)}}},
	KindMarioJumpRight: {Frames: []Frame{{Tiles: mario(assets.SpriteMarioJump, video.SprNone)}}},
	KindMarioClimb: {Frames: []Frame{
		{Delay: 100, Tiles: mario(assets.SpriteMarioClimb, video.SprNone)},
		{Delay: 100, Tiles: mario(assets.SpriteMarioClimb, video.SprHFlip)},
	}},
	KindDonkeyKongClimb: {Frames: []Frame{
		{Delay: 150, Tiles: quad(assets.SpriteDonkeyKongBack, assets.PaletteDonkeyKong)},
		{Delay: 150, Tiles: mirror(assets.SpriteDonkeyKongBack, assets.PaletteDonkeyKong)},
	}},
	KindDonkeyKongStand: {Frames: []Frame{{Tiles: quad(assets.SpriteDonkeyKongFront, assets.PaletteDonkeyKong)}}},
	KindPaulineStandRight: {Frames: []Frame{{Tiles: pauline(assets.SpritePaulineBody)}}},
	KindPaulineHelp: {Frames: []Frame{
		{Delay: 250, Tiles: pauline(assets.SpritePaulineBody)},
		{Delay: 250, Tiles: pauline(assets.SpritePaulineHelp)},
	}},
	KindOilBarrel: {Frames: []Frame{{Tiles: single(assets.SpriteOilBarrel, assets.PaletteOilBarrel, video.SprNone)}}},
	KindOilFire: {Frames: []Frame{
		{Delay: 100, Tiles: single(assets.SpriteOilFire1, assets.PaletteOilFire, video.SprNone)},
		{Delay: 100, Tiles: single(assets.SpriteOilFire2, assets.PaletteOilFire, video.SprNone)},
	}},
	// The empty second frame makes the score blink.
	KindBonus100: {Frames: []Frame{
		{Delay: 250, Tiles: single(assets.SpriteBonus100, assets.PaletteBonus, video.SprNone)},
		{Delay: 250},
	}},
}

func init() {
	for kind, a := range catalog {
		if err := validate(a); err != nil {
			panic(fmt.Sprintf("actor: animation %s: %v", kind, err))
		}
	}
}

func validate(a *Animation) error {
	if len(a.Frames) == 0 || len(a.Frames) > MaxFrames {
		return fmt.Errorf("%d frames, expected 1..%d", len(a.Frames), MaxFrames)
	}
	for i, f := range a.Frames {
		if len(f.Tiles) > MaxFrameTiles {
			return fmt.Errorf("frame %d: %d tiles, expected at most %d", i, len(f.Tiles), MaxFrameTiles)
		}
	}
	return nil
}

// Lookup resolves a kind to its animation.
func Lookup(kind Kind) (*Animation, bool) {
	a, ok := catalog[kind]
	return a, ok
}
