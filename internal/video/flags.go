package video

// BgFlags is the flag set of a background cell. The bit values are part of
// the tile-map file format and must not change.
type BgFlags uint8

const (
	BgNone    BgFlags = 0b00000000
	BgEnabled BgFlags = 0b00000001
	BgHFlip   BgFlags = 0b00000010
	BgVFlip   BgFlags = 0b00000100
	BgChanged BgFlags = 0b00001000
	BgSelect  BgFlags = 0b00010000
)

// Has reports whether every bit of mask is set.
func (f BgFlags) Has(mask BgFlags) bool { return f&mask == mask }

// With returns f with mask set.
func (f BgFlags) With(mask BgFlags) BgFlags { return f | mask }

// Without returns f with mask cleared.
func (f BgFlags) Without(mask BgFlags) BgFlags { return f &^ mask }

// SprFlags is the flag set of a sprite-control-block and of an animation
// frame tile.
type SprFlags uint8

const (
	SprNone     SprFlags = 0b00000000
	SprEnabled  SprFlags = 0b00000001
	SprCollided SprFlags = 0b00000010
	SprHFlip    SprFlags = 0b00000100
	SprVFlip    SprFlags = 0b00001000
	SprChanged  SprFlags = 0b00010000
)

// Has reports whether every bit of mask is set.
func (f SprFlags) Has(mask SprFlags) bool { return f&mask == mask }

// With returns f with mask set.
func (f SprFlags) With(mask SprFlags) SprFlags { return f | mask }

// Without returns f with mask cleared.
func (f SprFlags) Without(mask SprFlags) SprFlags { return f &^ mask }
