package video

import (
	"unicode/utf8"

	"github.com/nybblesio/ckong/internal/tilemap"
)

// BlankTile is the font tile for a space and the placeholder drawn for
// disabled background cells.
const BlankTile = tilemap.TileBlank

// Text limits. Background strings are bounded by the grid width, post-pass
// text by a fixed byte budget.
const (
	MaxBgText   = GridWidth
	MaxPostText = 256
)

var punctuation = map[rune]uint16{
	'.':  0x2b,
	'-':  0x2c,
	'=':  0x2d,
	'?':  0x2e,
	'!':  0x2f,
	':':  0x30,
	'/':  0x31,
	'\'': 0x32,
	'<':  0x33,
	'>':  0x34,
	',':  0x35,
}

// GlyphTile maps a rune to its font tile. Lower case letters share the upper
// case glyphs; anything without a glyph renders blank.
func GlyphTile(r rune) uint16 {
	switch {
	case r >= '0' && r <= '9':
		return uint16(r - '0')
	case r >= 'A' && r <= 'Z':
		return 0x11 + uint16(r-'A')
	case r >= 'a' && r <= 'z':
		return 0x11 + uint16(r-'a')
	}
	if t, ok := punctuation[r]; ok {
		return t
	}
	return BlankTile
}

// truncateRunes cuts s to at most n runes.
func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// truncateBytes cuts s to at most n bytes without splitting a rune.
func truncateBytes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
