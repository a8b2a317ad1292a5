// Package tilemap stores the background layouts used by the stages and the
// editor, and reads and writes them as one binary file.
package tilemap

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

// Map geometry and file layout.
const (
	Width  = 32
	Height = 32
	Size   = Width * Height
	Count  = 16

	Magic = "CKONG11*"
)

// Well-known tiles placed by DefaultTable and inspected by the game logic.
const (
	TileBlank  uint16 = 0x10
	TileGirder uint16 = 0xb0
	TileLadder uint16 = 0xc0
	TileLife   uint16 = 0xff
)

// Palettes used by the default layouts.
const (
	PaletteGirder uint8 = 3
	PaletteLadder uint8 = 4
)

// ErrBadMagic is returned when a file does not start with Magic.
var ErrBadMagic = errors.New("tilemap: bad magic")

// Entry is one cell of a map. Flags uses the background flag bits.
type Entry struct {
	Tile    uint16
	Palette uint8
	Flags   uint8
}

// Map is a row-major grid of entries.
type Map [Size]Entry

// At returns the entry at column x, row y, or nil when out of range.
func (m *Map) At(x, y int) *Entry {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return nil
	}
	return &m[y*Width+x]
}

// Fill sets every entry to tile and palette with no flags.
func (m *Map) Fill(tile uint16, palette uint8) {
	for i := range m {
		m[i] = Entry{Tile: tile, Palette: palette}
	}
}

// Table is the full set of maps held by the tile-map file.
type Table struct {
	maps [Count]Map
}

// NewTable returns a table of zeroed maps.
func NewTable() *Table {
	return &Table{}
}

// Map returns map index, or nil when index is out of range.
func (t *Table) Map(index int) *Map {
	if index < 0 || index >= Count {
		return nil
	}
	return &t.maps[index]
}

// Encode writes the table in file format.
func (t *Table) Encode(w io.Writer) error {
	if _, err := io.WriteString(w, Magic); err != nil {
		return fmt.Errorf("tilemap: write magic: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, &t.maps); err != nil {
		return fmt.Errorf("tilemap: write maps: %w", err)
	}
	return nil
}

// Decode reads a table in file format.
func Decode(r io.Reader) (*Table, error) {
	header := make([]byte, len(Magic))
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, fmt.Errorf("tilemap: read magic: %w", err)
	}
	if !bytes.Equal(header, []byte(Magic)) {
		return nil, ErrBadMagic
	}
	t := NewTable()
	if err := binary.Read(r, binary.LittleEndian, &t.maps); err != nil {
		return nil, fmt.Errorf("tilemap: read maps: %w", err)
	}
	return t, nil
}

// Load reads the table stored at path. On any error the default table is
// returned alongside it, so a missing file (fs.ErrNotExist) can be reported
// as a warning and play continues.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return DefaultTable(), fmt.Errorf("tilemap: open %s: %w", path, err)
	}
	defer f.Close()

	t, err := Decode(bufio.NewReader(f))
	if err != nil {
		return DefaultTable(), err
	}
	return t, nil
}

// Save writes the table to path, replacing any existing file.
func (t *Table) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("tilemap: create %s: %w", path, err)
	}
	w := bufio.NewWriter(f)
	if err := t.Encode(w); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("tilemap: flush %s: %w", path, err)
	}
	return f.Close()
}
