package tilemap

// Map slots used by the game. The remaining slots are free for the editor.
const (
	MapIntro  = 0
	MapStage1 = 1
	Stages    = 4
)

// girderRows are the platform rows shared by every stage, bottom first.
var girderRows = [...]int{31, 27, 23, 19, 15, 11, 7}

// stageLadders holds, per stage, the column of the ladder that rises from
// each platform to the one above it.
var stageLadders = [Stages][len(girderRows) - 1]int{
	{20, 8, 22, 10, 24, 16},
	{12, 24, 6, 20, 10, 16},
	{26, 4, 18, 8, 22, 16},
	{6, 18, 26, 12, 20, 16},
}

var stagePalettes = [Stages]uint8{PaletteGirder, 5, 6, 7}

// DefaultTable returns the built-in layouts: the introduction screen in
// MapIntro, one layout per stage starting at MapStage1, and blank maps after.
func DefaultTable() *Table {
	t := NewTable()
	for i := range t.maps {
		t.maps[i].Fill(TileBlank, 0)
	}
	buildIntro(t.Map(MapIntro))
	for s := 0; s < Stages; s++ {
		buildStage(t.Map(MapStage1+s), s)
	}
	return t
}

// StageMap returns the map slot for a one-based stage number, wrapping
// around after the last stage.
func StageMap(stage int) int {
	if stage < 1 {
		stage = 1
	}
	return MapStage1 + (stage-1)%Stages
}

func girder(m *Map, row, from, to int, palette uint8) {
	for x := from; x <= to; x++ {
		if e := m.At(x, row); e != nil {
			*e = Entry{Tile: TileGirder, Palette: palette}
		}
	}
}

func ladder(m *Map, col, top, bottom int) {
	for y := top; y <= bottom; y++ {
		if e := m.At(col, y); e != nil {
			*e = Entry{Tile: TileLadder, Palette: PaletteLadder}
		}
	}
}

func buildIntro(m *Map) {
	girder(m, 31, 0, Width-1, PaletteGirder)
	girder(m, 7, 8, 23, PaletteGirder)
	ladder(m, 15, 8, 30)
	ladder(m, 16, 8, 30)
}

func buildStage(m *Map, stage int) {
	palette := stagePalettes[stage]
	for i, row := range girderRows {
		if i == len(girderRows)-1 {
			girder(m, row, 8, 23, palette)
			continue
		}
		girder(m, row, 0, Width-1, palette)
	}
	for i, col := range stageLadders[stage] {
		// A ladder covers the platform it leads to and the three rows below.
		upper := girderRows[i+1]
		ladder(m, col, upper, upper+3)
	}
}
