package game

import "github.com/nybblesio/ckong/internal/state"

// State identifiers.
const (
	StateBoot state.ID = iota + 1
	StateTitle
	StateInsertCoin
	StateCredit
	StateLongIntroduction
	StateHowHigh
	StateHighScore
	StateGameScreen1
	StateGameScreen2
	StateGameScreen3
	StateGameScreen4
	StateEditor
	StateEditorMenu
	StateEditorPickTile
	StateEditorPickPalette
)

// stageState returns the game screen state for a one-based stage.
func stageState(stage int) state.ID {
	if stage < 1 {
		stage = 1
	}
	return StateGameScreen1 + state.ID((stage-1)%4)
}

func registerStates(m *state.Machine[*Context]) {
	m.Register(StateBoot, "boot", &bootState{})
	m.Register(StateTitle, "title", &titleState{})
	m.Register(StateInsertCoin, "insert-coin", &insertCoinState{})
	m.Register(StateCredit, "credit", &creditState{})
	m.Register(StateLongIntroduction, "long-introduction", &introState{})
	m.Register(StateHowHigh, "how-high", &howHighState{})
	m.Register(StateHighScore, "high-score", &highScoreState{})
	m.Register(StateGameScreen1, "game-screen-1", &stageScreen{stage: 1})
	m.Register(StateGameScreen2, "game-screen-2", &stageScreen{stage: 2})
	m.Register(StateGameScreen3, "game-screen-3", &stageScreen{stage: 3})
	m.Register(StateGameScreen4, "game-screen-4", &stageScreen{stage: 4})
	m.Register(StateEditor, "editor", &editorState{})
	m.Register(StateEditorMenu, "editor-menu", &editorMenuState{})
	m.Register(StateEditorPickTile, "editor-pick-tile", &pickTileState{})
	m.Register(StateEditorPickPalette, "editor-pick-palette", &pickPaletteState{})
}
