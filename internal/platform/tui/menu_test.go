package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestMenuSelection(t *testing.T) {
	tests := []struct {
		name     string
		keys     []tea.KeyMsg
		expected MenuChoice
	}{
		{"enter plays", []tea.KeyMsg{{Type: tea.KeyEnter}}, ChoicePlay},
		{"down edits", []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyEnter}}, ChoiceEdit},
		{"up stops at top", []tea.KeyMsg{{Type: tea.KeyUp}, {Type: tea.KeyEnter}}, ChoicePlay},
		{"bottom is quit", []tea.KeyMsg{
			{Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyEnter},
		}, ChoiceQuit},
		{"q quits", []tea.KeyMsg{{Type: tea.KeyRunes, Runes: []rune{'q'}}}, ChoiceQuit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m tea.Model = NewMenuModel(80, 24)
			for _, k := range tt.keys {
				m, _ = m.Update(k)
			}
			if got := m.(MenuModel).Selected(); got != tt.expected {
				t.Errorf("Selected() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText() = %q, expected %q", got, "  ab")
	}
	if got := centerText("abcdef", 4); got != "abcdef" {
		t.Errorf("centerText() = %q, expected %q", got, "abcdef")
	}
}
