package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nybblesio/ckong/internal/machine"
	"github.com/nybblesio/ckong/internal/storage"
)

func TestRankLabel(t *testing.T) {
	tests := []struct {
		n        int
		expected string
	}{
		{1, "1ST"}, {2, "2ND"}, {3, "3RD"}, {4, "4TH"},
		{11, "11TH"}, {12, "12TH"}, {13, "13TH"},
		{21, "21ST"}, {22, "22ND"}, {101, "101ST"}, {111, "111TH"},
	}
	for _, tt := range tests {
		if got := rankLabel(tt.n); got != tt.expected {
			t.Errorf("rankLabel(%d) = %q, expected %q", tt.n, got, tt.expected)
		}
	}
}

func TestScoresModelViews(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() = %v", err)
	}
	defer store.Close()

	for _, score := range []int{1200, 5400, 300} {
		if _, err := store.SaveScore("abc", score, 1, 2); err != nil {
			t.Fatalf("SaveScore() = %v", err)
		}
	}

	m := NewScoresModel(store, machine.New(), 100, 40)
	rows := m.table.Rows()
	if len(rows) != 3 {
		t.Fatalf("history rows = %d, expected 3", len(rows))
	}
	if rows[0][2] != "005400" || rows[0][1] != "ABC" {
		t.Errorf("first row = %v, expected ABC 005400", rows[0])
	}
	if !strings.Contains(m.View(), "3 games") {
		t.Error("history view should show the stats line")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoresModel)
	if m.view != viewMachine {
		t.Fatalf("view = %v, expected machine", m.view)
	}
	if got := len(m.table.Rows()); got != len(machine.New().Table) {
		t.Errorf("machine rows = %d, expected %d", got, len(machine.New().Table))
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(ScoresModel)
	if !m.Back() || m.View() != "" {
		t.Error("esc should leave the screen going back")
	}
}

func TestScoresModelWithoutSources(t *testing.T) {
	m := NewScoresModel(nil, nil, 80, 24)
	if !strings.Contains(m.View(), "No games recorded yet") {
		t.Error("empty history should show the placeholder")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if got := len(next.(ScoresModel).table.Rows()); got != 0 {
		t.Errorf("machine rows = %d, expected 0", got)
	}
}
