package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nybblesio/ckong/internal/core"
	"github.com/nybblesio/ckong/internal/video"
)

func TestFitScale(t *testing.T) {
	tests := []struct {
		name       string
		cols, rows int
		expected   int
	}{
		{"full size", 256, 128, 1},
		{"large terminal", 300, 200, 1},
		{"half", 128, 64, 2},
		{"quarter", 80, 40, 4},
		{"tiny", 10, 5, MaxScale},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FitScale(256, 256, tt.cols, tt.rows); got != tt.expected {
				t.Errorf("FitScale(256, 256, %d, %d) = %d, expected %d", tt.cols, tt.rows, got, tt.expected)
			}
		})
	}
}

func TestRenderSurfaceSize(t *testing.T) {
	s := core.NewSurface(16, 16)

	tests := []struct {
		scale        int
		rows, width  int
	}{
		{1, 8, 16},
		{2, 4, 8},
		{4, 2, 4},
	}

	for _, tt := range tests {
		out := RenderSurface(s, Layout{Scale: tt.scale}, nil)
		lines := strings.Split(out, "\n")
		if len(lines) != tt.rows {
			t.Errorf("scale %d: rows = %d, expected %d", tt.scale, len(lines), tt.rows)
		}
		for i, line := range lines {
			if w := lipgloss.Width(line); w != tt.width {
				t.Errorf("scale %d: row %d width = %d, expected %d", tt.scale, i, w, tt.width)
			}
		}
	}
}

func TestRenderSurfaceHalfBlocks(t *testing.T) {
	s := core.NewSurface(8, 8)
	s.Fill(core.RGB(255, 0, 0))

	out := RenderSurface(s, Layout{Scale: 1}, nil)
	if n := strings.Count(out, string(halfBlock)); n != 8*4 {
		t.Errorf("half blocks = %d, expected %d", n, 8*4)
	}
}

func TestRenderSurfaceOverlay(t *testing.T) {
	s := core.NewSurface(32, 32)
	overlay := []video.TextCommand{
		{X: 4, Y: 2, Color: core.RGB(255, 255, 255), Text: "HI"},
		{X: 30, Y: 4, Color: core.RGB(255, 255, 255), Text: "CLIPPED"},
		{X: 0, Y: 200, Color: core.RGB(255, 255, 255), Text: "GONE"},
	}

	out := RenderSurface(s, Layout{Scale: 1}, overlay)
	lines := strings.Split(out, "\n")

	if !strings.Contains(lines[1], "HI") {
		t.Errorf("row 1 = %q, expected it to contain HI", lines[1])
	}
	if !strings.Contains(lines[2], "CL") || strings.Contains(lines[2], "CLI") {
		t.Errorf("row 2 = %q, expected overlay cut at the right edge", lines[2])
	}
	if strings.Contains(out, "GONE") {
		t.Error("text below the surface should be dropped")
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 32 {
			t.Errorf("row %d width = %d, expected 32", i, w)
		}
	}
}

func TestRenderSurfaceOffset(t *testing.T) {
	s := core.NewSurface(8, 8)

	out := RenderSurface(s, Layout{Scale: 1, OffsetX: 3, OffsetY: 2}, nil)
	lines := strings.Split(out, "\n")
	if len(lines) != 4+2 {
		t.Fatalf("rows = %d, expected %d", len(lines), 6)
	}
	for i := 0; i < 2; i++ {
		if lines[i] != "" {
			t.Errorf("row %d = %q, expected blank", i, lines[i])
		}
	}
	if !strings.HasPrefix(lines[2], "   ") {
		t.Errorf("row 2 = %q, expected three leading spaces", lines[2])
	}
	if w := lipgloss.Width(lines[2]); w != 8+3 {
		t.Errorf("row 2 width = %d, expected %d", w, 11)
	}
}

func TestKeyMapButton(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Button
		ok       bool
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ButtonDpadUp, true},
		{"wasd left", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}, core.ButtonDpadLeft, true},
		{"space jumps", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ButtonA, true},
		{"coin", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'5'}}, core.ButtonBack, true},
		{"start", tea.KeyMsg{Type: tea.KeyEnter}, core.ButtonStart, true},
		{"next map", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{']'}}, core.ButtonRightShoulder, true},
		{"paste", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}}, core.ButtonRightStick, true},
		{"unbound", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'m'}}, core.ButtonCount, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := keys.Button(tt.msg)
			if got != tt.expected || ok != tt.ok {
				t.Errorf("Button(%q) = %v, %v, expected %v, %v", tt.msg.String(), got, ok, tt.expected, tt.ok)
			}
		})
	}
}
