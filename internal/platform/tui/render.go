package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nybblesio/ckong/internal/core"
	"github.com/nybblesio/ckong/internal/video"
)

// halfBlock shows the top pixel as foreground and the bottom one as
// background, so one terminal row covers two pixel rows.
const halfBlock = '▀'

// Layout places the surface in the terminal.
type Layout struct {
	Scale   int // surface pixels per terminal column
	OffsetX int // terminal columns before the frame
	OffsetY int // terminal rows before the frame
}

// MaxScale is the coarsest supported scale.
const MaxScale = 8

// FitScale returns the finest scale at which the surface fits in a
// terminal of cols by rows cells, or MaxScale when none does.
func FitScale(surfaceW, surfaceH, cols, rows int) int {
	for scale := 1; scale < MaxScale; scale++ {
		if surfaceW/scale <= cols && surfaceH/(2*scale) <= rows {
			return scale
		}
	}
	return MaxScale
}

type cell struct {
	r      rune
	fg, bg core.Color
}

// RenderSurface converts the surface and the post-pass text into a styled
// string. Adjacent cells with the same colors share one style run.
func RenderSurface(s *core.Surface, layout Layout, overlay []video.TextCommand) string {
	scale := layout.Scale
	if scale < 1 {
		scale = 1
	}
	cols := s.Width() / scale
	rows := s.Height() / (2 * scale)

	grid := make([][]cell, rows)
	for row := range grid {
		grid[row] = make([]cell, cols)
		for col := range grid[row] {
			x, y := col*scale, row*2*scale
			grid[row][col] = cell{r: halfBlock, fg: s.Get(x, y), bg: s.Get(x, y+scale)}
		}
	}

	for _, cmd := range overlay {
		row := cmd.Y / (2 * scale)
		if row < 0 || row >= rows {
			continue
		}
		col := cmd.X / scale
		for _, r := range cmd.Text {
			if col >= 0 && col < cols {
				grid[row][col] = cell{r: r, fg: cmd.Color, bg: grid[row][col].bg}
			}
			col++
		}
	}

	styles := make(map[[2]core.Color]lipgloss.Style)
	style := func(fg, bg core.Color) lipgloss.Style {
		k := [2]core.Color{fg, bg}
		st, ok := styles[k]
		if !ok {
			st = lipgloss.NewStyle().
				Foreground(lipgloss.Color(fg.Hex())).
				Background(lipgloss.Color(bg.Hex()))
			styles[k] = st
		}
		return st
	}

	var sb strings.Builder
	sb.Grow((cols*2 + layout.OffsetX + 1) * (rows + layout.OffsetY))
	for i := 0; i < layout.OffsetY; i++ {
		sb.WriteRune('\n')
	}
	pad := strings.Repeat(" ", max(layout.OffsetX, 0))

	for row := range grid {
		if row > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(pad)

		// Group consecutive cells with the same colors
		line := grid[row]
		x := 0
		for x < cols {
			start := line[x]
			var run strings.Builder
			for x < cols && line[x].fg == start.fg && line[x].bg == start.bg {
				run.WriteRune(line[x].r)
				x++
			}
			sb.WriteString(style(start.fg, start.bg).Render(run.String()))
		}
	}
	return sb.String()
}
