package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/galactix/internal/core"
)

// cellStyle identifies a foreground/background pair.
type cellStyle struct {
	fg, bg core.Color
}

// style builds the lipgloss style for a color pair. Empty colors keep the
// terminal default.
func (c cellStyle) style() lipgloss.Style {
	s := lipgloss.NewStyle()
	if c.fg != core.ColorDefault {
		s = s.Foreground(lipgloss.Color(c.fg))
	}
	if c.bg != core.ColorDefault {
		s = s.Background(lipgloss.Color(c.bg))
	}
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	styles := make(map[cellStyle]lipgloss.Style)
	lookup := func(cs cellStyle) lipgloss.Style {
		st, ok := styles[cs]
		if !ok {
			st = cs.style()
			styles[cs] = st
		}
		return st
	}

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same colors
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := cellStyle{cell.FG, cell.BG}

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (cellStyle{cell.FG, cell.BG}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(lookup(start).Render(run.String()))
		}
	}
	return sb.String()
}
