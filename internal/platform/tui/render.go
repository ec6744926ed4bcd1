package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bitarcade/internal/core"
)

// upperHalf paints the top pixel with the foreground and the bottom one with the background.
const upperHalf = '▀'

// cellColors is the pixel pair shown by one terminal cell.
type cellColors struct {
	top, bottom uint32
}

// frameSize returns the terminal cells needed to draw a frame at the given sampling step.
func frameSize(f *core.Frame, sample int) (cols, rows int) {
	sample = max(sample, 1)
	cols = (f.Width() + sample - 1) / sample
	rows = (f.Height() + 2*sample - 1) / (2 * sample)
	return cols, rows
}

// RenderFrame converts a frame into styled half-block text. One cell covers
// sample pixels horizontally and 2*sample vertically; the pixel at the centre
// of each half is shown.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderFrame(f *core.Frame, sample int) string {
	sample = max(sample, 1)
	cols, rows := frameSize(f, sample)
	off := sample / 2
	styles := make(map[cellColors]lipgloss.Style)

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(cols*rows*4 + rows)

	for y := range rows {
		if y > 0 {
			sb.WriteRune('\n')
		}
		top := 2*y*sample + off
		bottom := top + sample

		// Group consecutive cells with the same colors for efficiency
		x := 0
		for x < cols {
			start := cellColors{f.At(x*sample+off, top), f.At(x*sample+off, bottom)}
			n := 0
			for x < cols && (cellColors{f.At(x*sample+off, top), f.At(x*sample+off, bottom)}) == start {
				n++
				x++
			}

			style, ok := styles[start]
			if !ok {
				style = lipgloss.NewStyle().
					Foreground(lipgloss.Color(core.Unpack(start.top).Hex())).
					Background(lipgloss.Color(core.Unpack(start.bottom).Hex()))
				styles[start] = style
			}
			sb.WriteString(style.Render(strings.Repeat(string(upperHalf), n)))
		}
	}
	return sb.String()
}
