// Package cellcanvas rasterizes grid drawing into a terminal cell buffer
// and renders it with Lipgloss. It implements gridlines.Canvas, so the grid
// library stays unaware of terminals.
//
// Each cell holds a rune and its foreground color. The grid computes line
// colors itself (axis highlights, faded minors), so cells carry RGB values
// directly instead of going through a style-key indirection; at render time
// runs of equal color collapse into a single styled chunk.
//
// One cell is one screen unit on both axes. Terminal cells are roughly
// twice as tall as wide, so circles get their vertical radius halved to
// stay visually round.
//
// Limitation: all runes are assumed to be single-width. CJK or other
// double-width characters are not handled correctly.
package cellcanvas

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Cell is a single character with its foreground color.
type Cell struct {
	Ch rune
	FG color.RGBA
}

// Buffer is a 2D grid of colored cells.
type Buffer struct {
	W, H  int
	Cells [][]Cell // [row][col]
}

// NewBuffer creates a Buffer of the given size filled with spaces.
func NewBuffer(w, h int) *Buffer {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	b := &Buffer{W: w, H: h, Cells: make([][]Cell, h)}
	for y := range b.Cells {
		row := make([]Cell, w)
		for x := range row {
			row[x] = Cell{Ch: ' '}
		}
		b.Cells[y] = row
	}
	return b
}

// InBounds reports whether (x, y) is inside the buffer.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.W && y >= 0 && y < b.H
}

// Set writes a single character at (x, y). Out-of-bounds writes are
// silently ignored.
func (b *Buffer) Set(x, y int, ch rune, fg color.RGBA) {
	if b.InBounds(x, y) {
		b.Cells[y][x] = Cell{Ch: ch, FG: fg}
	}
}

// Fill resets every cell to a space.
func (b *Buffer) Fill() {
	for y := range b.Cells {
		for x := range b.Cells[y] {
			b.Cells[y][x] = Cell{Ch: ' '}
		}
	}
}

// Render converts the buffer into a styled string over the given background
// color. Consecutive cells with the same foreground are merged into runs
// and rendered with one Style.Render call per run, which is significantly
// faster than per-cell rendering. Rows are joined with "\n"; an empty
// buffer returns "".
func (b *Buffer) Render(bg color.RGBA) string {
	if b.W == 0 || b.H == 0 {
		return ""
	}

	bgColor := lipgloss.Color(Hex(bg))
	styleCache := map[color.RGBA]lipgloss.Style{}
	styleFor := func(fg color.RGBA) lipgloss.Style {
		if s, ok := styleCache[fg]; ok {
			return s
		}
		s := lipgloss.NewStyle().Foreground(lipgloss.Color(Hex(fg))).Background(bgColor)
		styleCache[fg] = s
		return s
	}

	lines := make([]string, b.H)
	for y := 0; y < b.H; y++ {
		var sb strings.Builder
		row := b.Cells[y]

		runStart := 0
		runFG := row[0].FG
		flush := func(end int) {
			chunk := make([]rune, end-runStart)
			for i := runStart; i < end; i++ {
				chunk[i-runStart] = row[i].Ch
			}
			sb.WriteString(styleFor(runFG).Render(string(chunk)))
		}

		for x := 1; x < b.W; x++ {
			if row[x].FG != runFG {
				flush(x)
				runStart = x
				runFG = row[x].FG
			}
		}
		flush(b.W)

		lines[y] = sb.String()
	}

	return strings.Join(lines, "\n")
}

// Hex converts a color to the "#rrggbb" form Lipgloss colors use.
func Hex(c color.RGBA) string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}
