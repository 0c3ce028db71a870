// Package canvas provides a character cell buffer that the terminal UI
// draws the board into. Each cell carries a rune and a Paint key; turning
// paints into terminal styles is left to the renderer.
package canvas

import (
	"strings"
)

// Paint is a renderer-defined style key attached to each cell.
type Paint int

// PaintDefault is the paint of a cleared cell.
const PaintDefault Paint = 0

// Cell is one character position on the screen.
type Cell struct {
	Rune  rune
	Paint Paint
}

var blank = Cell{Rune: ' ', Paint: PaintDefault}

// Screen is a 2D character buffer.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  max(width, 0),
		height: max(height, 0),
	}
	s.allocate()
	s.Clear()
	return s
}

func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == s.width && height == s.height {
		return
	}

	oldCells := s.cells
	copyW := min(s.width, width)
	copyH := min(s.height, height)

	s.width = width
	s.height = height
	s.allocate()
	s.Clear()

	for y := range copyH {
		copy(s.cells[y][:copyW], oldCells[y][:copyW])
	}
}

// Clear fills the entire screen with unpainted spaces.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blank
		}
	}
}

// Set places a rune with the given paint.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune, p Paint) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = Cell{Rune: r, Paint: p}
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return blank
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string, p Paint) {
	i := 0
	for _, r := range text {
		s.Set(x+i, y, r, p)
		i++
	}
}

// DrawTextIn centers text on the middle row of r.
func (s *Screen) DrawTextIn(r Rect, text string, p Paint) {
	n := len([]rune(text))
	cx, cy := r.Center()
	s.DrawText(cx-n/2, cy, text, p)
}

// FillRect fills a rectangular area with the given rune and paint.
func (s *Screen) FillRect(r Rect, fill rune, p Paint) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.Set(x, y, fill, p)
		}
	}
}

// DrawBox draws a box outline using box-drawing characters.
func (s *Screen) DrawBox(r Rect, p Paint) {
	if r.W < 2 || r.H < 2 {
		return
	}

	s.Set(r.X, r.Y, '┌', p)
	s.Set(r.Right()-1, r.Y, '┐', p)
	s.Set(r.X, r.Bottom()-1, '└', p)
	s.Set(r.Right()-1, r.Bottom()-1, '┘', p)

	for x := r.X + 1; x < r.Right()-1; x++ {
		s.Set(x, r.Y, '─', p)
		s.Set(x, r.Bottom()-1, '─', p)
	}

	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		s.Set(r.X, y, '│', p)
		s.Set(r.Right()-1, y, '│', p)
	}
}

// String converts the screen buffer to plain text, rows joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := range s.height {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := range s.width {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the specified row as plain text.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	runes := make([]rune, s.width)
	for x, c := range s.cells[y] {
		runes[x] = c.Rune
	}
	return string(runes)
}
