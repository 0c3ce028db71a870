package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tilemerge/internal/canvas"
	"github.com/vovakirdan/tilemerge/internal/engine"
)

const (
	tileW = 7 // Tile width in cells
	tileH = 3 // Tile height in cells
	gapX  = 2 // Horizontal spacing between tiles
	gapY  = 1 // Vertical spacing between tiles

	hudHeight = 4 // Title and score boxes
)

// Paints outside the tile range. Tiles are painted with their value.
const (
	paintBoard   canvas.Paint = -1
	paintEmpty   canvas.Paint = -2
	paintOverlay canvas.Paint = -3
)

// tileColors is the classic palette; values above 2048 reuse the last entry.
var tileColors = []struct {
	value  int
	bg, fg string
}{
	{0, "#cdc1b4", "#776e65"},
	{2, "#eee4da", "#776e65"},
	{4, "#ede0c8", "#776e65"},
	{8, "#f2b179", "#f9f6f2"},
	{16, "#f59563", "#f9f6f2"},
	{32, "#f67c5f", "#f9f6f2"},
	{64, "#f65e3b", "#f9f6f2"},
	{128, "#edcf72", "#f9f6f2"},
	{256, "#edcc61", "#f9f6f2"},
	{512, "#edc850", "#f9f6f2"},
	{1024, "#edc53f", "#f9f6f2"},
	{2048, "#edc22e", "#f9f6f2"},
}

const boardColor = "#bbada0"

// palette maps canvas paints to lipgloss styles for one renderer.
type palette struct {
	plain   lipgloss.Style
	board   lipgloss.Style
	overlay lipgloss.Style
	tiles   map[int]lipgloss.Style
	top     lipgloss.Style

	title    lipgloss.Style
	hudBox   lipgloss.Style
	hudLabel lipgloss.Style
	hudValue lipgloss.Style
	hint     lipgloss.Style
}

func newPalette(r *lipgloss.Renderer) palette {
	p := palette{
		plain:   r.NewStyle(),
		board:   r.NewStyle().Background(lipgloss.Color(boardColor)),
		overlay: r.NewStyle().Background(lipgloss.Color("#faf8ef")).Foreground(lipgloss.Color("#776e65")).Bold(true),
		tiles:   make(map[int]lipgloss.Style, len(tileColors)),

		title: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#edc22e")),
		hudBox: r.NewStyle().
			Background(lipgloss.Color(boardColor)).
			Padding(0, 1).
			MarginRight(1).
			Align(lipgloss.Center),
		hudLabel: r.NewStyle().Background(lipgloss.Color(boardColor)).Foreground(lipgloss.Color("#eee4da")),
		hudValue: r.NewStyle().Background(lipgloss.Color(boardColor)).Foreground(lipgloss.Color("#ffffff")).Bold(true),
		hint:     r.NewStyle().Foreground(lipgloss.Color("245")),
	}
	for _, c := range tileColors {
		st := r.NewStyle().
			Background(lipgloss.Color(c.bg)).
			Foreground(lipgloss.Color(c.fg)).
			Bold(true)
		p.tiles[c.value] = st
		p.top = st
	}
	return p
}

// style resolves a paint to a style.
func (p palette) style(paint canvas.Paint) lipgloss.Style {
	switch paint {
	case canvas.PaintDefault:
		return p.plain
	case paintBoard:
		return p.board
	case paintEmpty:
		return p.tiles[0]
	case paintOverlay:
		return p.overlay
	}
	if st, ok := p.tiles[int(paint)]; ok {
		return st
	}
	return p.top
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same paint to minimize ANSI escape sequences.
func (p palette) RenderScreen(s *canvas.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startPaint := s.GetCell(x, y).Paint

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Paint != startPaint {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(p.style(startPaint).Render(run.String()))
		}
	}
	return sb.String()
}

// boardDims returns the board size in terminal cells.
func boardDims(size int) (w, h int) {
	return size*(tileW+gapX) + gapX, size*(tileH+gapY) + gapY
}

// slotRect returns the screen area of a tile at a possibly fractional grid
// position, as used while tiles slide between cells.
func slotRect(row, col float64) canvas.Rect {
	x := gapX + int(math.Round(col*float64(tileW+gapX)))
	y := gapY + int(math.Round(row*float64(tileH+gapY)))
	return canvas.NewRect(x, y, tileW, tileH)
}

// frame is everything needed to draw one board frame.
type frame struct {
	board    engine.Board // Board being presented
	anim     *animation
	gameOver bool
	score    int
}

// drawBoard draws the grid, the tiles and any overlay into dst.
func drawBoard(dst *canvas.Screen, f frame) {
	size := f.board.Size()
	w, h := boardDims(size)
	dst.Resize(w, h)
	dst.Clear()

	dst.FillRect(canvas.NewRect(0, 0, w, h), ' ', paintBoard)
	for row := range size {
		for col := range size {
			dst.FillRect(slotRect(float64(row), float64(col)), ' ', paintEmpty)
		}
	}

	switch {
	case f.anim != nil && f.anim.phase == phaseSlide:
		drawSlide(dst, f.anim)
	case f.anim != nil && f.anim.phase == phasePop:
		drawPop(dst, f.anim)
	default:
		for _, t := range f.board.Tiles() {
			drawTile(dst, slotRect(float64(t.Pos.Row), float64(t.Pos.Col)), t.Value)
		}
	}

	if f.gameOver && (f.anim == nil || !f.anim.active()) {
		drawOverlay(dst, "GAME OVER", fmt.Sprintf("Score: %d", f.score), "Press R to restart")
	}
}

// drawSlide draws stationary tiles from the old board, then moving tiles
// at their interpolated positions.
func drawSlide(dst *canvas.Screen, a *animation) {
	for _, t := range a.from.Tiles() {
		if a.moving[t.Pos] {
			continue
		}
		drawTile(dst, slotRect(float64(t.Pos.Row), float64(t.Pos.Col)), t.Value)
	}

	p := a.progress()
	for _, tr := range a.slides {
		row := lerp(tr.From.Row, tr.To.Row, p)
		col := lerp(tr.From.Col, tr.To.Col, p)
		drawTile(dst, slotRect(row, col), tr.Value)
	}
}

// drawPop draws the settled board with spawned tiles growing from the center.
func drawPop(dst *canvas.Screen, a *animation) {
	p := a.progress()
	for _, t := range a.to.Tiles() {
		r := slotRect(float64(t.Pos.Row), float64(t.Pos.Col))
		if a.isSpawned(t.Pos) {
			w := max(1, int(math.Round(float64(tileW)*p)))
			h := max(1, int(math.Round(float64(tileH)*p)))
			r = r.Inset(w, h)
		}
		drawTile(dst, r, t.Value)
	}
}

// drawTile fills r with the tile colour and centers the value when it fits.
func drawTile(dst *canvas.Screen, r canvas.Rect, value int) {
	paint := canvas.Paint(value)
	dst.FillRect(r, ' ', paint)

	label := strconv.Itoa(value)
	if len(label) <= r.W {
		dst.DrawTextIn(r, label, paint)
	}
}

// drawOverlay draws a centered text box over the board.
func drawOverlay(dst *canvas.Screen, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	boxW := min(maxLen+4, dst.Width())
	boxH := min(len(lines)+2, dst.Height())
	box := canvas.NewRect(0, 0, dst.Width(), dst.Height()).Inset(boxW, boxH)

	dst.FillRect(box, ' ', paintOverlay)
	dst.DrawBox(box, paintOverlay)

	cx, _ := box.Center()
	for i, line := range lines {
		dst.DrawText(cx-len(line)/2, box.Y+1+i, line, paintOverlay)
	}
}

// renderHUD draws the title and score boxes.
func (p palette) renderHUD(score, best, maxTile, size int) string {
	box := func(label string, value int) string {
		content := lipgloss.JoinVertical(lipgloss.Center,
			p.hudLabel.Render(label),
			p.hudValue.Render(strconv.Itoa(value)),
		)
		return p.hudBox.Render(content)
	}

	title := lipgloss.JoinVertical(lipgloss.Left,
		p.title.Render("tilemerge"),
		p.hint.Render(fmt.Sprintf("%dx%d", size, size)),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		p.plain.MarginRight(2).Render(title),
		box("SCORE", score),
		box("BEST", best),
		box("MAX", maxTile),
	)
}

// renderTooSmall shows a "window too small" message.
func renderTooSmall(width, height int) string {
	msg := lipgloss.JoinVertical(lipgloss.Center,
		"Window too small",
		"Please resize terminal",
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
}
