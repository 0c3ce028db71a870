package engine

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// DefaultSize is the classic 4x4 board.
	DefaultSize = 4
	// MinSize is the smallest board the engine accepts.
	MinSize = 2
)

// Pos is a cell coordinate, origin at the top-left.
type Pos struct {
	Row int
	Col int
}

// String formats the position as (row,col).
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Tile is a valued cell.
type Tile struct {
	Pos   Pos
	Value int
}

// Board is an N×N row-major grid of cell values. 0 means empty.
// Board values handed out by the engine are copies; mutating them never
// affects engine state.
type Board struct {
	size  int
	cells []int
}

// NewBoard returns an empty size×size board.
func NewBoard(size int) Board {
	return Board{
		size:  size,
		cells: make([]int, size*size),
	}
}

// BoardFromRows builds a board from explicit rows.
// Rows must form a square of at least MinSize, and every value must be 0 or a
// power of two ≥ 2.
func BoardFromRows(rows [][]int) (Board, error) {
	size := len(rows)
	if size < MinSize {
		return Board{}, fmt.Errorf("engine: board size %d below %d: %w", size, MinSize, ErrInvalidConfiguration)
	}

	b := NewBoard(size)
	for r, row := range rows {
		if len(row) != size {
			return Board{}, fmt.Errorf("engine: row %d has %d cells, want %d: %w", r, len(row), size, ErrInvalidConfiguration)
		}
		for c, v := range row {
			if !validValue(v) {
				return Board{}, fmt.Errorf("engine: cell (%d,%d) value %d is not a tile: %w", r, c, v, ErrInvalidConfiguration)
			}
			b.cells[r*size+c] = v
		}
	}
	return b, nil
}

// ParseBoard reads the plain-text grid produced by Board.String.
// Cells are whitespace separated; "." and "0" both mean empty.
func ParseBoard(s string) (Board, error) {
	var rows [][]int
	for line := range strings.SplitSeq(strings.TrimSpace(s), "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		row := make([]int, len(fields))
		for i, f := range fields {
			if f == "." {
				continue
			}
			v, err := strconv.Atoi(f)
			if err != nil {
				return Board{}, fmt.Errorf("engine: bad cell %q: %w", f, ErrInvalidConfiguration)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	return BoardFromRows(rows)
}

// validValue reports whether v may appear on a board.
func validValue(v int) bool {
	if v == 0 {
		return true
	}
	return v >= 2 && v&(v-1) == 0
}

// Size returns the board dimension N.
func (b Board) Size() int {
	return b.size
}

// Get returns the value at (row, col). Out-of-bounds cells read as 0.
func (b Board) Get(row, col int) int {
	if !b.inBounds(row, col) {
		return 0
	}
	return b.cells[row*b.size+col]
}

// At returns the value at p.
func (b Board) At(p Pos) int {
	return b.Get(p.Row, p.Col)
}

func (b Board) inBounds(row, col int) bool {
	return row >= 0 && row < b.size && col >= 0 && col < b.size
}

func (b Board) set(row, col, v int) {
	b.cells[row*b.size+col] = v
}

// Clone returns a deep copy.
func (b Board) Clone() Board {
	c := Board{size: b.size, cells: make([]int, len(b.cells))}
	copy(c.cells, b.cells)
	return c
}

// Equal reports whether both boards have the same size and cells.
func (b Board) Equal(other Board) bool {
	if b.size != other.size || len(b.cells) != len(other.cells) {
		return false
	}
	for i, v := range b.cells {
		if other.cells[i] != v {
			return false
		}
	}
	return true
}

// Rows returns a copy of the grid as a slice of rows.
func (b Board) Rows() [][]int {
	rows := make([][]int, b.size)
	for r := range b.size {
		rows[r] = make([]int, b.size)
		copy(rows[r], b.cells[r*b.size:(r+1)*b.size])
	}
	return rows
}

// EmptyCells returns coordinates of all empty cells in row-major order.
func (b Board) EmptyCells() []Pos {
	var cells []Pos
	for r := range b.size {
		for c := range b.size {
			if b.cells[r*b.size+c] == 0 {
				cells = append(cells, Pos{Row: r, Col: c})
			}
		}
	}
	return cells
}

// Tiles returns every nonzero cell in row-major order.
func (b Board) Tiles() []Tile {
	var tiles []Tile
	for r := range b.size {
		for c := range b.size {
			if v := b.cells[r*b.size+c]; v != 0 {
				tiles = append(tiles, Tile{Pos: Pos{Row: r, Col: c}, Value: v})
			}
		}
	}
	return tiles
}

// HasEmptyCell returns true if there's at least one empty cell.
func (b Board) HasEmptyCell() bool {
	for _, v := range b.cells {
		if v == 0 {
			return true
		}
	}
	return false
}

// HasPossibleMerge returns true if any horizontally or vertically adjacent
// tiles hold the same nonzero value.
func (b Board) HasPossibleMerge() bool {
	for r := range b.size {
		for c := range b.size {
			val := b.cells[r*b.size+c]
			if val == 0 {
				continue
			}
			// Check right neighbor
			if c < b.size-1 && b.cells[r*b.size+c+1] == val {
				return true
			}
			// Check bottom neighbor
			if r < b.size-1 && b.cells[(r+1)*b.size+c] == val {
				return true
			}
		}
	}
	return false
}

// CanMove returns true if some direction would change the board.
func (b Board) CanMove() bool {
	return b.HasEmptyCell() || b.HasPossibleMerge()
}

// MaxTile returns the maximum tile value on the board.
func (b Board) MaxTile() int {
	maxVal := 0
	for _, v := range b.cells {
		if v > maxVal {
			maxVal = v
		}
	}
	return maxVal
}

// Sum returns the total of all cell values.
func (b Board) Sum() int {
	total := 0
	for _, v := range b.cells {
		total += v
	}
	return total
}

// String renders the board as right-aligned columns, "." for empty cells.
func (b Board) String() string {
	width := max(len(strconv.Itoa(b.MaxTile())), 1)

	var sb strings.Builder
	for r := range b.size {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := range b.size {
			if c > 0 {
				sb.WriteByte(' ')
			}
			cell := "."
			if v := b.cells[r*b.size+c]; v != 0 {
				cell = strconv.Itoa(v)
			}
			fmt.Fprintf(&sb, "%*s", width, cell)
		}
	}
	return sb.String()
}
