package engine

import (
	"errors"
	"testing"
)

func TestBoardFromRowsValidation(t *testing.T) {
	tests := []struct {
		name string
		rows [][]int
	}{
		{name: "too small", rows: [][]int{{2}}},
		{name: "not square", rows: [][]int{{2, 0, 0}, {0, 0, 0}}},
		{name: "ragged", rows: [][]int{{2, 0}, {0}}},
		{name: "not power of two", rows: [][]int{{3, 0}, {0, 0}}},
		{name: "one is not a tile", rows: [][]int{{1, 0}, {0, 0}}},
		{name: "negative", rows: [][]int{{-2, 0}, {0, 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := BoardFromRows(tt.rows); !errors.Is(err, ErrInvalidConfiguration) {
				t.Errorf("BoardFromRows(%v) error = %v, want ErrInvalidConfiguration", tt.rows, err)
			}
		})
	}
}

func TestParseBoard(t *testing.T) {
	input := `
   2    .    .    4
   .   16    .    .
   .    .    .    .
2048    .    0    2
`
	b, err := ParseBoard(input)
	if err != nil {
		t.Fatalf("ParseBoard failed: %v", err)
	}

	if b.Size() != 4 {
		t.Errorf("Size = %d, want 4", b.Size())
	}
	if b.Get(0, 3) != 4 || b.Get(1, 1) != 16 || b.Get(3, 0) != 2048 || b.Get(3, 2) != 0 {
		t.Errorf("unexpected cells:\n%v", b)
	}

	again, err := ParseBoard(b.String())
	if err != nil {
		t.Fatalf("ParseBoard(String()) failed: %v", err)
	}
	if !again.Equal(b) {
		t.Errorf("String() did not parse back:\n%v\nvs\n%v", again, b)
	}
}

func TestParseBoardBadCell(t *testing.T) {
	if _, err := ParseBoard("2 x\n0 0"); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("ParseBoard error = %v, want ErrInvalidConfiguration", err)
	}
}

func TestBoardString(t *testing.T) {
	b := mustBoard(t, [][]int{
		{2, 0},
		{128, 4},
	})

	want := "  2   .\n128   4"
	if got := b.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestMaxTile(t *testing.T) {
	b := mustBoard(t, [][]int{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4},
		{8, 16, 32, 64},
	})

	if got := b.MaxTile(); got != 2048 {
		t.Errorf("MaxTile = %d, want 2048", got)
	}
}

func TestEmptyCells(t *testing.T) {
	b := mustBoard(t, [][]int{
		{2, 0, 8, 0},
		{0, 64, 0, 256},
		{512, 0, 2048, 0},
		{0, 16, 0, 64},
	})

	cells := b.EmptyCells()
	if len(cells) != 8 {
		t.Errorf("EmptyCells count = %d, want 8", len(cells))
	}
	if cells[0] != (Pos{0, 1}) || cells[len(cells)-1] != (Pos{3, 2}) {
		t.Errorf("EmptyCells not row-major: %v", cells)
	}
}

func TestHasPossibleMergeIgnoresEmptyPairs(t *testing.T) {
	b := mustBoard(t, [][]int{
		{2, 4},
		{0, 0},
	})

	if b.HasPossibleMerge() {
		t.Error("two adjacent empty cells are not a merge")
	}
	if !b.CanMove() {
		t.Error("board with empty cells can move")
	}
}

func TestBoardCloneIndependent(t *testing.T) {
	b := mustBoard(t, [][]int{
		{2, 0},
		{0, 0},
	})
	c := b.Clone()
	c.set(1, 1, 4)

	if b.Get(1, 1) != 0 {
		t.Error("Clone shares storage with the original")
	}
	if b.Equal(c) {
		t.Error("boards with different cells compare equal")
	}
}
