package engine

import (
	"testing"
)

// rowBoard places row on the first line of an otherwise empty square board.
func rowBoard(t *testing.T, row []int) Board {
	t.Helper()
	rows := make([][]int, len(row))
	rows[0] = row
	for i := 1; i < len(row); i++ {
		rows[i] = make([]int, len(row))
	}
	b, err := BoardFromRows(rows)
	if err != nil {
		t.Fatalf("BoardFromRows(%v) failed: %v", row, err)
	}
	return b
}

func mustBoard(t *testing.T, rows [][]int) Board {
	t.Helper()
	b, err := BoardFromRows(rows)
	if err != nil {
		t.Fatalf("BoardFromRows failed: %v", err)
	}
	return b
}

func TestSlideRowLeft(t *testing.T) {
	tests := []struct {
		name     string
		input    []int
		expected []int
		score    int
	}{
		{name: "simple merge", input: []int{2, 2, 0, 0}, expected: []int{4, 0, 0, 0}, score: 4},
		{name: "merge with trailing tile", input: []int{2, 2, 2, 0}, expected: []int{4, 2, 0, 0}, score: 4},
		{name: "pairwise merges", input: []int{2, 2, 2, 2}, expected: []int{4, 4, 0, 0}, score: 8},
		{name: "two different pairs", input: []int{4, 4, 8, 8}, expected: []int{8, 16, 0, 0}, score: 24},
		{name: "merged tile blocks chain", input: []int{2, 2, 4, 0}, expected: []int{4, 4, 0, 0}, score: 4},
		{name: "merge behind blocker", input: []int{8, 4, 4, 0}, expected: []int{8, 8, 0, 0}, score: 8},
		{name: "no merge possible", input: []int{2, 4, 8, 16}, expected: []int{2, 4, 8, 16}, score: 0},
		{name: "slide with gap", input: []int{0, 0, 2, 2}, expected: []int{4, 0, 0, 0}, score: 4},
		{name: "slide with multiple gaps", input: []int{2, 0, 0, 2}, expected: []int{4, 0, 0, 0}, score: 4},
		{name: "no change needed", input: []int{4, 2, 0, 0}, expected: []int{4, 2, 0, 0}, score: 0},
		{name: "empty row", input: []int{0, 0, 0, 0}, expected: []int{0, 0, 0, 0}, score: 0},
		{name: "single tile", input: []int{0, 4, 0, 0}, expected: []int{4, 0, 0, 0}, score: 0},
		{name: "five wide", input: []int{2, 2, 2, 2, 2}, expected: []int{4, 4, 2, 0, 0}, score: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := rowBoard(t, tt.input)
			expected := rowBoard(t, tt.expected)

			result, _, score := Slide(board, DirLeft)
			if !result.Equal(expected) {
				t.Errorf("Slide(%v, Left) =\n%v\nwant\n%v", tt.input, result, expected)
			}
			if score != tt.score {
				t.Errorf("Slide(%v, Left) score = %d, want %d", tt.input, score, tt.score)
			}
		})
	}
}

func TestSlideRowRight(t *testing.T) {
	tests := []struct {
		name     string
		input    []int
		expected []int
		score    int
	}{
		{name: "gap merge", input: []int{2, 0, 0, 2}, expected: []int{0, 0, 0, 4}, score: 4},
		{name: "three equal", input: []int{2, 2, 2, 0}, expected: []int{0, 0, 2, 4}, score: 4},
		{name: "pairwise merges", input: []int{2, 2, 2, 2}, expected: []int{0, 0, 4, 4}, score: 8},
		{name: "already packed", input: []int{0, 0, 2, 4}, expected: []int{0, 0, 2, 4}, score: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := rowBoard(t, tt.input)
			expected := rowBoard(t, tt.expected)

			result, _, score := Slide(board, DirRight)
			if !result.Equal(expected) {
				t.Errorf("Slide(%v, Right) =\n%v\nwant\n%v", tt.input, result, expected)
			}
			if score != tt.score {
				t.Errorf("Slide(%v, Right) score = %d, want %d", tt.input, score, tt.score)
			}
		})
	}
}

func TestSlideLeftBoard(t *testing.T) {
	board := mustBoard(t, [][]int{
		{2, 2, 0, 0},
		{4, 0, 4, 0},
		{2, 2, 2, 2},
		{0, 0, 0, 2},
	})

	expected := mustBoard(t, [][]int{
		{4, 0, 0, 0},
		{8, 0, 0, 0},
		{4, 4, 0, 0},
		{2, 0, 0, 0},
	})

	result, transitions, score := Slide(board, DirLeft)

	if !result.Equal(expected) {
		t.Errorf("Slide Left: got\n%v\nwant\n%v", result, expected)
	}
	if len(transitions) == 0 {
		t.Error("Slide Left should report transitions")
	}

	expectedScore := 4 + 8 + 8
	if score != expectedScore {
		t.Errorf("Slide Left score = %d, want %d", score, expectedScore)
	}
}

func TestSlideUp(t *testing.T) {
	board := mustBoard(t, [][]int{
		{2, 4, 2, 0},
		{2, 0, 2, 0},
		{0, 4, 2, 0},
		{0, 0, 2, 2},
	})

	expected := mustBoard(t, [][]int{
		{4, 8, 4, 2},
		{0, 0, 4, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	result, _, score := Slide(board, DirUp)

	if !result.Equal(expected) {
		t.Errorf("Slide Up: got\n%v\nwant\n%v", result, expected)
	}
	if score != 4+8+4+4 {
		t.Errorf("Slide Up score = %d, want 20", score)
	}
}

func TestSlideDown(t *testing.T) {
	board := mustBoard(t, [][]int{
		{2, 4, 2, 2},
		{2, 0, 2, 0},
		{0, 4, 2, 0},
		{0, 0, 2, 0},
	})

	expected := mustBoard(t, [][]int{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 4, 0},
		{4, 8, 4, 2},
	})

	result, _, _ := Slide(board, DirDown)

	if !result.Equal(expected) {
		t.Errorf("Slide Down: got\n%v\nwant\n%v", result, expected)
	}
}

func TestSlideTransitionOrder(t *testing.T) {
	board := rowBoard(t, []int{2, 2, 2, 2})

	_, transitions, _ := Slide(board, DirLeft)

	expected := []Transition{
		{From: Pos{0, 1}, To: Pos{0, 0}, Value: 2, Merged: true, NewValue: 4},
		{From: Pos{0, 2}, To: Pos{0, 1}, Value: 2},
		{From: Pos{0, 3}, To: Pos{0, 1}, Value: 2, Merged: true, NewValue: 4},
	}

	if len(transitions) != len(expected) {
		t.Fatalf("got %d transitions, want %d: %+v", len(transitions), len(expected), transitions)
	}
	for i := range expected {
		if transitions[i] != expected[i] {
			t.Errorf("transition %d = %+v, want %+v", i, transitions[i], expected[i])
		}
	}
}

func TestSlideDoesNotMutateInput(t *testing.T) {
	board := rowBoard(t, []int{2, 2, 0, 0})
	before := board.Clone()

	Slide(board, DirLeft)

	if !board.Equal(before) {
		t.Errorf("Slide modified its input:\n%v\nwant\n%v", board, before)
	}
}

func TestSlideAlreadyCompacted(t *testing.T) {
	board := mustBoard(t, [][]int{
		{4, 2, 0, 0},
		{2, 0, 0, 0},
		{8, 4, 2, 0},
		{0, 0, 0, 0},
	})

	result, transitions, score := Slide(board, DirLeft)

	if !result.Equal(board) {
		t.Errorf("compacted board changed:\n%v\nwant\n%v", result, board)
	}
	if len(transitions) != 0 || score != 0 {
		t.Errorf("compacted board produced %d transitions and score %d", len(transitions), score)
	}
}

func TestSlideIllegalDirection(t *testing.T) {
	board := rowBoard(t, []int{2, 2, 0, 0})

	result, transitions, score := Slide(board, Direction(42))

	if !result.Equal(board) || transitions != nil || score != 0 {
		t.Error("Slide with an illegal direction must not change anything")
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in   string
		want Direction
	}{
		{"U", DirUp},
		{"down", DirDown},
		{" Left ", DirLeft},
		{"r", DirRight},
	}

	for _, tt := range tests {
		got, err := ParseDirection(tt.in)
		if err != nil {
			t.Errorf("ParseDirection(%q) failed: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDirection(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseDirection("diagonal"); err == nil {
		t.Error("ParseDirection should reject unknown names")
	}
}

func TestDirectionVector(t *testing.T) {
	tests := []struct {
		dir    Direction
		dx, dy int
	}{
		{DirUp, 0, -1},
		{DirDown, 0, 1},
		{DirLeft, -1, 0},
		{DirRight, 1, 0},
	}

	for _, tt := range tests {
		dx, dy := tt.dir.Vector()
		if dx != tt.dx || dy != tt.dy {
			t.Errorf("%v.Vector() = (%d,%d), want (%d,%d)", tt.dir, dx, dy, tt.dx, tt.dy)
		}
	}
}
