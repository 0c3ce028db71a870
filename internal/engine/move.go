package engine

// Transition records one tile leaving its cell during a move.
type Transition struct {
	From     Pos
	To       Pos
	Value    int  // Value of the moving tile
	Merged   bool // Whether the tile merged into the destination
	NewValue int  // Destination value after a merge, 0 otherwise
}

// MoveResult is the immutable outcome of one move or restart.
type MoveResult struct {
	Direction   Direction
	Transitions []Transition // In scan order
	ScoreDelta  int          // Sum of all values created by merges
	Moved       bool         // Whether any tile moved or merged
	Spawned     []Tile       // Tiles added after the move (one), or the opening tiles on restart
	Board       Board        // Board after the move and spawn
	Restarted   bool         // Result describes a fresh board rather than a move
}

// Merges returns only the merge transitions.
func (r MoveResult) Merges() []Transition {
	var merges []Transition
	for _, t := range r.Transitions {
		if t.Merged {
			merges = append(merges, t)
		}
	}
	return merges
}

// lineCell maps (line, step) to a board cell for the given direction.
// Step 0 is the cell against the destination wall, so iterating steps in
// order lets tiles nearest the wall settle first.
func lineCell(dir Direction, line, step, size int) (row, col int) {
	switch dir {
	case DirLeft:
		return line, step
	case DirRight:
		return line, size - 1 - step
	case DirUp:
		return step, line
	default: // DirDown
		return size - 1 - step, line
	}
}

// Slide resolves a move against a copy of board.
// Returns the resulting board, the transitions in scan order and the score gained.
// The input board is never modified.
func Slide(board Board, dir Direction) (Board, []Transition, int) {
	next := board.Clone()
	if !dir.Valid() {
		return next, nil, 0
	}

	size := next.size
	dx, dy := dir.Vector()
	merged := make([]bool, len(next.cells))

	var transitions []Transition
	score := 0

	for line := range size {
		for step := range size {
			row, col := lineCell(dir, line, step, size)
			val := next.Get(row, col)
			if val == 0 {
				continue
			}

			from := Pos{Row: row, Col: col}
			dest := from
			nr, nc := row+dy, col+dx

			// Pure slide through empty cells
			for next.inBounds(nr, nc) && next.Get(nr, nc) == 0 {
				dest = Pos{Row: nr, Col: nc}
				nr, nc = nr+dy, nc+dx
			}

			// Merge with an equal tile that has not merged this move
			if next.inBounds(nr, nc) && next.Get(nr, nc) == val && !merged[nr*size+nc] {
				newVal := val * 2
				next.set(row, col, 0)
				next.set(nr, nc, newVal)
				merged[nr*size+nc] = true
				score += newVal
				transitions = append(transitions, Transition{
					From:     from,
					To:       Pos{Row: nr, Col: nc},
					Value:    val,
					Merged:   true,
					NewValue: newVal,
				})
				continue
			}

			if dest == from {
				continue
			}
			next.set(row, col, 0)
			next.set(dest.Row, dest.Col, val)
			transitions = append(transitions, Transition{
				From:  from,
				To:    dest,
				Value: val,
			})
		}
	}

	return next, transitions, score
}
