package engine

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Moves   int
	Size    int
	Score   int
	Cells   [][]int
	MaxTile int // Highest tile on board
	Status  Status
}

// Snapshot returns the current game snapshot for determinism verification.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Moves:   e.moves,
		Size:    e.board.Size(),
		Score:   e.score,
		Cells:   e.board.Rows(),
		MaxTile: e.board.MaxTile(),
		Status:  e.status,
	}
}

// Equal reports whether two snapshots describe the same state.
func (s Snapshot) Equal(other Snapshot) bool {
	if s.Moves != other.Moves || s.Size != other.Size || s.Score != other.Score ||
		s.MaxTile != other.MaxTile || s.Status != other.Status || len(s.Cells) != len(other.Cells) {
		return false
	}
	for r := range s.Cells {
		if len(s.Cells[r]) != len(other.Cells[r]) {
			return false
		}
		for c := range s.Cells[r] {
			if s.Cells[r][c] != other.Cells[r][c] {
				return false
			}
		}
	}
	return true
}
