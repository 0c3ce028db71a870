// Package engine implements the sliding-tile merge simulation: board state,
// move resolution, tile spawning, score accounting and game-over detection.
// It has no knowledge of rendering, timing or input devices.
package engine

import (
	"fmt"

	"github.com/vovakirdan/tilemerge/internal/random"
)

// DefaultSpawn4Probability is the chance that a spawned tile is a 4.
const DefaultSpawn4Probability = 0.10

// openingTiles is the number of tiles placed on a fresh board.
const openingTiles = 2

// Status is the terminal state of a game.
type Status int

const (
	StatusPlaying Status = iota
	StatusGameOver
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Engine owns one game session. It is not safe for concurrent use.
type Engine struct {
	board  Board
	score  int
	status Status
	moves  int

	rng        random.Source
	spawn4Prob float64
}

// Option configures an Engine.
type Option func(*Engine)

// WithSource injects the random source used for spawns.
func WithSource(src random.Source) Option {
	return func(e *Engine) {
		e.rng = src
	}
}

// WithSeed uses a math/rand source seeded with seed (0 = time based).
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.rng = random.NewSeeded(seed)
	}
}

// WithSpawn4Probability sets the chance that a spawned tile is a 4.
func WithSpawn4Probability(p float64) Option {
	return func(e *Engine) {
		e.spawn4Prob = p
	}
}

func newEngine(opts []Option) (*Engine, error) {
	e := &Engine{spawn4Prob: DefaultSpawn4Probability}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = random.NewSeeded(0)
	}
	if e.spawn4Prob < 0 || e.spawn4Prob > 1 {
		return nil, fmt.Errorf("engine: spawn probability %v outside [0,1]: %w", e.spawn4Prob, ErrInvalidConfiguration)
	}
	return e, nil
}

// New creates a size×size game with two opening tiles.
func New(size int, opts ...Option) (*Engine, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	e, err := newEngine(opts)
	if err != nil {
		return nil, err
	}
	e.reset(size)
	return e, nil
}

// NewFromBoard creates a game on an explicit board without spawning.
// Used for puzzles, replays and tests.
func NewFromBoard(board Board, opts ...Option) (*Engine, error) {
	if err := checkSize(board.Size()); err != nil {
		return nil, err
	}
	for _, t := range board.Tiles() {
		if !validValue(t.Value) {
			return nil, fmt.Errorf("engine: cell %s value %d is not a tile: %w", t.Pos, t.Value, ErrInvalidConfiguration)
		}
	}
	e, err := newEngine(opts)
	if err != nil {
		return nil, err
	}
	e.board = board.Clone()
	e.refreshStatus()
	return e, nil
}

// NewFromRows is NewFromBoard over literal rows.
func NewFromRows(rows [][]int, opts ...Option) (*Engine, error) {
	board, err := BoardFromRows(rows)
	if err != nil {
		return nil, err
	}
	return NewFromBoard(board, opts...)
}

func checkSize(size int) error {
	if size < MinSize {
		return fmt.Errorf("engine: board size %d below %d: %w", size, MinSize, ErrInvalidConfiguration)
	}
	return nil
}

// reset clears the board and spawns the opening tiles.
func (e *Engine) reset(size int) []Tile {
	e.board = NewBoard(size)
	e.score = 0
	e.moves = 0
	e.status = StatusPlaying

	spawned := make([]Tile, 0, openingTiles)
	for range openingTiles {
		if t, ok := e.spawnTile(); ok {
			spawned = append(spawned, t)
		}
	}
	e.refreshStatus()
	return spawned
}

// Restart discards the current game and starts a fresh one of the same size.
func (e *Engine) Restart() MoveResult {
	spawned := e.reset(e.board.Size())
	return e.restartResult(spawned)
}

// RestartWithSize starts a fresh game on a size×size board.
// An invalid size leaves the current game untouched.
func (e *Engine) RestartWithSize(size int) (MoveResult, error) {
	if err := checkSize(size); err != nil {
		return MoveResult{}, err
	}
	spawned := e.reset(size)
	return e.restartResult(spawned), nil
}

func (e *Engine) restartResult(spawned []Tile) MoveResult {
	return MoveResult{
		Spawned:   spawned,
		Board:     e.board.Clone(),
		Restarted: true,
	}
}

// Move applies one move.
// After game over this is a no-op returning an empty result; callers check
// Status to tell "finished" from "blocked".
func (e *Engine) Move(dir Direction) (MoveResult, error) {
	if !dir.Valid() {
		return MoveResult{}, fmt.Errorf("engine: %v: %w", dir, ErrIllegalDirection)
	}

	result := MoveResult{Direction: dir}
	if e.status == StatusGameOver {
		result.Board = e.board.Clone()
		return result, nil
	}

	next, transitions, gained := Slide(e.board, dir)
	if len(transitions) == 0 {
		// Board didn't change - don't spawn new tile
		result.Board = e.board.Clone()
		return result, nil
	}

	// Commit the whole move at once
	e.board = next
	e.score += gained
	e.moves++

	result.Transitions = transitions
	result.ScoreDelta = gained
	result.Moved = true

	if t, ok := e.spawnTile(); ok {
		result.Spawned = []Tile{t}
	}
	e.refreshStatus()

	result.Board = e.board.Clone()
	return result, nil
}

// spawnTile places a 2 or 4 on a uniformly chosen empty cell.
func (e *Engine) spawnTile() (Tile, bool) {
	empty := e.board.EmptyCells()
	if len(empty) == 0 {
		return Tile{}, false
	}

	cell := empty[e.rng.Intn(len(empty))]

	value := 2
	if e.rng.Float64() < e.spawn4Prob {
		value = 4
	}

	e.board.set(cell.Row, cell.Col, value)
	return Tile{Pos: cell, Value: value}, true
}

// refreshStatus re-derives the status from the board.
func (e *Engine) refreshStatus() {
	if e.board.CanMove() {
		e.status = StatusPlaying
	} else {
		e.status = StatusGameOver
	}
}

// Board returns a copy of the current board.
func (e *Engine) Board() Board {
	return e.board.Clone()
}

// Score returns the accumulated score.
func (e *Engine) Score() int {
	return e.score
}

// Status returns whether the game is still playable.
func (e *Engine) Status() Status {
	return e.status
}

// Size returns the board dimension.
func (e *Engine) Size() int {
	return e.board.Size()
}

// Moves returns the number of successful moves this session.
func (e *Engine) Moves() int {
	return e.moves
}

// MaxTile returns the highest tile on the board.
func (e *Engine) MaxTile() int {
	return e.board.MaxTile()
}
