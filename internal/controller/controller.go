// Package controller drives an engine on behalf of the outside world.
// It accepts direction and restart commands, publishes board, score and
// game-over notifications, and holds a busy gate so that no move is accepted
// while the previous one is still being presented.
package controller

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tilemerge/internal/engine"
)

// Outcome tells the caller what happened to a move request.
type Outcome int

const (
	// OutcomeMoved means the board changed; the gate stays closed until
	// SettlementComplete is called.
	OutcomeMoved Outcome = iota
	// OutcomeNoEffect means the move was applied but nothing slid or merged.
	OutcomeNoEffect
	// OutcomeBusy means the request was ignored because a move is still settling.
	OutcomeBusy
	// OutcomeGameOver means the request was ignored because the game has ended.
	OutcomeGameOver
	// OutcomeRejected means the command itself was invalid.
	OutcomeRejected
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeMoved:
		return "moved"
	case OutcomeNoEffect:
		return "no_effect"
	case OutcomeBusy:
		return "busy"
	case OutcomeGameOver:
		return "game_over"
	case OutcomeRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Controller serializes commands against one engine.
// It is not safe for concurrent use; drive it from a single event loop.
type Controller struct {
	engine    *engine.Engine
	busy      bool
	status    engine.Status
	observers map[int]Observer
	order     []int
	nextID    int
	logger    *log.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for command tracing.
func WithLogger(logger *log.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New wraps an engine. The controller becomes the engine's only writer.
func New(e *engine.Engine, opts ...Option) *Controller {
	c := &Controller{
		engine:    e,
		status:    e.Status(),
		observers: make(map[int]Observer),
		logger:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Subscribe registers an observer and returns a function that removes it.
func (c *Controller) Subscribe(o Observer) (unsubscribe func()) {
	id := c.nextID
	c.nextID++
	c.observers[id] = o
	c.order = append(c.order, id)

	return func() {
		if _, ok := c.observers[id]; !ok {
			return
		}
		delete(c.observers, id)
		for i, v := range c.order {
			if v == id {
				c.order = append(c.order[:i], c.order[i+1:]...)
				break
			}
		}
	}
}

// RequestMove processes one direction command.
func (c *Controller) RequestMove(dir engine.Direction) (Outcome, error) {
	if !dir.Valid() {
		c.logger.Warn("rejected move", "dir", dir)
		return OutcomeRejected, fmt.Errorf("controller: %w", engine.ErrIllegalDirection)
	}
	if c.busy {
		c.logger.Debug("move ignored while busy", "dir", dir)
		return OutcomeBusy, nil
	}
	if c.engine.Status() == engine.StatusGameOver {
		c.logger.Debug("move ignored after game over", "dir", dir)
		return OutcomeGameOver, nil
	}

	c.busy = true
	result, err := c.engine.Move(dir)
	if err != nil {
		c.busy = false
		return OutcomeRejected, fmt.Errorf("controller: %w", err)
	}

	c.logger.Debug("move",
		"dir", dir,
		"moved", result.Moved,
		"delta", result.ScoreDelta,
		"score", c.engine.Score(),
	)

	// Nothing to present, reopen the gate before observers run
	if !result.Moved {
		c.busy = false
	}

	c.publishBoard(result)
	if result.ScoreDelta > 0 {
		c.publishScore(c.engine.Score())
	}
	c.checkGameOver()

	if !result.Moved {
		return OutcomeNoEffect, nil
	}
	return OutcomeMoved, nil
}

// SettlementComplete releases the busy gate once the last move has been
// fully presented.
func (c *Controller) SettlementComplete() {
	c.busy = false
}

// RequestRestart starts a fresh game of the same size. Always allowed;
// any pending settlement is discarded.
func (c *Controller) RequestRestart() {
	c.busy = false
	result := c.engine.Restart()
	c.afterRestart(result)
}

// RequestRestartWithSize starts a fresh game on a size×size board.
// An invalid size leaves the current game and gate untouched.
func (c *Controller) RequestRestartWithSize(size int) error {
	result, err := c.engine.RestartWithSize(size)
	if err != nil {
		return fmt.Errorf("controller: %w", err)
	}
	c.busy = false
	c.afterRestart(result)
	return nil
}

func (c *Controller) afterRestart(result engine.MoveResult) {
	c.logger.Info("restart", "size", c.engine.Size())
	c.status = c.engine.Status()
	c.publishScore(0)
	c.publishBoard(result)
}

// checkGameOver publishes GameOver on the playing -> game over edge only.
func (c *Controller) checkGameOver() {
	status := c.engine.Status()
	prev := c.status
	c.status = status

	if prev == engine.StatusPlaying && status == engine.StatusGameOver {
		c.logger.Info("game over",
			"score", c.engine.Score(),
			"max_tile", c.engine.MaxTile(),
			"moves", c.engine.Moves(),
		)
		c.each(func(o Observer) { o.GameOver() })
	}
}

func (c *Controller) publishBoard(result engine.MoveResult) {
	c.each(func(o Observer) { o.BoardChanged(result) })
}

func (c *Controller) publishScore(score int) {
	c.each(func(o Observer) { o.ScoreChanged(score) })
}

// each visits observers in subscription order over a copy of the list, so
// observers may unsubscribe while being notified.
func (c *Controller) each(fn func(Observer)) {
	ids := make([]int, len(c.order))
	copy(ids, c.order)
	for _, id := range ids {
		if o, ok := c.observers[id]; ok {
			fn(o)
		}
	}
}

// Busy reports whether a move is awaiting settlement.
func (c *Controller) Busy() bool {
	return c.busy
}

// Board returns a copy of the current board.
func (c *Controller) Board() engine.Board {
	return c.engine.Board()
}

// Score returns the current score.
func (c *Controller) Score() int {
	return c.engine.Score()
}

// Status returns the current game status.
func (c *Controller) Status() engine.Status {
	return c.engine.Status()
}

// Snapshot returns the engine snapshot.
func (c *Controller) Snapshot() engine.Snapshot {
	return c.engine.Snapshot()
}
