package controller

import "github.com/vovakirdan/tilemerge/internal/engine"

// Observer receives game notifications. Calls are synchronous and arrive in
// emission order.
type Observer interface {
	// BoardChanged fires after every processed move, including moves with no
	// effect, and after a restart (result.Restarted is set).
	BoardChanged(result engine.MoveResult)

	// ScoreChanged fires whenever the score changes, including the reset to 0.
	ScoreChanged(score int)

	// GameOver fires once when the game transitions from playing to game over.
	GameOver()
}

// ObserverFuncs adapts plain functions to Observer. Nil fields are skipped.
type ObserverFuncs struct {
	OnBoardChanged func(engine.MoveResult)
	OnScoreChanged func(int)
	OnGameOver     func()
}

// Ensure ObserverFuncs implements Observer
var _ Observer = ObserverFuncs{}

// BoardChanged implements Observer.
func (f ObserverFuncs) BoardChanged(result engine.MoveResult) {
	if f.OnBoardChanged != nil {
		f.OnBoardChanged(result)
	}
}

// ScoreChanged implements Observer.
func (f ObserverFuncs) ScoreChanged(score int) {
	if f.OnScoreChanged != nil {
		f.OnScoreChanged(score)
	}
}

// GameOver implements Observer.
func (f ObserverFuncs) GameOver() {
	if f.OnGameOver != nil {
		f.OnGameOver()
	}
}
