package tui

import (
	"github.com/vovakirdan/tilemerge/internal/engine"
)

// animationPhase represents the current phase of animation.
type animationPhase int

const (
	phaseNone animationPhase = iota
	phaseSlide
	phasePop
)

// animation presents one accepted move: tiles slide from their old cells,
// then the spawned tile pops in. The controller's gate stays closed until
// the animation reports it has finished.
type animation struct {
	phase      animationPhase
	ticks      int
	slideTicks int
	popTicks   int

	from   engine.Board        // Board before the move
	to     engine.Board        // Board after the move, including the spawn
	slides []engine.Transition // Tiles in motion during the slide phase
	moving map[engine.Pos]bool // Origins of sliding tiles
	pop    []engine.Tile       // Tiles popping in after the slide
}

func newAnimation(slideTicks, popTicks int) animation {
	return animation{slideTicks: slideTicks, popTicks: popTicks}
}

// start begins presenting result on top of from.
// Returns false when there is nothing to animate.
func (a *animation) start(from engine.Board, result engine.MoveResult) bool {
	a.from = from
	a.to = result.Board
	a.slides = result.Transitions
	a.pop = result.Spawned
	a.moving = make(map[engine.Pos]bool, len(result.Transitions))
	for _, tr := range result.Transitions {
		a.moving[tr.From] = true
	}

	a.ticks = 0
	switch {
	case a.slideTicks > 0 && len(a.slides) > 0:
		a.phase = phaseSlide
	case a.popTicks > 0 && len(a.pop) > 0:
		a.phase = phasePop
	default:
		a.stop()
		return false
	}
	return true
}

// active reports whether a move is still being presented.
func (a *animation) active() bool {
	return a.phase != phaseNone
}

// step advances the animation by one tick.
// Returns true when the animation has just finished.
func (a *animation) step() bool {
	if a.phase == phaseNone {
		return false
	}

	a.ticks++
	if a.ticks < a.duration() {
		return false
	}

	if a.phase == phaseSlide && a.popTicks > 0 && len(a.pop) > 0 {
		a.phase = phasePop
		a.ticks = 0
		return false
	}

	a.stop()
	return true
}

// stop discards any animation in flight.
func (a *animation) stop() {
	a.phase = phaseNone
	a.ticks = 0
	a.slides = nil
	a.moving = nil
	a.pop = nil
}

func (a *animation) duration() int {
	switch a.phase {
	case phaseSlide:
		return a.slideTicks
	case phasePop:
		return a.popTicks
	default:
		return 0
	}
}

// progress returns the eased completion of the current phase in [0, 1].
func (a *animation) progress() float64 {
	d := a.duration()
	if d <= 0 {
		return 1
	}
	return easeOutQuad(min(float64(a.ticks)/float64(d), 1))
}

// isSpawned reports whether p holds a tile that is still popping in.
func (a *animation) isSpawned(p engine.Pos) bool {
	for _, t := range a.pop {
		if t.Pos == p {
			return true
		}
	}
	return false
}

// easeOutQuad provides smooth deceleration for animation.
func easeOutQuad(t float64) float64 {
	return t * (2 - t)
}

// lerp interpolates between two grid coordinates.
func lerp(from, to int, t float64) float64 {
	return float64(from) + (float64(to)-float64(from))*t
}
