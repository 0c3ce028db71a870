// Package random provides the injectable randomness used for tile spawning.
// Games must never reach for the global math/rand functions; every source of
// non-determinism goes through a Source so replays and tests are reproducible.
package random

import (
	"math/rand"
	"time"
)

// Source is the subset of *rand.Rand the engine needs.
type Source interface {
	// Intn returns a random int in [0, n).
	Intn(n int) int

	// Float64 returns a random float in [0.0, 1.0).
	Float64() float64
}

// NewSeeded returns a math/rand backed Source.
// A zero seed means "use the current time".
func NewSeeded(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Scripted is a Source that replays queued values.
// Used in tests to force spawn positions and values.
type Scripted struct {
	// IntnResults is a queue of results to return from Intn.
	IntnResults []int
	intnIndex   int

	// FloatResults is a queue of results to return from Float64.
	FloatResults []float64
	floatIndex   int

	fail func(format string, args ...any)
}

// Ensure Scripted implements Source
var _ Source = (*Scripted)(nil)

// NewScripted creates an empty scripted source.
func NewScripted() *Scripted {
	return &Scripted{}
}

// NewStrictScripted creates a scripted source that reports through fail
// (usually t.Fatalf) instead of clamping an out-of-range value or falling
// back on a drained queue.
func NewStrictScripted(fail func(format string, args ...any)) *Scripted {
	return &Scripted{fail: fail}
}

// Intn returns the next queued result clamped to [0, n), or 0 if the queue is drained.
// A strict source reports both cases instead.
func (s *Scripted) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	if s.intnIndex >= len(s.IntnResults) {
		s.report("random: Intn(%d) called with a drained queue", n)
		return 0
	}
	result := s.IntnResults[s.intnIndex]
	s.intnIndex++
	if result < 0 || result >= n {
		s.report("random: queued Intn result %d outside [0, %d)", result, n)
	}
	if result < 0 {
		return 0
	}
	if result >= n {
		return n - 1
	}
	return result
}

// Float64 returns the next queued result, or 0.5 if the queue is drained.
// 0.5 keeps the default spawn value at 2.
func (s *Scripted) Float64() float64 {
	if s.floatIndex >= len(s.FloatResults) {
		s.report("random: Float64 called with a drained queue")
		return 0.5
	}
	result := s.FloatResults[s.floatIndex]
	s.floatIndex++
	return result
}

func (s *Scripted) report(format string, args ...any) {
	if s.fail != nil {
		s.fail(format, args...)
	}
}

// QueueIntn adds values to the Intn result queue.
func (s *Scripted) QueueIntn(values ...int) {
	s.IntnResults = append(s.IntnResults, values...)
}

// QueueFloat adds values to the Float64 result queue.
func (s *Scripted) QueueFloat(values ...float64) {
	s.FloatResults = append(s.FloatResults, values...)
}

// QueueSpawn queues one spawn: the index into the row-major list of empty
// cells and whether the spawned tile should be a 4.
func (s *Scripted) QueueSpawn(emptyIndex int, four bool) {
	s.QueueIntn(emptyIndex)
	if four {
		s.QueueFloat(0)
	} else {
		s.QueueFloat(0.99)
	}
}

// Reset clears all queued results.
func (s *Scripted) Reset() {
	s.IntnResults = nil
	s.intnIndex = 0
	s.FloatResults = nil
	s.floatIndex = 0
}
