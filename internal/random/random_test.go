package random

import (
	"fmt"
	"testing"
)

func TestNewSeededDeterministic(t *testing.T) {
	a := NewSeeded(42)
	b := NewSeeded(42)

	for i := range 100 {
		x, y := a.Intn(16), b.Intn(16)
		if x != y {
			t.Fatalf("draw %d: Intn = %d and %d, want equal", i, x, y)
		}
		if fa, fb := a.Float64(), b.Float64(); fa != fb {
			t.Fatalf("draw %d: Float64 = %v and %v, want equal", i, fa, fb)
		}
	}
}

func TestScriptedQueue(t *testing.T) {
	s := NewScripted()
	s.QueueIntn(3, 7, -1)
	s.QueueFloat(0.25)

	if got := s.Intn(10); got != 3 {
		t.Errorf("Intn = %d, want 3", got)
	}
	// Clamped to n-1
	if got := s.Intn(5); got != 4 {
		t.Errorf("Intn clamped = %d, want 4", got)
	}
	if got := s.Intn(5); got != 0 {
		t.Errorf("Intn negative = %d, want 0", got)
	}
	// Drained
	if got := s.Intn(5); got != 0 {
		t.Errorf("Intn drained = %d, want 0", got)
	}

	if got := s.Float64(); got != 0.25 {
		t.Errorf("Float64 = %v, want 0.25", got)
	}
	if got := s.Float64(); got != 0.5 {
		t.Errorf("Float64 drained = %v, want 0.5", got)
	}
}

func TestScriptedQueueSpawn(t *testing.T) {
	s := NewScripted()
	s.QueueSpawn(2, true)
	s.QueueSpawn(1, false)

	if s.Intn(4) != 2 || s.Float64() >= 0.1 {
		t.Error("first spawn should pick index 2 with a 4")
	}
	if s.Intn(4) != 1 || s.Float64() < 0.1 {
		t.Error("second spawn should pick index 1 with a 2")
	}

	s.Reset()
	if len(s.IntnResults) != 0 || len(s.FloatResults) != 0 {
		t.Error("Reset should drop all queued values")
	}
}

func TestStrictScriptedReportsMisuse(t *testing.T) {
	tests := []struct {
		name string
		draw func(s *Scripted)
		want string
	}{
		{"drained Intn", func(s *Scripted) { s.Intn(4) }, "random: Intn(4) called with a drained queue"},
		{"out of range Intn", func(s *Scripted) { s.QueueIntn(9); s.Intn(4) }, "random: queued Intn result 9 outside [0, 4)"},
		{"negative Intn", func(s *Scripted) { s.QueueIntn(-1); s.Intn(4) }, "random: queued Intn result -1 outside [0, 4)"},
		{"drained Float64", func(s *Scripted) { s.Float64() }, "random: Float64 called with a drained queue"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var reports []string
			s := NewStrictScripted(func(format string, args ...any) {
				reports = append(reports, fmt.Sprintf(format, args...))
			})

			tt.draw(s)

			if len(reports) != 1 || reports[0] != tt.want {
				t.Errorf("reports = %q, want [%q]", reports, tt.want)
			}
		})
	}
}

func TestStrictScriptedQuietWhenScriptFits(t *testing.T) {
	s := NewStrictScripted(t.Fatalf)
	s.QueueSpawn(3, true)

	if got := s.Intn(4); got != 3 {
		t.Errorf("Intn = %d, want 3", got)
	}
	if got := s.Float64(); got != 0 {
		t.Errorf("Float64 = %v, want 0", got)
	}
}
