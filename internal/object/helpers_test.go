package object

import (
	"github.com/tomz197/shmup/internal/config"
	"github.com/tomz197/shmup/internal/physics"
)

// stubTarget is a fixed combatant used as a collision target.
type stubTarget struct {
	id     ID
	side   Side
	bounds physics.Rect
	dead   bool
}

func (s *stubTarget) ID() ID               { return s.id }
func (s *stubTarget) Side() Side           { return s.side }
func (s *stubTarget) Bounds() physics.Rect { return s.bounds }
func (s *stubTarget) Alive() bool          { return !s.dead }

// hitRecorder collects hit events.
type hitRecorder struct {
	events []HitEvent
}

func (h *hitRecorder) Hit(ev HitEvent) { h.events = append(h.events, ev) }

// scriptedRand replays fixed values. IntN results are clamped to n-1.
type scriptedRand struct {
	ints   []int
	floats []float64
}

func (r *scriptedRand) IntN(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return min(v, n-1)
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.5
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func testArena() physics.Rect {
	t := config.Default()
	return physics.NewRect(0, 0, t.Arena.Width, t.Arena.Height)
}
