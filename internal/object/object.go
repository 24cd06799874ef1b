// Package object implements the combatants and projectiles of the simulation.
package object

import (
	"github.com/tomz197/shmup/internal/physics"
)

//go:generate go tool mockgen -destination=./mocks/renderer_mock.go -package=mocks . Renderer

// Side determines which projectiles can damage which combatants.
type Side int

const (
	SidePlayer Side = iota
	SideEnemy
)

func (s Side) String() string {
	if s == SidePlayer {
		return "player"
	}
	return "enemy"
}

// ID identifies a combatant inside an arena. The player is always PlayerID;
// enemies receive increasing IDs starting at 1.
type ID int

// PlayerID is the identity of the arena's player.
const PlayerID ID = 0

// Controls is the per-tick state of the logical controls.
type Controls struct {
	Left  bool
	Right bool
	Up    bool
	Down  bool
	Fire  bool
	Quit  bool // Window close or disconnect requested
}

// Any reports whether any control is active.
func (c Controls) Any() bool {
	return c.Left || c.Right || c.Up || c.Down || c.Fire || c.Quit
}

// Target is a combatant that projectiles can collide with.
type Target interface {
	ID() ID
	Side() Side
	Bounds() physics.Rect
	// Alive reports whether the target can still be hit.
	Alive() bool
}

// HitKind discriminates hit notifications.
type HitKind int

const (
	HitDamage HitKind = iota
)

// HitEvent notifies the owner of a target that one of its combatants was hit.
type HitEvent struct {
	Target ID
	Kind   HitKind
	From   Side // Side of the projectile that landed the hit
}

// HitSink receives hit notifications during an update.
type HitSink interface {
	Hit(ev HitEvent)
}

// Rand is the random source used for spawn positions and timers.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// RandRange returns a uniformly random integer in [lo, hi].
func RandRange(r Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.IntN(hi-lo+1)
}

// UpdateContext provides all the information a combatant needs during update.
type UpdateContext struct {
	Controls Controls
	Arena    physics.Rect
	Targets  []Target // Opposing combatants
	Hits     HitSink
	Rand     Rand
}

// Renderer consumes draw calls. Positions are top-left corners in arena units.
type Renderer interface {
	Clear()
	DrawSprite(id Sprite, x, y float64)
	DrawScore(score int)
	DrawBanner(lines ...string)
	Flush() error
}

// Object is an updatable, drawable combatant.
type Object interface {
	// Update advances the object by one tick. Returns true if the object should be removed.
	Update(ctx UpdateContext) (remove bool)

	// Draw issues the object's draw calls. It must not mutate state.
	Draw(r Renderer)
}

// advanceProjectiles moves every projectile one tick and compacts the
// survivors in place, preserving their order.
func advanceProjectiles(projectiles []*Projectile, ctx UpdateContext) []*Projectile {
	kept := projectiles[:0]
	for _, p := range projectiles {
		if p.Advance(ctx.Arena, ctx.Targets, ctx.Hits) {
			kept = append(kept, p)
		}
	}
	clear(projectiles[len(kept):])
	return kept
}
