// Package arena owns one round of play: the player, the enemies, the spawn
// director, hit routing and the score.
package arena

import (
	"github.com/tomz197/shmup/internal/config"
	"github.com/tomz197/shmup/internal/object"
	"github.com/tomz197/shmup/internal/physics"
)

// Arena is the bounded play area and everything inside it.
type Arena struct {
	bounds physics.Rect
	tuning config.Tuning
	rng    object.Rand

	player  *object.Player
	enemies []*object.Enemy
	score   int

	spawner *SpawnDirector
	layers  []Layer
	events  []Event

	// Reused per tick to avoid allocating target lists.
	enemyTargets  []object.Target
	playerTargets []object.Target
}

var _ object.HitSink = (*Arena)(nil)

// New creates an arena with a fresh player and no enemies.
func New(t config.Tuning, rng object.Rand) *Arena {
	a := &Arena{
		bounds:  physics.NewRect(0, 0, t.Arena.Width, t.Arena.Height),
		tuning:  t,
		rng:     rng,
		player:  object.NewPlayer(t),
		spawner: NewSpawnDirector(t.Spawn),
		layers:  newLayers(t.Arena.Parallax),
	}
	a.playerTargets = []object.Target{a.player}
	return a
}

// Update advances the arena by one tick.
func (a *Arena) Update(c object.Controls) {
	a.events = a.events[:0]

	for i := range a.layers {
		a.layers[i].scroll(a.bounds.W)
	}

	a.enemyTargets = a.enemyTargets[:0]
	for _, e := range a.enemies {
		a.enemyTargets = append(a.enemyTargets, e)
	}
	a.player.Update(object.UpdateContext{
		Controls: c,
		Arena:    a.bounds,
		Targets:  a.enemyTargets,
		Hits:     a,
		Rand:     a.rng,
	})

	ctx := object.UpdateContext{
		Arena:   a.bounds,
		Targets: a.playerTargets,
		Hits:    a,
		Rand:    a.rng,
	}
	kept := a.enemies[:0]
	for _, e := range a.enemies {
		if e.Update(ctx) {
			a.score += a.tuning.Arena.ScorePerKill
			a.events = append(a.events, Event{Kind: EventDespawn, Target: e.ID()})
			continue
		}
		kept = append(kept, e)
	}
	clear(a.enemies[len(kept):])
	a.enemies = kept

	if id, ok := a.spawner.Tick(len(a.enemies), a.rng); ok {
		a.enemies = append(a.enemies, object.NewEnemy(id, a.tuning, a.bounds, a.rng))
		a.events = append(a.events, Event{Kind: EventSpawn, Target: id})
	}
}

// Hit routes a hit to the combatant it names. Unknown ids are dropped.
func (a *Arena) Hit(ev object.HitEvent) {
	if ev.Target == object.PlayerID {
		a.player.Damage(1)
		a.events = append(a.events, Event{Kind: EventHit, Target: ev.Target, From: ev.From})
		return
	}

	for _, e := range a.enemies {
		if e.ID() != ev.Target {
			continue
		}
		e.Damage(1)
		a.events = append(a.events, Event{Kind: EventHit, Target: ev.Target, From: ev.From})
		if !e.Alive() {
			a.events = append(a.events, Event{Kind: EventKill, Target: ev.Target})
		}
		return
	}
}

// Draw issues the draw calls for a whole frame. It does not mutate state.
func (a *Arena) Draw(r object.Renderer) {
	for i := range a.layers {
		a.layers[i].draw(r, a.bounds.W)
	}
	a.player.Draw(r)
	for _, e := range a.enemies {
		e.Draw(r)
	}
	r.DrawScore(a.score)
}

// Bounds returns the play area.
func (a *Arena) Bounds() physics.Rect { return a.bounds }

// Tuning returns the tuning the arena was created with.
func (a *Arena) Tuning() config.Tuning { return a.tuning }

// Player returns the player ship.
func (a *Arena) Player() *object.Player { return a.player }

// Enemies returns the live enemy list. Callers must not modify it.
func (a *Arena) Enemies() []*object.Enemy { return a.enemies }

// Score returns the current score.
func (a *Arena) Score() int { return a.score }

// Spawner returns the spawn director.
func (a *Arena) Spawner() *SpawnDirector { return a.spawner }

// Events returns what happened during the last Update. The slice is reused
// by the next Update.
func (a *Arena) Events() []Event { return a.events }

// PlayerDepleted reports whether the player's health has run out.
func (a *Arena) PlayerDepleted() bool { return a.player.Depleted() }
