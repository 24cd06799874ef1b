package object

import (
	"math"

	"github.com/tomz197/shmup/internal/config"
	"github.com/tomz197/shmup/internal/physics"
)

// Enemy is a hostile ship that weaves around its spawn point and fires
// leftward at the player.
type Enemy struct {
	id     ID
	bounds physics.Rect
	Health int

	Projectiles []*Projectile

	anchorX, anchorY float64 // Spawn point the ship oscillates around
	speed            float64 // Horizontal phase advance per tick
	phaseX, phaseY   float64
	fireCooldown     int // Ticks until the next shot

	cfg  config.EnemyTuning
	shot config.ProjectileTuning
}

var (
	_ Object = (*Enemy)(nil)
	_ Target = (*Enemy)(nil)
)

// NewEnemy spawns an enemy at a random point biased toward the right edge
// of the arena.
func NewEnemy(id ID, t config.Tuning, arena physics.Rect, rng Rand) *Enemy {
	cfg := t.Enemy
	x := arena.Right() - cfg.Size.W - float64(RandRange(rng, 0, cfg.SpawnJitter))
	y := arena.Y + float64(RandRange(rng, 0, int(arena.H-cfg.Size.H)))
	return &Enemy{
		id:           id,
		bounds:       physics.NewRect(x, y, cfg.Size.W, cfg.Size.H),
		Health:       cfg.Health,
		anchorX:      x,
		anchorY:      y,
		speed:        rng.Float64() * cfg.MaxOscillation,
		fireCooldown: cfg.InitialFireCooldown,
		cfg:          cfg,
		shot:         t.Projectile,
	}
}

// ID returns the enemy's arena identity.
func (e *Enemy) ID() ID { return e.id }

// Side returns SideEnemy.
func (e *Enemy) Side() Side { return SideEnemy }

// Bounds returns the ship's collision box.
func (e *Enemy) Bounds() physics.Rect { return e.bounds }

// Alive reports whether the ship itself is still flying.
func (e *Enemy) Alive() bool { return e.Health > 0 }

// FireCooldown returns the ticks left until the next shot.
func (e *Enemy) FireCooldown() int { return e.fireCooldown }

// Update advances projectiles, fires when the cooldown expires and weaves the
// ship around its anchor. Returns true once the ship is dead and all of its
// projectiles are gone.
func (e *Enemy) Update(ctx UpdateContext) bool {
	e.Projectiles = advanceProjectiles(e.Projectiles, ctx)

	if e.Health > 0 && len(e.Projectiles) < e.cfg.MaxProjectiles {
		e.fireCooldown--
		if e.fireCooldown == 0 {
			e.fire()
			e.fireCooldown = RandRange(ctx.Rand, e.cfg.FireCooldown.Min, e.cfg.FireCooldown.Max)
		}
	}

	e.phaseX += e.speed
	e.phaseY += e.speed * e.cfg.VerticalRate
	e.bounds.X = e.anchorX + math.Cos(e.phaseX*math.Pi)*e.cfg.AmplitudeX
	e.bounds.Y = e.anchorY + math.Cos(e.phaseY*math.Pi)*e.cfg.AmplitudeY

	return e.Health <= 0 && len(e.Projectiles) == 0
}

// fire spawns a leftward projectile from the ship's front edge.
func (e *Enemy) fire() {
	noseY := e.bounds.CenterY() - 2
	e.Projectiles = append(e.Projectiles, NewProjectile(e.shot, e.bounds.X, noseY, SideEnemy))
}

// Damage reduces health by n. Health never drops below zero.
func (e *Enemy) Damage(n int) {
	e.Health = max(e.Health-n, 0)
}

// Draw renders the ship while it is alive. Its projectiles outlive it.
func (e *Enemy) Draw(r Renderer) {
	if e.Health > 0 {
		r.DrawSprite(SpriteEnemy, e.bounds.X, e.bounds.Y)
	}
	for _, projectile := range e.Projectiles {
		projectile.Draw(r)
	}
}
