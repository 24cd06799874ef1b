package object

import (
	"github.com/tomz197/shmup/internal/config"
	"github.com/tomz197/shmup/internal/physics"
)

// Player is the player-controlled ship. It is never removed from the arena;
// its health only depletes.
type Player struct {
	bounds physics.Rect
	VX, VY float64 // Velocity (momentum)
	Health int

	Projectiles []*Projectile

	cfg      config.PlayerTuning
	shot     config.ProjectileTuning
	fireHeld bool // Fire control state on the previous tick
}

var (
	_ Object = (*Player)(nil)
	_ Target = (*Player)(nil)
)

// NewPlayer creates the player ship at its configured start position.
func NewPlayer(t config.Tuning) *Player {
	cfg := t.Player
	return &Player{
		bounds: physics.NewRect(cfg.StartX, cfg.StartY, cfg.Size.W, cfg.Size.H),
		Health: cfg.Health,
		cfg:    cfg,
		shot:   t.Projectile,
	}
}

// ID returns PlayerID.
func (p *Player) ID() ID { return PlayerID }

// Side returns SidePlayer.
func (p *Player) Side() Side { return SidePlayer }

// Bounds returns the ship's collision box.
func (p *Player) Bounds() physics.Rect { return p.bounds }

// Alive is always true: depleted players still absorb enemy fire.
func (p *Player) Alive() bool { return true }

// Depleted reports whether the player's health has run out.
func (p *Player) Depleted() bool { return p.Health <= 0 }

// Update handles firing, acceleration, drift, boundary collisions and the
// player's projectiles. The player is never removed.
func (p *Player) Update(ctx UpdateContext) bool {
	// Fire only on the rising edge of the control
	if ctx.Controls.Fire && !p.fireHeld {
		p.Fire()
	}
	p.fireHeld = ctx.Controls.Fire

	if ctx.Controls.Left {
		p.VX -= p.cfg.Acceleration
	} else if ctx.Controls.Right {
		p.VX += p.cfg.Acceleration
	}

	if ctx.Controls.Up {
		p.VY -= p.cfg.Acceleration
	} else if ctx.Controls.Down {
		p.VY += p.cfg.Acceleration
	}

	// Constant leftward drift simulates the screen scrolling forward
	p.VX -= p.cfg.Drift

	// Upper bound only: drift and braking may exceed it downward
	p.VX = min(p.VX, p.cfg.MaxSpeed)
	p.VY = min(p.VY, p.cfg.MaxSpeed)

	// Hitting an edge cancels the move and kills that axis's momentum
	arena := ctx.Arena
	if moved := p.bounds.Translate(p.VX, 0); moved.X > arena.X && moved.Right() < arena.Right() {
		p.bounds = moved
	} else {
		p.VX = 0
	}
	if moved := p.bounds.Translate(0, p.VY); moved.Y > arena.Y && moved.Bottom() < arena.Bottom() {
		p.bounds = moved
	} else {
		p.VY = 0
	}

	p.Projectiles = advanceProjectiles(p.Projectiles, ctx)

	return false
}

// Fire spawns a rightward projectile from the ship's nose if below the cap.
// Returns true if a projectile was fired.
func (p *Player) Fire() bool {
	if len(p.Projectiles) >= p.cfg.MaxProjectiles {
		return false
	}
	noseX := p.bounds.Right()
	noseY := p.bounds.CenterY() - 2
	p.Projectiles = append(p.Projectiles, NewProjectile(p.shot, noseX, noseY, SidePlayer))
	return true
}

// Damage reduces health by n. Health never drops below zero.
func (p *Player) Damage(n int) {
	p.Health = max(p.Health-n, 0)
}

// Draw renders the ship, its health hearts and its projectiles.
func (p *Player) Draw(r Renderer) {
	r.DrawSprite(SpritePlayer, p.bounds.X, p.bounds.Y)

	// Hearts stack vertically left of the ship, centered on its midpoint
	heartX := p.bounds.X - p.cfg.Heart.W - p.cfg.HeartGap
	step := p.cfg.Heart.H + p.cfg.HeartGap
	half := float64(p.Health) / 2
	for i := 0; i < p.Health; i++ {
		heartY := p.bounds.CenterY() + (float64(i)-half)*step
		r.DrawSprite(SpriteHeart, heartX, heartY)
	}

	for _, projectile := range p.Projectiles {
		projectile.Draw(r)
	}
}
