package object

import (
	"github.com/tomz197/shmup/internal/config"
	"github.com/tomz197/shmup/internal/physics"
)

// Projectile is a bullet travelling horizontally across the arena.
type Projectile struct {
	Bounds physics.Rect
	VX     float64 // Positive moves right (player), negative moves left (enemy)
	Side   Side    // Side that fired it
}

// NewProjectile creates a projectile centered on (cx, cy).
// Player projectiles travel right, enemy projectiles travel left.
func NewProjectile(cfg config.ProjectileTuning, cx, cy float64, side Side) *Projectile {
	vx := cfg.PlayerSpeed
	if side == SideEnemy {
		vx = -cfg.EnemySpeed
	}
	return &Projectile{
		Bounds: physics.NewRect(cx-cfg.Size.W/2, cy-cfg.Size.H/2, cfg.Size.W, cfg.Size.H),
		VX:     vx,
		Side:   side,
	}
}

// Advance moves the projectile one tick. It returns false once the projectile
// has left the arena or struck an opposing target; a strike is reported to
// hits exactly once.
func (p *Projectile) Advance(arena physics.Rect, targets []Target, hits HitSink) bool {
	p.Bounds = p.Bounds.Translate(p.VX, 0)

	if !arena.Intersects(p.Bounds) {
		return false
	}

	for _, target := range targets {
		if target.Side() == p.Side || !target.Alive() {
			continue
		}
		if target.Bounds().Intersects(p.Bounds) {
			if hits != nil {
				hits.Hit(HitEvent{Target: target.ID(), Kind: HitDamage, From: p.Side})
			}
			return false
		}
	}

	return true
}

// Sprite returns the sprite for the projectile's side.
func (p *Projectile) Sprite() Sprite {
	if p.Side == SidePlayer {
		return SpritePlayerProjectile
	}
	return SpriteEnemyProjectile
}

// Draw renders the projectile.
func (p *Projectile) Draw(r Renderer) {
	r.DrawSprite(p.Sprite(), p.Bounds.X, p.Bounds.Y)
}
