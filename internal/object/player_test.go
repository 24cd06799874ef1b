package object

import (
	"math"
	"testing"

	"github.com/tomz197/shmup/internal/config"
	"github.com/tomz197/shmup/internal/physics"
	"pgregory.net/rapid"
)

func newTestPlayer() *Player {
	return NewPlayer(config.Default())
}

func playerCtx(c Controls, targets ...Target) UpdateContext {
	return UpdateContext{Controls: c, Arena: testArena(), Targets: targets, Hits: &hitRecorder{}}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNewPlayer(t *testing.T) {
	p := newTestPlayer()
	if p.Bounds() != physics.NewRect(200, 300, 55, 40) {
		t.Errorf("Bounds() = %+v, want {200 300 55 40}", p.Bounds())
	}
	if p.Health != 5 {
		t.Errorf("Health = %d, want 5", p.Health)
	}
	if p.ID() != PlayerID || p.Side() != SidePlayer || !p.Alive() {
		t.Error("player identity is wrong")
	}
}

func TestPlayer_Acceleration(t *testing.T) {
	tests := []struct {
		name     string
		controls Controls
		wantVX   float64
		wantVY   float64
	}{
		{"idle drifts left", Controls{}, -0.05, 0},
		{"right", Controls{Right: true}, 0.2, 0},
		{"left", Controls{Left: true}, -0.3, 0},
		{"left wins over right", Controls{Left: true, Right: true}, -0.3, 0},
		{"down", Controls{Down: true}, -0.05, 0.25},
		{"up wins over down", Controls{Up: true, Down: true}, -0.05, -0.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPlayer()
			p.Update(playerCtx(tt.controls))

			if !approx(p.VX, tt.wantVX) || !approx(p.VY, tt.wantVY) {
				t.Errorf("velocity = (%f, %f), want (%f, %f)", p.VX, p.VY, tt.wantVX, tt.wantVY)
			}
			if !approx(p.Bounds().X, 200+tt.wantVX) || !approx(p.Bounds().Y, 300+tt.wantVY) {
				t.Errorf("position = (%f, %f), want (%f, %f)",
					p.Bounds().X, p.Bounds().Y, 200+tt.wantVX, 300+tt.wantVY)
			}
		})
	}
}

func TestPlayer_SpeedCapIsUpperBoundOnly(t *testing.T) {
	p := newTestPlayer()
	for i := 0; i < 100; i++ {
		p.Update(playerCtx(Controls{Right: true, Down: true}))
		// Keep the ship away from the edges so the cap, not a wall, limits it
		p.bounds = physics.NewRect(200, 200, 55, 40)
	}
	if p.VX != 5 || p.VY != 5 {
		t.Errorf("velocity = (%f, %f), want capped at (5, 5)", p.VX, p.VY)
	}

	for i := 0; i < 100; i++ {
		p.Update(playerCtx(Controls{Left: true, Up: true}))
		p.bounds = physics.NewRect(500, 300, 55, 40)
	}
	if p.VX > -5 || p.VY > -5 {
		t.Errorf("velocity = (%f, %f), negative speed should not be clamped at -5", p.VX, p.VY)
	}
}

func TestPlayer_VelocityBoundProperty(t *testing.T) {
	controls := rapid.Custom(func(t *rapid.T) Controls {
		return Controls{
			Left:  rapid.Bool().Draw(t, "left"),
			Right: rapid.Bool().Draw(t, "right"),
			Up:    rapid.Bool().Draw(t, "up"),
			Down:  rapid.Bool().Draw(t, "down"),
			Fire:  rapid.Bool().Draw(t, "fire"),
		}
	})
	rapid.Check(t, func(t *rapid.T) {
		p := newTestPlayer()
		arena := testArena()
		for _, c := range rapid.SliceOfN(controls, 1, 300).Draw(t, "controls") {
			p.Update(playerCtx(c))
			if p.VX > p.cfg.MaxSpeed || p.VY > p.cfg.MaxSpeed {
				t.Fatalf("velocity (%f, %f) exceeds max speed", p.VX, p.VY)
			}
			b := p.Bounds()
			if b.X <= arena.X || b.Right() >= arena.Right() || b.Y <= arena.Y || b.Bottom() >= arena.Bottom() {
				t.Fatalf("player %+v escaped the arena", b)
			}
		}
	})
}

func TestPlayer_VerticalWallKillsVelocity(t *testing.T) {
	p := newTestPlayer()
	p.bounds.Y = 600 - 40 - 1
	p.VY = 3

	p.Update(playerCtx(Controls{}))

	if p.VY != 0 {
		t.Errorf("VY after wall hit = %f, want 0", p.VY)
	}
	if p.Bounds().Y != 559 {
		t.Errorf("Y after wall hit = %f, want unchanged 559", p.Bounds().Y)
	}
	// Horizontal movement is unaffected by the vertical collision
	if !approx(p.Bounds().X, 200-0.05) {
		t.Errorf("X = %f, want %f", p.Bounds().X, 200-0.05)
	}
}

func TestPlayer_HorizontalWallKillsVelocity(t *testing.T) {
	p := newTestPlayer()
	p.bounds.X = 0.02

	p.Update(playerCtx(Controls{}))

	if p.VX != 0 {
		t.Errorf("VX after wall hit = %f, want 0", p.VX)
	}
	if p.Bounds().X != 0.02 {
		t.Errorf("X after wall hit = %f, want unchanged 0.02", p.Bounds().X)
	}
}

func TestPlayer_Fire(t *testing.T) {
	p := newTestPlayer()
	if !p.Fire() {
		t.Fatal("Fire() = false, want true")
	}
	shot := p.Projectiles[0]
	// Centered on the nose: (255, 318)
	if shot.Bounds != physics.NewRect(235, 308, 40, 20) {
		t.Errorf("projectile bounds = %+v, want {235 308 40 20}", shot.Bounds)
	}
	if shot.Side != SidePlayer || shot.VX != 14 {
		t.Errorf("projectile side/velocity = %v/%f, want player/14", shot.Side, shot.VX)
	}
}

func TestPlayer_FireOnRisingEdgeOnly(t *testing.T) {
	p := newTestPlayer()

	for i := 0; i < 3; i++ {
		p.Update(playerCtx(Controls{Fire: true}))
	}
	if len(p.Projectiles) != 1 {
		t.Fatalf("holding fire produced %d projectiles, want 1", len(p.Projectiles))
	}

	p.Update(playerCtx(Controls{}))
	p.Update(playerCtx(Controls{Fire: true}))
	if len(p.Projectiles) != 2 {
		t.Errorf("second press produced %d projectiles, want 2", len(p.Projectiles))
	}
}

func TestPlayer_ProjectileCap(t *testing.T) {
	p := newTestPlayer()
	for i := 0; i < 10; i++ {
		p.Update(playerCtx(Controls{Fire: true}))
		p.Update(playerCtx(Controls{}))
	}
	if len(p.Projectiles) != 3 {
		t.Errorf("projectiles = %d, want cap of 3", len(p.Projectiles))
	}
	if p.Fire() {
		t.Error("Fire() at cap = true, want false")
	}
}

func TestPlayer_ProjectileHitsEnemy(t *testing.T) {
	p := newTestPlayer()
	enemy := &stubTarget{id: 4, side: SideEnemy, bounds: physics.NewRect(260, 300, 55, 40)}
	hits := &hitRecorder{}

	p.Update(UpdateContext{
		Controls: Controls{Fire: true},
		Arena:    testArena(),
		Targets:  []Target{enemy},
		Hits:     hits,
	})

	if len(hits.events) != 1 || hits.events[0].Target != 4 {
		t.Fatalf("hits = %+v, want one hit on enemy 4", hits.events)
	}
	if len(p.Projectiles) != 0 {
		t.Errorf("projectiles = %d, want the hitting projectile removed", len(p.Projectiles))
	}
}

func TestPlayer_Damage(t *testing.T) {
	p := newTestPlayer()

	p.Damage(1)
	if p.Health != 4 {
		t.Errorf("Health after one hit = %d, want 4", p.Health)
	}

	for i := 0; i < 4; i++ {
		p.Damage(1)
	}
	if p.Health != 0 || !p.Depleted() {
		t.Errorf("Health after five hits = %d, want 0", p.Health)
	}

	p.Damage(1)
	if p.Health != 0 {
		t.Errorf("Health after a sixth hit = %d, want 0 (never negative)", p.Health)
	}
	if p.Update(playerCtx(Controls{})) {
		t.Error("a depleted player must never be removed")
	}
}
