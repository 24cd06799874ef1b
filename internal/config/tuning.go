package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Size is a width/height pair in arena units.
type Size struct {
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// Range is an inclusive integer range used for randomized tick timers.
type Range struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Tuning holds every tunable gameplay parameter.
//
// The file is optional; fields it leaves out keep their Default() value.
type Tuning struct {
	// TickRate is the number of simulation ticks per second.
	TickRate int `yaml:"tickRate"`

	// GameOver ends the round once the player's health is depleted.
	// When false the player keeps flying at zero health.
	GameOver bool `yaml:"gameOver"`

	Arena      ArenaTuning      `yaml:"arena"`
	Player     PlayerTuning     `yaml:"player"`
	Enemy      EnemyTuning      `yaml:"enemy"`
	Projectile ProjectileTuning `yaml:"projectile"`
	Spawn      SpawnTuning      `yaml:"spawn"`
}

// ArenaTuning configures the play area and scoring.
type ArenaTuning struct {
	Width        float64  `yaml:"width"`
	Height       float64  `yaml:"height"`
	ScorePerKill int      `yaml:"scorePerKill"`
	Parallax     Parallax `yaml:"parallax"`
}

// Parallax holds the horizontal scroll speed of each background layer.
type Parallax struct {
	Backdrop  float64 `yaml:"backdrop"`
	Nebula    float64 `yaml:"nebula"`
	StarsNear float64 `yaml:"starsNear"`
	StarsFar  float64 `yaml:"starsFar"`
	StarsMid  float64 `yaml:"starsMid"`
}

// PlayerTuning configures the player ship.
type PlayerTuning struct {
	Size           Size    `yaml:"size"`
	StartX         float64 `yaml:"startX"`
	StartY         float64 `yaml:"startY"`
	Health         int     `yaml:"health"`
	MaxProjectiles int     `yaml:"maxProjectiles"`
	MaxSpeed       float64 `yaml:"maxSpeed"`
	Acceleration   float64 `yaml:"acceleration"`
	Drift          float64 `yaml:"drift"`
	Heart          Size    `yaml:"heart"`
	HeartGap       float64 `yaml:"heartGap"`
}

// EnemyTuning configures spawned enemy ships.
type EnemyTuning struct {
	Size                Size    `yaml:"size"`
	Health              int     `yaml:"health"`
	MaxProjectiles      int     `yaml:"maxProjectiles"`
	SpawnJitter         int     `yaml:"spawnJitter"`
	AmplitudeX          float64 `yaml:"amplitudeX"`
	AmplitudeY          float64 `yaml:"amplitudeY"`
	VerticalRate        float64 `yaml:"verticalRate"`
	MaxOscillation      float64 `yaml:"maxOscillation"`
	InitialFireCooldown int     `yaml:"initialFireCooldown"`
	FireCooldown        Range   `yaml:"fireCooldown"`
}

// ProjectileTuning configures projectiles for both sides.
type ProjectileTuning struct {
	Size        Size    `yaml:"size"`
	PlayerSpeed float64 `yaml:"playerSpeed"`
	EnemySpeed  float64 `yaml:"enemySpeed"`
}

// SpawnTuning configures the enemy spawn director.
type SpawnTuning struct {
	MaxEnemies      int   `yaml:"maxEnemies"`
	InitialCooldown int   `yaml:"initialCooldown"`
	Cooldown        Range `yaml:"cooldown"`
}

// Default returns the stock tuning.
func Default() Tuning {
	return Tuning{
		TickRate: 60,
		GameOver: true,
		Arena: ArenaTuning{
			Width:        1000,
			Height:       600,
			ScorePerKill: 10,
			Parallax: Parallax{
				StarsNear: 5,
				StarsFar:  2,
				StarsMid:  3,
			},
		},
		Player: PlayerTuning{
			Size:           Size{W: 55, H: 40},
			StartX:         200,
			StartY:         300,
			Health:         5,
			MaxProjectiles: 3,
			MaxSpeed:       5,
			Acceleration:   0.25,
			Drift:          0.05,
			Heart:          Size{W: 20, H: 20},
			HeartGap:       10,
		},
		Enemy: EnemyTuning{
			Size:                Size{W: 55, H: 40},
			Health:              1,
			MaxProjectiles:      3,
			SpawnJitter:         120,
			AmplitudeX:          12,
			AmplitudeY:          8,
			VerticalRate:        0.8,
			MaxOscillation:      0.05,
			InitialFireCooldown: 1,
			FireCooldown:        Range{Min: 150, Max: 350},
		},
		Projectile: ProjectileTuning{
			Size:        Size{W: 40, H: 20},
			PlayerSpeed: 14,
			EnemySpeed:  6,
		},
		Spawn: SpawnTuning{
			MaxEnemies:      4,
			InitialCooldown: 1,
			Cooldown:        Range{Min: 25, Max: 40},
		},
	}
}

// TickDuration returns the wall-clock length of one tick.
func (t Tuning) TickDuration() time.Duration {
	return time.Second / time.Duration(t.TickRate)
}

// Load reads a YAML tuning file from path on top of Default().
// An empty path returns the defaults.
func Load(path string) (Tuning, error) {
	tuning := Default()
	if path == "" {
		return tuning, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("failed to read tuning config: %w", err)
	}

	if err := yaml.Unmarshal(data, &tuning); err != nil {
		return Tuning{}, fmt.Errorf("failed to parse tuning config: %w", err)
	}

	if err := tuning.Validate(); err != nil {
		return Tuning{}, fmt.Errorf("invalid tuning config: %w", err)
	}

	return tuning, nil
}

// Validate checks that the tuning describes a playable arena.
func (t Tuning) Validate() error {
	if t.TickRate <= 0 {
		return fmt.Errorf("tickRate must be positive, got %d", t.TickRate)
	}
	if t.Arena.Width <= 0 || t.Arena.Height <= 0 {
		return fmt.Errorf("arena size must be positive, got %gx%g", t.Arena.Width, t.Arena.Height)
	}

	sizes := map[string]Size{
		"player.size":     t.Player.Size,
		"player.heart":    t.Player.Heart,
		"enemy.size":      t.Enemy.Size,
		"projectile.size": t.Projectile.Size,
	}
	for name, s := range sizes {
		if s.W <= 0 || s.H <= 0 {
			return fmt.Errorf("%s must be positive, got %gx%g", name, s.W, s.H)
		}
	}

	p := t.Player
	if p.StartX <= 0 || p.StartY <= 0 ||
		p.StartX+p.Size.W >= t.Arena.Width || p.StartY+p.Size.H >= t.Arena.Height {
		return errors.New("player start position must lie strictly inside the arena")
	}
	if p.Health < 0 || p.MaxProjectiles < 0 {
		return errors.New("player health and maxProjectiles must not be negative")
	}
	if p.MaxSpeed <= 0 {
		return fmt.Errorf("player.maxSpeed must be positive, got %g", p.MaxSpeed)
	}

	e := t.Enemy
	if e.Health < 0 || e.MaxProjectiles < 0 || e.SpawnJitter < 0 {
		return errors.New("enemy health, maxProjectiles and spawnJitter must not be negative")
	}
	if e.Size.H > t.Arena.Height || e.Size.W+float64(e.SpawnJitter) > t.Arena.Width {
		return errors.New("enemy spawn area does not fit inside the arena")
	}
	if e.InitialFireCooldown < 1 {
		return fmt.Errorf("enemy.initialFireCooldown must be at least 1, got %d", e.InitialFireCooldown)
	}
	if err := e.FireCooldown.validate("enemy.fireCooldown"); err != nil {
		return err
	}

	if t.Projectile.PlayerSpeed <= 0 || t.Projectile.EnemySpeed <= 0 {
		return errors.New("projectile speeds must be positive")
	}

	s := t.Spawn
	if s.MaxEnemies < 0 {
		return fmt.Errorf("spawn.maxEnemies must not be negative, got %d", s.MaxEnemies)
	}
	if s.InitialCooldown < 1 {
		return fmt.Errorf("spawn.initialCooldown must be at least 1, got %d", s.InitialCooldown)
	}
	return s.Cooldown.validate("spawn.cooldown")
}

// validate requires a non-empty range of at least one tick.
// A timer reset to zero would never fire again.
func (r Range) validate(name string) error {
	if r.Min < 1 {
		return fmt.Errorf("%s.min must be at least 1, got %d", name, r.Min)
	}
	if r.Max < r.Min {
		return fmt.Errorf("%s.max (%d) must be >= min (%d)", name, r.Max, r.Min)
	}
	return nil
}
