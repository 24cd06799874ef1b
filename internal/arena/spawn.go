package arena

import (
	"github.com/tomz197/shmup/internal/config"
	"github.com/tomz197/shmup/internal/object"
)

// SpawnDirector keeps the enemy population topped up to a cap, one enemy
// per cooldown expiry.
type SpawnDirector struct {
	cfg      config.SpawnTuning
	cooldown int
	nextID   object.ID
	spawned  int
}

// NewSpawnDirector creates a director whose first spawn is due after the
// initial cooldown.
func NewSpawnDirector(cfg config.SpawnTuning) *SpawnDirector {
	return &SpawnDirector{
		cfg:      cfg,
		cooldown: cfg.InitialCooldown,
		nextID:   object.PlayerID + 1,
	}
}

// Tick advances the cooldown while fewer than the cap are active. When an
// enemy is due it returns the id to spawn it with and true.
func (s *SpawnDirector) Tick(active int, rng object.Rand) (object.ID, bool) {
	if active >= s.cfg.MaxEnemies {
		return 0, false
	}

	s.cooldown--
	if s.cooldown > 0 {
		return 0, false
	}

	id := s.nextID
	s.nextID++
	s.spawned++
	s.cooldown = object.RandRange(rng, s.cfg.Cooldown.Min, s.cfg.Cooldown.Max)
	return id, true
}

// Cooldown returns the ticks left until the next spawn.
func (s *SpawnDirector) Cooldown() int { return s.cooldown }

// Spawned returns how many enemies have been spawned so far.
func (s *SpawnDirector) Spawned() int { return s.spawned }
