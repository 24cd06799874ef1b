package object

import "github.com/tomz197/shmup/internal/config"

// Sprite identifies what a renderer should draw.
type Sprite int

const (
	SpriteBackdrop Sprite = iota
	SpriteNebula
	SpriteStarsNear
	SpriteStarsFar
	SpriteStarsMid
	SpritePlayer
	SpriteEnemy
	SpritePlayerProjectile
	SpriteEnemyProjectile
	SpriteHeart
)

var spriteNames = [...]string{
	SpriteBackdrop:         "backdrop",
	SpriteNebula:           "nebula",
	SpriteStarsNear:        "stars-near",
	SpriteStarsFar:         "stars-far",
	SpriteStarsMid:         "stars-mid",
	SpritePlayer:           "player",
	SpriteEnemy:            "enemy",
	SpritePlayerProjectile: "player-projectile",
	SpriteEnemyProjectile:  "enemy-projectile",
	SpriteHeart:            "heart",
}

func (s Sprite) String() string {
	if s < 0 || int(s) >= len(spriteNames) {
		return "unknown"
	}
	return spriteNames[s]
}

// IsBackground reports whether the sprite is a full-arena background layer.
func (s Sprite) IsBackground() bool {
	return s <= SpriteStarsMid
}

// Size is a sprite's width and height in arena units.
type Size struct {
	W, H float64
}

// Sheet maps every sprite to its size.
type Sheet map[Sprite]Size

// NewSheet builds the sprite sheet for a tuning.
func NewSheet(t config.Tuning) Sheet {
	arena := Size{W: t.Arena.Width, H: t.Arena.Height}
	shot := Size{W: t.Projectile.Size.W, H: t.Projectile.Size.H}
	return Sheet{
		SpriteBackdrop:         arena,
		SpriteNebula:           arena,
		SpriteStarsNear:        arena,
		SpriteStarsFar:         arena,
		SpriteStarsMid:         arena,
		SpritePlayer:           {W: t.Player.Size.W, H: t.Player.Size.H},
		SpriteEnemy:            {W: t.Enemy.Size.W, H: t.Enemy.Size.H},
		SpritePlayerProjectile: shot,
		SpriteEnemyProjectile:  shot,
		SpriteHeart:            {W: t.Player.Heart.W, H: t.Player.Heart.H},
	}
}
