// Package render holds the look of the game shared by every backend:
// sprite shapes, colors and the background starfields.
package render

import (
	"fmt"
	"image/color"
	"math/rand/v2"

	"github.com/tomz197/shmup/internal/object"
)

// Vec is a point in sprite-local or arena units.
type Vec struct {
	X, Y float64
}

// Shape returns the outline of a sprite as a polygon in unit coordinates,
// where (0,0) is the sprite's top-left corner and (1,1) its bottom-right.
// Sprites drawn as plain rectangles return nil.
func Shape(id object.Sprite) []Vec {
	switch id {
	case object.SpritePlayer:
		// Arrowhead pointing right
		return []Vec{{0, 0}, {1, 0.5}, {0, 1}, {0.25, 0.5}}
	case object.SpriteEnemy:
		// Arrowhead pointing left with a notched tail
		return []Vec{{1, 0}, {0.75, 0.5}, {1, 1}, {0, 0.5}}
	case object.SpriteHeart:
		return []Vec{{0.5, 0.25}, {0.75, 0}, {1, 0.25}, {0.5, 1}, {0, 0.25}, {0.25, 0}}
	default:
		return nil
	}
}

// Bolt returns the visible part of a projectile sprite in unit coordinates.
// The collision body is much larger than the glowing bolt drawn for it.
func Bolt() (x, y, w, h float64) {
	return 0.1, 0.4, 0.8, 0.2
}

// ParseHexColor converts "#rrggbb" or "#rrggbbaa" into a color.
func ParseHexColor(s string) color.RGBA {
	c := color.RGBA{0, 0, 0, 255}
	switch len(s) {
	case 7:
		fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B)
	case 9:
		fmt.Sscanf(s, "#%02x%02x%02x%02x", &c.R, &c.G, &c.B, &c.A)
	}
	return c
}

var (
	BackdropColor   = ParseHexColor("#0B0E1A")
	NebulaColor     = ParseHexColor("#3B1F5C40")
	StarColor       = ParseHexColor("#E8E8F0")
	PlayerColor     = ParseHexColor("#3498DB")
	EnemyColor      = ParseHexColor("#E74C3C")
	PlayerShotColor = ParseHexColor("#F1C40F")
	EnemyShotColor  = ParseHexColor("#E67E22")
	HeartColor      = ParseHexColor("#E84393")
	TextColor       = ParseHexColor("#ECF0F1")
)

// Color returns the fill color for a sprite.
func Color(id object.Sprite) color.RGBA {
	switch id {
	case object.SpriteBackdrop:
		return BackdropColor
	case object.SpriteNebula:
		return NebulaColor
	case object.SpritePlayer:
		return PlayerColor
	case object.SpriteEnemy:
		return EnemyColor
	case object.SpritePlayerProjectile:
		return PlayerShotColor
	case object.SpriteEnemyProjectile:
		return EnemyShotColor
	case object.SpriteHeart:
		return HeartColor
	default:
		return StarColor
	}
}

// Star is one point of a starfield, in arena units.
type Star struct {
	X, Y float64
	Size float64 // Radius in arena units
}

// starCounts holds how many stars each star layer has. Nearer layers scroll
// faster and have fewer, larger stars.
var starCounts = map[object.Sprite]struct {
	count int
	size  float64
}{
	object.SpriteStarsNear: {count: 24, size: 2.5},
	object.SpriteStarsMid:  {count: 40, size: 1.8},
	object.SpriteStarsFar:  {count: 64, size: 1.2},
}

// Starfield returns the fixed star pattern of a star layer for an arena of
// the given size. Other sprites have no stars. The pattern only depends on
// its arguments so every backend and every frame agree.
func Starfield(id object.Sprite, w, h float64) []Star {
	layer, ok := starCounts[id]
	if !ok {
		return nil
	}
	rng := rand.New(rand.NewPCG(uint64(id), uint64(w)<<20|uint64(h)))
	stars := make([]Star, layer.count)
	for i := range stars {
		stars[i] = Star{
			X:    rng.Float64() * w,
			Y:    rng.Float64() * h,
			Size: layer.size * (0.6 + 0.4*rng.Float64()),
		}
	}
	return stars
}

// Nebula returns the soft blobs of the nebula layer as (center, radius)
// stars. Backends without transparency skip it.
func Nebula(w, h float64) []Star {
	rng := rand.New(rand.NewPCG(uint64(object.SpriteNebula), uint64(w)<<20|uint64(h)))
	blobs := make([]Star, 5)
	for i := range blobs {
		blobs[i] = Star{
			X:    rng.Float64() * w,
			Y:    rng.Float64() * h,
			Size: h * (0.15 + 0.2*rng.Float64()),
		}
	}
	return blobs
}

// ScoreText is the score readout shown in the top-right corner.
func ScoreText(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

// BannerLineHeight is the spacing between banner lines in arena units.
const BannerLineHeight = 20

// BannerLineY returns the vertical center of line i of an n-line banner
// centered in an arena of the given height.
func BannerLineY(height float64, n, i int) float64 {
	return height/2 + (float64(i)-float64(n-1)/2)*BannerLineHeight
}
