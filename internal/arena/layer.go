package arena

import (
	"math"

	"github.com/tomz197/shmup/internal/config"
	"github.com/tomz197/shmup/internal/object"
)

// Layer is a full-arena background that scrolls left at its own speed.
type Layer struct {
	Sprite object.Sprite
	X      float64 // Scroll offset in [0, width)
	Speed  float64
}

func newLayers(p config.Parallax) []Layer {
	return []Layer{
		{Sprite: object.SpriteBackdrop, Speed: p.Backdrop},
		{Sprite: object.SpriteNebula, Speed: p.Nebula},
		{Sprite: object.SpriteStarsNear, Speed: p.StarsNear},
		{Sprite: object.SpriteStarsFar, Speed: p.StarsFar},
		{Sprite: object.SpriteStarsMid, Speed: p.StarsMid},
	}
}

func (l *Layer) scroll(width float64) {
	l.X = math.Mod(l.X+l.Speed, width)
	if l.X < 0 {
		l.X += width
	}
}

// draw renders the layer twice so the wrap point is seamless.
func (l *Layer) draw(r object.Renderer, width float64) {
	r.DrawSprite(l.Sprite, -l.X, 0)
	r.DrawSprite(l.Sprite, -l.X+width, 0)
}
