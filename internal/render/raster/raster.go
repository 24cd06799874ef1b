// Package raster renders frames into images with fogleman/gg.
package raster

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/tomz197/shmup/internal/config"
	"github.com/tomz197/shmup/internal/object"
	"github.com/tomz197/shmup/internal/render"
	"golang.org/x/image/font/basicfont"
)

// Renderer draws frames into an in-memory image, one arena unit per pixel
// times the scale.
type Renderer struct {
	dc     *gg.Context
	scale  float64
	width  float64 // Arena size in logical units
	height float64
	sheet  object.Sheet
	stars  map[object.Sprite][]render.Star
	nebula []render.Star

	score  string
	banner []string
	frame  image.Image
}

var _ object.Renderer = (*Renderer)(nil)

// New creates a raster renderer for the tuning's arena.
func New(t config.Tuning, scale float64) *Renderer {
	if scale <= 0 {
		scale = 1
	}
	return newRenderer(t, int(t.Arena.Width*scale), int(t.Arena.Height*scale), scale)
}

func newRenderer(t config.Tuning, w, h int, scale float64) *Renderer {
	width, height := t.Arena.Width, t.Arena.Height
	dc := gg.NewContext(w, h)
	dc.SetFontFace(basicfont.Face7x13)

	stars := make(map[object.Sprite][]render.Star)
	for _, id := range []object.Sprite{object.SpriteStarsNear, object.SpriteStarsMid, object.SpriteStarsFar} {
		stars[id] = render.Starfield(id, width, height)
	}
	return &Renderer{
		dc:     dc,
		scale:  scale,
		width:  width,
		height: height,
		sheet:  object.NewSheet(t),
		stars:  stars,
		nebula: render.Nebula(width, height),
	}
}

// Sprite renders a single sprite onto a transparent image of its own size.
func Sprite(t config.Tuning, id object.Sprite) image.Image {
	size := object.NewSheet(t)[id]
	r := newRenderer(t, int(math.Ceil(size.W)), int(math.Ceil(size.H)), 1)
	r.DrawSprite(id, 0, 0)
	return imaging.Clone(r.dc.Image())
}

// Clear starts a new frame.
func (r *Renderer) Clear() {
	r.dc.Identity()
	r.dc.SetColor(render.BackdropColor)
	r.dc.Clear()
	r.dc.Scale(r.scale, r.scale)
	r.score = ""
	r.banner = r.banner[:0]
}

// DrawSprite draws a sprite with its top-left corner at (x, y).
func (r *Renderer) DrawSprite(id object.Sprite, x, y float64) {
	dc := r.dc
	size := r.sheet[id]
	dc.SetColor(render.Color(id))

	switch id {
	case object.SpriteBackdrop:
		dc.DrawRectangle(x, y, size.W, size.H)
		dc.Fill()
	case object.SpriteNebula:
		for _, b := range r.nebula {
			dc.DrawCircle(x+b.X, y+b.Y, b.Size)
		}
		dc.Fill()
	case object.SpriteStarsNear, object.SpriteStarsMid, object.SpriteStarsFar:
		for _, s := range r.stars[id] {
			dc.DrawCircle(x+s.X, y+s.Y, s.Size)
		}
		dc.Fill()
	case object.SpritePlayerProjectile, object.SpriteEnemyProjectile:
		bx, by, bw, bh := render.Bolt()
		dc.DrawRoundedRectangle(x+bx*size.W, y+by*size.H, bw*size.W, bh*size.H, bh*size.H/2)
		dc.Fill()
	default:
		shape := render.Shape(id)
		if shape == nil {
			dc.DrawRectangle(x, y, size.W, size.H)
			dc.Fill()
			return
		}
		dc.NewSubPath()
		for _, p := range shape {
			dc.LineTo(x+p.X*size.W, y+p.Y*size.H)
		}
		dc.ClosePath()
		dc.Fill()
	}
}

// DrawScore queues the score readout for the top-right corner.
func (r *Renderer) DrawScore(score int) {
	r.score = render.ScoreText(score)
}

// DrawBanner queues lines of text centered over the arena.
func (r *Renderer) DrawBanner(lines ...string) {
	r.banner = append(r.banner[:0], lines...)
}

// Flush draws the text overlays and captures the frame.
func (r *Renderer) Flush() error {
	dc := r.dc
	dc.SetColor(render.TextColor)
	if r.score != "" {
		dc.DrawStringAnchored(r.score, r.width-10, 10, 1, 1)
	}

	for i, line := range r.banner {
		dc.DrawStringAnchored(line, r.width/2, render.BannerLineY(r.height, len(r.banner), i), 0.5, 0.5)
	}

	r.frame = imaging.Clone(dc.Image())
	return nil
}

// Image returns the last flushed frame, or nil before the first Flush.
func (r *Renderer) Image() image.Image {
	return r.frame
}

// EncodePNG writes the last flushed frame as a PNG.
func (r *Renderer) EncodePNG(w io.Writer) error {
	if r.frame == nil {
		return fmt.Errorf("no frame rendered")
	}
	if err := png.Encode(w, r.frame); err != nil {
		return fmt.Errorf("failed to encode frame: %w", err)
	}
	return nil
}

// PNG returns the last flushed frame as PNG bytes.
func (r *Renderer) PNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := r.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
