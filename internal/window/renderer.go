package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/tomz197/shmup/internal/config"
	"github.com/tomz197/shmup/internal/object"
	"github.com/tomz197/shmup/internal/render"
	"github.com/tomz197/shmup/internal/render/raster"
	"golang.org/x/image/font/basicfont"
)

type commandKind int

const (
	cmdSprite commandKind = iota
	cmdScore
	cmdBanner
)

// command is one recorded draw call.
type command struct {
	kind   commandKind
	sprite object.Sprite
	x, y   float64
	lines  []string
}

// Renderer records draw calls during Update and replays the last flushed
// frame to the screen during Draw.
type Renderer struct {
	tuning config.Tuning

	pending   []command
	committed []command

	sprites map[object.Sprite]*ebiten.Image // Built on first Present
	face    text.Face
}

var _ object.Renderer = (*Renderer)(nil)

// NewRenderer creates a window renderer for the tuning's arena.
func NewRenderer(t config.Tuning) *Renderer {
	return &Renderer{
		tuning: t,
		face:   text.NewGoXFace(basicfont.Face7x13),
	}
}

// Clear starts recording a new frame.
func (r *Renderer) Clear() {
	r.pending = r.pending[:0]
}

// DrawSprite records a sprite draw.
func (r *Renderer) DrawSprite(id object.Sprite, x, y float64) {
	r.pending = append(r.pending, command{kind: cmdSprite, sprite: id, x: x, y: y})
}

// DrawScore records the score readout.
func (r *Renderer) DrawScore(score int) {
	r.pending = append(r.pending, command{kind: cmdScore, lines: []string{render.ScoreText(score)}})
}

// DrawBanner records centered banner text.
func (r *Renderer) DrawBanner(lines ...string) {
	r.pending = append(r.pending, command{kind: cmdBanner, lines: append([]string(nil), lines...)})
}

// Flush commits the recorded frame for the next Present.
func (r *Renderer) Flush() error {
	r.pending, r.committed = r.committed, r.pending
	return nil
}

// Present draws the last committed frame onto screen.
func (r *Renderer) Present(screen *ebiten.Image) {
	if r.sprites == nil {
		r.sprites = make(map[object.Sprite]*ebiten.Image)
		for id := range object.NewSheet(r.tuning) {
			r.sprites[id] = ebiten.NewImageFromImage(raster.Sprite(r.tuning, id))
		}
	}

	screen.Fill(render.BackdropColor)
	width, height := r.tuning.Arena.Width, r.tuning.Arena.Height

	for _, cmd := range r.committed {
		switch cmd.kind {
		case cmdSprite:
			opts := &ebiten.DrawImageOptions{}
			opts.GeoM.Translate(cmd.x, cmd.y)
			screen.DrawImage(r.sprites[cmd.sprite], opts)
		case cmdScore:
			opts := &text.DrawOptions{}
			opts.GeoM.Translate(width-10, 10)
			opts.PrimaryAlign = text.AlignEnd
			opts.ColorScale.ScaleWithColor(render.TextColor)
			text.Draw(screen, cmd.lines[0], r.face, opts)
		case cmdBanner:
			for i, line := range cmd.lines {
				opts := &text.DrawOptions{}
				opts.GeoM.Translate(width/2, render.BannerLineY(height, len(cmd.lines), i))
				opts.PrimaryAlign = text.AlignCenter
				opts.SecondaryAlign = text.AlignCenter
				opts.ColorScale.ScaleWithColor(render.TextColor)
				text.Draw(screen, line, r.face, opts)
			}
		}
	}
}
