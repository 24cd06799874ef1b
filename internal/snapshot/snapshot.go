// Package snapshot plays a seeded demo round headlessly and renders it to
// an image, for spectator previews.
package snapshot

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"math/rand/v2"

	"github.com/disintegration/imaging"
	"github.com/tomz197/shmup/internal/arena"
	"github.com/tomz197/shmup/internal/config"
	"github.com/tomz197/shmup/internal/object"
	"github.com/tomz197/shmup/internal/physics"
	"github.com/tomz197/shmup/internal/render/raster"
)

// MaxTicks bounds how long a demo may be simulated for one snapshot.
const MaxTicks = 60 * 60 * 5

// Options configures a snapshot.
type Options struct {
	Ticks int    // Simulated ticks before the frame is captured
	Seed  uint64 // Seed for the arena's random source
	Width int    // Thumbnail width in pixels; 0 keeps the arena size
}

// Validate checks the options are within range.
func (o Options) Validate() error {
	if o.Ticks < 0 || o.Ticks > MaxTicks {
		return fmt.Errorf("ticks must be between 0 and %d, got %d", MaxTicks, o.Ticks)
	}
	if o.Width < 0 || o.Width > 4000 {
		return fmt.Errorf("width must be between 0 and 4000, got %d", o.Width)
	}
	return nil
}

// Autopilot steers the player toward the nearest live enemy's row and fires
// whenever one is lined up. It only reads the arena.
func Autopilot(a *arena.Arena, tick int) object.Controls {
	var c object.Controls
	player := a.Player().Bounds()

	if player.X < a.Tuning().Player.StartX {
		c.Right = true
	}

	target, ok := nearestEnemy(a)
	if !ok {
		return c
	}
	// Steer toward a velocity proportional to the distance so the ship
	// settles on the row instead of swinging past it
	dy := target.CenterY() - player.CenterY()
	want := max(min(dy*0.1, 3), -3)
	vy := a.Player().VY
	switch {
	case vy > want+0.2:
		c.Up = true
	case vy < want-0.2:
		c.Down = true
	}

	// Fire needs a fresh press every shot
	if math.Abs(dy) < target.H/2 && tick%2 == 0 {
		c.Fire = true
	}
	return c
}

// nearestEnemy returns the bounds of the live enemy closest to the player.
func nearestEnemy(a *arena.Arena) (physics.Rect, bool) {
	player := a.Player().Bounds()
	var (
		best  physics.Rect
		found bool
	)
	for _, e := range a.Enemies() {
		if !e.Alive() {
			continue
		}
		b := e.Bounds()
		if !found || math.Abs(b.X-player.X) < math.Abs(best.X-player.X) {
			best, found = b, true
		}
	}
	return best, found
}

// Simulate runs a demo round for the given number of ticks. With GameOver
// set the round freezes once the player is depleted, as it does in play.
func Simulate(t config.Tuning, opts Options) (*arena.Arena, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	a := arena.New(t, rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15)))
	for tick := 0; tick < opts.Ticks; tick++ {
		if t.GameOver && a.PlayerDepleted() {
			break
		}
		a.Update(Autopilot(a, tick))
	}
	return a, nil
}

// Render simulates a demo round and renders its final frame.
func Render(t config.Tuning, opts Options) (image.Image, error) {
	a, err := Simulate(t, opts)
	if err != nil {
		return nil, err
	}

	r := raster.New(t, 1)
	r.Clear()
	a.Draw(r)
	if t.GameOver && a.PlayerDepleted() {
		r.DrawBanner("GAME OVER", fmt.Sprintf("Score: %d", a.Score()))
	}
	if err := r.Flush(); err != nil {
		return nil, fmt.Errorf("failed to render frame: %w", err)
	}

	img := r.Image()
	if opts.Width > 0 && opts.Width != img.Bounds().Dx() {
		img = imaging.Resize(img, opts.Width, 0, imaging.Lanczos)
	}
	return img, nil
}

// WritePNG renders a snapshot and encodes it as PNG.
func WritePNG(w io.Writer, t config.Tuning, opts Options) error {
	img, err := Render(t, opts)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return nil
}
