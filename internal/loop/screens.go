package loop

import (
	"fmt"
	"time"

	"github.com/tomz197/shmup/internal/arena"
	"github.com/tomz197/shmup/internal/object"
)

// Screen is the driver's current phase.
type Screen int

const (
	ScreenTitle    Screen = iota // Title screen
	ScreenPlaying                // Active gameplay
	ScreenGameOver               // Player depleted, show restart prompt
)

func (s Screen) String() string {
	switch s {
	case ScreenTitle:
		return "title"
	case ScreenPlaying:
		return "playing"
	case ScreenGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

const (
	titleText    = "S H M U P"
	startPrompt  = "Press SPACE to start"
	controlsHelp = "Arrows/WASD to move, SPACE to shoot, Q to quit"
)

// update advances the screen state machine by one tick.
func (d *Driver) update(c object.Controls) {
	pressed := c.Fire && !d.fireHeld
	d.fireHeld = c.Fire

	switch d.screen {
	case ScreenTitle:
		if pressed {
			d.startRound(false)
		}
	case ScreenPlaying:
		// The press that started the round is not a shot
		if d.fireLatched {
			if c.Fire {
				c.Fire = false
			} else {
				d.fireLatched = false
			}
		}
		d.arena.Update(c)
		if d.opts.Tuning.GameOver && d.arena.PlayerDepleted() {
			d.screen = ScreenGameOver
			d.logger.Info("game over", "score", d.arena.Score(), "spawned", d.arena.Spawner().Spawned())
		}
	case ScreenGameOver:
		// The arena stays frozen behind the banner
		if pressed {
			d.startRound(true)
		}
	}
}

// startRound enters play. A restart replaces the arena with a fresh one.
func (d *Driver) startRound(restart bool) {
	if r, ok := d.source.(Resetter); ok {
		r.Reset()
	}
	if restart {
		d.arena = arena.New(d.opts.Tuning, d.opts.Rand)
	}
	d.fireLatched = true
	d.screen = ScreenPlaying
	d.logger.Debug("round started", "restart", restart)
}

// drawFrame renders the arena and the current screen's banner.
func (d *Driver) drawFrame(idle time.Duration) error {
	r := d.renderer
	r.Clear()
	d.arena.Draw(r)

	switch d.screen {
	case ScreenTitle:
		r.DrawBanner(titleText, "", startPrompt, "", controlsHelp)
	case ScreenGameOver:
		r.DrawBanner("GAME OVER", fmt.Sprintf("Score: %d", d.arena.Score()), "", "Press SPACE to restart")
	case ScreenPlaying:
		if d.opts.IdleWarn > 0 && idle >= d.opts.IdleWarn {
			r.DrawBanner("Still there?", idleCountdown(d.opts.IdleDisconnect-idle))
		}
	}

	return r.Flush()
}

func idleCountdown(left time.Duration) string {
	if left <= 0 {
		return "Press any key to keep playing"
	}
	return fmt.Sprintf("Disconnecting in %d seconds", int(left.Seconds())+1)
}
