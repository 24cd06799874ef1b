// Package loop drives the fixed-tick game loop: input, update, draw, pace.
package loop

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/shmup/internal/arena"
	"github.com/tomz197/shmup/internal/config"
	"github.com/tomz197/shmup/internal/object"
)

//go:generate go tool mockgen -destination=./mocks/loop_mock.go -package=mocks . Source,Clock

// Source provides the control state once per tick.
type Source interface {
	Poll() object.Controls
}

// Resetter is implemented by sources that can forget held keys. The driver
// resets the source whenever a round starts.
type Resetter interface {
	Reset()
}

// Clock paces the loop. Tick blocks until the next frame is due.
type Clock interface {
	Tick(ctx context.Context) error
}

// ErrIdle is returned by Run when no input arrived for the idle disconnect
// threshold.
var ErrIdle = errors.New("idle timeout")

// Options configures a Driver.
type Options struct {
	Tuning config.Tuning
	Rand   object.Rand
	Logger *log.Logger

	// IdleWarn shows a warning banner after this long without input.
	// IdleDisconnect stops the loop with ErrIdle. Zero disables each.
	IdleWarn       time.Duration
	IdleDisconnect time.Duration

	// Now overrides the wall clock used for idle tracking.
	Now func() time.Time
}

// Driver runs one player's game: title screen, rounds and game over.
type Driver struct {
	source   Source
	renderer object.Renderer
	clock    Clock
	opts     Options
	logger   *log.Logger

	arena       *arena.Arena
	screen      Screen
	fireHeld    bool // Fire state on the previous tick
	fireLatched bool // Fire held since the round started
	lastInput   time.Time
	ticks       int
}

// New creates a driver. The arena is created immediately so the title screen
// has a backdrop to draw. clock may be nil when the caller only uses Step.
func New(source Source, renderer object.Renderer, clock Clock, opts Options) *Driver {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Driver{
		source:   source,
		renderer: renderer,
		clock:    clock,
		opts:     opts,
		logger:   opts.Logger,
		arena:    arena.New(opts.Tuning, opts.Rand),
		screen:   ScreenTitle,
	}
}

// Run executes the loop until the context is cancelled, the player quits or
// the idle threshold is reached. Cancellation is checked once per iteration,
// so the tick in flight always completes.
func (d *Driver) Run(ctx context.Context) error {
	d.logger.Debug("loop started", "tickRate", d.opts.Tuning.TickRate)

	for {
		if ctx.Err() != nil {
			d.logger.Debug("loop cancelled", "ticks", d.ticks)
			return nil
		}

		done, err := d.Step()
		if done || err != nil {
			return err
		}

		// ===== FRAME TIMING =====
		if err := d.clock.Tick(ctx); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				d.logger.Debug("loop cancelled", "ticks", d.ticks)
				return nil
			}
			return fmt.Errorf("frame clock: %w", err)
		}
	}
}

// Step runs one unpaced iteration: input, update and draw. It reports done
// when the player quit, and ErrIdle once the idle threshold is reached.
// Frontends with their own frame loop call Step instead of Run.
func (d *Driver) Step() (done bool, err error) {
	if d.lastInput.IsZero() {
		d.lastInput = d.opts.Now()
	}

	// ===== INPUT PHASE =====
	c := d.source.Poll()
	if c.Quit {
		d.logger.Info("player quit", "score", d.arena.Score(), "ticks", d.ticks)
		return true, nil
	}
	idle := d.trackIdle(c)
	if d.opts.IdleDisconnect > 0 && idle >= d.opts.IdleDisconnect {
		d.logger.Info("idle disconnect", "idle", idle.Round(time.Second))
		return true, ErrIdle
	}

	// ===== UPDATE PHASE =====
	d.update(c)

	// ===== DRAW PHASE =====
	if err := d.drawFrame(idle); err != nil {
		return true, fmt.Errorf("render frame: %w", err)
	}

	d.ticks++
	return false, nil
}

// trackIdle returns how long the player has been idle.
func (d *Driver) trackIdle(c object.Controls) time.Duration {
	now := d.opts.Now()
	if c.Any() {
		d.lastInput = now
	}
	return now.Sub(d.lastInput)
}

// Screen returns the current screen.
func (d *Driver) Screen() Screen { return d.screen }

// Arena returns the current round's arena.
func (d *Driver) Arena() *arena.Arena { return d.arena }

// Ticks returns the number of completed loop iterations.
func (d *Driver) Ticks() int { return d.ticks }
