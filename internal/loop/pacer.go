package loop

import (
	"context"
	"time"
)

// Pacer is a Clock that holds the loop to a fixed frame rate. A frame that
// overruns its budget starts the next one immediately; missed frames are not
// made up.
type Pacer struct {
	frame time.Duration
	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error

	frameStart time.Time
}

var _ Clock = (*Pacer)(nil)

// NewPacer creates a pacer for the given tick rate.
func NewPacer(tickRate int) *Pacer {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Pacer{
		frame: time.Second / time.Duration(tickRate),
		now:   time.Now,
		sleep: sleepContext,
	}
}

// Tick sleeps for whatever is left of the current frame, then starts the
// next one.
func (p *Pacer) Tick(ctx context.Context) error {
	if p.frameStart.IsZero() {
		p.frameStart = p.now()
	}

	elapsed := p.now().Sub(p.frameStart)
	if elapsed < p.frame {
		if err := p.sleep(ctx, p.frame-elapsed); err != nil {
			return err
		}
	}

	p.frameStart = p.now()
	return nil
}

// Frame returns the frame duration.
func (p *Pacer) Frame() time.Duration { return p.frame }

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
