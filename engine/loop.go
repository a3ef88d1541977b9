package engine

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/hexfire/parameter"
)

// ErrQuit is returned by a step function to end the loop cleanly
var ErrQuit = errors.New("quit requested")

// StepFunc advances one frame by dt seconds
type StepFunc func(dt float64) error

// Loop drives a StepFunc on a fixed ticker with deltas from a Clock
type Loop struct {
	clock    *Clock
	interval time.Duration
	step     StepFunc
	log      zerolog.Logger
}

// NewLoop creates a loop; interval <= 0 selects the default frame interval
func NewLoop(clock *Clock, interval time.Duration, step StepFunc, log zerolog.Logger) *Loop {
	if interval <= 0 {
		interval = parameter.FrameUpdateInterval
	}
	return &Loop{
		clock:    clock,
		interval: interval,
		step:     step,
		log:      log.With().Str("component", "loop").Logger(),
	}
}

// Run blocks until ctx is done or the step function fails
// ErrQuit and context cancellation both end the loop without error
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	l.clock.Reset()
	l.log.Debug().Dur("interval", l.interval).Msg("loop started")

	for {
		select {
		case <-ctx.Done():
			l.log.Debug().Uint64("frames", l.clock.Frame()).Msg("loop cancelled")
			return nil
		case <-ticker.C:
			if err := l.step(l.clock.Tick()); err != nil {
				if errors.Is(err, ErrQuit) {
					l.log.Debug().Uint64("frames", l.clock.Frame()).Msg("loop quit")
					return nil
				}
				return err
			}
		}
	}
}
