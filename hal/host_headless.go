//go:build !tinygo

package hal

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Display DisplayConfig
	// Hz is the frame rate. Zero or less selects 60.
	Hz int
	// Frames stops the runner after that many steps. Zero runs until ctx ends.
	Frames uint64
	// Unpaced runs steps back to back instead of on a ticker.
	Unpaced bool
}

// RunHeadless drives the effect without opening a window.
// It returns nil when the frame limit is reached or the step returns ErrStop.
func RunHeadless(ctx context.Context, newApp AppFactory, cfg HeadlessConfig) error {
	return runHeadless(ctx, newHost(cfg.Display, stdoutWriter()), newApp, cfg)
}

func runHeadless(ctx context.Context, h *hostHAL, newApp AppFactory, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	step, err := newApp(h)
	if err != nil {
		return err
	}

	var tick <-chan time.Time
	if !cfg.Unpaced {
		d := time.Second / time.Duration(cfg.Hz)
		if d <= 0 {
			return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
		}
		t := time.NewTicker(d)
		defer t.Stop()
		tick = t.C
	}

	var frames uint64
	for {
		if tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}

		if step != nil {
			if err := step(); err != nil {
				if errors.Is(err, ErrStop) {
					return nil
				}
				return err
			}
		}
		frames++
		if cfg.Frames > 0 && frames >= cfg.Frames {
			return nil
		}
	}
}
