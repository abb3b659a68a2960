package animate

import (
	"context"
	"time"
)

// DefaultInterval is roughly one frame at 60Hz.
const DefaultInterval = 16 * time.Millisecond

// Loop calls a tick function on a wall-clock interval.
type Loop struct {
	Interval time.Duration
}

// Run calls fn with the tick time until ctx is done or fn returns false.
// It returns ctx.Err() when the context ended the loop and nil otherwise.
func (l Loop) Run(ctx context.Context, fn func(now time.Time) bool) error {
	interval := l.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			if !fn(now) {
				return nil
			}
		}
	}
}
