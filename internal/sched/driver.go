// internal/sched/driver.go

package sched

import (
	"context"
	"time"
)

// Driver advances a Scheduler on a fixed wall-clock interval. While Run is
// active it is the only caller of Tick: a single goroutine drains the ticker,
// and time.Ticker drops ticks it cannot deliver, so two ticks can never
// execute concurrently against the same scheduler (missed intervals are
// skipped, not queued).
type Driver struct {
	sched    *Scheduler
	interval time.Duration
}

// NewDriver creates a driver but does not start it.
func NewDriver(s *Scheduler, interval time.Duration) *Driver {
	return &Driver{sched: s, interval: interval}
}

// Run ticks the scheduler until the simulation completes or ctx is
// cancelled. It returns nil on completion and ctx.Err() on cancellation.
func (d *Driver) Run(ctx context.Context) error {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			d.sched.Tick()
			if d.sched.Done() {
				return nil
			}
		}
	}
}
