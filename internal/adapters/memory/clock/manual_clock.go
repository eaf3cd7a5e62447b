// Package clock provides a manually-advanced clock for deterministic tests.
package clock

import (
	"sync"
	"time"

	"github.com/destination-europe/explorer-client/internal/ports/out/clock"
)

// ManualClock returns a fixed instant until advanced.
type ManualClock struct {
	mu  sync.Mutex
	now time.Time
}

var _ clock.Clock = (*ManualClock)(nil)

func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
