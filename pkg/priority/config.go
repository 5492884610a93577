package priority

import "time"

// TreeConfig holds configuration for a priority tree.
type TreeConfig struct {
	// MaxStreams caps the number of streams held in the tree, excluding the
	// root. 0 means unlimited. Inserts beyond the cap fail with
	// ErrTooManyStreams.
	MaxStreams int

	// MaxPriorityUpdatesPerSecond caps ApplyPriority calls per window.
	// 0 disables the limiter; the scheduler core stays deterministic and
	// free of clock reads unless a limit is set.
	MaxPriorityUpdatesPerSecond int

	// PriorityRateLimitWindow is the rate limit window (default: 1s).
	PriorityRateLimitWindow time.Duration
}

// DefaultTreeConfig returns the default configuration: no stream cap, no
// priority-update rate limit.
func DefaultTreeConfig() *TreeConfig {
	return &TreeConfig{
		MaxStreams:                  0,
		MaxPriorityUpdatesPerSecond: 0,
		PriorityRateLimitWindow:     time.Second,
	}
}

// Validate validates the configuration.
func (c *TreeConfig) Validate() error {
	if c.MaxStreams < 0 {
		return ErrInvalidConfig
	}
	if c.MaxPriorityUpdatesPerSecond < 0 {
		return ErrInvalidConfig
	}
	c.normalize()
	return nil
}

// normalize fills zero-value fields with their defaults.
func (c *TreeConfig) normalize() {
	if c.PriorityRateLimitWindow <= 0 {
		c.PriorityRateLimitWindow = time.Second
	}
}

// priorityUpdateLimiter tracks PRIORITY frame arrivals within a fixed
// window; the count resets once a full window has passed since the last
// reset. Like the tree it guards, it is single-owner and unsynchronized.
type priorityUpdateLimiter struct {
	count        int
	window       time.Duration
	lastReset    time.Time
	maxPerWindow int
}

// newPriorityUpdateLimiter creates a limiter allowing maxPerWindow updates
// per window.
func newPriorityUpdateLimiter(maxPerWindow int, window time.Duration) *priorityUpdateLimiter {
	return &priorityUpdateLimiter{
		window:       window,
		lastReset:    time.Now(),
		maxPerWindow: maxPerWindow,
	}
}

// allow checks if another update is allowed in the current window.
func (rl *priorityUpdateLimiter) allow() bool {
	now := time.Now()

	if now.Sub(rl.lastReset) >= rl.window {
		rl.count = 0
		rl.lastReset = now
	}

	if rl.count >= rl.maxPerWindow {
		return false
	}

	rl.count++
	return true
}
