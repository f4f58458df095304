package search

import (
	"fmt"
	"time"
)

// HostOption configures a Host at construction time, following the
// teacher's functional-option factory pattern (originally used there to
// tune per-difficulty engine construction; here it tunes the one Host
// every difficulty ultimately shares).
type HostOption func(*hostConfig) error

type hostConfig struct {
	depth       int
	timeBudget  time.Duration
	resultQueue int
}

// WithDepth overrides the ply depth AlphaBeta searches to.
func WithDepth(depth int) HostOption {
	return func(c *hostConfig) error {
		if depth < 1 || depth > 20 {
			return fmt.Errorf("search depth must be 1-20, got %d", depth)
		}
		c.depth = depth
		return nil
	}
}

// WithTimeBudget sets a soft budget after which the Host's worker sets its
// cooperative-cancellation flag itself, the same flag Stop sets, causing
// the search to abandon remaining root moves and report its best result so
// far. A zero budget (the default) means a search runs to completion
// however long that takes, with cancellation only ever driven by an
// explicit Stop.
func WithTimeBudget(d time.Duration) HostOption {
	return func(c *hostConfig) error {
		if d < 0 {
			return fmt.Errorf("time budget must not be negative, got %v", d)
		}
		c.timeBudget = d
		return nil
	}
}

// WithResultQueueSize overrides the buffer size of the Host's result
// channel. The default comfortably holds a few pending Execute commands
// without blocking the worker.
func WithResultQueueSize(n int) HostOption {
	return func(c *hostConfig) error {
		if n < 1 {
			return fmt.Errorf("result queue size must be positive, got %d", n)
		}
		c.resultQueue = n
		return nil
	}
}

func defaultHostConfig() *hostConfig {
	return &hostConfig{
		depth:       DefaultDepth,
		timeBudget:  0,
		resultQueue: 8,
	}
}
