package sweeper

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
)

// Sweeper defines the interface for sweeper implementations
// Sweepers are long-running background tasks that perform periodic maintenance
//
//go:generate mockgen -source=sweeper.go -destination=../mocks/sweeper.go -package=mocks -mock_names=Sweeper=MockSweeper
type Sweeper interface {
	// Start runs the sweep loop until the context is canceled or Stop is called
	Start(ctx context.Context) error

	// Stop signals the loop to exit and waits for the current cycle to finish
	Stop(ctx context.Context) error

	// Name returns the sweeper's name for logging and identification
	Name() string
}

// CycleStats counts the outcomes of one sweep cycle.
// Counters are updated concurrently by the workers.
type CycleStats struct {
	Deleted   atomic.Int32
	Failed    atomic.Int32
	Abandoned atomic.Int32
}

// Total returns the number of objects handled in the cycle
func (c *CycleStats) Total() int32 {
	return c.Deleted.Load() + c.Failed.Load() + c.Abandoned.Load()
}

func (c *CycleStats) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "deleted=%d failed=%d abandoned=%d", c.Deleted.Load(), c.Failed.Load(), c.Abandoned.Load())
	return b.String()
}
