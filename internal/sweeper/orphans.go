package sweeper

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/cenkalti/backoff/v4"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/feral-file/ff-crm/internal/adapter"
	"github.com/feral-file/ff-crm/internal/logger"
	"github.com/feral-file/ff-crm/internal/metrics"
	"github.com/feral-file/ff-crm/internal/storage"
	"github.com/feral-file/ff-crm/internal/store"
	"github.com/feral-file/ff-crm/internal/store/schema"
)

const (
	DEFAULT_SWEEP_INTERVAL       = 5 * time.Minute
	DEFAULT_DELETE_RETRY_INITIAL = 500 * time.Millisecond
	DEFAULT_DELETE_RETRY_MAX     = 3
)

// OrphanSweeperConfig holds configuration for the orphaned object sweeper
type OrphanSweeperConfig struct {
	Interval       time.Duration // Time to sleep between sweep cycles
	BatchSize      int           // Orphans fetched per cycle
	WorkerPoolSize int           // Concurrent deletes
	MaxAttempts    int           // Attempts before an orphan is abandoned

	// Per-object retry within a single cycle
	RetryInitialInterval time.Duration
	RetryMaxRetries      uint64
}

type orphanSweeper struct {
	config    *OrphanSweeperConfig
	store     store.Store
	objects   storage.ObjectStorage
	clock     adapter.Clock
	metrics   *metrics.Metrics
	pool      pond.Pool
	started   atomic.Bool
	stopOnce  sync.Once
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// NewOrphanSweeper creates a sweeper that retries deleting storage objects
// left behind by contact and document deletes
func NewOrphanSweeper(
	config *OrphanSweeperConfig,
	st store.Store,
	objects storage.ObjectStorage,
	clock adapter.Clock,
	m *metrics.Metrics,
) Sweeper {
	if config.Interval <= 0 {
		config.Interval = DEFAULT_SWEEP_INTERVAL
	}
	if config.RetryInitialInterval <= 0 {
		config.RetryInitialInterval = DEFAULT_DELETE_RETRY_INITIAL
	}
	if config.WorkerPoolSize <= 0 {
		config.WorkerPoolSize = 1
	}
	if config.BatchSize <= 0 {
		config.BatchSize = 100
	}

	return &orphanSweeper{
		config:    config,
		store:     st,
		objects:   objects,
		clock:     clock,
		metrics:   m,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Name returns the sweeper's name
func (s *orphanSweeper) Name() string {
	return "orphan-sweeper"
}

// Start runs sweep cycles until the context is canceled or Stop is called.
// A sweeper runs at most once; it cannot be restarted after it returns.
func (s *orphanSweeper) Start(ctx context.Context) error {
	if !s.started.CompareAndSwap(false, true) {
		return fmt.Errorf("sweeper already started")
	}
	defer close(s.stoppedCh)

	logger.InfoCtx(ctx, "Starting orphan sweeper",
		zap.Duration("interval", s.config.Interval),
		zap.Int("batch_size", s.config.BatchSize),
		zap.Int("worker_pool_size", s.config.WorkerPoolSize),
		zap.Int("max_attempts", s.config.MaxAttempts),
	)

	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Orphan sweeper stopping due to context cancellation", zap.Error(ctx.Err()))
			s.cleanup()
			return nil
		case <-s.stopChan:
			logger.InfoCtx(ctx, "Orphan sweeper stop requested")
			s.cleanup()
			return nil
		default:
			if _, err := s.runSweepCycle(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.ErrorCtx(ctx, err)
			}

			s.sleep(ctx, s.config.Interval)
		}
	}
}

func (s *orphanSweeper) cleanup() {
	if s.pool != nil {
		s.pool.StopAndWait()
	}
}

// Stop gracefully stops the sweeper with timeout support
func (s *orphanSweeper) Stop(ctx context.Context) error {
	s.stopOnce.Do(func() {
		logger.InfoCtx(ctx, "Stopping orphan sweeper")
		close(s.stopChan)
	})

	if !s.started.Load() {
		return nil
	}

	select {
	case <-s.stoppedCh:
		logger.InfoCtx(ctx, "Orphan sweeper stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Orphan sweeper stop interrupted by context timeout")
		return ctx.Err()
	}
}

// runSweepCycle handles one batch of pending orphans
func (s *orphanSweeper) runSweepCycle(ctx context.Context) (*CycleStats, error) {
	startTime := s.clock.Now()
	ctx = logger.WithFields(ctx, zap.String("sweep_id", ulid.MustNewDefault(startTime).String()))

	orphans, err := s.store.GetPendingOrphanedObjects(ctx, s.config.BatchSize)
	if err != nil {
		return nil, fmt.Errorf("failed to get pending orphaned objects: %w", err)
	}

	stats := &CycleStats{}
	if len(orphans) == 0 {
		logger.DebugCtx(ctx, "No orphaned objects to sweep")
		return stats, nil
	}

	logger.InfoCtx(ctx, "Found orphaned objects", zap.Int("count", len(orphans)))

	s.pool = pond.NewPool(
		s.config.WorkerPoolSize,
		pond.WithQueueSize(s.config.BatchSize),
		pond.WithContext(ctx),
	)
	for _, orphan := range orphans {
		s.pool.Submit(func() {
			s.sweepObject(ctx, orphan, stats)
		})
	}
	s.pool.StopAndWait()

	s.metrics.AddOrphanedObjects("deleted", int(stats.Deleted.Load()))
	s.metrics.AddOrphanedObjects("failed", int(stats.Failed.Load()))
	s.metrics.AddOrphanedObjects("abandoned", int(stats.Abandoned.Load()))

	logger.InfoCtx(ctx, "Sweep cycle completed",
		zap.Duration("duration", s.clock.Since(startTime)),
		zap.Int("total", len(orphans)),
		zap.Stringer("outcomes", stats),
	)

	return stats, nil
}

// sweepObject deletes one orphan from storage and settles its row
func (s *orphanSweeper) sweepObject(ctx context.Context, orphan schema.OrphanedObject, stats *CycleStats) {
	err := s.deleteWithRetry(ctx, orphan.Key)
	if err == nil {
		if err := s.store.DeleteOrphanedObject(ctx, orphan.ID); err != nil {
			logger.ErrorCtx(ctx, err, zap.String("key", orphan.Key))
			return
		}
		stats.Deleted.Add(1)
		return
	}

	logger.WarnCtx(ctx, "Failed to delete orphaned object",
		zap.String("key", orphan.Key),
		zap.Int("attempts", orphan.Attempts+1),
		zap.Error(err),
	)

	if err := s.store.MarkOrphanedObjectFailed(ctx, orphan.ID, err.Error(), s.config.MaxAttempts); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("key", orphan.Key))
		return
	}

	if s.config.MaxAttempts > 0 && orphan.Attempts+1 >= s.config.MaxAttempts {
		stats.Abandoned.Add(1)
		logger.WarnCtx(ctx, "Abandoned orphaned object", zap.String("key", orphan.Key))
		return
	}
	stats.Failed.Add(1)
}

func (s *orphanSweeper) deleteWithRetry(ctx context.Context, key string) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = s.config.RetryInitialInterval
	b.MaxInterval = 10 * s.config.RetryInitialInterval
	b.Multiplier = 2.0
	b.RandomizationFactor = 0.5

	policy := backoff.WithContext(backoff.WithMaxRetries(b, s.config.RetryMaxRetries), ctx)

	var attemptCount int
	notifyOnError := func(err error, next time.Duration) {
		attemptCount++
		logger.DebugCtx(ctx, "Orphaned object delete failed, retrying",
			zap.String("key", key),
			zap.Error(err),
			zap.Int("attempt", attemptCount),
			zap.Duration("next_retry_in", next),
		)
	}

	return backoff.RetryNotify(func() error {
		return s.objects.Delete(ctx, key)
	}, policy, notifyOnError)
}

// sleep waits for the given duration unless the context is canceled or stop is requested.
// Returns true if the sleep completed.
func (s *orphanSweeper) sleep(ctx context.Context, duration time.Duration) bool {
	select {
	case <-s.clock.After(duration):
		return true
	case <-ctx.Done():
		return false
	case <-s.stopChan:
		return false
	}
}
