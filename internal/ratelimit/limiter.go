package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/feral-file/ff-crm/internal/adapter"
	"github.com/feral-file/ff-crm/internal/config"
	"github.com/feral-file/ff-crm/internal/logger"
)

// Decision is the outcome of a rate limit check
type Decision struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

// Limiter decides whether a caller may perform one more request.
// Limits are shared across instances through Redis; while Redis is
// unreachable each instance enforces a reduced local limit.
//
//go:generate mockgen -source=limiter.go -destination=../mocks/ratelimit.go -package=mocks -mock_names=Limiter=MockRateLimiter
type Limiter interface {
	// Allow consumes one token from the bucket of key
	Allow(ctx context.Context, key string) (Decision, error)

	// Close stops the health monitor and closes the Redis connection
	Close() error
}

type limiter struct {
	config         config.RateLimitConfig
	distributed    adapter.RedisRateLimiter
	redis          adapter.RedisClient
	clock          adapter.Clock
	limit          redis_rate.Limit
	localRate      rate.Limit
	mu             sync.Mutex
	local          map[string]*rate.Limiter
	redisAvailable atomic.Bool
	closed         atomic.Bool
	closeOnce      sync.Once
	done           chan struct{}
}

// NewLimiter creates a new distributed rate limiter
func NewLimiter(cfg config.RateLimitConfig, rc adapter.RedisClient, clock adapter.Clock) (Limiter, error) {
	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	redisAvailable := true
	if err := rc.Ping(ctx).Err(); err != nil {
		redisAvailable = false
		if !cfg.EnableLocalFallback {
			return nil, fmt.Errorf("redis unavailable and fallback disabled: %w", err)
		}
		logger.Warn("Redis unavailable, will use local fallback", zap.Error(err))
	}

	// Minimum local rate of one request per minute
	perSecond := float64(cfg.RequestsPerMinute) / 60 * cfg.LocalFallbackMultiplier
	localRate := rate.Limit(max(perSecond, 1.0/60))

	l := &limiter{
		config:      cfg,
		distributed: rc.NewRateLimiter(),
		redis:       rc,
		clock:       clock,
		limit: redis_rate.Limit{
			Rate:   cfg.RequestsPerMinute,
			Burst:  cfg.Burst,
			Period: time.Minute,
		},
		localRate: localRate,
		local:     make(map[string]*rate.Limiter),
		done:      make(chan struct{}),
	}
	l.redisAvailable.Store(redisAvailable)

	// Created before the monitor starts so it exists once NewLimiter returns
	ticker := clock.NewTicker(cfg.HealthCheckInterval)
	go l.monitorRedisHealth(ticker)

	logger.Info("Rate limiter initialized",
		zap.Int("requests_per_minute", cfg.RequestsPerMinute),
		zap.Int("burst", cfg.Burst),
		zap.Bool("local_fallback", cfg.EnableLocalFallback),
	)

	return l, nil
}

func (l *limiter) Allow(ctx context.Context, key string) (Decision, error) {
	if l.closed.Load() {
		return Decision{}, fmt.Errorf("limiter is closed")
	}

	if l.redisAvailable.Load() {
		res, err := l.distributed.Allow(ctx, l.config.KeyPrefix+key, l.limit)
		if err == nil {
			return Decision{
				Allowed:    res.Allowed > 0,
				Remaining:  res.Remaining,
				RetryAfter: max(res.RetryAfter, 0),
			}, nil
		}
		if ctx.Err() != nil {
			return Decision{}, ctx.Err()
		}

		// Redis error - mark as unavailable and fall back to local if enabled
		l.redisAvailable.Store(false)
		if !l.config.EnableLocalFallback {
			return Decision{}, fmt.Errorf("redis rate limiter unavailable: %w", err)
		}
		logger.WarnCtx(ctx, "Redis rate limiter error, falling back to local",
			zap.String("key", key),
			zap.Error(err),
		)
	} else if !l.config.EnableLocalFallback {
		return Decision{}, fmt.Errorf("redis rate limiter unavailable")
	}

	return l.allowLocal(key), nil
}

// allowLocal consumes a token from the in-process bucket of key
func (l *limiter) allowLocal(key string) Decision {
	l.mu.Lock()
	lim, ok := l.local[key]
	if !ok {
		lim = rate.NewLimiter(l.localRate, l.config.Burst)
		l.local[key] = lim
	}
	l.mu.Unlock()

	now := l.clock.Now()
	reservation := lim.ReserveN(now, 1)
	if delay := reservation.DelayFrom(now); delay > 0 {
		reservation.CancelAt(now)
		return Decision{Allowed: false, RetryAfter: delay}
	}

	return Decision{Allowed: true, Remaining: int(lim.TokensAt(now))}
}

// monitorRedisHealth periodically checks Redis health and updates availability status
func (l *limiter) monitorRedisHealth(ticker *time.Ticker) {
	defer ticker.Stop()

	for {
		select {
		case <-l.done:
			return
		case <-ticker.C:
		}

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		err := l.redis.Ping(ctx).Err()
		cancel()

		redisAvailable := err == nil
		wasAvailable := l.redisAvailable.Swap(redisAvailable)
		if !wasAvailable && redisAvailable {
			logger.Info("Redis connection restored")
		}
	}
}

func (l *limiter) Close() error {
	var err error
	l.closeOnce.Do(func() {
		l.closed.Store(true)
		close(l.done)

		if closeErr := l.redis.Close(); closeErr != nil {
			logger.Warn("Error closing Redis connection", zap.Error(closeErr))
			err = closeErr
		}
	})
	return err
}

// validateConfig validates and sets defaults for the configuration
func validateConfig(cfg *config.RateLimitConfig) error {
	if cfg.RequestsPerMinute <= 0 {
		return fmt.Errorf("requests_per_minute must be positive")
	}
	if cfg.Burst <= 0 {
		cfg.Burst = cfg.RequestsPerMinute
	}
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = "crm:limiter:"
	}
	if cfg.LocalFallbackMultiplier <= 0 {
		cfg.LocalFallbackMultiplier = 0.5
	}
	if cfg.HealthCheckInterval <= 0 {
		cfg.HealthCheckInterval = 10 * time.Second
	}
	return nil
}
