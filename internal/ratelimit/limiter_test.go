package ratelimit_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/golang/mock/gomock"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-crm/internal/config"
	"github.com/feral-file/ff-crm/internal/mocks"
	"github.com/feral-file/ff-crm/internal/ratelimit"
)

// testLimiterMocks contains all the mocks needed for testing the limiter
type testLimiterMocks struct {
	redisClient      *mocks.MockRedisClient
	redisRateLimiter *mocks.MockRedisRateLimiter
	clock            *mocks.MockClock
}

func setupTestLimiter(t *testing.T) *testLimiterMocks {
	ctrl := gomock.NewController(t)
	return &testLimiterMocks{
		redisClient:      mocks.NewMockRedisClient(ctrl),
		redisRateLimiter: mocks.NewMockRedisRateLimiter(ctrl),
		clock:            mocks.NewMockClock(ctrl),
	}
}

func testConfig() config.RateLimitConfig {
	return config.RateLimitConfig{
		Enabled:                 true,
		RequestsPerMinute:       60,
		Burst:                   2,
		KeyPrefix:               "test:",
		EnableLocalFallback:     true,
		LocalFallbackMultiplier: 0.5,
		HealthCheckInterval:     time.Hour,
	}
}

// newLimiter creates a limiter with the construction-time expectations set
func newLimiter(t *testing.T, m *testLimiterMocks, cfg config.RateLimitConfig, redisAvailable bool) ratelimit.Limiter {
	statusCmd := redis.NewStatusCmd(context.Background())
	if redisAvailable {
		statusCmd.SetVal("PONG")
	} else {
		statusCmd.SetErr(errors.New("connection refused"))
	}
	m.redisClient.EXPECT().Ping(gomock.Any()).Return(statusCmd)
	m.redisClient.EXPECT().NewRateLimiter().Return(m.redisRateLimiter)
	m.clock.EXPECT().NewTicker(cfg.HealthCheckInterval).Return(time.NewTicker(time.Hour))

	l, err := ratelimit.NewLimiter(cfg, m.redisClient, m.clock)
	require.NoError(t, err)

	t.Cleanup(func() {
		m.redisClient.EXPECT().Close().Return(nil).AnyTimes()
		_ = l.Close()
	})
	return l
}

func TestNewLimiter_StartsHealthTickerDuringConstruction(t *testing.T) {
	m := setupTestLimiter(t)
	cfg := testConfig()

	statusCmd := redis.NewStatusCmd(context.Background())
	statusCmd.SetVal("PONG")
	m.redisClient.EXPECT().Ping(gomock.Any()).Return(statusCmd)
	m.redisClient.EXPECT().NewRateLimiter().Return(m.redisRateLimiter)

	var tickerCreated atomic.Bool
	m.clock.EXPECT().NewTicker(cfg.HealthCheckInterval).DoAndReturn(func(d time.Duration) *time.Ticker {
		tickerCreated.Store(true)
		return time.NewTicker(d)
	})

	l, err := ratelimit.NewLimiter(cfg, m.redisClient, m.clock)
	require.NoError(t, err)
	assert.True(t, tickerCreated.Load())

	m.redisClient.EXPECT().Close().Return(nil)
	require.NoError(t, l.Close())
}

func TestNewLimiter_InvalidConfig(t *testing.T) {
	m := setupTestLimiter(t)
	cfg := testConfig()
	cfg.RequestsPerMinute = 0

	_, err := ratelimit.NewLimiter(cfg, m.redisClient, m.clock)
	require.Error(t, err)
}

func TestNewLimiter_RedisDownWithoutFallback(t *testing.T) {
	m := setupTestLimiter(t)
	cfg := testConfig()
	cfg.EnableLocalFallback = false

	statusCmd := redis.NewStatusCmd(context.Background())
	statusCmd.SetErr(errors.New("connection refused"))
	m.redisClient.EXPECT().Ping(gomock.Any()).Return(statusCmd)

	_, err := ratelimit.NewLimiter(cfg, m.redisClient, m.clock)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fallback disabled")
}

func TestAllow_Distributed(t *testing.T) {
	m := setupTestLimiter(t)
	l := newLimiter(t, m, testConfig(), true)
	wantLimit := redis_rate.Limit{Rate: 60, Burst: 2, Period: time.Minute}

	m.redisRateLimiter.EXPECT().
		Allow(gomock.Any(), "test:user-1", wantLimit).
		Return(&redis_rate.Result{Allowed: 1, Remaining: 1}, nil)

	d, err := l.Allow(context.Background(), "user-1")
	require.NoError(t, err)
	assert.True(t, d.Allowed)
	assert.Equal(t, 1, d.Remaining)

	m.redisRateLimiter.EXPECT().
		Allow(gomock.Any(), "test:user-1", wantLimit).
		Return(&redis_rate.Result{Allowed: 0, RetryAfter: 3 * time.Second}, nil)

	d, err = l.Allow(context.Background(), "user-1")
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Equal(t, 3*time.Second, d.RetryAfter)
}

func TestAllow_FallsBackToLocal(t *testing.T) {
	m := setupTestLimiter(t)
	l := newLimiter(t, m, testConfig(), true)

	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	m.clock.EXPECT().Now().Return(now).AnyTimes()

	// A single Redis failure switches to the local limiter until the health check recovers
	m.redisRateLimiter.EXPECT().
		Allow(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection reset")).
		Times(1)

	for i := 0; i < 2; i++ {
		d, err := l.Allow(context.Background(), "user-1")
		require.NoError(t, err)
		assert.True(t, d.Allowed, "request %d", i)
	}

	d, err := l.Allow(context.Background(), "user-1")
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Greater(t, d.RetryAfter, time.Duration(0))

	// Buckets are per key
	d, err = l.Allow(context.Background(), "user-2")
	require.NoError(t, err)
	assert.True(t, d.Allowed)
}

func TestAllow_RedisErrorWithoutFallback(t *testing.T) {
	m := setupTestLimiter(t)
	cfg := testConfig()
	cfg.EnableLocalFallback = false
	l := newLimiter(t, m, cfg, true)

	m.redisRateLimiter.EXPECT().
		Allow(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection reset"))

	_, err := l.Allow(context.Background(), "user-1")
	require.Error(t, err)

	// Redis stays marked unavailable until the health check succeeds
	_, err = l.Allow(context.Background(), "user-1")
	require.Error(t, err)
}

func TestClose(t *testing.T) {
	m := setupTestLimiter(t)
	l := newLimiter(t, m, testConfig(), false)

	m.redisClient.EXPECT().Close().Return(nil)
	require.NoError(t, l.Close())
	require.NoError(t, l.Close())

	_, err := l.Allow(context.Background(), "user-1")
	require.Error(t, err)
}
