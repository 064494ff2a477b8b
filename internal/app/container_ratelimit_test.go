package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"delivery-dispatch/internal/config"
	"delivery-dispatch/internal/http/middleware/ratelimit"
	"delivery-dispatch/internal/logx"
	"delivery-dispatch/internal/metrics"
)

func TestNewRateLimiter_DisabledReturnsNop(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.RateLimit.Enabled = false

	limiter := newRateLimiter(cfg, newRateLimitClock())
	require.IsType(t, ratelimit.NopLimiter{}, limiter)
}

func TestNewRateLimiter_EnabledReturnsTokenBucket(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.RateLimit = config.RateLimit{
		Enabled:    true,
		Rate:       5,
		Burst:      10,
		TTL:        time.Minute,
		MaxBuckets: 100,
	}

	limiter := newRateLimiter(cfg, newRateLimitClock())
	require.IsType(t, &ratelimit.TokenBucketLimiter{}, limiter)
}

func TestNewRateLimitMiddleware(t *testing.T) {
	t.Parallel()

	m := newRateLimitMiddleware(rateLimitIn{
		Logger:  logx.Nop(),
		Counter: metrics.NewRateLimitExceededTotal(),
		Limiter: ratelimit.NopLimiter{},
	})
	require.NotNil(t, m)
}
