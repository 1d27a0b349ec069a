package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"golang.org/x/time/rate"

	"github.com/ZanzyTHEbar/number-o-meter/internal/monitoring"
	"github.com/ZanzyTHEbar/number-o-meter/internal/resilience"
)

const maxFallbackLimiters = 10000

// Config holds rate limiter configuration
type Config struct {
	IPLimit         int           // requests per minute per client IP
	BurstMultiplier int           // redis burst as a multiple of the limit
	EnableFallback  bool          // use in-memory buckets when Redis fails
	CleanupInterval time.Duration // how often idle in-memory buckets are dropped
	IdleTTL         time.Duration // how long an unused bucket survives
}

// DefaultConfig returns default rate limiting configuration
func DefaultConfig() Config {
	return Config{
		IPLimit:         60,
		BurstMultiplier: 1,
		EnableFallback:  true,
		CleanupInterval: 10 * time.Minute,
		IdleTTL:         30 * time.Minute,
	}
}

// Rate is a request budget over a period
type Rate struct {
	Limit  int
	Period time.Duration
}

// Result represents the result of a rate limit check
type Result struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetAt    time.Time
	RetryAfter time.Duration
}

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter limits requests with Redis when available and per-instance
// token buckets otherwise
type RateLimiter struct {
	redisLimiter *redis_rate.Limiter
	redisClient  *RedisClient
	breaker      *resilience.CircuitBreaker
	config       Config
	metrics      *monitoring.Metrics

	fallbackMutex    sync.Mutex
	fallbackLimiters map[string]*bucket

	stop     chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

// NewRateLimiter creates a rate limiter and starts its cleanup loop. Close
// stops the loop.
func NewRateLimiter(redisClient *RedisClient, config Config, metrics *monitoring.Metrics) *RateLimiter {
	if config.BurstMultiplier < 1 {
		config.BurstMultiplier = 1
	}
	if config.CleanupInterval <= 0 {
		config.CleanupInterval = DefaultConfig().CleanupInterval
	}
	if config.IdleTTL <= 0 {
		config.IdleTTL = DefaultConfig().IdleTTL
	}

	rl := &RateLimiter{
		redisClient:      redisClient,
		breaker:          resilience.NewCircuitBreaker(resilience.DefaultConfig()),
		config:           config,
		metrics:          metrics,
		fallbackLimiters: make(map[string]*bucket),
		stop:             make(chan struct{}),
		done:             make(chan struct{}),
	}

	if redisClient.IsEnabled() {
		rl.redisLimiter = redis_rate.NewLimiter(redisClient.GetClient())
	}

	go rl.cleanupLoop()

	return rl
}

// Close stops the cleanup loop
func (rl *RateLimiter) Close() {
	rl.stopOnce.Do(func() {
		close(rl.stop)
	})
	<-rl.done
}

// AllowIP checks the per-minute budget of a client IP
func (rl *RateLimiter) AllowIP(ctx context.Context, ip string) (*Result, error) {
	return rl.Allow(ctx, ipKey(ip), Rate{Limit: rl.config.IPLimit, Period: time.Minute})
}

func ipKey(ip string) string {
	return "ratelimit:ip:" + ip
}

// Allow consumes one request from the budget identified by key
func (rl *RateLimiter) Allow(ctx context.Context, key string, limit Rate) (*Result, error) {
	if rl.redisLimiter != nil {
		var result *Result
		err := rl.breaker.Call(func() error {
			var err error
			result, err = rl.allowRedis(ctx, key, limit)
			return err
		})
		if err == nil {
			return result, nil
		}

		open := errors.Is(err, resilience.ErrOpen)
		if rl.metrics != nil && !open {
			rl.metrics.IncrementRateLimitRedisError()
		}
		if !rl.config.EnableFallback {
			return nil, err
		}
		if !open {
			slog.Warn("Redis rate limit check failed, using fallback", "key", key, "error", err)
		}
	}

	if rl.metrics != nil {
		rl.metrics.IncrementRateLimitFallback()
	}
	return rl.allowFallback(key, limit), nil
}

func (rl *RateLimiter) allowRedis(ctx context.Context, key string, limit Rate) (*Result, error) {
	res, err := rl.redisLimiter.Allow(ctx, key, redis_rate.Limit{
		Rate:   limit.Limit,
		Burst:  limit.Limit * rl.config.BurstMultiplier,
		Period: limit.Period,
	})
	if err != nil {
		return nil, fmt.Errorf("redis rate limit check failed: %w", err)
	}

	retryAfter := res.RetryAfter
	if retryAfter < 0 {
		retryAfter = 0
	}

	return &Result{
		Allowed:    res.Allowed > 0,
		Limit:      res.Limit.Rate,
		Remaining:  res.Remaining,
		ResetAt:    time.Now().Add(res.ResetAfter),
		RetryAfter: retryAfter,
	}, nil
}

// allowFallback uses a token bucket holding at most Limit tokens and
// refilling Limit tokens per Period
func (rl *RateLimiter) allowFallback(key string, limit Rate) *Result {
	now := time.Now()
	if limit.Limit < 1 || limit.Period <= 0 {
		return &Result{ResetAt: now.Add(limit.Period), RetryAfter: limit.Period}
	}

	rl.fallbackMutex.Lock()
	b, exists := rl.fallbackLimiters[key]
	if !exists {
		every := limit.Period / time.Duration(limit.Limit)
		b = &bucket{limiter: rate.NewLimiter(rate.Every(every), limit.Limit)}
		rl.fallbackLimiters[key] = b
	}
	b.lastSeen = now
	rl.fallbackMutex.Unlock()

	result := &Result{
		Limit:   limit.Limit,
		ResetAt: now.Add(limit.Period),
	}

	if b.limiter.AllowN(now, 1) {
		result.Allowed = true
		result.Remaining = int(b.limiter.TokensAt(now))
		if result.Remaining < 0 {
			result.Remaining = 0
		}
		return result
	}

	reservation := b.limiter.ReserveN(now, 1)
	result.RetryAfter = reservation.DelayFrom(now)
	reservation.CancelAt(now)
	return result
}

func (rl *RateLimiter) cleanupLoop() {
	defer close(rl.done)

	ticker := time.NewTicker(rl.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.cleanup()
		}
	}
}

// cleanup drops idle buckets, and everything when the map grows too large
func (rl *RateLimiter) cleanup() {
	cutoff := time.Now().Add(-rl.config.IdleTTL)

	rl.fallbackMutex.Lock()
	defer rl.fallbackMutex.Unlock()

	for key, b := range rl.fallbackLimiters {
		if b.lastSeen.Before(cutoff) {
			delete(rl.fallbackLimiters, key)
		}
	}

	if len(rl.fallbackLimiters) > maxFallbackLimiters {
		slog.Info("Resetting fallback rate limiters", "count", len(rl.fallbackLimiters))
		rl.fallbackLimiters = make(map[string]*bucket)
	}
}

// GetStats returns rate limiter statistics
func (rl *RateLimiter) GetStats() map[string]interface{} {
	rl.fallbackMutex.Lock()
	fallbackCount := len(rl.fallbackLimiters)
	rl.fallbackMutex.Unlock()

	stats := map[string]interface{}{
		"redis_enabled":     rl.redisClient.IsEnabled(),
		"fallback_enabled":  rl.config.EnableFallback,
		"fallback_limiters": fallbackCount,
		"config": map[string]interface{}{
			"ip_limit_per_min": rl.config.IPLimit,
			"burst_multiplier": rl.config.BurstMultiplier,
		},
	}

	if rl.redisClient.IsEnabled() {
		stats["redis_pool"] = rl.redisClient.GetPoolStats()
		stats["redis_breaker"] = rl.breaker.Stats()
	}

	return stats
}
