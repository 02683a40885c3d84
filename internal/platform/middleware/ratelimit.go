// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"github.com/taibuivan/heroes/internal/platform/apperr"
	"github.com/taibuivan/heroes/internal/platform/constants"
	"github.com/taibuivan/heroes/internal/platform/ctxutil"
	"github.com/taibuivan/heroes/internal/platform/respond"
)

// # Rate Limiting

// Limiter decides whether a client identified by key may proceed.
// When it may not, retryAfter says how long to wait.
type Limiter interface {
	Allow(ctx context.Context, key string) (allowed bool, retryAfter time.Duration, err error)
}

// RateLimit rejects requests over the per-IP budget with 429 and a Retry-After header.
// Limiter failures are logged and the request is let through.
func RateLimit(limiter Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			allowed, retryAfter, err := limiter.Allow(request.Context(), RealIP(request))
			if err != nil {
				ctxutil.GetLogger(request.Context()).WarnContext(request.Context(), "rate_limit_unavailable",
					slog.String("error", err.Error()),
				)
				next.ServeHTTP(writer, request)
				return
			}

			if !allowed {
				seconds := max(1, int(math.Ceil(retryAfter.Seconds())))
				writer.Header().Set(constants.HeaderRetryAfter, strconv.Itoa(seconds))
				respond.Error(writer, request, apperr.RateLimited(seconds))
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}

// ## In-process token bucket

type rateLimitClient struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// MemoryLimiter keeps one token bucket per client in process memory.
// It suits a single replica; use [RedisLimiter] to share a budget.
type MemoryLimiter struct {
	mu      sync.Mutex
	clients map[string]*rateLimitClient
	limit   rate.Limit
	burst   int
}

// NewMemoryLimiter creates a limiter and starts a cleanup loop that evicts idle
// clients until ctx is cancelled.
func NewMemoryLimiter(ctx context.Context, perSecond float64, burst int) *MemoryLimiter {
	limiter := &MemoryLimiter{
		clients: make(map[string]*rateLimitClient),
		limit:   rate.Limit(perSecond),
		burst:   burst,
	}

	go func() {
		ticker := time.NewTicker(constants.RateLimitCleanupInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				limiter.evictIdle(time.Now())
			case <-ctx.Done():
				return
			}
		}
	}()

	return limiter
}

func (limiter *MemoryLimiter) Allow(_ context.Context, key string) (bool, time.Duration, error) {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	client, found := limiter.clients[key]
	if !found {
		client = &rateLimitClient{limiter: rate.NewLimiter(limiter.limit, limiter.burst)}
		limiter.clients[key] = client
	}
	client.lastSeen = time.Now()

	reservation := client.limiter.Reserve()
	if delay := reservation.Delay(); delay > 0 {
		// Give the token back; the request is rejected, not queued.
		reservation.Cancel()
		return false, delay, nil
	}
	return true, 0, nil
}

func (limiter *MemoryLimiter) evictIdle(now time.Time) {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	for key, client := range limiter.clients {
		if now.Sub(client.lastSeen) > constants.RateLimitClientTTL {
			delete(limiter.clients, key)
		}
	}
}

// ## Redis fixed window

// RedisLimiter counts requests per client in fixed windows stored in Redis,
// so every API replica draws from the same budget.
type RedisLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
	now    func() time.Time
}

// NewRedisLimiter allows up to limit requests per client in each window.
func NewRedisLimiter(client *redis.Client, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		limit:  int64(limit),
		window: window,
		now:    time.Now,
	}
}

func (limiter *RedisLimiter) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	now := limiter.now()
	windowKey, remaining := limiter.windowKey(key, now)

	var counter *redis.IntCmd
	_, err := limiter.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		counter = pipe.Incr(ctx, windowKey)
		pipe.Expire(ctx, windowKey, limiter.window)
		return nil
	})
	if err != nil {
		return false, 0, fmt.Errorf("ratelimit: redis: %w", err)
	}

	if counter.Val() > limiter.limit {
		return false, remaining, nil
	}
	return true, 0, nil
}

// windowKey names the counter for the window containing now and reports how
// much of that window is left.
func (limiter *RedisLimiter) windowKey(key string, now time.Time) (string, time.Duration) {
	windowStart := now.Truncate(limiter.window)
	remaining := windowStart.Add(limiter.window).Sub(now)
	return fmt.Sprintf("%s%s:%d", constants.RedisPrefixRateLimit, key, windowStart.Unix()), remaining
}
