package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/andriwidianto/securewatch/config"
	"github.com/andriwidianto/securewatch/util"
	"github.com/gin-gonic/gin"
	cache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

const (
	defaultRateLimit  = 5                // 5 attempts
	defaultRateWindow = 15 * time.Minute // per 15 minutes
)

// RateLimitConfig holds configuration for rate limiting
type RateLimitConfig struct {
	Limit  int
	Window time.Duration
}

// localCounters backs the rate limiter when Redis is not configured.
// go-cache expires each counter after its window, which approximates the
// Redis INCR+EXPIRE behavior closely enough for a single-process deploy.
var localCounters = cache.New(defaultRateWindow, time.Minute)

// RateLimiter limits requests per client IP and endpoint. Backend errors
// fail open so a broken Redis cannot deny service.
func RateLimiter(cfg RateLimitConfig) gin.HandlerFunc {
	if cfg.Limit == 0 {
		cfg.Limit = defaultRateLimit
	}
	if cfg.Window == 0 {
		cfg.Window = defaultRateWindow
	}

	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		endpoint := c.Request.URL.Path
		key := fmt.Sprintf("ratelimit:%s:%s", endpoint, clientIP)

		allowed, err := checkRateLimit(key, cfg.Limit, cfg.Window)
		if err != nil {
			util.LogSecurityEvent(util.SecurityLogEntry{
				EventType: util.EventRateLimitExceeded,
				IP:        clientIP,
				Message:   fmt.Sprintf("Rate limit check failed: %v", err),
			})
			c.Next()
			return
		}

		if !allowed {
			util.LogRateLimitExceeded(clientIP, endpoint)
			util.CallTooManyRequests(c, util.APIErrorParams{
				Msg: "Too many requests. Please try again later.",
				Err: fmt.Errorf("rate limit exceeded"),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// checkRateLimit increments the counter for key and reports whether the
// request is still within limits. Uses Redis when a client is configured,
// otherwise the in-process counters.
func checkRateLimit(key string, limit int, window time.Duration) (bool, error) {
	rdb := config.GetRedisClient()
	if rdb == nil {
		// Add is atomic, so two racing first hits cannot both reset the
		// counter to one.
		if err := localCounters.Add(key, int64(1), window); err == nil {
			return 1 <= int64(limit), nil
		}
		count, err := localCounters.IncrementInt64(key, 1)
		if err != nil {
			// Counter expired between Add and Increment.
			return true, nil
		}
		return count <= int64(limit), nil
	}

	ctx := context.Background()

	pipe := rdb.Pipeline()
	incrCmd := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return false, fmt.Errorf("failed to check rate limit: %w", err)
	}

	return incrCmd.Val() <= int64(limit), nil
}

// ResetRateLimit clears the counter for a client, useful for tests.
func ResetRateLimit(clientIP, endpoint string) error {
	key := fmt.Sprintf("ratelimit:%s:%s", endpoint, clientIP)
	if rdb := config.GetRedisClient(); rdb != nil {
		return rdb.Del(context.Background(), key).Err()
	}
	localCounters.Delete(key)
	return nil
}
