package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// Without a Redis client configured the limiter uses in-process counters,
// keyed on endpoint path and client IP. Each test uses its own path so the
// shared counter cache cannot bleed between tests.
func newRateLimitedRouter(path string, cfg RateLimitConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST(path, RateLimiter(cfg), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func hitEndpoint(r *gin.Engine, path string) int {
	req := httptest.NewRequest(http.MethodPost, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimiterAllowsWithinLimit(t *testing.T) {
	r := newRateLimitedRouter("/limited-a", RateLimitConfig{Limit: 3, Window: time.Minute})

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, hitEndpoint(r, "/limited-a"))
	}
}

func TestRateLimiterBlocksOverLimit(t *testing.T) {
	r := newRateLimitedRouter("/limited-b", RateLimitConfig{Limit: 2, Window: time.Minute})

	assert.Equal(t, http.StatusOK, hitEndpoint(r, "/limited-b"))
	assert.Equal(t, http.StatusOK, hitEndpoint(r, "/limited-b"))
	assert.Equal(t, http.StatusTooManyRequests, hitEndpoint(r, "/limited-b"))
}

func TestResetRateLimit(t *testing.T) {
	r := newRateLimitedRouter("/limited-c", RateLimitConfig{Limit: 1, Window: time.Minute})

	assert.Equal(t, http.StatusOK, hitEndpoint(r, "/limited-c"))
	assert.Equal(t, http.StatusTooManyRequests, hitEndpoint(r, "/limited-c"))

	// httptest requests always originate from 192.0.2.1.
	assert.NoError(t, ResetRateLimit("192.0.2.1", "/limited-c"))
	assert.Equal(t, http.StatusOK, hitEndpoint(r, "/limited-c"))
}

func TestCheckRateLimitCountsConcurrentFirstHits(t *testing.T) {
	const limit = 5
	const hits = 10

	results := make(chan bool, hits)
	var wg sync.WaitGroup
	for i := 0; i < hits; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			allowed, err := checkRateLimit("ratelimit:/limited-e:192.0.2.1", limit, time.Minute)
			assert.NoError(t, err)
			results <- allowed
		}()
	}
	wg.Wait()
	close(results)

	allowedCount := 0
	for allowed := range results {
		if allowed {
			allowedCount++
		}
	}
	assert.Equal(t, limit, allowedCount, "racing first hits must not be undercounted")
}

func TestRateLimiterDefaults(t *testing.T) {
	r := newRateLimitedRouter("/limited-d", RateLimitConfig{})

	for i := 0; i < defaultRateLimit; i++ {
		assert.Equal(t, http.StatusOK, hitEndpoint(r, "/limited-d"))
	}
	assert.Equal(t, http.StatusTooManyRequests, hitEndpoint(r, "/limited-d"))
}
