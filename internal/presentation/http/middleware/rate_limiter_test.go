package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiterConfigFor(t *testing.T) {
	cfg := RateLimiterConfigFor(120, 60)
	assert.Equal(t, 2.0, cfg.RequestsPerSecond)
	assert.Equal(t, 120, cfg.BurstSize)

	cfg = RateLimiterConfigFor(0, 0)
	assert.Equal(t, 100, cfg.BurstSize)
	assert.InDelta(t, 100.0/60.0, cfg.RequestsPerSecond, 1e-9)
}

func TestClientRateLimiterPerClient(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rl := NewClientRateLimiter(RateLimiterConfigFor(1, 60))
	defer rl.Stop()

	r := gin.New()
	r.Use(rl.Middleware())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	send := func(addr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = addr
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusOK, send("10.0.0.1:1000").Code)
	w := send("10.0.0.1:1001")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, http.StatusOK, send("10.0.0.2:1000").Code)
}

func TestClientRateLimiterCleanup(t *testing.T) {
	rl := NewClientRateLimiter(RateLimiterConfig{
		RequestsPerSecond: 1,
		BurstSize:         1,
		CleanupInterval:   time.Hour,
		EntryTTL:          time.Minute,
	})
	defer rl.Stop()

	rl.getLimiter("a")
	rl.getLimiter("b")
	rl.limiters["a"].lastSeen = time.Now().Add(-2 * time.Minute)

	rl.cleanup()

	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.NotContains(t, rl.limiters, "a")
	assert.Contains(t, rl.limiters, "b")
}
