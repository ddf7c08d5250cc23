package middleware

import (
	"bytes"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/restaurant-pos/internal/domain/entity"
	"github.com/sangkips/restaurant-pos/internal/domain/repository"
	"github.com/sangkips/restaurant-pos/internal/presentation/http/dto/response"
	"github.com/sangkips/restaurant-pos/pkg/logger"
	"go.uber.org/zap"
)

const (
	// IdempotencyKeyHeader carries the client's retry key
	IdempotencyKeyHeader      = "Idempotency-Key"
	// IdempotencyReplayedHeader marks a stored answer
	IdempotencyReplayedHeader = "X-Idempotency-Replayed"
	// IdempotencyKeyTTL is how long answers are replayed
	IdempotencyKeyTTL         = 24 * time.Hour

	maxIdempotencyKeyLen = 128
)

// IdempotencyConfig holds configuration for the idempotency middleware
type IdempotencyConfig struct {
	Repo   repository.IdempotencyRepository
	Logger logger.ZapLogger
	// Now defaults to time.Now
	Now    func() time.Time
}

// bodyRecorder copies the response body while it is written
type bodyRecorder struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyRecorder) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// Idempotency replays the stored answer of a request whose Idempotency-Key was
// already served, so a retried checkout does not close the next bill. Keys are
// scoped to method and path. A duplicate arriving while the first is still
// running gets 409. Only 2xx answers are stored.
func Idempotency(cfg IdempotencyConfig) gin.HandlerFunc {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	var (
		mu       sync.Mutex
		inflight = make(map[string]struct{})
	)

	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			c.Next()
			return
		}
		if len(key) > maxIdempotencyKeyLen {
			response.BadRequest(c, "Idempotency-Key is too long")
			c.Abort()
			return
		}
		scoped := c.Request.Method + " " + c.Request.URL.Path + " " + key
		ctx := c.Request.Context()

		mu.Lock()
		if _, busy := inflight[scoped]; busy {
			mu.Unlock()
			response.ErrorWithCode(c, http.StatusConflict, "A request with this Idempotency-Key is still in progress")
			c.Abort()
			return
		}
		inflight[scoped] = struct{}{}
		mu.Unlock()
		defer func() {
			mu.Lock()
			delete(inflight, scoped)
			mu.Unlock()
		}()

		stored, err := cfg.Repo.GetByKey(ctx, scoped)
		if err != nil {
			// Lookup failures fall through to the handler
			cfg.Logger.Warn("Idempotency lookup failed", zap.String("key", key), zap.Error(err))
		}
		if stored != nil {
			c.Header(IdempotencyReplayedHeader, "true")
			c.Data(stored.ResponseCode, "application/json; charset=utf-8", []byte(stored.ResponseBody))
			c.Abort()
			return
		}

		rec := &bodyRecorder{ResponseWriter: c.Writer}
		c.Writer = rec
		c.Next()

		status := rec.Status()
		if status < 200 || status >= 300 {
			return
		}
		now := cfg.Now()
		if err := cfg.Repo.Create(ctx, &entity.IdempotencyKey{
			Key:          scoped,
			Endpoint:     c.Request.Method + " " + c.FullPath(),
			ResponseCode: status,
			ResponseBody: rec.body.String(),
			CreatedAt:    now,
			ExpiresAt:    now.Add(IdempotencyKeyTTL),
		}); err != nil {
			cfg.Logger.Warn("Failed to store idempotency key", zap.String("key", key), zap.Error(err))
		}
	}
}
