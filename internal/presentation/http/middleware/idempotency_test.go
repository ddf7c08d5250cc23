package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/restaurant-pos/internal/domain/entity"
	"github.com/sangkips/restaurant-pos/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockIdempotencyRepository keeps keys in a map and can fail lookups
type MockIdempotencyRepository struct {
	Keys   map[string]*entity.IdempotencyKey
	ErrGet error
}

func (m *MockIdempotencyRepository) GetByKey(ctx context.Context, key string) (*entity.IdempotencyKey, error) {
	if m.ErrGet != nil {
		return nil, m.ErrGet
	}
	return m.Keys[key], nil
}

func (m *MockIdempotencyRepository) Create(ctx context.Context, ikey *entity.IdempotencyKey) error {
	m.Keys[ikey.Key] = ikey
	return nil
}

func newIdempotentRouter(repo *MockIdempotencyRepository, calls *atomic.Int32, status int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/zones/:id/checkout", Idempotency(IdempotencyConfig{Repo: repo, Logger: logger.NewNopLogger()}), func(c *gin.Context) {
		n := calls.Add(1)
		c.JSON(status, gin.H{"call": n})
	})
	return router
}

func post(router *gin.Engine, path, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, nil)
	if key != "" {
		req.Header.Set(IdempotencyKeyHeader, key)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestIdempotencyReplaysSuccess(t *testing.T) {
	repo := &MockIdempotencyRepository{Keys: map[string]*entity.IdempotencyKey{}}
	var calls atomic.Int32
	router := newIdempotentRouter(repo, &calls, http.StatusOK)

	first := post(router, "/zones/6/checkout", "k1")
	second := post(router, "/zones/6/checkout", "k1")

	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, "true", second.Header().Get(IdempotencyReplayedHeader))
	require.Contains(t, repo.Keys, "POST /zones/6/checkout k1")
	assert.Equal(t, "POST /zones/:id/checkout", repo.Keys["POST /zones/6/checkout k1"].Endpoint)
}

func TestIdempotencyScopesKeysByPath(t *testing.T) {
	repo := &MockIdempotencyRepository{Keys: map[string]*entity.IdempotencyKey{}}
	var calls atomic.Int32
	router := newIdempotentRouter(repo, &calls, http.StatusOK)

	post(router, "/zones/6/checkout", "k1")
	post(router, "/zones/7/checkout", "k1")
	post(router, "/zones/7/checkout", "")
	post(router, "/zones/7/checkout", "")

	assert.Equal(t, int32(4), calls.Load(), "same key on another zone and keyless requests both run")
}

func TestIdempotencySkipsFailures(t *testing.T) {
	repo := &MockIdempotencyRepository{Keys: map[string]*entity.IdempotencyKey{}}
	var calls atomic.Int32
	router := newIdempotentRouter(repo, &calls, http.StatusNotFound)

	post(router, "/zones/3/checkout", "k1")
	post(router, "/zones/3/checkout", "k1")

	assert.Equal(t, int32(2), calls.Load())
	assert.Empty(t, repo.Keys)
}

func TestIdempotencyLookupErrorStillServes(t *testing.T) {
	repo := &MockIdempotencyRepository{Keys: map[string]*entity.IdempotencyKey{}, ErrGet: errors.New("redis down")}
	var calls atomic.Int32
	router := newIdempotentRouter(repo, &calls, http.StatusOK)

	w := post(router, "/zones/6/checkout", "k1")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int32(1), calls.Load())
}

func TestIdempotencyRejectsLongKeys(t *testing.T) {
	repo := &MockIdempotencyRepository{Keys: map[string]*entity.IdempotencyKey{}}
	var calls atomic.Int32
	router := newIdempotentRouter(repo, &calls, http.StatusOK)

	w := post(router, "/zones/6/checkout", strings.Repeat("k", 200))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, calls.Load())
}
