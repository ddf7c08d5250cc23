package middleware

import (
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sangkips/restaurant-pos/internal/config"
)

var (
	defaultOrigins = []string{"http://localhost:3000", "http://localhost:5173", "http://127.0.0.1:3000"}
	defaultMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	defaultHeaders = []string{"Accept", "Content-Type", "Origin", "X-Request-ID"}
)

// CORSMiddleware lets the till's browser UI call the API. Unset lists fall
// back to local development values.
func CORSMiddleware(cfg *config.CORSConfig) gin.HandlerFunc {
	headers := orDefault(cfg.AllowedHeaders, defaultHeaders)
	if !slices.Contains(headers, IdempotencyKeyHeader) {
		headers = append(slices.Clone(headers), IdempotencyKeyHeader)
	}

	return cors.New(cors.Config{
		AllowOrigins: orDefault(cfg.AllowedOrigins, defaultOrigins),
		AllowMethods: orDefault(cfg.AllowedMethods, defaultMethods),
		AllowHeaders: headers,

		// The export download and checkout replays are read by the UI
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "Content-Disposition", "X-Request-ID", "X-Idempotency-Replayed", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}

func orDefault(values, fallback []string) []string {
	if len(values) == 0 {
		return fallback
	}
	return values
}
