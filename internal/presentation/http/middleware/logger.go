package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/restaurant-pos/pkg/logger"
	"github.com/sangkips/restaurant-pos/pkg/utils"
	"go.uber.org/zap"
)

// LoggerMiddleware creates a structured logging middleware
func LoggerMiddleware(log logger.ZapLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Client ids are echoed only when well formed
		requestID := c.GetHeader("X-Request-ID")
		if !utils.ValidID(requestID) {
			requestID = utils.NewID()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		fields := []zap.Field{
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}

		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch status := c.Writer.Status(); {
		case status >= 500:
			log.Error("Request failed", fields...)
		case status >= 400:
			log.Warn("Request rejected", fields...)
		default:
			log.Info("Request handled", fields...)
		}
	}
}
