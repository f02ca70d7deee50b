package apitest

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/officerfeedback/officer-feedback/pkg/logger"
	"go.uber.org/zap"
)

// maxBodyBytes bounds POST bodies; a 5000-character comment fits comfortably
const maxBodyBytes = 64 * 1024

// requestLogger logs each request against its route template
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("route", route),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", c.GetHeader("X-Request-ID")),
		}
		if status >= http.StatusBadRequest {
			logger.Warn("Fake API request failed", fields...)
			return
		}
		logger.Debug("Fake API request", fields...)
	}
}

// bodySizeLimit caps request bodies for methods that carry one
func bodySizeLimit(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
		default:
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		}
		c.Next()
	}
}
