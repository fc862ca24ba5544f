package site

import (
	"log/slog"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// requestLogger logs method, path, status, duration and client IP.
// Static asset hits are logged at debug level.
func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		level := slog.LevelInfo
		if strings.HasPrefix(c.Request.URL.Path, "/static/") {
			level = slog.LevelDebug
		}
		logger.Log(c.Request.Context(), level, "HTTP request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("duration", time.Since(start)),
			slog.String("client_ip", c.ClientIP()),
			slog.String("user_agent", c.Request.UserAgent()))
	}
}
