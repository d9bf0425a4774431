package handler

import (
	"time"

	"classroom-market/internal/service"
	"classroom-market/pkg/logger"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const TeacherTokenHeader = "X-Teacher-Token"

// RequestLogger logs one line per request after it completes.
func RequestLogger() gin.HandlerFunc {
	log := logger.WithComponent("http")
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		fields := []zap.Field{
			zap.String("request_id", requestid.Get(c)),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		switch {
		case c.Writer.Status() >= 500:
			log.Error("request", fields...)
		case c.Writer.Status() >= 400:
			log.Warn("request", fields...)
		default:
			log.Info("request", fields...)
		}
	}
}

// TeacherAuth rejects requests without a live teacher session token.
func TeacherAuth(auth service.TeacherAuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := auth.Authenticate(c, c.GetHeader(TeacherTokenHeader)); err != nil {
			handleError(c, err, "TeacherAuth")
			c.Abort()
			return
		}
		c.Next()
	}
}
