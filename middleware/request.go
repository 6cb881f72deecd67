package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	RequestIDHeader = "X-Request-ID"

	requestIDKey = "requestId"
	loggerKey    = "logger"
)

// RequestID reuses the caller's X-Request-ID or generates one, and stores a
// request-scoped logger carrying it.
func RequestID(base zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(requestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		logger := base.With().Str("request_id", requestID).Logger()
		c.Set(loggerKey, &logger)

		c.Next()
	}
}

func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// GetLogger falls back to a disabled logger when RequestID is not installed.
func GetLogger(c *gin.Context) *zerolog.Logger {
	if v, ok := c.Get(loggerKey); ok {
		if logger, ok := v.(*zerolog.Logger); ok {
			return logger
		}
	}
	nop := zerolog.Nop()
	return &nop
}

// RequestLogger writes one line per request once the handler chain is done.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		logger := GetLogger(c)

		var e *zerolog.Event
		switch {
		case status >= http.StatusInternalServerError:
			e = logger.Error()
		case status >= http.StatusBadRequest:
			e = logger.Warn()
		default:
			e = logger.Info()
		}

		if len(c.Errors) > 0 {
			e = e.Str("errors", c.Errors.String())
		}

		e.Dur("latency", time.Since(start)).
			Int("status", status).
			Str("method", c.Request.Method).
			Str("path", path).
			Str("ip", c.ClientIP()).
			Str("user_agent", c.Request.UserAgent()).
			Msg("API")
	}
}

// Recovery turns a panic into a 500 and logs it. The body carries the
// request ID so a caller can quote it when reporting the failure.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		GetLogger(c).Error().
			Interface("panic", recovered).
			Msg("recovered from panic")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestId": GetRequestID(c),
		})
	})
}
