package api

import (
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDKey    = "request_id"
	requestIDHeader = "X-Request-ID"
)

// RequestID assigns every request an id, reusing the client's header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// Logger logs every request: 5xx at Error, 4xx at Warn, the rest at Debug.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", status,
			"latency", time.Since(start),
			"request_id", c.GetString(requestIDKey),
		}
		switch {
		case status >= http.StatusInternalServerError:
			slog.Error("http request", attrs...)
		case status >= http.StatusBadRequest:
			slog.Warn("http request", attrs...)
		default:
			slog.Debug("http request", attrs...)
		}
	}
}

// Recovery converts a handler panic into a 500 response.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				slog.Error("panic in http handler",
					"panic", r,
					"path", c.Request.URL.Path,
					"request_id", c.GetString(requestIDKey),
					"stack", string(debug.Stack()))
				respondError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
				c.Abort()
			}
		}()
		c.Next()
	}
}
