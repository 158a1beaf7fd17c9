package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	pkgErrors "poster-events/pkg/errors"
	"poster-events/pkg/log"
	"poster-events/pkg/response"
)

// RequestID reuses an incoming X-Request-ID or assigns a new one, and stores it on
// the request context so every log line of the request carries it.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}

		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}

// Recovery turns a panic into a logged 500 with the standard error body.
func (m Middleware) Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		err := fmt.Errorf("panic: %v", recovered)
		m.l.Errorf(c.Request.Context(), "%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		response.InternalError(c, err)
		c.Abort()
	})
}

// AccessLog writes one line per request once the response is written.
func (m Middleware) AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		ctx := c.Request.Context()
		status := c.Writer.Status()
		args := []any{"access",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency", time.Since(start).String(),
			"size", c.Writer.Size(),
		}
		if status >= http.StatusInternalServerError {
			m.l.Warn(ctx, args...)
			return
		}
		m.l.Info(ctx, args...)
	}
}

// LimitUploadSize caps the request body. Reads past the limit fail with
// *http.MaxBytesError, which handlers report as 413.
func (m Middleware) LimitUploadSize() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.maxUploadBytes <= 0 {
			c.Next()
			return
		}
		if c.Request.ContentLength > m.maxUploadBytes {
			m.l.Warnf(c.Request.Context(), "upload rejected: content length %d exceeds %d", c.Request.ContentLength, m.maxUploadBytes)
			response.Error(c, pkgErrors.NewHTTPError(http.StatusRequestEntityTooLarge, "The uploaded file is too large"))
			c.Abort()
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, m.maxUploadBytes)
		c.Next()
	}
}
