package middleware

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"poster-events/pkg/log"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestID(t *testing.T) {
	mw := New(log.NewNop(), Config{})

	var seen string
	r := gin.New()
	r.Use(mw.RequestID())
	r.GET("/", func(c *gin.Context) {
		seen = log.RequestIDFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	t.Run("generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		if seen == "" || w.Header().Get(HeaderRequestID) != seen {
			t.Errorf("expected generated id in context and header, got ctx=%q header=%q", seen, w.Header().Get(HeaderRequestID))
		}
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(HeaderRequestID, "abc-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if seen != "abc-123" {
			t.Errorf("expected incoming id to be reused, got %q", seen)
		}
	})
}

func TestRecovery(t *testing.T) {
	mw := New(log.NewNop(), Config{})

	r := gin.New()
	r.Use(mw.Recovery())
	r.GET("/boom", func(c *gin.Context) {
		panic("nil map write")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", w.Code)
	}
	if body := w.Body.String(); body != `{"error":"Internal server error"}` {
		t.Errorf("unexpected body %s", body)
	}
}

func TestLimitUploadSize(t *testing.T) {
	mw := New(log.NewNop(), Config{MaxUploadBytes: 16})

	var readErr error
	r := gin.New()
	r.POST("/upload", mw.LimitUploadSize(), func(c *gin.Context) {
		_, readErr = io.ReadAll(c.Request.Body)
		c.Status(http.StatusOK)
	})

	t.Run("within limit", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader("small")))
		if w.Code != http.StatusOK || readErr != nil {
			t.Errorf("expected 200 without read error, got %d %v", w.Code, readErr)
		}
	})

	t.Run("declared length too large", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/upload", bytes.NewReader(make([]byte, 64))))
		if w.Code != http.StatusRequestEntityTooLarge {
			t.Errorf("expected 413, got %d", w.Code)
		}
	})

	t.Run("streamed body too large", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/upload", io.NopCloser(bytes.NewReader(make([]byte, 64))))
		req.ContentLength = -1
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		var tooLarge *http.MaxBytesError
		if readErr == nil || !errors.As(readErr, &tooLarge) {
			t.Errorf("expected MaxBytesError, got %v", readErr)
		}
	})
}
