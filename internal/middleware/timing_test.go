package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/trace"
)

func TestRequestTiming_SetsStartTimeAndSpan(t *testing.T) {
	router := gin.New()
	router.Use(RequestTiming())
	router.GET("/test", func(c *gin.Context) {
		value, exists := c.Get(ContextKeyRequestStart)
		assert.True(t, exists)
		start, ok := value.(time.Time)
		assert.True(t, ok)
		assert.WithinDuration(t, time.Now(), start, time.Second)

		// the span lives in the request context handed to handlers
		assert.NotNil(t, trace.SpanFromContext(c.Request.Context()))
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequestTiming_DifferentStatusCodes(t *testing.T) {
	for _, status := range []int{http.StatusOK, http.StatusUnauthorized, http.StatusInternalServerError} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			router := gin.New()
			router.Use(RequestID(), withUserID(status), RequestTiming())
			router.POST("/test", func(c *gin.Context) { c.Status(status) })

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/test", nil))
			assert.Equal(t, status, w.Code)
		})
	}
}

// withUserID fakes an authenticated caller on successful requests
func withUserID(status int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if status == http.StatusOK {
			c.Set(ContextKeyUserID, 7)
		}
		c.Next()
	}
}
