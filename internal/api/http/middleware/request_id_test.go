package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/LaunchPad-AI/launchpad-backend/internal/logging"
	"github.com/LaunchPad-AI/launchpad-backend/internal/metrics"
)

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := metrics.New(prometheus.NewRegistry())

	var seen string
	r := gin.New()
	r.Use(RequestIDMiddleware(m))
	r.GET("/ping/:id", func(c *gin.Context) {
		seen = logging.RequestID(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	t.Run("keeps incoming id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping/1", nil)
		req.Header.Set("X-Request-Id", "abc")
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, "abc", rr.Header().Get("X-Request-Id"))
		assert.Equal(t, "abc", seen)
	})

	t.Run("generates id", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ping/2", nil))

		rid := rr.Header().Get("X-Request-Id")
		assert.Len(t, rid, 32)
		assert.Equal(t, rid, seen)
	})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/ping/:id", "204")))
}
