package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestID(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(RequestIDKey))
	})

	t.Run("generates an id when missing", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		id := w.Header().Get(RequestIDHeader)
		assert.Len(t, id, 36)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("propagates an incoming id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
		assert.Equal(t, "abc-123", w.Body.String())
	})
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(&buf)

	router := gin.New()
	router.Use(RequestID(), Logger(logger))
	router.GET("/restaurants/:id", func(c *gin.Context) {
		c.Status(http.StatusNotFound)
	})

	req := httptest.NewRequest(http.MethodGet, "/restaurants/42", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	router.ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/restaurants/:id", entry["path"])
	assert.Equal(t, float64(http.StatusNotFound), entry["status"])
	assert.Equal(t, "warning", entry["level"])
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics, err := NewMetrics(reg)
	require.NoError(t, err)

	router := gin.New()
	router.Use(metrics.Handler())
	router.GET("/restaurants/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.DELETE("/restaurants/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	router.GET("/metrics", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, r := range []struct{ method, path string }{
		{http.MethodGet, "/restaurants/1"},
		{http.MethodGet, "/restaurants/2"},
		{http.MethodDelete, "/restaurants/1"},
		{http.MethodGet, "/metrics"},
		{http.MethodGet, "/nope"},
	} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(r.method, r.path, nil))
	}

	assert.Equal(t, float64(2), testutil.ToFloat64(metrics.requestCount.WithLabelValues("GET", "/restaurants/:id", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.requestCount.WithLabelValues("DELETE", "/restaurants/:id", "204")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.requestCount.WithLabelValues("GET", "unmatched", "404")))
	assert.Equal(t, float64(0), testutil.ToFloat64(metrics.requestCount.WithLabelValues("GET", "/metrics", "200")))

	_, err = NewMetrics(reg)
	assert.Error(t, err, "registering twice on the same registry should fail")
}
