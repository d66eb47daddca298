package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os/exec"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	dto "github.com/prometheus/client_model/go"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRecovery(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	r := gin.New()
	r.Use(RequestID(), Recovery(zap.New(core)))
	r.GET("/boom", func(c *gin.Context) { panic("kaboom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Unexpected server error"}`, w.Body.String())
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "panic recovered", logs.All()[0].Message)
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(RequestIDKey)) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := w.Header().Get(RequestIDHeader)
	assert.NotEmpty(t, generated)
	assert.Equal(t, generated, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestLoggerLevels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	r := gin.New()
	r.Use(Logger(zap.New(core)))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/bad", func(c *gin.Context) { c.Status(http.StatusBadRequest) })
	r.GET("/fail", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	for _, p := range []string{"/ok", "/bad", "/fail"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, p, nil))
	}

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	assert.Equal(t, int64(400), entries[1].ContextMap()["status"])
}

func TestCORS(t *testing.T) {
	newRouter := func(origins []string) *gin.Engine {
		r := gin.New()
		r.Use(CORS(origins))
		r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
		return r
	}

	t.Run("allow all by default", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "http://anywhere.test")
		w := httptest.NewRecorder()
		newRouter(nil).ServeHTTP(w, req)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("restricted list", func(t *testing.T) {
		r := newRouter([]string{"http://localhost:5173"})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))

		req = httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "http://evil.test")
		w = httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestMetricsCountsByRoute(t *testing.T) {
	r := gin.New()
	r.Use(Metrics())
	r.GET("/things/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	counter := httpRequestsTotal.WithLabelValues(http.MethodGet, "/things/:id", "200")
	before := counterValue(t, counter)

	for i := 0; i < 3; i++ {
		path := fmt.Sprintf("/things/%d", i)
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, before+3, counterValue(t, counter))
}

func counterValue(t *testing.T, c interface{ Write(*dto.Metric) error }) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

func TestRateLimiterFailsOpen(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	limiter := NewAuthRateLimiter(client, zap.NewNop())
	r := gin.New()
	r.POST("/login", limiter.Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "rate limit check failed", w.Header().Get("X-RateLimit-Error"))
}

func TestRateLimiterRejectsOverLimit(t *testing.T) {
	client := setupRedis(t)

	limiter := NewRateLimiter(client, RateLimitConfig{Window: time.Minute, Limit: 2, KeyPrefix: "test"}, zap.NewNop())
	r := gin.New()
	r.POST("/login", limiter.Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
		codes = append(codes, w.Code)
		if i == 2 {
			assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
			assert.JSONEq(t, `{"error":"Too many requests"}`, w.Body.String())
		}
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func setupRedis(t *testing.T) *redis.Client {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container-based test in short mode")
	}
	if _, err := exec.LookPath("docker"); err != nil {
		t.Skip("docker not installed, skipping container-based test")
	}

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: endpoint})
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Ping(ctx).Err())
	return client
}
