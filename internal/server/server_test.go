package server

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pageza/recipebox/backend/config"
	"github.com/pageza/recipebox/backend/internal/testhelpers"
)

func newTestServer(t *testing.T, port string) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return New(Options{
		Config: &config.Config{
			Env:        config.Test,
			ServerHost: "127.0.0.1",
			ServerPort: port,
		},
		DB:  testhelpers.SetupSQLite(t),
		Log: zap.NewNop(),
	})
}

func TestNew(t *testing.T) {
	srv := newTestServer(t, "0")

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))

	w = httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "recipebox_http_requests_total")
}

func TestImageUploadWithoutStore(t *testing.T) {
	srv := newTestServer(t, "0")

	body := strings.NewReader("--b\r\nContent-Disposition: form-data; name=\"image\"; filename=\"a.png\"\r\n\r\npng\r\n--b--\r\n")
	req := httptest.NewRequest(http.MethodPost, "/recipe/add/image", body)
	req.Header.Set("Content-Type", "multipart/form-data; boundary=b")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Server error"}`, w.Body.String())
}

func TestRunStopsOnCancel(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := strings.TrimPrefix(l.Addr().String(), "127.0.0.1:")
	require.NoError(t, l.Close())

	srv := newTestServer(t, port)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://127.0.0.1:" + port + "/health")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not shut down")
	}
}
