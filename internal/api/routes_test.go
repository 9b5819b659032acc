package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/taoyao-code/svc-health/internal/api/middleware"
	"github.com/taoyao-code/svc-health/internal/health"
)

func newAPITestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestID())
	info := health.NewServiceInfo("svc-health", "1.2.3", "test")
	RegisterRoutes(r, info, middleware.RateLimitConfig{}, nil, zap.NewNop())
	return r
}

// TestInfoEndpoint 服务自描述端点
func TestInfoEndpoint(t *testing.T) {
	r := newAPITestEngine()

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rr.Code)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "svc-health", body["service"])
	assert.Equal(t, "1.2.3", body["version"])
	assert.Equal(t, "test", body["environment"])
	assert.Contains(t, body, "endpoints")
}

// TestStatusEndpoint 运行时状态端点
func TestStatusEndpoint(t *testing.T) {
	r := newAPITestEngine()

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/status", nil))

	assert.Equal(t, http.StatusOK, rr.Code)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Greater(t, body["goroutines"], float64(0))
	assert.Contains(t, body, "memory")
	assert.Contains(t, body, "uptime")
}

// TestWebhookReceive Webhook接收
func TestWebhookReceive(t *testing.T) {
	t.Run("合法JSON返回202", func(t *testing.T) {
		r := newAPITestEngine()

		req := httptest.NewRequest(http.MethodPost, "/webhooks/github",
			strings.NewReader(`{"event":"push","ref":"main"}`))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusAccepted, rr.Code)

		var body map[string]any
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, true, body["received"])
		assert.NotEmpty(t, body["deliveryId"])
		assert.NotEmpty(t, body["requestId"])
	})

	t.Run("非JSON返回400", func(t *testing.T) {
		r := newAPITestEngine()

		req := httptest.NewRequest(http.MethodPost, "/webhooks/github",
			strings.NewReader("not json at all"))
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var report middleware.ErrorReport
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &report))
		assert.Equal(t, "invalid_payload", report.Error)
	})
}
