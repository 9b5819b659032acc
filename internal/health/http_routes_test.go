package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func newTestEngine(responder *Responder) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterHTTPRoutes(r, responder)
	return r
}

func TestHealthRoute(t *testing.T) {
	t.Run("健康时200", func(t *testing.T) {
		r := newTestEngine(newTestResponder(&mockChecker{"database", StatusReady}))

		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
		if rr.Code != http.StatusOK {
			t.Fatalf("/health code=%d", rr.Code)
		}

		var report HealthReport
		if err := json.Unmarshal(rr.Body.Bytes(), &report); err != nil {
			t.Fatalf("响应解析失败: %v", err)
		}
		if report.Status != OverallHealthy {
			t.Errorf("期望healthy，实际: %v", report.Status)
		}
	})

	t.Run("故障时503", func(t *testing.T) {
		r := newTestEngine(newTestResponder(
			&mockChecker{"database", StatusReady},
			&mockChecker{"external_api", StatusError},
		))

		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
		if rr.Code != http.StatusServiceUnavailable {
			t.Fatalf("/health code=%d", rr.Code)
		}
	})
}

func TestReadyRoute(t *testing.T) {
	t.Run("未就绪时传输层仍为200", func(t *testing.T) {
		r := newTestEngine(newTestResponder(&mockChecker{"database", StatusError}))

		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
		if rr.Code != http.StatusOK {
			t.Fatalf("/health/ready code=%d", rr.Code)
		}

		var report ReadinessReport
		if err := json.Unmarshal(rr.Body.Bytes(), &report); err != nil {
			t.Fatalf("响应解析失败: %v", err)
		}
		if report.Status != readinessNotReady {
			t.Errorf("期望not ready，实际: %v", report.Status)
		}
	})
}

func TestLiveRoute(t *testing.T) {
	t.Run("恒为200与alive", func(t *testing.T) {
		r := newTestEngine(newTestResponder(&panicChecker{"broken"}))

		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health/live", nil))
		if rr.Code != http.StatusOK {
			t.Fatalf("/health/live code=%d", rr.Code)
		}

		var report LivenessReport
		if err := json.Unmarshal(rr.Body.Bytes(), &report); err != nil {
			t.Fatalf("响应解析失败: %v", err)
		}
		if report.Status != livenessAlive {
			t.Errorf("期望alive，实际: %v", report.Status)
		}
		if _, err := time.Parse(time.RFC3339, report.Timestamp); err != nil {
			t.Errorf("timestamp应为RFC3339格式: %v", err)
		}
	})
}
