package health

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHTTPChecker(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		expected   CheckStatus
	}{
		{"2xx为ready", http.StatusOK, StatusReady},
		{"5xx为error", http.StatusInternalServerError, StatusError},
		{"4xx为degraded", http.StatusNotFound, StatusDegraded},
		{"3xx为warning", http.StatusMovedPermanently, StatusWarning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
			}))
			defer srv.Close()

			c := NewHTTPChecker("upstream", srv.URL)
			result := c.Check(context.Background())
			if result.Status != tt.expected {
				t.Errorf("期望%v，实际: %v (%s)", tt.expected, result.Status, result.Message)
			}
		})
	}

	t.Run("连接失败为error", func(t *testing.T) {
		c := NewHTTPChecker("upstream", "http://127.0.0.1:1/health")
		result := c.Check(context.Background())
		if result.Status != StatusError {
			t.Errorf("期望error，实际: %v", result.Status)
		}
	})
}
