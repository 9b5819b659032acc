package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newRequestIDTestEngine() (*gin.Engine, *string) {
	gin.SetMode(gin.TestMode)
	var seen string
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {
		seen = GetRequestID(c)
		c.Status(http.StatusOK)
	})
	return r, &seen
}

// TestRequestID_Generated 未携带标识时生成uuid
func TestRequestID_Generated(t *testing.T) {
	r, seen := newRequestIDTestEngine()

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	id := rr.Header().Get(RequestIDHeader)
	assert.NotEmpty(t, id)
	assert.Equal(t, id, *seen)

	_, err := uuid.Parse(id)
	assert.NoError(t, err)
}

// TestRequestID_Echoed 调用方标识原样透传
func TestRequestID_Echoed(t *testing.T) {
	r, seen := newRequestIDTestEngine()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "caller-supplied-id")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, "caller-supplied-id", rr.Header().Get(RequestIDHeader))
	assert.Equal(t, "caller-supplied-id", *seen)
}
