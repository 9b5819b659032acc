package health

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// HTTPChecker 外部HTTP依赖检查器
// 对目标URL发GET请求，按响应码判定依赖状态
type HTTPChecker struct {
	name   string
	url    string
	client *http.Client
}

// NewHTTPChecker 创建外部HTTP依赖检查器
// 连接超时由Registry的检查超时统一控制（通过ctx传入）
func NewHTTPChecker(name, url string) *HTTPChecker {
	return &HTTPChecker{
		name: name,
		url:  url,
		client: &http.Client{
			// 不自动跟随跳转：3xx按原始状态码判定
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// Name 返回检查器名称
func (c *HTTPChecker) Name() string {
	return c.name
}

// Check 执行健康检查
func (c *HTTPChecker) Check(ctx context.Context) CheckResult {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return CheckResult{
			Status:  StatusError,
			Message: fmt.Sprintf("build request: %v", err),
			Latency: time.Since(start),
		}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return CheckResult{
			Status:  StatusError,
			Message: fmt.Sprintf("request failed: %v", err),
			Latency: time.Since(start),
		}
	}
	defer func() { _ = resp.Body.Close() }()

	status := StatusReady
	message := "ok"

	switch {
	case resp.StatusCode >= 500:
		status = StatusError
		message = fmt.Sprintf("upstream status %d", resp.StatusCode)
	case resp.StatusCode >= 400:
		status = StatusDegraded
		message = fmt.Sprintf("unexpected status %d", resp.StatusCode)
	case resp.StatusCode >= 300:
		status = StatusWarning
		message = fmt.Sprintf("redirect status %d", resp.StatusCode)
	}

	return CheckResult{
		Status:  status,
		Message: message,
		Latency: time.Since(start),
	}
}
