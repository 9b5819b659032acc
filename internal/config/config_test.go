package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadDefaults 缺少配置文件时回退到默认值
func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "svc-health", cfg.App.Name)
	assert.Equal(t, "dev", cfg.App.Env)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.True(t, cfg.Metrics.Enable)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.False(t, cfg.Database.Enabled)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 3*time.Second, cfg.Health.CheckTimeout)
	assert.Empty(t, cfg.Health.Endpoints)
}

// TestLoadEnvOverride 环境变量覆盖（前缀SVC_）
func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("SVC_APP_ENV", "prod")
	t.Setenv("SVC_HTTP_ADDR", ":9090")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.App.Env)
	assert.Equal(t, ":9090", cfg.HTTP.Addr)
}

// TestLoadFile 从YAML文件加载（含健康检查端点定义）
func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
app:
  name: my-service
  version: 2.0.0
health:
  checkTimeout: 1s
  endpoints:
    - name: external_api
      url: https://api.example.com/health
      timeout: 2s
      critical: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "my-service", cfg.App.Name)
	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, time.Second, cfg.Health.CheckTimeout)
	require.Len(t, cfg.Health.Endpoints, 1)
	ep := cfg.Health.Endpoints[0]
	assert.Equal(t, "external_api", ep.Name)
	assert.Equal(t, 2*time.Second, ep.Timeout)
	assert.True(t, ep.Critical)
}

// TestLoadBadFile 配置文件损坏时报错
func TestLoadBadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("app: ["), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
