package health

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// DefaultCheckTimeout 默认单项检查超时
const DefaultCheckTimeout = 3 * time.Second

// Observer 检查结果观察回调（日志/指标挂接）
type Observer func(name string, result CheckResult)

// entry 注册表条目
type entry struct {
	checker  Checker
	timeout  time.Duration
	critical bool
}

// Registry 健康检查注册表
// 启动阶段完成注册后只读，请求处理期间仅并发读取
type Registry struct {
	mu       sync.RWMutex
	entries  map[string]entry
	order    []string
	observer Observer
}

// NewRegistry 创建注册表
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]entry),
	}
}

// SetObserver 设置检查结果观察回调
func (r *Registry) SetObserver(fn Observer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.observer = fn
}

// Register 注册检查器
// 同名重复注册是配置错误，启动阶段直接报错，不留到请求时
// timeout<=0 时使用 DefaultCheckTimeout；critical 表示计入就绪判定
func (r *Registry) Register(c Checker, timeout time.Duration, critical bool) error {
	if c == nil {
		return fmt.Errorf("register health checker: nil checker")
	}
	name := c.Name()
	if name == "" {
		return fmt.Errorf("register health checker: empty name")
	}
	if timeout <= 0 {
		timeout = DefaultCheckTimeout
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[name]; ok {
		return fmt.Errorf("register health checker: duplicate name %q", name)
	}
	r.entries[name] = entry{checker: c, timeout: timeout, critical: critical}
	r.order = append(r.order, name)
	return nil
}

// Names 返回已注册检查器名称（按注册顺序）
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Len 返回已注册检查器数量
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// RunAll 并发执行所有检查
// 各检查独立超时，互不阻塞；全部完成（或超时）后统一返回
func (r *Registry) RunAll(ctx context.Context) map[string]CheckResult {
	return r.run(ctx, false)
}

// RunCritical 并发执行就绪判定相关（critical）检查
func (r *Registry) RunCritical(ctx context.Context) map[string]CheckResult {
	return r.run(ctx, true)
}

func (r *Registry) run(ctx context.Context, criticalOnly bool) map[string]CheckResult {
	r.mu.RLock()
	selected := make(map[string]entry, len(r.entries))
	for name, e := range r.entries {
		if criticalOnly && !e.critical {
			continue
		}
		selected[name] = e
	}
	observer := r.observer
	r.mu.RUnlock()

	results := make(map[string]CheckResult, len(selected))
	resultsMu := sync.Mutex{}
	wg := sync.WaitGroup{}

	for name, e := range selected {
		wg.Add(1)
		go func(name string, e entry) {
			defer wg.Done()

			result := runOne(ctx, e)
			if observer != nil {
				observer(name, result)
			}

			resultsMu.Lock()
			results[name] = result
			resultsMu.Unlock()
		}(name, e)
	}

	wg.Wait()
	return results
}

// runOne 执行单项检查：独立超时 + panic兜底
// 超时的检查立即记为error并放弃等待，防止单个慢依赖拖垮健康端点
func runOne(ctx context.Context, e entry) CheckResult {
	start := time.Now()

	cctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	// 缓冲为1：超时放弃后，迟到的结果不会阻塞残留goroutine
	done := make(chan CheckResult, 1)
	go func() {
		defer func() {
			if rec := recover(); rec != nil {
				done <- CheckResult{
					Status:  StatusError,
					Message: fmt.Sprintf("check panic: %v", rec),
					Latency: time.Since(start),
				}
			}
		}()
		done <- e.checker.Check(cctx)
	}()

	select {
	case result := <-done:
		if result.Latency == 0 {
			result.Latency = time.Since(start)
		}
		return result
	case <-cctx.Done():
		return CheckResult{
			Status:  StatusError,
			Message: fmt.Sprintf("check timed out after %s", e.timeout),
			Latency: time.Since(start),
		}
	}
}
