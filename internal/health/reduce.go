package health

// Reduce 将各项检查状态归约为总体状态（纯函数，无副作用）
//
// 归约规则（严格优先级）:
//  1. 任一 error         → 总体 error
//  2. 任一 degraded/warning/not_ready → 总体 degraded
//  3. 其余（ready/not_configured）    → 总体 healthy
func Reduce(statuses map[string]CheckStatus) OverallStatus {
	errorCount := 0
	degradedCount := 0

	for _, s := range statuses {
		switch s {
		case StatusError:
			errorCount++
		case StatusDegraded, StatusWarning, StatusNotReady:
			degradedCount++
		}
	}

	if errorCount > 0 {
		return OverallError
	}
	if degradedCount > 0 {
		return OverallDegraded
	}
	return OverallHealthy
}

// Statuses 从检查结果中提取状态映射
func Statuses(results map[string]CheckResult) map[string]CheckStatus {
	statuses := make(map[string]CheckStatus, len(results))
	for name, r := range results {
		statuses[name] = r.Status
	}
	return statuses
}
