package core

// CpuMetric summarises how the single simulated CPU was used over a run.
type CpuMetric struct {
	TotalTime       int     `json:"total_time"`
	UtilizationTime int     `json:"utilization_time"`
	IdleTime        int     `json:"idle_time"`
	Utilization     float64 `json:"cpu_utilization"`
	Throughput      float64 `json:"cpu_throughput"`
	AvgResponseTime float64 `json:"average_response_time"`
}

// MeasureCpu walks a Gantt chart and counts busy and idle ticks.
func MeasureCpu(gantt []GanttItem) CpuMetric {
	var metric CpuMetric
	for _, item := range gantt {
		if item.IsIdle() {
			metric.IdleTime += item.Duration()
		} else {
			metric.UtilizationTime += item.Duration()
		}
	}
	metric.TotalTime = metric.UtilizationTime + metric.IdleTime
	if metric.TotalTime > 0 {
		metric.Utilization = float64(metric.UtilizationTime) / float64(metric.TotalTime)
	}
	return metric
}
