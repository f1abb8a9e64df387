package responses

import "cpu-scheduler/internal/core"

type ScheduleResponse struct {
	RunId string `json:"run_id"`
	core.SimulationResult
	AverageResponseTime float64 `json:"average_response_time"`
	TotalTime           int     `json:"total_time"`
	IdleTime            int     `json:"idle_time"`
	CpuUtilization      float64 `json:"cpu_utilization"`
	CpuThroughput       float64 `json:"cpu_throughput"`
}

type CompareResponse struct {
	RunId   string             `json:"run_id"`
	Results []ScheduleResponse `json:"results"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func NewScheduleResponse(runId string, result core.SimulationResult, metric core.CpuMetric) ScheduleResponse {
	return ScheduleResponse{
		RunId:               runId,
		SimulationResult:    result,
		AverageResponseTime: metric.AvgResponseTime,
		TotalTime:           metric.TotalTime,
		IdleTime:            metric.IdleTime,
		CpuUtilization:      metric.Utilization,
		CpuThroughput:       metric.Throughput,
	}
}
