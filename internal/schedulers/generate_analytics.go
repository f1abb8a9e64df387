package schedulers

import (
	"fmt"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/util"
)

func generateResult(algorithm core.Algorithm, processes []core.Process, gantt []core.GanttItem, steps []core.ExecutionStep) core.SimulationResult {
	averageWaitingTime, _, averageTurnAroundTime := util.CalculateAverage(processes)
	return core.SimulationResult{
		Algorithm:         algorithm,
		Processes:         processes,
		GanttChart:        gantt,
		Steps:             steps,
		AvgWaitingTime:    averageWaitingTime,
		AvgTurnaroundTime: averageTurnAroundTime,
	}
}

// Analyze derives CPU level figures from a finished run: makespan, busy and
// idle ticks, utilization, throughput and mean response time.
func Analyze(result core.SimulationResult) core.CpuMetric {
	metric := core.MeasureCpu(result.GanttChart)
	if metric.TotalTime > 0 {
		metric.Throughput = float64(len(result.Processes)) / float64(metric.TotalTime)
	}
	_, metric.AvgResponseTime, _ = util.CalculateAverage(result.Processes)
	return metric
}

func completionAction(process *core.Process) string {
	return fmt.Sprintf("Complete %s (WT: %d, TAT: %d)", process.Name, process.WaitingTime, process.TurnaroundTime)
}
