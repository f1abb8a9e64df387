package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduler/internal/core"
)

func sampleResult() core.SimulationResult {
	gantt := []core.GanttItem{
		{ProcessID: core.IdleProcessID, ProcessName: core.IdleProcessName, Start: 0, End: 2, Step: 0},
		{ProcessID: "1", ProcessName: "P1", Start: 2, End: 5, Step: 1},
	}
	return core.SimulationResult{
		Algorithm: core.FirstComeFirstServe,
		Processes: []core.Process{
			{ID: "1", Name: "P1", ArrivalTime: 2, BurstTime: 3, StartTime: 2, CompletionTime: 5, TurnaroundTime: 3},
		},
		GanttChart: gantt,
		Steps: []core.ExecutionStep{
			{Time: 0, Action: "CPU Idle (waiting for next process)", ProcessName: core.IdleProcessName, ReadyQueue: []string{}, GanttItems: gantt[:1]},
			{Time: 2, Action: "Start executing P1", ProcessName: "P1", ReadyQueue: []string{"P2", "P3"}, GanttItems: gantt[:1]},
		},
		AvgTurnaroundTime: 3,
	}
}

func TestGantt(t *testing.T) {
	var buf bytes.Buffer
	Gantt(&buf, sampleResult().GanttChart)

	lines := strings.Split(buf.String(), "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Equal(t, "Gantt schedule", lines[0])
	assert.Equal(t, "|  Idle  |   P1   |", lines[1])
	assert.Equal(t, "0        2        5", lines[2])
}

func TestSchedule(t *testing.T) {
	var buf bytes.Buffer
	result := sampleResult()
	Schedule(&buf, result, core.MeasureCpu(result.GanttChart))

	out := buf.String()
	assert.Contains(t, out, "Schedule table")
	assert.Contains(t, out, "TURNAROUND")
	assert.Contains(t, out, "P1")
	assert.Contains(t, out, "3.00")
}

func TestTrace(t *testing.T) {
	var buf bytes.Buffer
	Trace(&buf, sampleResult().Steps)

	out := buf.String()
	assert.Contains(t, out, "Start executing P1")
	assert.Contains(t, out, "[P2, P3]")
}

func TestComparison(t *testing.T) {
	var buf bytes.Buffer
	result := sampleResult()
	Comparison(&buf, []core.SimulationResult{result}, []core.CpuMetric{core.MeasureCpu(result.GanttChart)})

	out := buf.String()
	assert.Contains(t, out, "First Come First Serve")
	assert.Contains(t, out, "60.00%")
}

func TestMetrics(t *testing.T) {
	var buf bytes.Buffer
	Metrics(&buf, core.CpuMetric{TotalTime: 10, IdleTime: 2, Utilization: 0.8, Throughput: 0.4})

	assert.Equal(t, "Total time: 10  Idle time: 2  CPU utilization: 80.00%  Throughput: 0.400/t\n\n", buf.String())
}
