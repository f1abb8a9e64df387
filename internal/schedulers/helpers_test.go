package schedulers

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/examples"
)

func exampleProcesses(t *testing.T, algorithm core.Algorithm) []core.Process {
	t.Helper()
	processes, err := examples.For(algorithm)
	require.NoError(t, err)
	return processes
}

// randomProcesses builds a reproducible workload with gaps, ties and priorities.
func randomProcesses(seed int64, n int) []core.Process {
	rng := rand.New(rand.NewSource(seed))
	processes := make([]core.Process, n)
	for i := range processes {
		processes[i] = core.Process{
			ID:          string(rune('a'+i%26)) + string(rune('0'+i/26)),
			Name:        "P" + string(rune('A'+i%26)) + string(rune('0'+i/26)),
			ArrivalTime: rng.Intn(4 * n),
			BurstTime:   1 + rng.Intn(9),
			Priority:    1 + rng.Intn(5),
		}
	}
	return processes
}

func completionTimes(result core.SimulationResult) map[string]int {
	times := make(map[string]int, len(result.Processes))
	for _, p := range result.Processes {
		times[p.Name] = p.CompletionTime
	}
	return times
}

func names(processes []core.Process) []string {
	out := make([]string, 0, len(processes))
	for _, p := range processes {
		out = append(out, p.Name)
	}
	return out
}

// assertTiled checks the chart covers [0, makespan) with no gap or overlap and
// that step indices increase.
func assertTiled(t *testing.T, result core.SimulationResult) {
	t.Helper()
	require.NotEmpty(t, result.GanttChart)

	clock, total := 0, 0
	for i, item := range result.GanttChart {
		assert.Equal(t, clock, item.Start, "item %d starts at the previous end", i)
		assert.Less(t, item.Start, item.End, "item %d is non-empty", i)
		assert.Equal(t, i, item.Step, "item %d step index", i)
		clock = item.End
		total += item.Duration()
	}
	assert.Equal(t, result.Makespan(), total)
}

func assertMetricIdentities(t *testing.T, input []core.Process, result core.SimulationResult) {
	t.Helper()
	require.Len(t, result.Processes, len(input))

	var waiting, turnaround float64
	for _, p := range result.Processes {
		assert.Equal(t, p.CompletionTime-p.ArrivalTime, p.TurnaroundTime, p.Name)
		assert.Equal(t, p.TurnaroundTime-p.BurstTime, p.WaitingTime, p.Name)
		assert.GreaterOrEqual(t, p.WaitingTime, 0, p.Name)
		assert.GreaterOrEqual(t, p.TurnaroundTime, p.BurstTime, p.Name)
		assert.GreaterOrEqual(t, p.StartTime, p.ArrivalTime, p.Name)
		assert.Zero(t, p.RemainingTime, p.Name)
		waiting += float64(p.WaitingTime)
		turnaround += float64(p.TurnaroundTime)
	}
	n := float64(len(result.Processes))
	assert.InDelta(t, waiting/n, result.AvgWaitingTime, 1e-9)
	assert.InDelta(t, turnaround/n, result.AvgTurnaroundTime, 1e-9)
}

func busyTimeByProcess(result core.SimulationResult) map[string]int {
	busy := make(map[string]int)
	for _, item := range result.GanttChart {
		if !item.IsIdle() {
			busy[item.ProcessID] += item.Duration()
		}
	}
	return busy
}
