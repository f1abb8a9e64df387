package schedulers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduler/internal/core"
)

func TestSchedulePriority_Example(t *testing.T) {
	processes := exampleProcesses(t, core.Priority)

	result, err := SchedulePriority(processes)
	require.NoError(t, err)

	// P1 is alone at t=0 and is not interrupted by the more urgent P2
	assert.Equal(t, []string{"P1", "P2", "P4", "P3"}, names(result.Processes))
	assert.Equal(t, map[string]int{"P1": 4, "P2": 7, "P4": 9, "P3": 14}, completionTimes(result))
	assert.InDelta(t, 3.5, result.AvgWaitingTime, 1e-9)
	assert.InDelta(t, 7.0, result.AvgTurnaroundTime, 1e-9)

	assertTiled(t, result)
	assertMetricIdentities(t, processes, result)
}

func TestSchedulePriority_AnnotatedSteps(t *testing.T) {
	result, err := SchedulePriority(exampleProcesses(t, core.Priority))
	require.NoError(t, err)

	require.Len(t, result.Steps, 8)
	assert.Equal(t, "Start executing P1 (Priority: 2, Burst: 4)", result.Steps[0].Action)
	assert.Equal(t, []string{"P2(P:1)", "P3(P:4)", "P4(P:3)"}, result.Steps[1].ReadyQueue)
	assert.Equal(t, "Start executing P2 (Priority: 1, Burst: 3)", result.Steps[2].Action)
	assert.Equal(t, []string{"P4(P:3)", "P3(P:4)"}, result.Steps[2].ReadyQueue)
}

func TestSchedulePriority_EqualPrioritiesAreFirstComeFirstServe(t *testing.T) {
	processes := []core.Process{
		{ID: "1", Name: "P1", ArrivalTime: 0, BurstTime: 3, Priority: 1},
		{ID: "2", Name: "P2", ArrivalTime: 1, BurstTime: 1, Priority: 2},
		{ID: "3", Name: "P3", ArrivalTime: 2, BurstTime: 1, Priority: 2},
	}

	result, err := SchedulePriority(processes)
	require.NoError(t, err)
	assert.Equal(t, []string{"P1", "P2", "P3"}, names(result.Processes))
}

func TestSchedulePriority_StarvationStillTerminates(t *testing.T) {
	processes := []core.Process{
		{ID: "low", Name: "Low", ArrivalTime: 0, BurstTime: 1, Priority: 5},
		{ID: "h1", Name: "H1", ArrivalTime: 0, BurstTime: 2, Priority: 1},
		{ID: "h2", Name: "H2", ArrivalTime: 1, BurstTime: 2, Priority: 1},
		{ID: "h3", Name: "H3", ArrivalTime: 3, BurstTime: 2, Priority: 1},
	}

	result, err := SchedulePriority(processes)
	require.NoError(t, err)

	assert.Equal(t, []string{"H1", "H2", "H3", "Low"}, names(result.Processes))
	assert.Equal(t, 6, result.Processes[3].WaitingTime)
}

func TestSchedulePriority_RequiresPriority(t *testing.T) {
	processes := []core.Process{
		{ID: "1", Name: "P1", ArrivalTime: 0, BurstTime: 3, Priority: 1},
		{ID: "2", Name: "P2", ArrivalTime: 1, BurstTime: 1},
	}

	_, err := SchedulePriority(processes)
	assert.ErrorIs(t, err, core.ErrInvalidProcess)
	assert.ErrorContains(t, err, "priority for P2 must be at least 1")
}

func TestSchedulePriority_RandomWorkload(t *testing.T) {
	processes := randomProcesses(23, 35)

	result, err := SchedulePriority(processes)
	require.NoError(t, err)

	assertTiled(t, result)
	assertMetricIdentities(t, processes, result)
	for _, item := range result.GanttChart {
		if !item.IsIdle() {
			assert.Equal(t, busyTimeByProcess(result)[item.ProcessID], item.Duration())
		}
	}
}
