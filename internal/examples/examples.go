// Package examples holds the canonical process sets used to demonstrate each algorithm.
package examples

import (
	"fmt"

	"cpu-scheduler/internal/core"
)

var fcfs = []core.Process{
	{ID: "p1", Name: "P1", ArrivalTime: 0, BurstTime: 4},
	{ID: "p2", Name: "P2", ArrivalTime: 1, BurstTime: 3},
	{ID: "p3", Name: "P3", ArrivalTime: 2, BurstTime: 1},
	{ID: "p4", Name: "P4", ArrivalTime: 3, BurstTime: 5},
}

var sjf = []core.Process{
	{ID: "p1", Name: "P1", ArrivalTime: 0, BurstTime: 6},
	{ID: "p2", Name: "P2", ArrivalTime: 1, BurstTime: 2},
	{ID: "p3", Name: "P3", ArrivalTime: 2, BurstTime: 8},
	{ID: "p4", Name: "P4", ArrivalTime: 3, BurstTime: 3},
}

var roundRobin = []core.Process{
	{ID: "p1", Name: "P1", ArrivalTime: 0, BurstTime: 5},
	{ID: "p2", Name: "P2", ArrivalTime: 1, BurstTime: 3},
	{ID: "p3", Name: "P3", ArrivalTime: 2, BurstTime: 8},
	{ID: "p4", Name: "P4", ArrivalTime: 3, BurstTime: 6},
}

var priority = []core.Process{
	{ID: "p1", Name: "P1", ArrivalTime: 0, BurstTime: 4, Priority: 2},
	{ID: "p2", Name: "P2", ArrivalTime: 1, BurstTime: 3, Priority: 1},
	{ID: "p3", Name: "P3", ArrivalTime: 2, BurstTime: 5, Priority: 4},
	{ID: "p4", Name: "P4", ArrivalTime: 3, BurstTime: 2, Priority: 3},
}

var byAlgorithm = map[core.Algorithm][]core.Process{
	core.FirstComeFirstServe: fcfs,
	core.ShortestJobFirst:    sjf,
	core.RoundRobin:          roundRobin,
	core.Priority:            priority,
}

// For returns a copy of the example set for algorithm.
func For(algorithm core.Algorithm) ([]core.Process, error) {
	processes, ok := byAlgorithm[algorithm]
	if !ok {
		return nil, fmt.Errorf("%w: %q", core.ErrUnknownAlgorithm, algorithm)
	}
	return core.CopyProcesses(processes), nil
}
