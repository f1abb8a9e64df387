package requests

import (
	"fmt"
	"strconv"

	"cpu-scheduler/internal/core"
)

type Job struct {
	ProcessId   string `json:"process_id"`
	Name        string `json:"name"`
	ArrivalTime int    `json:"arrival_time"`
	BurstTime   int    `json:"burst_time"`
	Priority    int    `json:"priority"`
}

type ScheduleRequests struct {
	Jobs        []Job `json:"jobs"`
	TimeQuantum int   `json:"time_quantum"`
}

// Validate applies the input form rules: between one and maxProcesses jobs,
// non-negative arrivals, positive bursts and a priority when the algorithm needs one.
// A maxProcesses of 0 disables the upper bound.
func (r *ScheduleRequests) Validate(algorithm core.Algorithm, maxProcesses int) error {
	if len(r.Jobs) == 0 {
		return fmt.Errorf("at least one process is required: %w", core.ErrNoProcesses)
	}
	if maxProcesses > 0 && len(r.Jobs) > maxProcesses {
		return fmt.Errorf("%w: maximum %d processes allowed", core.ErrInvalidProcess, maxProcesses)
	}
	if r.TimeQuantum < 0 {
		return fmt.Errorf("%w, got %d", core.ErrInvalidQuantum, r.TimeQuantum)
	}
	return core.ValidateProcesses(r.Processes(), algorithm.RequiresPriority())
}

// Processes converts the jobs, numbering anonymous ones by position.
func (r *ScheduleRequests) Processes() []core.Process {
	processes := make([]core.Process, len(r.Jobs))
	for i, job := range r.Jobs {
		id := job.ProcessId
		if id == "" {
			id = strconv.Itoa(i + 1)
		}
		name := job.Name
		if name == "" {
			name = "P" + strconv.Itoa(i+1)
		}
		processes[i] = core.Process{
			ID:            id,
			Name:          name,
			ArrivalTime:   job.ArrivalTime,
			BurstTime:     job.BurstTime,
			Priority:      job.Priority,
			RemainingTime: job.BurstTime,
		}
	}
	return processes
}
