package schedulers

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"cpu-scheduler/internal/core"
)

// ScheduleFirstComeFirstServe runs processes to completion in arrival order.
// Processes arriving at the same tick keep their input order. Idle steps
// carry an empty ready queue.
func ScheduleFirstComeFirstServe(processes []core.Process) (core.SimulationResult, error) {
	if err := core.ValidateProcesses(processes, false); err != nil {
		return core.SimulationResult{}, fmt.Errorf("fcfs: %w", err)
	}
	logrus.Debugf("running fcfs algorithm on %d processes", len(processes))

	jobs := core.CopyProcesses(processes)
	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].ArrivalTime < jobs[j].ArrivalTime
	})

	trace := newTraceBuilder()
	currentTime := 0

	// arrivedAfter lists the not yet started processes that are waiting at currentTime.
	arrivedAfter := func(i int) []string {
		names := make([]string, 0)
		for _, p := range jobs[i+1:] {
			if p.ArrivalTime <= currentTime {
				names = append(names, p.Name)
			}
		}
		return names
	}

	for i := range jobs {
		process := &jobs[i]

		if currentTime < process.ArrivalTime {
			trace.idle(currentTime, process.ArrivalTime, "CPU Idle (waiting for next process)")
			currentTime = process.ArrivalTime
		}

		trace.record(currentTime, "Start executing "+process.Name, process.Name, arrivedAfter(i))

		process.StartTime = currentTime
		trace.run(process, currentTime, currentTime+process.BurstTime)
		currentTime += process.BurstTime
		process.Complete(currentTime)
		logrus.Debugf("pid: %s completed at %d", process.ID, currentTime)

		trace.record(currentTime, completionAction(process), process.Name, arrivedAfter(i))
	}

	return trace.result(core.FirstComeFirstServe, jobs), nil
}
