package schedulers

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"cpu-scheduler/internal/core"
)

// ScheduleShortestJobFirst is non-preemptive SJF: whenever the CPU frees up, the
// arrived process with the smallest burst runs to completion. Priorities are ignored.
func ScheduleShortestJobFirst(processes []core.Process) (core.SimulationResult, error) {
	if err := core.ValidateProcesses(processes, false); err != nil {
		return core.SimulationResult{}, fmt.Errorf("sjf: %w", err)
	}
	logrus.Debugf("running sjf algorithm on %d processes", len(processes))

	return scheduleNonPreemptive(core.ShortestJobFirst, processes, shortestJobFirst), nil
}
