package schedulers

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"cpu-scheduler/internal/core"
)

// SchedulePriority is non-preemptive static priority scheduling; a lower number
// is more urgent and equal priorities are served in pool order. There is no
// aging, so a steady stream of urgent work can starve a low priority process.
func SchedulePriority(processes []core.Process) (core.SimulationResult, error) {
	if err := core.ValidateProcesses(processes, true); err != nil {
		return core.SimulationResult{}, fmt.Errorf("priority: %w", err)
	}
	logrus.Debugf("running priority algorithm on %d processes", len(processes))

	return scheduleNonPreemptive(core.Priority, processes, highestPriorityFirst), nil
}
