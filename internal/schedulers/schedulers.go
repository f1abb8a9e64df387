package schedulers

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"cpu-scheduler/internal/core"
)

// Options carries the tunables that only some engines read.
type Options struct {
	TimeQuantum int
}

func (o Options) timeQuantum() int {
	if o.TimeQuantum == 0 {
		return DefaultTimeQuantum
	}
	return o.TimeQuantum
}

// Schedule dispatches to the engine for algorithm.
func Schedule(algorithm core.Algorithm, processes []core.Process, opts Options) (core.SimulationResult, error) {
	switch algorithm {
	case core.FirstComeFirstServe:
		return ScheduleFirstComeFirstServe(processes)
	case core.ShortestJobFirst:
		return ScheduleShortestJobFirst(processes)
	case core.RoundRobin:
		return ScheduleRoundRobin(processes, opts.timeQuantum())
	case core.Priority:
		return SchedulePriority(processes)
	default:
		return core.SimulationResult{}, fmt.Errorf("%w: %q", core.ErrUnknownAlgorithm, algorithm)
	}
}

// CompareAll runs every algorithm over the same processes. Engines share no
// state, so each runs on its own goroutine. Priority is left out when any
// process has no priority. Results come back in core.Algorithms order.
func CompareAll(processes []core.Process, opts Options) ([]core.SimulationResult, error) {
	if err := core.ValidateProcesses(processes, false); err != nil {
		return nil, fmt.Errorf("compare: %w", err)
	}

	algorithms := make([]core.Algorithm, 0, len(core.Algorithms))
	for _, algorithm := range core.Algorithms {
		if algorithm.RequiresPriority() && !allHavePriority(processes) {
			logrus.Infof("skipping %s: not every process has a priority", algorithm.Title())
			continue
		}
		algorithms = append(algorithms, algorithm)
	}

	results := make([]core.SimulationResult, len(algorithms))
	errs := make([]error, len(algorithms))

	var wg sync.WaitGroup
	wg.Add(len(algorithms))
	for i, algorithm := range algorithms {
		go func(i int, algorithm core.Algorithm) {
			defer wg.Done()
			results[i], errs[i] = Schedule(algorithm, processes, opts)
		}(i, algorithm)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

func allHavePriority(processes []core.Process) bool {
	for _, p := range processes {
		if !p.HasPriority() {
			return false
		}
	}
	return true
}
