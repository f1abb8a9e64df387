package schedulers

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"cpu-scheduler/internal/core"
)

// selector is the pluggable policy of a non-preemptive engine.
type selector struct {
	// less orders two eligible processes; the earliest in pool order wins a tie.
	less func(a, b *core.Process) bool
	// label renders a waiting process in a ready queue snapshot.
	label func(p *core.Process) string
	// startAction describes the dispatch of the chosen process.
	startAction func(p *core.Process) string
}

// selectNext returns the index in eligible of the process to run next.
// A linear scan keeps the first of equal candidates, so ties fall back to pool order.
func (s selector) selectNext(eligible []*core.Process) int {
	best := 0
	for i := 1; i < len(eligible); i++ {
		if s.less(eligible[i], eligible[best]) {
			best = i
		}
	}
	return best
}

func (s selector) labels(processes []*core.Process) []string {
	labels := make([]string, 0, len(processes))
	for _, p := range processes {
		labels = append(labels, s.label(p))
	}
	return labels
}

// scheduleNonPreemptive repeatedly picks one arrived process from the pool and
// runs it to completion. Selection rescans the whole pool each time, which is
// quadratic in the number of processes.
func scheduleNonPreemptive(algorithm core.Algorithm, processes []core.Process, policy selector) core.SimulationResult {
	jobs := core.CopyProcesses(processes)
	pool := make([]*core.Process, len(jobs))
	for i := range jobs {
		pool[i] = &jobs[i]
	}

	trace := newTraceBuilder()
	completed := make([]core.Process, 0, len(jobs))
	currentTime := 0

	arrived := func() []*core.Process {
		eligible := make([]*core.Process, 0, len(pool))
		for _, p := range pool {
			if p.ArrivalTime <= currentTime {
				eligible = append(eligible, p)
			}
		}
		return eligible
	}

	for len(pool) > 0 {
		eligible := arrived()

		if len(eligible) == 0 {
			nextArrival := pool[0].ArrivalTime
			for _, p := range pool[1:] {
				if p.ArrivalTime < nextArrival {
					nextArrival = p.ArrivalTime
				}
			}
			trace.idle(currentTime, nextArrival, "CPU Idle")
			currentTime = nextArrival
			continue
		}

		chosen := eligible[policy.selectNext(eligible)]
		pool = removeProcess(pool, chosen)

		waiting := make([]*core.Process, 0, len(eligible)-1)
		for _, p := range eligible {
			if p != chosen {
				waiting = append(waiting, p)
			}
		}
		sort.SliceStable(waiting, func(i, j int) bool {
			return policy.less(waiting[i], waiting[j])
		})
		trace.record(currentTime, policy.startAction(chosen), chosen.Name, policy.labels(waiting))

		chosen.StartTime = currentTime
		trace.run(chosen, currentTime, currentTime+chosen.BurstTime)
		currentTime += chosen.BurstTime
		chosen.Complete(currentTime)
		logrus.Debugf("pid: %s completed at %d", chosen.ID, currentTime)
		completed = append(completed, *chosen)

		trace.record(currentTime, completionAction(chosen), chosen.Name, policy.labels(arrived()))
	}

	return trace.result(algorithm, completed)
}

func removeProcess(pool []*core.Process, target *core.Process) []*core.Process {
	for i, p := range pool {
		if p == target {
			return append(pool[:i:i], pool[i+1:]...)
		}
	}
	return pool
}

var shortestJobFirst = selector{
	less: func(a, b *core.Process) bool {
		return a.BurstTime < b.BurstTime
	},
	label: func(p *core.Process) string {
		return fmt.Sprintf("%s(B:%d)", p.Name, p.BurstTime)
	},
	startAction: func(p *core.Process) string {
		return fmt.Sprintf("Start executing %s (Burst: %d)", p.Name, p.BurstTime)
	},
}

var highestPriorityFirst = selector{
	less: func(a, b *core.Process) bool {
		return a.Priority < b.Priority
	},
	label: func(p *core.Process) string {
		return fmt.Sprintf("%s(P:%d)", p.Name, p.Priority)
	},
	startAction: func(p *core.Process) string {
		return fmt.Sprintf("Start executing %s (Priority: %d, Burst: %d)", p.Name, p.Priority, p.BurstTime)
	},
}
