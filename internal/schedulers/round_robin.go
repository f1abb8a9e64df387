package schedulers

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"cpu-scheduler/internal/core"
)

// DefaultTimeQuantum is the slice length used when none is configured.
const DefaultTimeQuantum = 3

// ProcessQueue is the FIFO ready queue of the round robin engine.
type ProcessQueue struct {
	queue []*core.Process
}

func NewProcessQueue() *ProcessQueue {
	return &ProcessQueue{queue: make([]*core.Process, 0)}
}

func (p *ProcessQueue) AddToEnd(process *core.Process) {
	p.queue = append(p.queue, process)
}

func (p *ProcessQueue) RemoveFromTop() (*core.Process, bool) {
	if len(p.queue) > 0 {
		item := p.queue[0]
		p.queue = p.queue[1:]
		return item, true
	}
	return nil, false
}

func (p *ProcessQueue) Len() int {
	return len(p.queue)
}

// Names snapshots the queue from front to back.
func (p *ProcessQueue) Names() []string {
	return processNames(p.queue)
}

// ScheduleRoundRobin gives each ready process at most timeQuantum ticks before
// sending it to the back of the queue. Processes that arrive while a slice runs
// are queued ahead of the process that was just preempted.
func ScheduleRoundRobin(processes []core.Process, timeQuantum int) (core.SimulationResult, error) {
	if timeQuantum < 1 {
		return core.SimulationResult{}, fmt.Errorf("rr: %w, got %d", core.ErrInvalidQuantum, timeQuantum)
	}
	if err := core.ValidateProcesses(processes, false); err != nil {
		return core.SimulationResult{}, fmt.Errorf("rr: %w", err)
	}
	logrus.Debugf("running roundRobin algorithm with timeQuantum = %d", timeQuantum)

	jobs := core.CopyProcesses(processes)
	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].ArrivalTime < jobs[j].ArrivalTime
	})

	trace := newTraceBuilder()
	readyQueue := NewProcessQueue()
	completed := make([]core.Process, 0, len(jobs))
	dispatched := make(map[string]bool, len(jobs))
	currentTime := 0
	nextArrival := 0

	admitArrived := func() {
		for nextArrival < len(jobs) && jobs[nextArrival].ArrivalTime <= currentTime {
			readyQueue.AddToEnd(&jobs[nextArrival])
			nextArrival++
		}
	}

	for len(completed) < len(jobs) {
		admitArrived()

		process, ok := readyQueue.RemoveFromTop()
		if !ok {
			arrival := jobs[nextArrival].ArrivalTime
			trace.idle(currentTime, arrival, "CPU Idle")
			currentTime = arrival
			continue
		}

		if !dispatched[process.ID] {
			dispatched[process.ID] = true
			process.StartTime = currentTime
		}

		executionTime := min(timeQuantum, process.RemainingTime)
		trace.record(currentTime,
			fmt.Sprintf("Execute %s for %d units (Remaining: %d)", process.Name, executionTime, process.RemainingTime),
			process.Name, readyQueue.Names())

		trace.run(process, currentTime, currentTime+executionTime)
		currentTime += executionTime
		process.RemainingTime -= executionTime

		// arrivals during the slice go ahead of the preempted process
		admitArrived()

		if process.RemainingTime == 0 {
			process.Complete(currentTime)
			completed = append(completed, *process)
			logrus.Debugf("pid: %s completed at %d", process.ID, currentTime)
			trace.record(currentTime, completionAction(process), process.Name, readyQueue.Names())
			continue
		}

		readyQueue.AddToEnd(process)
		logrus.Debugf("pid: %s context switch at %d, %d remaining", process.ID, currentTime, process.RemainingTime)
		trace.record(currentTime, process.Name+" preempted, added back to queue", process.Name, readyQueue.Names())
	}

	return trace.result(core.RoundRobin, completed), nil
}
