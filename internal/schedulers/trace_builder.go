package schedulers

import "cpu-scheduler/internal/core"

// traceBuilder accumulates the Gantt chart and the decision log of one run.
type traceBuilder struct {
	gantt      []core.GanttItem
	steps      []core.ExecutionStep
	stepNumber int
}

func newTraceBuilder() *traceBuilder {
	return &traceBuilder{
		gantt: make([]core.GanttItem, 0),
		steps: make([]core.ExecutionStep, 0),
	}
}

// idle appends an idle interval followed by a step that already shows it.
func (t *traceBuilder) idle(start, end int, action string) {
	t.appendItem(core.IdleProcessID, core.IdleProcessName, start, end)
	t.record(start, action, core.IdleProcessName, nil)
}

// run appends a CPU interval for the process.
func (t *traceBuilder) run(process *core.Process, start, end int) {
	t.appendItem(process.ID, process.Name, start, end)
}

func (t *traceBuilder) appendItem(id, name string, start, end int) {
	t.gantt = append(t.gantt, core.GanttItem{
		ProcessID:   id,
		ProcessName: name,
		Start:       start,
		End:         end,
		Step:        t.stepNumber,
	})
	t.stepNumber++
}

// record logs a decision together with a private copy of the chart so far.
func (t *traceBuilder) record(time int, action, processName string, readyQueue []string) {
	if readyQueue == nil {
		readyQueue = []string{}
	}
	snapshot := make([]core.GanttItem, len(t.gantt))
	copy(snapshot, t.gantt)

	t.steps = append(t.steps, core.ExecutionStep{
		Time:        time,
		Action:      action,
		ProcessName: processName,
		ReadyQueue:  readyQueue,
		GanttItems:  snapshot,
	})
}

// result assembles the final SimulationResult with averages over processes.
func (t *traceBuilder) result(algorithm core.Algorithm, processes []core.Process) core.SimulationResult {
	return generateResult(algorithm, processes, t.gantt, t.steps)
}

func processNames(processes []*core.Process) []string {
	names := make([]string, 0, len(processes))
	for _, p := range processes {
		names = append(names, p.Name)
	}
	return names
}
