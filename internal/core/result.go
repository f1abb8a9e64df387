package core

// GanttItem is one contiguous interval of CPU occupancy.
type GanttItem struct {
	ProcessID   string `json:"process_id"`
	ProcessName string `json:"process_name"`
	Start       int    `json:"start"`
	End         int    `json:"end"`
	Step        int    `json:"step"`
}

// Duration is End - Start.
func (g GanttItem) Duration() int {
	return g.End - g.Start
}

// IsIdle reports whether the interval is an idle gap.
func (g GanttItem) IsIdle() bool {
	return g.ProcessID == IdleProcessID
}

// ExecutionStep is one scheduler decision. GanttItems is the chart as it stood
// when the decision was logged; it is never shared with later steps.
type ExecutionStep struct {
	Time        int         `json:"time"`
	Action      string      `json:"action"`
	ProcessName string      `json:"process_name"`
	ReadyQueue  []string    `json:"ready_queue"`
	GanttItems  []GanttItem `json:"gantt_items"`
}

// SimulationResult is everything one engine run produces.
type SimulationResult struct {
	Algorithm         Algorithm       `json:"algorithm"`
	Processes         []Process       `json:"processes"`
	GanttChart        []GanttItem     `json:"gantt_chart"`
	Steps             []ExecutionStep `json:"steps"`
	AvgWaitingTime    float64         `json:"average_waiting_time"`
	AvgTurnaroundTime float64         `json:"average_turnaround_time"`
}

// Makespan is the end of the last Gantt item, or 0 for an empty chart.
func (r SimulationResult) Makespan() int {
	if len(r.GanttChart) == 0 {
		return 0
	}
	return r.GanttChart[len(r.GanttChart)-1].End
}

// GanttUntil returns the chart items revealed up to and including step, where
// step counts Gantt items in the order they were scheduled.
func (r SimulationResult) GanttUntil(step int) []GanttItem {
	items := make([]GanttItem, 0, len(r.GanttChart))
	for _, item := range r.GanttChart {
		if item.Step <= step {
			items = append(items, item)
		}
	}
	return items
}
