package core

// IdleProcessID and IdleProcessName mark Gantt items where the CPU had nothing to run.
const (
	IdleProcessID   = "idle"
	IdleProcessName = "Idle"
)

// Process is one simulated job. The timing fields below BurstTime are filled by
// the engines once the process has finished.
type Process struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	ArrivalTime int    `json:"arrival_time" yaml:"arrival_time"`
	BurstTime   int    `json:"burst_time" yaml:"burst_time"`
	// Priority is only read by the priority engine; lower is more urgent and 0 means unset.
	Priority int `json:"priority,omitempty" yaml:"priority,omitempty"`

	RemainingTime  int `json:"remaining_time" yaml:"-"`
	StartTime      int `json:"start_time" yaml:"-"`
	CompletionTime int `json:"completion_time" yaml:"-"`
	TurnaroundTime int `json:"turnaround_time" yaml:"-"`
	WaitingTime    int `json:"waiting_time" yaml:"-"`
	ResponseTime   int `json:"response_time" yaml:"-"`
}

// HasPriority reports whether a priority was supplied.
func (p Process) HasPriority() bool {
	return p.Priority > 0
}

// Complete stamps the derived timing fields for a process that finished at completionTime.
// StartTime must already be set.
func (p *Process) Complete(completionTime int) {
	p.RemainingTime = 0
	p.CompletionTime = completionTime
	p.TurnaroundTime = completionTime - p.ArrivalTime
	p.WaitingTime = p.TurnaroundTime - p.BurstTime
	p.ResponseTime = p.StartTime - p.ArrivalTime
}

// CopyProcesses returns a fresh slice of fresh processes with output fields cleared.
func CopyProcesses(processes []Process) []Process {
	copied := make([]Process, len(processes))
	for i, p := range processes {
		copied[i] = Process{
			ID:            p.ID,
			Name:          p.Name,
			ArrivalTime:   p.ArrivalTime,
			BurstTime:     p.BurstTime,
			Priority:      p.Priority,
			RemainingTime: p.BurstTime,
		}
	}
	return copied
}
