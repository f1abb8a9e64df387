// Package report renders simulation results as plain text.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"cpu-scheduler/internal/core"
)

func Title(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

// Gantt draws the chart as a row of labelled cells followed by the tick marks.
func Gantt(w io.Writer, gantt []core.GanttItem) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	_, _ = fmt.Fprint(w, "|")
	for _, item := range gantt {
		_, _ = fmt.Fprint(w, center(item.ProcessName, cellWidth(item)), "|")
	}
	_, _ = fmt.Fprintln(w)

	var ticks strings.Builder
	for i, item := range gantt {
		start := strconv.Itoa(item.Start)
		ticks.WriteString(start)
		ticks.WriteString(strings.Repeat(" ", max(1, cellWidth(item)+1-len(start))))
		if i == len(gantt)-1 {
			ticks.WriteString(strconv.Itoa(item.End))
		}
	}
	_, _ = fmt.Fprintf(w, "%s\n\n", ticks.String())
}

func cellWidth(item core.GanttItem) int {
	return max(len(item.ProcessName)+2, 8)
}

func center(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad/2) + s + strings.Repeat(" ", pad-pad/2)
}

// Schedule prints one row per process with the averages in the footer.
func Schedule(w io.Writer, result core.SimulationResult, metric core.CpuMetric) {
	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Name", "Priority", "Burst", "Arrival", "Start", "Exit", "Wait", "Turnaround", "Response"})
	for _, p := range result.Processes {
		priority := "-"
		if p.HasPriority() {
			priority = strconv.Itoa(p.Priority)
		}
		table.Append([]string{
			p.ID,
			p.Name,
			priority,
			strconv.Itoa(p.BurstTime),
			strconv.Itoa(p.ArrivalTime),
			strconv.Itoa(p.StartTime),
			strconv.Itoa(p.CompletionTime),
			strconv.Itoa(p.WaitingTime),
			strconv.Itoa(p.TurnaroundTime),
			strconv.Itoa(p.ResponseTime),
		})
	}
	table.SetFooter([]string{"", "", "", "", "", "", "",
		fmt.Sprintf("Average\n%.2f", result.AvgWaitingTime),
		fmt.Sprintf("Average\n%.2f", result.AvgTurnaroundTime),
		fmt.Sprintf("Average\n%.2f", metric.AvgResponseTime)})
	table.Render()
}

// Metrics prints the CPU level figures of a run.
func Metrics(w io.Writer, metric core.CpuMetric) {
	_, _ = fmt.Fprintf(w, "Total time: %d  Idle time: %d  CPU utilization: %.2f%%  Throughput: %.3f/t\n\n",
		metric.TotalTime, metric.IdleTime, metric.Utilization*100, metric.Throughput)
}

// Trace prints every scheduler decision in order.
func Trace(w io.Writer, steps []core.ExecutionStep) {
	_, _ = fmt.Fprintln(w, "Execution trace")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Time", "Action", "Ready queue"})
	table.SetAutoWrapText(false)
	for i, step := range steps {
		table.Append([]string{
			strconv.Itoa(i + 1),
			strconv.Itoa(step.Time),
			step.Action,
			"[" + strings.Join(step.ReadyQueue, ", ") + "]",
		})
	}
	table.Render()
}

// Comparison prints one summary row per algorithm.
func Comparison(w io.Writer, results []core.SimulationResult, metrics []core.CpuMetric) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Algorithm", "Avg Wait", "Avg Turnaround", "Avg Response", "Makespan", "Utilization"})
	for i, result := range results {
		table.Append([]string{
			result.Algorithm.Title(),
			fmt.Sprintf("%.2f", result.AvgWaitingTime),
			fmt.Sprintf("%.2f", result.AvgTurnaroundTime),
			fmt.Sprintf("%.2f", metrics[i].AvgResponseTime),
			strconv.Itoa(metrics[i].TotalTime),
			fmt.Sprintf("%.2f%%", metrics[i].Utilization*100),
		})
	}
	table.Render()
}

// Processes lists an input set before it is scheduled.
func Processes(w io.Writer, processes []core.Process) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Name", "Arrival", "Burst", "Priority"})
	for _, p := range processes {
		priority := "-"
		if p.HasPriority() {
			priority = strconv.Itoa(p.Priority)
		}
		table.Append([]string{p.ID, p.Name, strconv.Itoa(p.ArrivalTime), strconv.Itoa(p.BurstTime), priority})
	}
	table.Render()
}
