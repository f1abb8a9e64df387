package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/report"
	"cpu-scheduler/internal/schedulers"
)

var (
	algorithmName string // Scheduling algorithm to simulate
	processFile   string // CSV or YAML process file
	timeQuantum   int    // Round robin quantum, 0 uses the config value
	showTrace     bool   // Print the step by step decision log
	revealStep    int    // Print the chart as it stood after this step, -1 disables
)

// simulateCmd runs one algorithm and prints its chart, table and metrics
var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Simulate one scheduling algorithm",
	Example: `  cpu-scheduler simulate --algorithm rr --quantum 2 --file processes.csv
  cpu-scheduler simulate --algorithm priority --trace`,
	RunE: func(cmd *cobra.Command, args []string) error {
		algorithm, err := core.ParseAlgorithm(algorithmName)
		if err != nil {
			return err
		}
		processes, err := loadProcesses(processFile, algorithm)
		if err != nil {
			return err
		}

		result, err := schedulers.Schedule(algorithm, processes, schedulers.Options{TimeQuantum: quantum()})
		if err != nil {
			return err
		}
		metric := schedulers.Analyze(result)

		w := cmd.OutOrStdout()
		report.Title(w, algorithm.Title())
		report.Gantt(w, result.GanttChart)
		report.Schedule(w, result, metric)
		report.Metrics(w, metric)
		if showTrace {
			report.Trace(w, result.Steps)
		}
		if revealStep >= 0 {
			_, _ = fmt.Fprintf(w, "Chart after step %d\n", revealStep)
			report.Gantt(w, result.GanttUntil(revealStep))
		}
		return nil
	},
}

func quantum() int {
	if timeQuantum != 0 {
		return timeQuantum
	}
	if schedulerConfig != nil {
		return schedulerConfig.RoundRobinTimeQuantum
	}
	return schedulers.DefaultTimeQuantum
}

func init() {
	simulateCmd.Flags().StringVarP(&algorithmName, "algorithm", "a", "fcfs", "Algorithm: fcfs, sjf, rr, priority")
	simulateCmd.Flags().StringVarP(&processFile, "file", "f", "", "Process file (.csv with id,burst,arrival[,priority] or .yaml); defaults to the algorithm's example set")
	simulateCmd.Flags().IntVarP(&timeQuantum, "quantum", "q", 0, "Round robin time quantum (default from config)")
	simulateCmd.Flags().BoolVar(&showTrace, "trace", false, "Print the execution trace")
	simulateCmd.Flags().IntVar(&revealStep, "reveal", -1, "Also print the Gantt chart revealed up to this item step")

	rootCmd.AddCommand(simulateCmd)
}
