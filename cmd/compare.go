package cmd

import (
	"github.com/spf13/cobra"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/report"
	"cpu-scheduler/internal/schedulers"
)

var (
	compareFile    string // CSV or YAML process file
	compareExample string // Example set to compare on when no file is given
)

// compareCmd runs every algorithm on the same processes
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare every scheduling algorithm on the same processes",
	RunE: func(cmd *cobra.Command, args []string) error {
		exampleFor, err := core.ParseAlgorithm(compareExample)
		if err != nil {
			return err
		}
		processes, err := loadProcesses(compareFile, exampleFor)
		if err != nil {
			return err
		}

		results, err := schedulers.CompareAll(processes, schedulers.Options{TimeQuantum: quantum()})
		if err != nil {
			return err
		}
		metrics := make([]core.CpuMetric, len(results))
		for i, result := range results {
			metrics[i] = schedulers.Analyze(result)
		}

		w := cmd.OutOrStdout()
		report.Processes(w, processes)
		report.Comparison(w, results, metrics)
		return nil
	},
}

func init() {
	compareCmd.Flags().StringVarP(&compareFile, "file", "f", "", "Process file (.csv or .yaml)")
	compareCmd.Flags().StringVar(&compareExample, "example", "priority", "Example set to use when no file is given")
	compareCmd.Flags().IntVarP(&timeQuantum, "quantum", "q", 0, "Round robin time quantum (default from config)")

	rootCmd.AddCommand(compareCmd)
}
