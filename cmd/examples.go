package cmd

import (
	"github.com/spf13/cobra"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/examples"
	"cpu-scheduler/internal/report"
)

// examplesCmd prints the example process set of an algorithm
var examplesCmd = &cobra.Command{
	Use:       "examples <algorithm>",
	Short:     "Print the example process set for an algorithm",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"fcfs", "sjf", "rr", "priority"},
	RunE: func(cmd *cobra.Command, args []string) error {
		algorithm, err := core.ParseAlgorithm(args[0])
		if err != nil {
			return err
		}
		processes, err := examples.For(algorithm)
		if err != nil {
			return err
		}
		report.Title(cmd.OutOrStdout(), algorithm.Title()+" example")
		report.Processes(cmd.OutOrStdout(), processes)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(examplesCmd)
}
