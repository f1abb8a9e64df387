package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/examples"
	"cpu-scheduler/internal/loader"
)

var (
	configPath string // Path to the YAML config file
	logLevel   string // Log verbosity level, overrides log.level from the config

	schedulerConfig *config.SchedulerConfig
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:           "cpu-scheduler",
	Short:         "Simulator for FCFS, SJF, Round Robin and Priority CPU scheduling",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		schedulerConfig = cfg

		level := cfg.LogLevel
		if cmd.Flags().Changed("log") {
			level = logLevel
		}
		parsed, err := logrus.ParseLevel(level)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", level, err)
		}
		logrus.SetLevel(parsed)
		return nil
	},
}

// loadConfig shares the process-wide config unless --config points elsewhere.
func loadConfig() (*config.SchedulerConfig, error) {
	if configPath == "" {
		return config.GetSchedulerConfig()
	}
	return config.Load(configPath)
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}

// loadProcesses reads processes from file, or the example set of exampleFor when file is empty.
func loadProcesses(file string, exampleFor core.Algorithm) ([]core.Process, error) {
	if file != "" {
		logrus.Debugf("loading processes from %s", file)
		return loader.LoadFile(file)
	}
	logrus.Debugf("using the %s example processes", exampleFor.Title())
	return examples.For(exampleFor)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
}
