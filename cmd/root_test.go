package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduler/internal/core"
)

// run executes the CLI with args after resetting flag-bound globals.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	algorithmName, processFile, timeQuantum, showTrace = "fcfs", "", 0, false
	compareFile, compareExample = "", "priority"
	configPath, port, logLevel = "", 0, "warn"
	revealStep = -1

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestSimulate_ExampleWithTrace(t *testing.T) {
	out, err := run(t, "simulate", "--algorithm", "rr", "--trace", "--log", "error")
	require.NoError(t, err)

	assert.Contains(t, out, "Round Robin")
	assert.Contains(t, out, "Gantt schedule")
	assert.Contains(t, out, "Execute P1 for 3 units (Remaining: 5)")
	assert.Contains(t, out, "P1 preempted, added back to queue")
	assert.Contains(t, out, "Total time: 22")
}

func TestSimulate_QuantumFlag(t *testing.T) {
	out, err := run(t, "simulate", "-a", "rr", "-q", "8", "--trace", "--log", "error")
	require.NoError(t, err)

	// with a quantum of 8 nothing is preempted
	assert.NotContains(t, out, "preempted")
	assert.Contains(t, out, "Execute P3 for 8 units (Remaining: 8)")
	assert.Contains(t, out, "Total time: 22")
}

func TestSimulate_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.csv")
	require.NoError(t, os.WriteFile(path, []byte("1,4,0,2\n2,3,1,1\n"), 0o644))

	out, err := run(t, "simulate", "--algorithm", "priority", "--file", path, "--log", "error")
	require.NoError(t, err)

	assert.Contains(t, out, "Priority")
	assert.Contains(t, out, "Total time: 7")
}

func TestSimulate_ConfigQuantum(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("scheduler:\n  round_robin:\n    time_quantum: 100\n"), 0o644))

	out, err := run(t, "simulate", "-a", "rr", "--trace", "--config", cfg, "--log", "error")
	require.NoError(t, err)
	assert.NotContains(t, out, "preempted")
	assert.Equal(t, 100, schedulerConfig.RoundRobinTimeQuantum)
}

func TestSimulate_Errors(t *testing.T) {
	_, err := run(t, "simulate", "--algorithm", "lottery")
	assert.ErrorIs(t, err, core.ErrUnknownAlgorithm)

	path := filepath.Join(t.TempDir(), "jobs.csv")
	require.NoError(t, os.WriteFile(path, []byte("1,0,0\n"), 0o644))
	_, err = run(t, "simulate", "--file", path)
	assert.ErrorIs(t, err, core.ErrInvalidProcess)
}

func TestCompare(t *testing.T) {
	out, err := run(t, "compare", "--log", "error")
	require.NoError(t, err)

	for _, algorithm := range core.Algorithms {
		assert.Contains(t, out, algorithm.Title())
	}
}

func TestExamples(t *testing.T) {
	out, err := run(t, "examples", "sjf", "--log", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "Shortest Job First example")

	_, err = run(t, "examples")
	assert.Error(t, err)
}

func TestRoot_InvalidLogLevel(t *testing.T) {
	_, err := run(t, "examples", "fcfs", "--log", "chatty")
	assert.ErrorContains(t, err, `invalid log level "chatty"`)
}

func TestRoot_SharesDefaultConfig(t *testing.T) {
	_, err := run(t, "examples", "fcfs", "--log", "error")
	require.NoError(t, err)
	first := schedulerConfig

	_, err = run(t, "examples", "rr", "--log", "error")
	require.NoError(t, err)

	assert.Same(t, first, schedulerConfig)
}

func TestSimulate_RevealStep(t *testing.T) {
	out, err := run(t, "simulate", "-a", "rr", "--reveal", "1", "--log", "error")
	require.NoError(t, err)

	require.Contains(t, out, "Chart after step 1")
	revealed := out[strings.Index(out, "Chart after step 1"):]
	assert.Contains(t, revealed, "P1")
	assert.Contains(t, revealed, "P2")
	assert.NotContains(t, revealed, "P3")
}
