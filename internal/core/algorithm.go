package core

import (
	"fmt"
	"strings"
)

type Algorithm string

const (
	FirstComeFirstServe Algorithm = "fcfs"
	ShortestJobFirst    Algorithm = "sjf"
	RoundRobin          Algorithm = "rr"
	Priority            Algorithm = "priority"
)

// Algorithms lists every supported discipline in presentation order.
var Algorithms = []Algorithm{FirstComeFirstServe, ShortestJobFirst, RoundRobin, Priority}

var algorithmTitles = map[Algorithm]string{
	FirstComeFirstServe: "First Come First Serve",
	ShortestJobFirst:    "Shortest Job First",
	RoundRobin:          "Round Robin",
	Priority:            "Priority",
}

var algorithmAliases = map[string]Algorithm{
	"fcfs":                   FirstComeFirstServe,
	"first-come-first-serve": FirstComeFirstServe,
	"sjf":                    ShortestJobFirst,
	"shortest-job-first":     ShortestJobFirst,
	"rr":                     RoundRobin,
	"round-robin":            RoundRobin,
	"priority":               Priority,
}

// ParseAlgorithm accepts the short name or the dashed long name, case-insensitively.
func ParseAlgorithm(name string) (Algorithm, error) {
	if a, ok := algorithmAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return a, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

func (a Algorithm) Title() string {
	if title, ok := algorithmTitles[a]; ok {
		return title
	}
	return string(a)
}

// RequiresPriority reports whether every process needs a priority for this algorithm.
func (a Algorithm) RequiresPriority() bool {
	return a == Priority
}
