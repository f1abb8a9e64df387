package core

import "errors"

var (
	ErrNoProcesses      = errors.New("no processes to schedule")
	ErrInvalidProcess   = errors.New("invalid process")
	ErrInvalidQuantum   = errors.New("time quantum must be at least 1")
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
)
