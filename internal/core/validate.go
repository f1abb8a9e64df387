package core

import "fmt"

// ValidateProcesses checks the input rules every engine relies on: at least one
// process, unique ids, non-negative arrival, positive burst and, when
// requirePriority is set, a priority of at least 1.
func ValidateProcesses(processes []Process, requirePriority bool) error {
	if len(processes) == 0 {
		return ErrNoProcesses
	}
	seen := make(map[string]struct{}, len(processes))
	for _, p := range processes {
		if _, ok := seen[p.ID]; ok {
			return fmt.Errorf("%w: duplicate id %q", ErrInvalidProcess, p.ID)
		}
		seen[p.ID] = struct{}{}

		if p.ArrivalTime < 0 {
			return fmt.Errorf("%w: arrival time for %s cannot be negative", ErrInvalidProcess, p.Name)
		}
		if p.BurstTime < 1 {
			return fmt.Errorf("%w: burst time for %s must be greater than 0", ErrInvalidProcess, p.Name)
		}
		if requirePriority && p.Priority < 1 {
			return fmt.Errorf("%w: priority for %s must be at least 1", ErrInvalidProcess, p.Name)
		}
	}
	return nil
}
