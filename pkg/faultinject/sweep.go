package faultinject

import (
	"errors"
	"fmt"
)

// ErrSweepLeak reports a workload run that completed successfully even
// though its armed fault fired: somewhere the injected failure was
// swallowed instead of propagated.
var ErrSweepLeak = errors.New("workload swallowed an injected fault")

// ErrSweepBudget reports a sweep that hit maxFaults without ever
// observing a fault-free run.
var ErrSweepBudget = errors.New("sweep budget exhausted")

// Sweep exercises every error path reachable through the harness: it runs
// workload with the countdown armed to 1, then 2, and so on, until a run
// completes without its fault firing (the workload performed fewer
// fallible operations than the armed position). Each armed run must
// surface the injected fault; a run that returns nil while its fault
// fired stops the sweep with ErrSweepLeak, and a run that returns a
// non-injected error stops it with that error.
//
// Sweep returns the number of runs in which a fault fired. The state is
// disarmed when Sweep returns. Workloads that intentionally retry past
// failures will be reported as leaks; sweep only workloads that propagate
// errors to their caller.
func (s *State) Sweep(maxFaults uint64, workload func() error) (int, error) {
	defer s.Disarm()

	for n := uint64(1); n <= maxFaults; n++ {
		s.Arm(n)
		err := workload()
		fired := s.Remaining() == 0

		if err == nil {
			if fired {
				return int(n), fmt.Errorf("%w: countdown %d", ErrSweepLeak, n)
			}
			// The workload ran to completion before position n: every
			// earlier position already produced a clean propagation.
			return int(n - 1), nil
		}
		if !errors.Is(err, ErrInjected) {
			return int(n), fmt.Errorf("countdown %d: %w", n, err)
		}
	}
	return int(maxFaults), fmt.Errorf("%w: no fault-free run within %d positions", ErrSweepBudget, maxFaults)
}

// Sweep runs State.Sweep on the Default state.
func Sweep(maxFaults uint64, workload func() error) (int, error) {
	return Default.Sweep(maxFaults, workload)
}
