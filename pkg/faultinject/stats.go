package faultinject

import "sync/atomic"

// stats tracks harness activity with independently atomic counters.
type stats struct {
	evaluations atomic.Int64
	injected    atomic.Int64
	forwarded   atomic.Int64
	delayed     atomic.Int64
}

func (s *stats) reset() {
	s.evaluations.Store(0)
	s.injected.Store(0)
	s.forwarded.Store(0)
	s.delayed.Store(0)
}

// Stats is a point-in-time snapshot of harness activity.
type Stats struct {
	// TotalEvaluations counts every call routed through the harness.
	TotalEvaluations int64 `json:"totalEvaluations"`
	// InjectedFaults counts synthetic failures, including post-saturation ones.
	InjectedFaults int64 `json:"injectedFaults"`
	// ForwardedFailures counts operation failures annotated and passed through.
	ForwardedFailures int64 `json:"forwardedFailures"`
	// DelayedEvaluations counts evaluations that ran the jitter loop.
	DelayedEvaluations int64 `json:"delayedEvaluations"`
}

// Snapshot returns the current activity counters. The fields are read
// independently, so a snapshot taken during concurrent evaluations may be
// internally skewed by in-flight calls.
func (s *State) Snapshot() Stats {
	return Stats{
		TotalEvaluations:   s.stats.evaluations.Load(),
		InjectedFaults:     s.stats.injected.Load(),
		ForwardedFailures:  s.stats.forwarded.Load(),
		DelayedEvaluations: s.stats.delayed.Load(),
	}
}

// ResetStats zeroes the activity counters without touching configuration.
func (s *State) ResetStats() {
	s.stats.reset()
}

// Snapshot returns the Default state's activity counters.
func Snapshot() Stats { return Default.Snapshot() }
