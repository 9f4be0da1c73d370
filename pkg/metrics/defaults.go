package metrics

import "github.com/getmockd/faultinject/pkg/faultinject"

// ForState builds a registry wired to a harness state. Counter values come
// straight from the state's activity counters; the countdown gauge reads
// the live remaining count (Disarmed renders as a very large value, which
// Prometheus stores fine as a float).
func ForState(s *faultinject.State) *Registry {
	r := NewRegistry()

	// Registration over a fresh registry cannot collide.
	_ = r.RegisterCounterFunc("faultinject_evaluations_total",
		"Total evaluations routed through the harness.",
		func() float64 { return float64(s.Snapshot().TotalEvaluations) })
	_ = r.RegisterCounterFunc("faultinject_injected_total",
		"Synthetic failures produced by the countdown.",
		func() float64 { return float64(s.Snapshot().InjectedFaults) })
	_ = r.RegisterCounterFunc("faultinject_forwarded_total",
		"Operation failures annotated and forwarded.",
		func() float64 { return float64(s.Snapshot().ForwardedFailures) })
	_ = r.RegisterCounterFunc("faultinject_delayed_total",
		"Evaluations that ran the jitter yield loop.",
		func() float64 { return float64(s.Snapshot().DelayedEvaluations) })
	_ = r.RegisterGaugeFunc("faultinject_countdown_remaining",
		"Evaluations remaining before the next injected failure.",
		func() float64 { return float64(s.Remaining()) })

	return r
}
