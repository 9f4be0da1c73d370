// Package faultinject provides deterministic fault injection for exercising
// error-handling paths in I/O-using code.
//
// Instead of fabricating real I/O failures, a test driver arms a countdown:
// the Nth fallible operation routed through the harness fails at its call
// site with an error that names exactly where it was injected. Decrementing
// the countdown is the only automatic mutation; once it reaches zero every
// subsequent evaluation keeps failing until the driver re-arms.
//
// # Wrapping fallible operations
//
// Every fallible operation is routed through Do (statement form) or Eval
// (expression form). The origin names the call site so injected and
// forwarded failures carry a breadcrumb trail:
//
//	func readHeader(f *os.File) ([]byte, error) {
//	    buf := make([]byte, 16)
//	    _, err := faultinject.Eval(faultinject.Here("store"), func() (int, error) {
//	        return f.Read(buf)
//	    })
//	    if err != nil {
//	        return nil, err
//	    }
//	    return buf, nil
//	}
//
// Forwarded failures keep their classification: errors.Is and errors.As see
// through the origin annotation, so a wrapped fs.ErrNotExist still matches
// fs.ErrNotExist. Injected failures match ErrInjected.
//
// # Driving a test
//
//	faultinject.Arm(3) // the 3rd evaluation from now fails
//	err := workload()
//	if !errors.Is(err, faultinject.ErrInjected) {
//	    t.Fatalf("workload swallowed the injected fault: %v", err)
//	}
//
// Sweep automates the countdown ladder: it re-runs a workload with the
// countdown armed to 1, 2, 3… until a run completes without a fault,
// verifying every error path propagates cleanly.
//
// # Strict form
//
// MustDo and MustEval panic on failure with a value that Recover, deferred
// in the enclosing function, converts back into that function's error
// result. This gives straight-line code for call sites that would otherwise
// repeat the same three-line error return:
//
//	func copyAll(dst, src string) (err error) {
//	    defer faultinject.Recover(&err)
//	    data := faultinject.MustEval(faultinject.Here("copy"), func() ([]byte, error) {
//	        return os.ReadFile(src)
//	    })
//	    faultinject.MustDo(faultinject.Here("copy"), func() error {
//	        return os.WriteFile(dst, data, 0o644)
//	    })
//	    return nil
//	}
//
// # Scheduling jitter
//
// SetDelayIntensity enables a bounded processor-yield loop before each
// evaluation, perturbing goroutine interleavings to shake out ordering
// bugs. It is best-effort noise, not a deterministic scheduler.
//
// # State ownership
//
// All configuration lives in a State: a handful of independently atomic
// cells with no cross-field transaction. The package-level functions
// operate on the process-wide Default state, which matches how a test
// driver usually arms a whole binary. Code that needs isolation (parallel
// tests, the admin control plane) constructs its own State with NewState
// and uses the *With variants.
package faultinject
