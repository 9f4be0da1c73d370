package faultinject

import "fmt"

// Do routes one fallible operation through the harness. It applies jitter,
// consumes one countdown position (unless the origin is out of scope),
// and either injects a synthetic failure or runs op. A failure returned by
// op is forwarded with the origin prefixed to its message; its
// classification survives errors.Is and errors.As through the wrap.
func (s *State) Do(o Origin, op func() error) error {
	s.maybeYield()
	s.stats.evaluations.Add(1)

	if s.inScope(o) {
		switch pre := s.readAndDecrement(); pre {
		case 1:
			// Trigger event: the countdown just transitioned to zero.
			if t := s.trigger.Load(); t != nil {
				(*t)(o.Component, o.File, o.Line)
			}
			s.stats.injected.Add(1)
			return &InjectedError{Origin: o}
		case 0:
			// Already saturated. Keep failing, but the callback fired
			// once, at the transition, and is not re-invoked.
			s.stats.injected.Add(1)
			return &InjectedError{Origin: o}
		}
	}

	if err := op(); err != nil {
		s.stats.forwarded.Add(1)
		return fmt.Errorf("%s -> %w", o, err)
	}
	return nil
}

// EvalWith is the expression form of State.Do for operations that produce
// a value. Defined as a free function because Go methods cannot be
// generic.
func EvalWith[T any](s *State, o Origin, op func() (T, error)) (T, error) {
	var val T
	err := s.Do(o, func() error {
		v, err := op()
		if err != nil {
			return err
		}
		val = v
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return val, nil
}

// Do routes op through the Default state. See State.Do.
func Do(o Origin, op func() error) error {
	return Default.Do(o, op)
}

// Eval routes op through the Default state. See EvalWith.
func Eval[T any](o Origin, op func() (T, error)) (T, error) {
	return EvalWith(Default, o, op)
}
