package faultinject

import "errors"

// ErrInjected is the classification carried by every synthetic failure.
// Use errors.Is(err, ErrInjected) to distinguish injected faults from
// failures the wrapped operation produced itself.
var ErrInjected = errors.New("injected fault")

// InjectedError is the synthetic failure produced when the countdown
// fires. It records the origin of the evaluation that tripped it.
type InjectedError struct {
	Origin Origin
}

// Error implements the error interface.
func (e *InjectedError) Error() string {
	return "injected fault at " + e.Origin.String()
}

// Is reports whether target is ErrInjected, letting errors.Is classify
// injected failures without exposing a concrete type to callers.
func (e *InjectedError) Is(target error) bool {
	return target == ErrInjected
}

// IsInjected reports whether err is, or wraps, an injected fault.
func IsInjected(err error) bool {
	return errors.Is(err, ErrInjected)
}
