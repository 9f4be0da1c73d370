package faultinject

import (
	"fmt"
	"math"
	"regexp"
	"sync/atomic"
)

// Disarmed is the countdown value at which injection never fires.
const Disarmed = math.MaxUint64

// Trigger is invoked synchronously, exactly once, when the countdown
// transitions to zero, before the injected error is returned. It receives
// the component name, source file, and line of the triggering call site.
//
// A Trigger must not fail; a panic inside it propagates to the goroutine
// that tripped the fault.
type Trigger func(component, file string, line int)

// State holds the shared injection state: the failure countdown, the delay
// intensity, the trigger callback, and the optional component scope. Each
// cell is independently atomic; there is no cross-field transaction, so
// concurrent readers may observe cells from different configuration
// generations. That is acceptable for approximate fault scheduling.
//
// The zero State is not ready for use; construct with NewState.
type State struct {
	countdown atomic.Uint64
	delay     atomic.Uint32
	trigger   atomic.Pointer[Trigger]
	scope     atomic.Pointer[regexp.Regexp]
	stats     stats
}

// Default is the process-wide state used by the package-level functions.
var Default = NewState()

// NewState creates a State with injection disarmed, no delay, no trigger,
// and no scope.
func NewState() *State {
	s := &State{}
	s.countdown.Store(Disarmed)
	return s
}

// Arm sets the countdown to n: the n-th evaluation from now is the first
// to fail. Arm(0) makes the very next evaluation fail without a trigger
// callback (the state is already saturated). Arm(Disarmed) disables
// injection.
func (s *State) Arm(n uint64) {
	s.countdown.Store(n)
}

// Disarm disables injection. Equivalent to Arm(Disarmed).
func (s *State) Disarm() {
	s.countdown.Store(Disarmed)
}

// Remaining returns the current countdown value. Disarmed means injection
// is off; 0 means every evaluation is failing.
func (s *State) Remaining() uint64 {
	return s.countdown.Load()
}

// SetDelayIntensity sets the jitter intensity. Zero disables the yield
// loop; higher values multiply the per-evaluation yield count.
func (s *State) SetDelayIntensity(n uint32) {
	s.delay.Store(n)
}

// DelayIntensity returns the current jitter intensity.
func (s *State) DelayIntensity() uint32 {
	return s.delay.Load()
}

// RegisterTrigger replaces the trigger callback. Passing nil clears it.
// Last writer wins under concurrent registration. Registration is safe
// against concurrent evaluations but carries no ordering guarantee
// relative to the countdown: register before starting concurrent fallible
// work if the callback must observe the trigger event.
func (s *State) RegisterTrigger(f Trigger) {
	if f == nil {
		s.trigger.Store(nil)
		return
	}
	s.trigger.Store(&f)
}

// SetScope restricts injection to origins whose component name matches
// pattern. The empty pattern clears the scope. Out-of-scope evaluations do
// not consume the countdown, but still apply jitter and still annotate
// forwarded failures.
func (s *State) SetScope(pattern string) error {
	if pattern == "" {
		s.scope.Store(nil)
		return nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return fmt.Errorf("invalid scope pattern %q: %w", pattern, err)
	}
	s.scope.Store(re)
	return nil
}

// Scope returns the current scope pattern, or "" when unscoped.
func (s *State) Scope() string {
	if re := s.scope.Load(); re != nil {
		return re.String()
	}
	return ""
}

// Reset returns the state to its initial configuration: disarmed, no
// delay, no trigger, no scope, zeroed stats.
func (s *State) Reset() {
	s.countdown.Store(Disarmed)
	s.delay.Store(0)
	s.trigger.Store(nil)
	s.scope.Store(nil)
	s.stats.reset()
}

// inScope reports whether an origin participates in the countdown.
func (s *State) inScope(o Origin) bool {
	re := s.scope.Load()
	return re == nil || re.MatchString(o.Component)
}

// readAndDecrement atomically decrements the countdown and returns its
// pre-decrement value, saturating at zero. The CAS loop guarantees no two
// concurrent callers observe the same pre-decrement value above zero.
func (s *State) readAndDecrement() uint64 {
	for {
		cur := s.countdown.Load()
		if cur == 0 {
			return 0
		}
		if s.countdown.CompareAndSwap(cur, cur-1) {
			return cur
		}
	}
}

// Arm arms the Default state. See State.Arm.
func Arm(n uint64) { Default.Arm(n) }

// Disarm disables injection on the Default state.
func Disarm() { Default.Disarm() }

// Remaining returns the Default state's countdown.
func Remaining() uint64 { return Default.Remaining() }

// SetDelayIntensity sets the Default state's jitter intensity.
func SetDelayIntensity(n uint32) { Default.SetDelayIntensity(n) }

// RegisterTrigger replaces the Default state's trigger callback.
func RegisterTrigger(f Trigger) { Default.RegisterTrigger(f) }

// SetScope restricts the Default state's injection scope.
func SetScope(pattern string) error { return Default.SetScope(pattern) }

// Reset resets the Default state.
func Reset() { Default.Reset() }
