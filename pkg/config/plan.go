// Package config defines injection plans: declarative descriptions of a
// fault-injection setup that can be stored in YAML or JSON files, sent to
// the admin API, and applied to a harness state.
package config

import (
	"fmt"
	"regexp"

	"github.com/getmockd/faultinject/pkg/faultinject"
)

// Plan describes a complete fault-injection configuration.
type Plan struct {
	// Enabled arms the countdown when true. A disabled plan disarms
	// injection but still applies DelayIntensity and Scope.
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Countdown is the number of evaluations before the first injected
	// failure. With Enabled and Countdown 0, the very next evaluation
	// fails (the countdown starts saturated).
	Countdown uint64 `json:"countdown,omitempty" yaml:"countdown,omitempty"`

	// DelayIntensity scales the scheduling-jitter yield loop. 0 disables it.
	DelayIntensity uint32 `json:"delayIntensity,omitempty" yaml:"delayIntensity,omitempty"`

	// Scope restricts injection to origins whose component name matches
	// this regexp. Empty means all components.
	Scope string `json:"scope,omitempty" yaml:"scope,omitempty"`
}

// Validate checks the plan for internal consistency.
func (p *Plan) Validate() error {
	if p.Scope != "" {
		if _, err := regexp.Compile(p.Scope); err != nil {
			return fmt.Errorf("invalid scope pattern %q: %w", p.Scope, err)
		}
	}
	return nil
}

// Apply arms s according to the plan. The three cells are updated
// independently; evaluations running concurrently with Apply may observe
// a mix of old and new configuration for a brief window.
func (p *Plan) Apply(s *faultinject.State) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if err := s.SetScope(p.Scope); err != nil {
		return err
	}
	s.SetDelayIntensity(p.DelayIntensity)
	if p.Enabled {
		s.Arm(p.Countdown)
	} else {
		s.Disarm()
	}
	return nil
}

// PlanFrom snapshots the current configuration of s as a Plan. A state
// whose countdown sits at Disarmed reads back as disabled.
func PlanFrom(s *faultinject.State) *Plan {
	remaining := s.Remaining()
	p := &Plan{
		Enabled:        remaining != faultinject.Disarmed,
		DelayIntensity: s.DelayIntensity(),
		Scope:          s.Scope(),
	}
	if p.Enabled {
		p.Countdown = remaining
	}
	return p
}
