package config

import "time"

// EscalationConfig tunes the core state machine.
//
// RecoveryThreshold is independent from AngerThreshold on purpose: dropping
// under it forgives the punishment flags before the error count reaches zero.
// It is clamped below AngerThreshold because a forgiveness bar at or above the
// trigger bar would make punishment un-sticky.
type EscalationConfig struct {
	// AngerThreshold is the error count at which punishment starts.
	AngerThreshold int `yaml:"anger_threshold"`

	// RecoveryThreshold forgives punishment flags when the error count
	// drops strictly below it.
	RecoveryThreshold int `yaml:"recovery_threshold"`

	// DebounceDelayMS is the quiet period after a diagnostics change before
	// the machine evaluates.
	DebounceDelayMS int `yaml:"debounce_delay_ms"`

	// StagnationDelayMS is the one-shot delay between the first and second
	// punishment while the count stays above threshold.
	StagnationDelayMS int `yaml:"stagnation_delay_ms"`

	// Typewriter per-character delay bounds for artifact writing.
	TypeDelayMinMS int `yaml:"type_delay_min_ms"`
	TypeDelayMaxMS int `yaml:"type_delay_max_ms"`
}

// DefaultEscalationConfig returns the stock escalation tuning.
func DefaultEscalationConfig() EscalationConfig {
	return EscalationConfig{
		AngerThreshold:    5,
		RecoveryThreshold: 3,
		DebounceDelayMS:   2000,
		StagnationDelayMS: 30000,
		TypeDelayMinMS:    80,
		TypeDelayMaxMS:    255,
	}
}

func (c *EscalationConfig) clamp() {
	if c.AngerThreshold < 1 {
		c.AngerThreshold = 1
	}
	if c.RecoveryThreshold >= c.AngerThreshold {
		c.RecoveryThreshold = c.AngerThreshold - 1
	}
	if c.RecoveryThreshold < 0 {
		c.RecoveryThreshold = 0
	}
	if c.TypeDelayMinMS < 0 {
		c.TypeDelayMinMS = 0
	}
	if c.TypeDelayMaxMS < c.TypeDelayMinMS {
		c.TypeDelayMaxMS = c.TypeDelayMinMS
	}
}

// DebounceDelay returns the debounce window as a duration.
func (c EscalationConfig) DebounceDelay() time.Duration {
	return time.Duration(c.DebounceDelayMS) * time.Millisecond
}

// StagnationDelay returns the stagnation timer as a duration.
func (c EscalationConfig) StagnationDelay() time.Duration {
	return time.Duration(c.StagnationDelayMS) * time.Millisecond
}
