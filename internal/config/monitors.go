package config

import "time"

// minIdleGapMS is the smallest allowed gap between Stage-1 and Stage-2 of the
// idle ladder. Historical configurations sometimes put Stage-2 at or before
// Stage-1; the only hard requirement is that Stage-2 must not fire first.
const minIdleGapMS = 1000

// IdleConfig tunes the idle/attention ladder.
type IdleConfig struct {
	// WarnAfterMS arms the Stage-1 "you still there?" check-in.
	WarnAfterMS int `yaml:"warn_after_ms"`

	// SpamAfterMS arms Stage-2. Clamped to WarnAfterMS + minimum gap.
	SpamAfterMS int `yaml:"spam_after_ms"`

	// SpamGraceMS is the fixed delay between Stage-2 firing and the first
	// repeated nag.
	SpamGraceMS int `yaml:"spam_grace_ms"`

	// SpamIntervalMS is the repeat period of the nag loop.
	SpamIntervalMS int `yaml:"spam_interval_ms"`
}

// DefaultIdleConfig returns the stock idle ladder tuning.
func DefaultIdleConfig() IdleConfig {
	return IdleConfig{
		WarnAfterMS:    60000,
		SpamAfterMS:    100000,
		SpamGraceMS:    3000,
		SpamIntervalMS: 500,
	}
}

func (c *IdleConfig) clamp() {
	if c.WarnAfterMS <= 0 {
		c.WarnAfterMS = DefaultIdleConfig().WarnAfterMS
	}
	if c.SpamAfterMS < c.WarnAfterMS+minIdleGapMS {
		c.SpamAfterMS = c.WarnAfterMS + minIdleGapMS
	}
	if c.SpamIntervalMS <= 0 {
		c.SpamIntervalMS = DefaultIdleConfig().SpamIntervalMS
	}
	if c.SpamGraceMS < 0 {
		c.SpamGraceMS = 0
	}
}

// WarnAfter returns the Stage-1 delay as a duration.
func (c IdleConfig) WarnAfter() time.Duration { return time.Duration(c.WarnAfterMS) * time.Millisecond }

// SpamAfter returns the Stage-2 delay as a duration.
func (c IdleConfig) SpamAfter() time.Duration { return time.Duration(c.SpamAfterMS) * time.Millisecond }

// SpamGrace returns the pre-nag grace delay as a duration.
func (c IdleConfig) SpamGrace() time.Duration { return time.Duration(c.SpamGraceMS) * time.Millisecond }

// SpamInterval returns the nag period as a duration.
func (c IdleConfig) SpamInterval() time.Duration {
	return time.Duration(c.SpamIntervalMS) * time.Millisecond
}

// SessionConfig tunes the work-session monitor.
type SessionConfig struct {
	// BreakAfterMS is the inactivity gap that starts a new session.
	BreakAfterMS int `yaml:"break_after_ms"`

	// SoftLimitMS fires the level-1 warning.
	SoftLimitMS int `yaml:"soft_limit_ms"`

	// HardLimitMS fires the level-2 warning.
	HardLimitMS int `yaml:"hard_limit_ms"`
}

// DefaultSessionConfig returns the stock session tuning: a 5 minute break
// threshold with warnings at one and two hours.
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		BreakAfterMS: 5 * 60 * 1000,
		SoftLimitMS:  60 * 60 * 1000,
		HardLimitMS:  2 * 60 * 60 * 1000,
	}
}

func (c *SessionConfig) clamp() {
	if c.BreakAfterMS <= 0 {
		c.BreakAfterMS = DefaultSessionConfig().BreakAfterMS
	}
	if c.SoftLimitMS <= 0 {
		c.SoftLimitMS = DefaultSessionConfig().SoftLimitMS
	}
	if c.HardLimitMS <= c.SoftLimitMS {
		c.HardLimitMS = c.SoftLimitMS * 2
	}
}

// BreakAfter returns the session-reset gap as a duration.
func (c SessionConfig) BreakAfter() time.Duration {
	return time.Duration(c.BreakAfterMS) * time.Millisecond
}

// SoftLimit returns the level-1 duration limit.
func (c SessionConfig) SoftLimit() time.Duration {
	return time.Duration(c.SoftLimitMS) * time.Millisecond
}

// HardLimit returns the level-2 duration limit.
func (c SessionConfig) HardLimit() time.Duration {
	return time.Duration(c.HardLimitMS) * time.Millisecond
}
