// Package mood holds the single source of truth for the externally visible
// emotional state. The escalation engine owns the base state; the commit
// watchdog toggles an independent disapproval overlay. Both write through one
// Tracker so the theme and mascot never flicker between disagreeing writers.
package mood

import "sync"

// State is the externally visible mood.
type State int

const (
	Calm State = iota
	Warning
	Punished
	Escalated
	Disapproving
)

func (s State) String() string {
	switch s {
	case Calm:
		return "calm"
	case Warning:
		return "warning"
	case Punished:
		return "punished"
	case Escalated:
		return "escalated"
	case Disapproving:
		return "disapproving"
	default:
		return "unknown"
	}
}

// Angry reports whether the state renders with the angry theme/mascot.
func (s State) Angry() bool {
	return s == Punished || s == Escalated || s == Disapproving
}

// Surface receives mood changes and mascot messages. Implementations must be
// idempotent: applying the same state twice is a visual no-op.
type Surface interface {
	ApplyMood(s State)
	Say(message string)
}

// Tracker arbitrates between the escalation engine (base state) and the
// commit watchdog (disapproval overlay). Disapproval wins while set.
type Tracker struct {
	mu           sync.Mutex
	base         State
	disapproving bool
	applied      State
	started      bool
	surface      Surface
}

// NewTracker returns a Tracker that forwards to surface. A nil surface is
// allowed and makes the tracker state-only.
func NewTracker(surface Surface) *Tracker {
	return &Tracker{surface: surface}
}

// SetBase records the engine's mood and re-renders if the effective state
// changed.
func (t *Tracker) SetBase(s State) {
	t.mu.Lock()
	t.base = s
	t.applyLocked()
	t.mu.Unlock()
}

// SetDisapproving toggles the commit-watchdog overlay.
func (t *Tracker) SetDisapproving(v bool) {
	t.mu.Lock()
	t.disapproving = v
	t.applyLocked()
	t.mu.Unlock()
}

// Current returns the effective mood.
func (t *Tracker) Current() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.effectiveLocked()
}

// Say forwards a mascot message.
func (t *Tracker) Say(message string) {
	t.mu.Lock()
	surface := t.surface
	t.mu.Unlock()
	if surface != nil {
		surface.Say(message)
	}
}

func (t *Tracker) effectiveLocked() State {
	if t.disapproving {
		return Disapproving
	}
	return t.base
}

func (t *Tracker) applyLocked() {
	eff := t.effectiveLocked()
	if t.started && eff == t.applied {
		return
	}
	t.started = true
	t.applied = eff
	if t.surface != nil {
		t.surface.ApplyMood(eff)
	}
}
