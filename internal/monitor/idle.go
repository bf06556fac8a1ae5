// Package monitor holds the three independent observers that share the
// engine's mood and notification sinks: the idle/attention ladder, the
// work-session duration tracker, and the commit-message watchdog. Each owns
// disjoint state and communicates only through side-effect emission.
package monitor

import (
	"math/rand"
	"sync"

	"go.uber.org/zap"

	"menhera/internal/config"
	"menhera/internal/host"
	"menhera/internal/locale"
	"menhera/internal/timerx"
)

// Idle escalates notification intensity with inactivity: silent, then a
// check-in, then a repeating nag loop. Any activity resets the ladder.
type Idle struct {
	cfg    func() *config.Config
	bundle *locale.Bundle
	sched  timerx.Scheduler
	notify host.Notifier
	log    *zap.Logger

	mu       sync.Mutex
	spamming bool
}

// NewIdle constructs the ladder. It stays silent until the first activity
// event arms it.
func NewIdle(cfg func() *config.Config, bundle *locale.Bundle, sched timerx.Scheduler, notify host.Notifier, log *zap.Logger) *Idle {
	return &Idle{
		cfg:    cfg,
		bundle: bundle,
		sched:  sched,
		notify: notify,
		log:    log.Named("idle"),
	}
}

// OnActivity handles a qualifying activity event: cancel the whole ladder,
// greet the user if the nag loop was running, and re-arm both stages.
// Cancellation precedes re-arming, so a queued-but-unfired nag can never
// land after activity resumes.
func (m *Idle) OnActivity() {
	m.sched.Cancel(timerx.RoleIdleStage1)
	m.sched.Cancel(timerx.RoleIdleStage2)
	m.sched.Cancel(timerx.RoleIdleGrace)
	m.sched.Cancel(timerx.RoleIdleSpam)

	m.mu.Lock()
	wasSpamming := m.spamming
	m.spamming = false
	m.mu.Unlock()
	if wasSpamming {
		m.notify.Info(m.bundle.IdleWelcomeBack)
	}

	idle := m.cfg().Idle
	warn, spam := idle.WarnAfter(), idle.SpamAfter()
	// Stage-2 must never fire before Stage-1; Normalize clamps the config,
	// but a hand-built provider might not have run it.
	if spam <= warn {
		spam = warn + idle.SpamInterval()
	}

	m.sched.After(timerx.RoleIdleStage1, warn, func() {
		m.notify.Info(m.bundle.IdleCheckIn)
	})
	m.sched.After(timerx.RoleIdleStage2, spam, func() {
		m.sched.After(timerx.RoleIdleGrace, idle.SpamGrace(), m.startSpam)
	})
}

func (m *Idle) startSpam() {
	m.mu.Lock()
	m.spamming = true
	m.mu.Unlock()
	m.log.Info("idle ladder reached spam stage")

	interval := m.cfg().Idle.SpamInterval()
	m.sched.Every(timerx.RoleIdleSpam, interval, func() {
		pool := m.bundle.IdleSpamPool
		if len(pool) == 0 {
			return
		}
		m.notify.Warn(pool[rand.Intn(len(pool))])
	})
}

// Spamming reports whether the nag loop is active.
func (m *Idle) Spamming() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.spamming
}
