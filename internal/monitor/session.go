package monitor

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"menhera/internal/config"
	"menhera/internal/host"
	"menhera/internal/locale"
	"menhera/internal/timerx"
)

// Session tracks continuous work duration. It is polled by activity events,
// not timer-driven: a long enough gap starts a new session, and crossing the
// soft/hard duration limits fires each warning at most once per session,
// monotonically.
type Session struct {
	cfg    func() *config.Config
	bundle *locale.Bundle
	sched  timerx.Scheduler // used only as the clock
	notify host.Notifier
	log    *zap.Logger

	mu           sync.Mutex
	startedAt    time.Time
	lastActivity time.Time
	level        int // 0, 1, or 2; never decreases within a session
}

// NewSession constructs the monitor. The first activity event starts the
// first session.
func NewSession(cfg func() *config.Config, bundle *locale.Bundle, sched timerx.Scheduler, notify host.Notifier, log *zap.Logger) *Session {
	return &Session{
		cfg:    cfg,
		bundle: bundle,
		sched:  sched,
		notify: notify,
		log:    log.Named("session"),
	}
}

// OnActivity updates the session clock and fires duration warnings.
func (s *Session) OnActivity() {
	now := s.sched.Now()
	c := s.cfg().Session

	s.mu.Lock()
	if s.startedAt.IsZero() || now.Sub(s.lastActivity) > c.BreakAfter() {
		if !s.startedAt.IsZero() {
			s.log.Info("break detected, starting new session",
				zap.Duration("gap", now.Sub(s.lastActivity)))
		}
		s.startedAt = now
		s.level = 0
	}
	s.lastActivity = now

	duration := now.Sub(s.startedAt)
	var warn string
	switch {
	case duration >= c.HardLimit() && s.level < 2:
		s.level = 2
		warn = s.bundle.SessionHardWarning
	case duration >= c.SoftLimit() && s.level < 1:
		s.level = 1
		warn = s.bundle.SessionSoftWarning
	}
	s.mu.Unlock()

	if warn != "" {
		s.notify.Warn(warn)
	}
}

// Level returns the highest warning level fired this session.
func (s *Session) Level() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.level
}
