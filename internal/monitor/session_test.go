package monitor

import (
	"testing"
	"time"

	"go.uber.org/zap"

	"menhera/internal/config"
	"menhera/internal/locale"
	"menhera/internal/timerx"
)

var sessionBundle = locale.Bundle{
	SessionSoftWarning: "take a break soon",
	SessionHardWarning: "stop working",
}

func newSessionFixture() (*Session, *timerx.Fake, *recNotifier) {
	cfg := config.DefaultConfig()
	sched := timerx.NewFake()
	notify := &recNotifier{}
	bundle := sessionBundle
	s := NewSession(func() *config.Config { return cfg }, &bundle, sched, notify, zap.NewNop())
	return s, sched, notify
}

func TestSession_SoftThenHardWarning(t *testing.T) {
	s, sched, notify := newSessionFixture()

	// Activity every minute keeps the session alive across both limits.
	for i := 0; i <= 125; i++ {
		s.OnActivity()
		sched.Advance(time.Minute)
	}

	if got := s.Level(); got != 2 {
		t.Fatalf("level = %d, want 2", got)
	}
	if notify.warnCount() != 2 {
		t.Fatalf("want exactly one soft and one hard warning, got %d", notify.warnCount())
	}
	notify.mu.Lock()
	defer notify.mu.Unlock()
	if notify.warns[0] != sessionBundle.SessionSoftWarning {
		t.Errorf("first warning = %q, want soft", notify.warns[0])
	}
	if notify.warns[1] != sessionBundle.SessionHardWarning {
		t.Errorf("second warning = %q, want hard", notify.warns[1])
	}
}

func TestSession_WarningsFireOncePerSession(t *testing.T) {
	s, sched, notify := newSessionFixture()

	for i := 0; i <= 65; i++ {
		s.OnActivity()
		sched.Advance(time.Minute)
	}
	if s.Level() != 1 {
		t.Fatalf("level = %d, want 1", s.Level())
	}
	before := notify.warnCount()

	// More activity within the same session must not repeat the soft warning.
	for i := 0; i < 10; i++ {
		s.OnActivity()
		sched.Advance(time.Minute)
	}
	if notify.warnCount() != before {
		t.Errorf("soft warning repeated within one session")
	}
}

func TestSession_BreakStartsNewSession(t *testing.T) {
	s, sched, notify := newSessionFixture()

	for i := 0; i <= 65; i++ {
		s.OnActivity()
		sched.Advance(time.Minute)
	}
	if s.Level() != 1 {
		t.Fatalf("level = %d before break, want 1", s.Level())
	}

	// A gap past the break threshold resets duration and warning level.
	sched.Advance(10 * time.Minute)
	s.OnActivity()
	if s.Level() != 0 {
		t.Fatalf("level = %d after break, want 0", s.Level())
	}

	warnsBefore := notify.warnCount()
	for i := 0; i < 30; i++ {
		s.OnActivity()
		sched.Advance(time.Minute)
	}
	if notify.warnCount() != warnsBefore {
		t.Error("warning fired in a fresh half-hour session")
	}
}

func TestSession_ShortGapsDoNotReset(t *testing.T) {
	s, sched, _ := newSessionFixture()

	// 4-minute gaps stay under the 5-minute break threshold, so the session
	// duration keeps accumulating.
	for i := 0; i < 16; i++ {
		s.OnActivity()
		sched.Advance(4 * time.Minute)
	}
	s.OnActivity()
	if s.Level() != 1 {
		t.Errorf("level = %d after 64 continuous minutes, want 1", s.Level())
	}
}
