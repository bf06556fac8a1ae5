package monitor

import (
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"menhera/internal/config"
	"menhera/internal/locale"
	"menhera/internal/timerx"
)

type recNotifier struct {
	mu     sync.Mutex
	infos  []string
	warns  []string
	errors []string
	asks   []string
}

func (n *recNotifier) Info(m string)        { n.mu.Lock(); n.infos = append(n.infos, m); n.mu.Unlock() }
func (n *recNotifier) Warn(m string)        { n.mu.Lock(); n.warns = append(n.warns, m); n.mu.Unlock() }
func (n *recNotifier) Error(m string)       { n.mu.Lock(); n.errors = append(n.errors, m); n.mu.Unlock() }
func (n *recNotifier) Ask(m, action string) { n.mu.Lock(); n.asks = append(n.asks, m); n.mu.Unlock() }

func (n *recNotifier) infoCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.infos)
}

func (n *recNotifier) warnCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.warns)
}

var idleBundle = locale.Bundle{
	IdleCheckIn:     "still there?",
	IdleWelcomeBack: "you came back",
	IdleSpamPool:    []string{"nag"},
}

func newIdleFixture() (*Idle, *timerx.Fake, *recNotifier, *config.Config) {
	cfg := config.DefaultConfig()
	sched := timerx.NewFake()
	notify := &recNotifier{}
	bundle := idleBundle
	m := NewIdle(func() *config.Config { return cfg }, &bundle, sched, notify, zap.NewNop())
	return m, sched, notify, cfg
}

func TestIdle_Stage1CheckIn(t *testing.T) {
	m, sched, notify, _ := newIdleFixture()

	m.OnActivity()
	sched.Advance(59 * time.Second)
	if notify.infoCount() != 0 {
		t.Fatal("check-in fired before warningTime")
	}
	sched.Advance(2 * time.Second)
	if notify.infoCount() != 1 {
		t.Errorf("expected 1 check-in, got %d", notify.infoCount())
	}
}

func TestIdle_ActivityBeforeStage1CancelsIt(t *testing.T) {
	m, sched, notify, _ := newIdleFixture()

	m.OnActivity()
	sched.Advance(50 * time.Second)
	m.OnActivity() // resets the ladder at t=50s
	sched.Advance(50 * time.Second)

	if notify.infoCount() != 0 {
		t.Errorf("check-in fired despite activity at t=50s: %d infos", notify.infoCount())
	}
}

func TestIdle_SpamLoopAndWelcomeBack(t *testing.T) {
	m, sched, notify, cfg := newIdleFixture()
	cfg.Idle.SpamGraceMS = 1000

	m.OnActivity()
	// Stage-1 at 60s, Stage-2 at 100s, first nag at 101s, then every 500ms.
	sched.Advance(100 * time.Second)
	if m.Spamming() {
		t.Fatal("nag loop must wait for the grace delay")
	}
	sched.Advance(1100 * time.Millisecond)
	if !m.Spamming() {
		t.Fatal("nag loop should be running after grace delay")
	}

	before := notify.warnCount()
	sched.Advance(2 * time.Second)
	nags := notify.warnCount() - before
	if nags < 3 {
		t.Errorf("expected repeated nags, got %d in 2s", nags)
	}

	// Activity ends the loop atomically and greets the user.
	m.OnActivity()
	if m.Spamming() {
		t.Error("nag loop survived activity")
	}
	at := notify.warnCount()
	sched.Advance(5 * time.Second)
	if notify.warnCount() != at {
		t.Error("nag fired after cancellation")
	}
	if notify.infoCount() == 0 {
		t.Error("expected welcome-back message")
	}
}

func TestIdle_WelcomeBackOnlyAfterSpamming(t *testing.T) {
	m, sched, notify, _ := newIdleFixture()

	m.OnActivity()
	sched.Advance(10 * time.Second)
	m.OnActivity()

	if notify.infoCount() != 0 {
		t.Errorf("welcome-back fired without a spam phase: %d infos", notify.infoCount())
	}
}

func TestIdle_Stage2NeverBeforeStage1(t *testing.T) {
	m, sched, notify, cfg := newIdleFixture()
	// Degenerate config with Stage-2 at or before Stage-1.
	cfg.Idle.WarnAfterMS = 20000
	cfg.Idle.SpamAfterMS = 10000
	cfg.Idle.SpamGraceMS = 0
	cfg.Normalize()

	m.OnActivity()
	sched.Advance(19 * time.Second)
	if m.Spamming() {
		t.Error("spam stage started before the check-in stage")
	}
	if notify.infoCount() != 0 {
		t.Error("check-in fired early")
	}
	sched.Advance(5 * time.Second)
	if notify.infoCount() != 1 {
		t.Errorf("expected check-in after clamped Stage-1, got %d", notify.infoCount())
	}
}
