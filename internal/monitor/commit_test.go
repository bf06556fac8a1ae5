package monitor

import (
	"sync"
	"testing"

	"go.uber.org/zap"

	"menhera/internal/host"
	"menhera/internal/locale"
	"menhera/internal/mood"
)

type stubVCS struct {
	mu     sync.Mutex
	head   host.Commit
	hasOne bool
}

func (v *stubVCS) setHead(hash, message string) {
	v.mu.Lock()
	v.head = host.Commit{Hash: hash, Message: message}
	v.hasOne = true
	v.mu.Unlock()
}

func (v *stubVCS) Latest() (host.Commit, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.head, v.hasOne
}

type recSurface struct {
	mu      sync.Mutex
	applied []mood.State
}

func (s *recSurface) ApplyMood(st mood.State) {
	s.mu.Lock()
	s.applied = append(s.applied, st)
	s.mu.Unlock()
}

func (s *recSurface) Say(string) {}

func (s *recSurface) applyCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.applied)
}

var commitBundle = locale.Bundle{
	CommitApproved:    "nice commit",
	CommitDisapproved: "what is this message",
}

func newCommitFixture() (*CommitWatch, *stubVCS, *mood.Tracker, *recNotifier, *recSurface) {
	vcs := &stubVCS{}
	surface := &recSurface{}
	moods := mood.NewTracker(surface)
	notify := &recNotifier{}
	bundle := commitBundle
	w := NewCommitWatch(vcs, &bundle, moods, notify, zap.NewNop())
	return w, vcs, moods, notify, surface
}

func TestValidCommitMessage(t *testing.T) {
	cases := []struct {
		message string
		want    bool
	}{
		{"fix: correct off-by-one", true},
		{"feat(parser): add range syntax", true},
		{"feat!: drop legacy flags", true},
		{"refactor(core)!: split evaluator", true},
		{"chore: bump deps\n\nlong body here", true},
		{"wip", false},
		{"Fix: capitalized type", false},
		{"fix:missing space", false},
		{"fix: ", false},
		{"fixed the thing", false},
		{"feat(): empty scope", false},
		{"unknown: made-up type", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := ValidCommitMessage(tc.message); got != tc.want {
			t.Errorf("ValidCommitMessage(%q) = %v, want %v", tc.message, got, tc.want)
		}
	}
}

func TestCommitWatch_DisapprovesThenForgives(t *testing.T) {
	w, vcs, moods, notify, _ := newCommitFixture()

	vcs.setHead("aaa111", "wip")
	w.OnRepoChange()
	if moods.Current() != mood.Disapproving {
		t.Fatalf("mood = %v after bad commit, want disapproving", moods.Current())
	}
	if notify.warnCount() != 1 {
		t.Fatalf("want 1 disapproval toast, got %d", notify.warnCount())
	}

	vcs.setHead("bbb222", "fix: correct off-by-one")
	w.OnRepoChange()
	if moods.Current() != mood.Calm {
		t.Fatalf("mood = %v after good commit, want calm", moods.Current())
	}
	if notify.infoCount() != 1 {
		t.Errorf("want 1 approval toast, got %d", notify.infoCount())
	}
}

func TestCommitWatch_SameHeadIsNoOp(t *testing.T) {
	w, vcs, _, notify, surface := newCommitFixture()

	vcs.setHead("aaa111", "wip")
	w.OnRepoChange()
	toasts := notify.warnCount()
	applies := surface.applyCount()

	// Repeated repo-change notifications for the same head must not re-fire
	// side effects.
	w.OnRepoChange()
	w.OnRepoChange()
	if notify.warnCount() != toasts {
		t.Errorf("duplicate disapproval toast for unchanged head")
	}
	if surface.applyCount() != applies {
		t.Errorf("mood re-applied for unchanged head")
	}
}

func TestCommitWatch_EmptyRepoIsSilent(t *testing.T) {
	w, _, moods, notify, _ := newCommitFixture()

	w.OnRepoChange()
	if notify.warnCount() != 0 || notify.infoCount() != 0 {
		t.Error("toast fired with no commits")
	}
	if moods.Current() != mood.Calm {
		t.Errorf("mood = %v with no commits, want calm", moods.Current())
	}
}
