package monitor

import (
	"regexp"
	"strings"
	"sync"

	"go.uber.org/zap"

	"menhera/internal/host"
	"menhera/internal/locale"
	"menhera/internal/mood"
)

// conventionalRe matches `type(scope)?!?: subject` with the closed set of
// conventional-commit types.
var conventionalRe = regexp.MustCompile(`^(feat|fix|docs|style|refactor|perf|test|build|ci|chore|revert)(\([^)\s]+\))?!?: \S.*$`)

// ValidCommitMessage reports whether the first line of message follows the
// conventional-commit grammar.
func ValidCommitMessage(message string) bool {
	first, _, _ := strings.Cut(message, "\n")
	return conventionalRe.MatchString(strings.TrimSpace(first))
}

// CommitWatch validates the newest commit message and flips the disapproval
// mood overlay. Purely reactive: no timers, and repeated notifications for
// the same head commit are no-ops.
type CommitWatch struct {
	vcs    host.VCS
	bundle *locale.Bundle
	moods  *mood.Tracker
	notify host.Notifier
	log    *zap.Logger

	mu       sync.Mutex
	lastHash string
}

// NewCommitWatch constructs the watchdog.
func NewCommitWatch(vcs host.VCS, bundle *locale.Bundle, moods *mood.Tracker, notify host.Notifier, log *zap.Logger) *CommitWatch {
	return &CommitWatch{
		vcs:    vcs,
		bundle: bundle,
		moods:  moods,
		notify: notify,
		log:    log.Named("vcs"),
	}
}

// OnRepoChange handles a repository state-change notification.
func (w *CommitWatch) OnRepoChange() {
	commit, ok := w.vcs.Latest()
	if !ok {
		return
	}

	w.mu.Lock()
	if commit.Hash == w.lastHash {
		w.mu.Unlock()
		return
	}
	w.lastHash = commit.Hash
	w.mu.Unlock()

	if ValidCommitMessage(commit.Message) {
		w.log.Debug("commit approved", zap.String("hash", commit.Hash))
		w.moods.SetDisapproving(false)
		w.notify.Info(w.bundle.CommitApproved)
		return
	}

	w.log.Info("commit message rejected",
		zap.String("hash", commit.Hash), zap.String("message", commit.Message))
	w.moods.SetDisapproving(true)
	w.notify.Warn(w.bundle.CommitDisapproved)
}
