// Package timerx models every delayed or repeating action in the engine as a
// cancellable scheduled task keyed by role. A role has at most one live task;
// arming a role cancels whatever was pending under it first, so duplicate and
// stale firings are impossible by construction.
package timerx

import (
	"sync"
	"time"
)

// Role identifies a scheduled task slot.
type Role string

const (
	RoleDebounce   Role = "debounce"
	RoleStagnation Role = "stagnation"
	RoleIdleStage1 Role = "idle-stage1"
	RoleIdleStage2 Role = "idle-stage2"
	RoleIdleGrace  Role = "idle-grace"
	RoleIdleSpam   Role = "idle-spam"
)

// Scheduler arms and cancels role-keyed tasks on a monotonic clock.
// Cancel prevents a pending callback from firing; a callback that has already
// started running may complete concurrently with the Cancel call. Callbacks
// that touch shared state re-check it under their own lock for this reason.
type Scheduler interface {
	// After arms a one-shot task. Any pending task under the same role is
	// cancelled first.
	After(role Role, d time.Duration, fn func())
	// Every arms a repeating task with the given period. Any pending task
	// under the same role is cancelled first.
	Every(role Role, d time.Duration, fn func())
	// Cancel removes the pending task for role, reporting whether one existed.
	Cancel(role Role) bool
	// Armed reports whether a task is pending under role.
	Armed(role Role) bool
	// CancelAll removes every pending task.
	CancelAll()
	// Now returns the scheduler's current time.
	Now() time.Time
}

// Wall is the production Scheduler backed by the runtime timer wheel.
type Wall struct {
	mu      sync.Mutex
	pending map[Role]*wallTask
}

type wallTask struct {
	timer  *time.Timer  // one-shot
	ticker *time.Ticker // repeating
	done   chan struct{}
}

// NewWall returns an empty wall-clock scheduler.
func NewWall() *Wall {
	return &Wall{pending: make(map[Role]*wallTask)}
}

func (w *Wall) After(role Role, d time.Duration, fn func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.cancelLocked(role)

	task := &wallTask{}
	task.timer = time.AfterFunc(d, func() {
		// Fire only while still the current occupant of the role; a Cancel
		// or re-arm that raced the timer wins.
		w.mu.Lock()
		if w.pending[role] != task {
			w.mu.Unlock()
			return
		}
		delete(w.pending, role)
		w.mu.Unlock()
		fn()
	})
	w.pending[role] = task
}

func (w *Wall) Every(role Role, d time.Duration, fn func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.cancelLocked(role)

	task := &wallTask{
		ticker: time.NewTicker(d),
		done:   make(chan struct{}),
	}
	w.pending[role] = task

	go func() {
		for {
			select {
			case <-task.done:
				return
			case <-task.ticker.C:
				w.mu.Lock()
				current := w.pending[role] == task
				w.mu.Unlock()
				if !current {
					return
				}
				fn()
			}
		}
	}()
}

func (w *Wall) Cancel(role Role) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.cancelLocked(role)
}

func (w *Wall) cancelLocked(role Role) bool {
	task, ok := w.pending[role]
	if !ok {
		return false
	}
	delete(w.pending, role)
	if task.timer != nil {
		task.timer.Stop()
	}
	if task.ticker != nil {
		task.ticker.Stop()
		close(task.done)
	}
	return true
}

func (w *Wall) Armed(role Role) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, ok := w.pending[role]
	return ok
}

func (w *Wall) CancelAll() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for role := range w.pending {
		w.cancelLocked(role)
	}
}

func (w *Wall) Now() time.Time { return time.Now() }
