package timerx

import (
	"sort"
	"sync"
	"time"
)

// Fake is a deterministic Scheduler for tests. Time only moves when Advance
// is called; due tasks fire synchronously, in deadline order, on the calling
// goroutine.
type Fake struct {
	mu      sync.Mutex
	now     time.Time
	pending map[Role]*fakeTask
}

type fakeTask struct {
	role   Role
	at     time.Time
	period time.Duration // 0 for one-shot
	fn     func()
}

// NewFake returns a fake scheduler starting at an arbitrary fixed instant.
func NewFake() *Fake {
	return &Fake{
		now:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		pending: make(map[Role]*fakeTask),
	}
}

func (f *Fake) After(role Role, d time.Duration, fn func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pending[role] = &fakeTask{role: role, at: f.now.Add(d), fn: fn}
}

func (f *Fake) Every(role Role, d time.Duration, fn func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pending[role] = &fakeTask{role: role, at: f.now.Add(d), period: d, fn: fn}
}

func (f *Fake) Cancel(role Role) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.pending[role]
	delete(f.pending, role)
	return ok
}

func (f *Fake) Armed(role Role) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.pending[role]
	return ok
}

func (f *Fake) CancelAll() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pending = make(map[Role]*fakeTask)
}

func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

// Advance moves the clock forward by d, firing every task that comes due.
// Callbacks run with the scheduler unlocked, so they may arm or cancel roles;
// newly armed tasks fire too if they fall inside the window.
func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	deadline := f.now.Add(d)
	f.mu.Unlock()

	for {
		task := f.nextDue(deadline)
		if task == nil {
			break
		}
		task.fn()
	}

	f.mu.Lock()
	if deadline.After(f.now) {
		f.now = deadline
	}
	f.mu.Unlock()
}

// nextDue pops the earliest task due at or before deadline, advancing the
// clock to its firing instant and re-arming it if it repeats.
func (f *Fake) nextDue(deadline time.Time) *fakeTask {
	f.mu.Lock()
	defer f.mu.Unlock()

	var due []*fakeTask
	for _, t := range f.pending {
		if !t.at.After(deadline) {
			due = append(due, t)
		}
	}
	if len(due) == 0 {
		return nil
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].at.Equal(due[j].at) {
			return due[i].role < due[j].role
		}
		return due[i].at.Before(due[j].at)
	})

	task := due[0]
	if task.at.After(f.now) {
		f.now = task.at
	}
	if task.period > 0 {
		f.pending[task.role] = &fakeTask{role: task.role, at: task.at.Add(task.period), period: task.period, fn: task.fn}
	} else {
		delete(f.pending, task.role)
	}
	return task
}
