package application

import (
	"sync"
	"time"

	"atomicgo.dev/schedule"
)

// Timer is a pending scheduled call.
type Timer interface {
	// Stop prevents the call from running. It reports false if the call
	// already started or was stopped.
	Stop() bool
}

// Scheduler runs f once after d.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type clockScheduler struct{}

func (clockScheduler) AfterFunc(d time.Duration, f func()) Timer {
	t := &scheduledTask{}
	t.task = schedule.After(d, func() {
		t.mu.Lock()
		if t.stopped {
			t.mu.Unlock()
			return
		}
		t.started = true
		t.mu.Unlock()
		f()
	})
	return t
}

// scheduledTask adapts a schedule.Task to Timer.
//
// Stop never calls Task.Stop: the task closes its stop channel itself once it
// has run, and closing it twice panics. A stopped task still wakes up after
// its delay and returns without calling f.
type scheduledTask struct {
	task *schedule.Task

	mu      sync.Mutex
	started bool
	stopped bool
}

func (t *scheduledTask) Stop() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.started || t.stopped || !t.task.IsActive() {
		return false
	}
	t.stopped = true
	return true
}
