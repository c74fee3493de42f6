package policy_test

import (
	"context"
	"sync"
	"time"
)

type resolvedEvent struct {
	dispatcher    string
	discriminator string
	err           error
}

type executedEvent struct {
	dispatcher string
	strategy   string
	start      time.Time
	elapsed    time.Duration
	err        error
}

type recordingObserver struct {
	mu       sync.Mutex
	resolved []resolvedEvent
	executed []executedEvent
}

func (r *recordingObserver) Resolved(dispatcher, discriminator string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resolved = append(r.resolved, resolvedEvent{dispatcher, discriminator, err})
}

func (r *recordingObserver) Executed(_ context.Context, dispatcher, strategy string, start time.Time, elapsed time.Duration, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.executed = append(r.executed, executedEvent{dispatcher, strategy, start, elapsed, err})
}

// stepClock advances by step on every call.
func stepClock(start time.Time, step time.Duration) func() time.Time {
	var mu sync.Mutex
	now := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t := now
		now = now.Add(step)
		return t
	}
}
