// Package autoplay runs the repeating auto-advance task of a slider.
package autoplay

import (
	"context"
	"sync"
	"time"
)

// DefaultInterval is the auto-advance period when none is configured.
const DefaultInterval = 3000 * time.Millisecond

// Tick is delivered on every period. Generation identifies the Start call
// that produced it, so a consumer can drop ticks that were already in
// flight when the task was stopped or restarted.
type Tick struct {
	Generation uint64
	Time       time.Time
}

// Ticker owns at most one running repeating task. Start and Stop are
// idempotent and safe to call from any goroutine.
type Ticker struct {
	mu         sync.Mutex
	cancel     context.CancelFunc
	generation uint64
	interval   time.Duration
}

// Start launches the task unless one is already running with the same
// interval, in which case it returns false and its generation. A running
// task with a different interval is replaced.
//
// deliver runs on the ticker's goroutine and must not block on the caller
// of Stop.
func (t *Ticker) Start(ctx context.Context, interval time.Duration, deliver func(Tick)) (uint64, bool) {
	if interval <= 0 {
		interval = DefaultInterval
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cancel != nil {
		if t.interval == interval {
			return t.generation, false
		}
		t.cancel()
	}

	t.generation++
	t.interval = interval
	runCtx, cancel := context.WithCancel(ctx)
	t.cancel = cancel
	go run(runCtx, interval, t.generation, deliver)
	return t.generation, true
}

// Stop cancels the running task and reports whether one was running.
// After Stop returns the current generation is retired, so any tick still
// in flight is stale.
func (t *Ticker) Stop() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cancel == nil {
		return false
	}
	t.cancel()
	t.cancel = nil
	t.generation++
	return true
}

// Running reports whether a task is active.
func (t *Ticker) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cancel != nil
}

// Current reports whether gen belongs to the running task.
func (t *Ticker) Current(gen uint64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cancel != nil && gen == t.generation
}

func run(ctx context.Context, interval time.Duration, gen uint64, deliver func(Tick)) {
	tk := time.NewTicker(interval)
	defer tk.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-tk.C:
			// Prefer cancellation when both are ready.
			if ctx.Err() != nil {
				return
			}
			deliver(Tick{Generation: gen, Time: now})
		}
	}
}
