// Package worker provides a small fire-and-forget task queue. Callers submit
// named tasks and return immediately; a background goroutine runs them in
// order.
package worker

import (
	"context"
	"sync"
	"time"

	"github.com/BlackSenju/techhive-automation/internal/obs"
)

type task struct {
	name string
	run  func(context.Context)
}

// Pool owns a buffered task channel drained by one worker goroutine. Tasks
// therefore run one at a time, which keeps catalog writes sequential.
type Pool struct {
	mu      sync.Mutex
	tasks   chan task
	closing bool
	wg      sync.WaitGroup
}

func NewPool(buffer int) *Pool {
	if buffer <= 0 {
		buffer = 16
	}
	return &Pool{tasks: make(chan task, buffer)}
}

// Start launches the worker loop. ctx cancellation stops the loop after the
// task in flight finishes.
func (p *Pool) Start(ctx context.Context) {
	p.wg.Add(1)
	go p.loop(ctx)
}

func (p *Pool) loop(ctx context.Context) {
	defer p.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case t, ok := <-p.tasks:
			if !ok {
				return
			}
			started := time.Now()
			obs.Logger.Info("task_started", "task", t.name)
			t.run(ctx)
			obs.Logger.Info("task_finished", "task", t.name, "duration_ms", time.Since(started).Milliseconds())
		}
	}
}

// Submit enqueues a task and returns immediately. It reports false when the
// pool is shutting down or the queue is full; the task is then dropped.
func (p *Pool) Submit(name string, fn func(context.Context)) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closing {
		return false
	}
	select {
	case p.tasks <- task{name: name, run: fn}:
		return true
	default:
		obs.Logger.Warn("task_rejected_queue_full", "task", name)
		return false
	}
}

// Stop closes the intake. Queued tasks still run; use Wait to drain.
func (p *Pool) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closing {
		return
	}
	p.closing = true
	close(p.tasks)
}

// Wait blocks until the worker has drained the queue or ctx expires.
// Reports whether the drain completed.
func (p *Pool) Wait(ctx context.Context) bool {
	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return true
	case <-ctx.Done():
		return false
	}
}
