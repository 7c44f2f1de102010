// Package workerpool provides a fixed-size pool of long-lived worker
// goroutines consuming a shared unbounded task queue. It owns task dispatch
// only and carries no domain knowledge.
package workerpool

import (
	"fmt"
	"log/slog"
	"sync"

	"restaurant/internal/pkg/errs"
)

// Pool executes fire-and-forget tasks on a bounded set of workers.
//
// The queue is unbounded: Execute never blocks the submitter and there is
// no backpressure signal. A slow pool behind a flooded queue is an accepted
// limitation of this design, not a fault.
//
// Each task runs inside a fault boundary: a panicking task is logged and
// its worker keeps serving the queue, so one failing task cannot starve
// the pool.
type Pool struct {
	logger *slog.Logger

	mu     sync.Mutex
	cond   *sync.Cond
	queue  []func()
	closed bool

	workers int
	wg      sync.WaitGroup
	once    sync.Once
}

// New constructs a pool with workers persistently running goroutines, each
// pulling from one shared queue. A worker count below 1 is a configuration
// error and is rejected.
func New(workers int, logger *slog.Logger) (*Pool, error) {
	if workers < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause("worker count",
			fmt.Errorf("%d is not at least 1", workers))
	}
	if logger == nil {
		logger = slog.Default()
	}

	p := &Pool{
		logger:  logger.With("component", "worker_pool"),
		workers: workers,
	}
	p.cond = sync.NewCond(&p.mu)

	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.work()
	}

	return p, nil
}

// Execute enqueues task for execution by whichever worker becomes free
// first and returns immediately. Completion and failure are not reported
// to the caller. Tasks submitted after Shutdown are dropped with a log
// entry.
func (p *Pool) Execute(task func()) {
	if task == nil {
		return
	}

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		p.logger.Warn("task rejected, pool is shut down")
		return
	}
	p.queue = append(p.queue, task)
	p.mu.Unlock()

	p.cond.Signal()
}

// Workers returns the number of workers in the pool.
func (p *Pool) Workers() int {
	return p.workers
}

// Shutdown stops accepting new tasks, wakes all workers so they drain the
// remaining queue, and joins them. Invoking it more than once is harmless;
// only the first call has an effect.
func (p *Pool) Shutdown() {
	p.once.Do(func() {
		p.mu.Lock()
		p.closed = true
		p.mu.Unlock()

		p.cond.Broadcast()
		p.wg.Wait()
		p.logger.Info("worker pool stopped", "workers", p.workers)
	})
}

// work is the loop of one worker goroutine. It exits only when the pool is
// closed and the queue has been drained.
func (p *Pool) work() {
	defer p.wg.Done()

	for {
		p.mu.Lock()
		for len(p.queue) == 0 && !p.closed {
			p.cond.Wait()
		}
		if len(p.queue) == 0 {
			p.mu.Unlock()
			return
		}
		task := p.queue[0]
		p.queue = p.queue[1:]
		p.mu.Unlock()

		p.run(task)
	}
}

// run executes one task inside the per-task fault boundary.
func (p *Pool) run(task func()) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("task panicked", "panic", r)
		}
	}()

	task()
}
