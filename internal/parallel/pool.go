// Package parallel provides a bounded worker pool for fanning out
// independent schema evaluations. Schemas are pure with respect to a board
// snapshot, so running them concurrently is safe as long as each worker
// builds its own analysis state; this package only supplies the controlled
// concurrency and backpressure.
package parallel

import (
	"context"
	"errors"
	"runtime"
	"sync"
)

// ErrPoolShutdown is returned when submitting to a pool that has been shut
// down.
var ErrPoolShutdown = errors.New("parallel: pool has been shut down")

// Pool runs submitted tasks on a fixed set of worker goroutines. Submission
// blocks when all workers are busy and the backlog is full, which bounds
// the memory a large schema fan-out can pin.
type Pool struct {
	workers  int
	tasks    chan func()
	workerWg sync.WaitGroup
	shutdown chan struct{}
	once     sync.Once
}

// NewPool creates a pool with the given number of workers. A count of zero
// or less defaults to the number of CPUs.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	p := &Pool{
		workers:  workers,
		tasks:    make(chan func(), workers*2),
		shutdown: make(chan struct{}),
	}
	for i := 0; i < workers; i++ {
		p.workerWg.Add(1)
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.workerWg.Done()
	for {
		select {
		case task, ok := <-p.tasks:
			if !ok {
				return
			}
			task()
		case <-p.shutdown:
			return
		}
	}
}

// Submit queues a task, blocking until a worker slot frees up, the context
// is cancelled, or the pool shuts down.
func (p *Pool) Submit(ctx context.Context, task func()) error {
	if task == nil {
		return nil
	}
	select {
	case <-p.shutdown:
		return ErrPoolShutdown
	default:
	}
	if ctx == nil {
		ctx = context.Background()
	}
	select {
	case p.tasks <- task:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-p.shutdown:
		return ErrPoolShutdown
	}
}

// Shutdown stops the workers after their current tasks finish. Queued but
// unstarted tasks are dropped; callers that need completion must wait on
// their own synchronization before shutting down.
func (p *Pool) Shutdown() {
	p.once.Do(func() {
		close(p.shutdown)
		p.workerWg.Wait()
	})
}
