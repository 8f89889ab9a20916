package parallel

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestPoolRunsAllTasks(t *testing.T) {
	p := NewPool(4)
	defer p.Shutdown()

	var ran atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		err := p.Submit(context.Background(), func() {
			defer wg.Done()
			ran.Add(1)
		})
		if err != nil {
			t.Fatalf("Submit: %v", err)
		}
	}
	wg.Wait()
	if ran.Load() != 100 {
		t.Fatalf("ran %d tasks, want 100", ran.Load())
	}
}

func TestPoolSubmitAfterShutdown(t *testing.T) {
	p := NewPool(1)
	p.Shutdown()
	if err := p.Submit(context.Background(), func() {}); err != ErrPoolShutdown {
		t.Fatalf("Submit after Shutdown: %v, want ErrPoolShutdown", err)
	}
	// Shutdown is idempotent.
	p.Shutdown()
}

func TestPoolNilTask(t *testing.T) {
	p := NewPool(1)
	defer p.Shutdown()
	if err := p.Submit(context.Background(), nil); err != nil {
		t.Fatalf("nil task: %v", err)
	}
}

func TestPoolSubmitHonorsCancellation(t *testing.T) {
	p := NewPool(1)
	defer p.Shutdown()

	// Fill the single worker and the backlog with blocking tasks, then
	// submit with a cancelled context: Submit must give up, not hang.
	release := make(chan struct{})
	var wg sync.WaitGroup
	blocker := func() {
		defer wg.Done()
		<-release
	}
	for i := 0; i < 1+cap(p.tasks); i++ {
		wg.Add(1)
		if err := p.Submit(context.Background(), blocker); err != nil {
			t.Fatalf("Submit blocker %d: %v", i, err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if err := p.Submit(ctx, func() {}); err != context.DeadlineExceeded {
		t.Fatalf("Submit on a full pool: %v, want context.DeadlineExceeded", err)
	}
	close(release)
	wg.Wait()
}

func TestPoolDefaultsToCPUCount(t *testing.T) {
	p := NewPool(0)
	defer p.Shutdown()
	if p.workers <= 0 {
		t.Fatalf("workers = %d", p.workers)
	}
}
