package workerpool

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jotoba/jotoba-go/internal/apperr"
)

func TestPoolRunsSubmittedJobs(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p := New(2, 4)
	p.Start(ctx)
	defer p.Close()

	var done atomic.Int32
	for i := 0; i < 5; i++ {
		if err := p.Submit(func(ctx context.Context) error {
			done.Add(1)
			return nil
		}); err != nil {
			t.Fatalf("Submit: %v", err)
		}
	}

	deadline := time.After(2 * time.Second)
	for done.Load() < 5 {
		select {
		case <-deadline:
			t.Fatalf("timed out waiting for jobs, completed %d/5", done.Load())
		default:
			time.Sleep(time.Millisecond)
		}
	}
}

func TestPoolSubmitAfterCloseErrors(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p := New(1, 1)
	p.Start(ctx)
	p.Close()

	if err := p.Submit(func(context.Context) error { return nil }); err != ErrPoolClosed {
		t.Fatalf("Submit after Close = %v, want ErrPoolClosed", err)
	}
}

func TestRunWithTimeoutReturnsResultWhenFast(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err := RunWithTimeout(ctx, "test", func() error { return nil })
	if err != nil {
		t.Fatalf("RunWithTimeout = %v, want nil", err)
	}
}

func TestRunWithTimeoutReturnsTimeoutError(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := RunWithTimeout(ctx, "test", func() error {
		time.Sleep(100 * time.Millisecond)
		return nil
	})
	if !apperr.Is(err, apperr.KindTimeout) {
		t.Fatalf("RunWithTimeout = %v, want KindTimeout", err)
	}
}

func TestBoundedCacheEvictsAtCapacity(t *testing.T) {
	c := NewBoundedCache[string, int](2)
	c.Put("a", 1)
	c.Put("b", 2)
	c.Put("c", 3)
	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 (bounded)", c.Len())
	}
}

func TestBoundedCacheGetOrCompute(t *testing.T) {
	c := NewBoundedCache[string, int](4)
	calls := 0
	compute := func() int { calls++; return 42 }
	if v := c.GetOrCompute("k", compute); v != 42 {
		t.Fatalf("GetOrCompute = %d, want 42", v)
	}
	if v := c.GetOrCompute("k", compute); v != 42 {
		t.Fatalf("GetOrCompute = %d, want 42", v)
	}
	if calls != 1 {
		t.Fatalf("compute called %d times, want 1 (cached on second call)", calls)
	}
}
