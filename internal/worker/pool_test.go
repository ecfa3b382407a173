package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
)

func TestPool_RunsAllTasks(t *testing.T) {
	p := NewPool(4, 16)
	out := p.Run(context.Background())

	var ran atomic.Int64
	for i := 0; i < 16; i++ {
		p.Submit(func(ctx context.Context) error {
			ran.Add(1)
			return nil
		})
	}
	p.Close()

	count := 0
	for res := range out {
		if res.Err != nil {
			t.Fatalf("unexpected err: %v", res.Err)
		}
		count++
	}
	if count != 16 {
		t.Fatalf("expected 16 results, got %d", count)
	}
	if ran.Load() != 16 {
		t.Fatalf("expected 16 tasks run, got %d", ran.Load())
	}
}

func TestPool_PropagatesTaskErrors(t *testing.T) {
	p := NewPool(2, 4)
	out := p.Run(context.Background())

	errBoom := errors.New("boom")
	p.Submit(func(ctx context.Context) error { return errBoom })
	p.Submit(func(ctx context.Context) error { return nil })
	p.Close()

	failures := 0
	for res := range out {
		if res.Err != nil {
			if !errors.Is(res.Err, errBoom) {
				t.Fatalf("unexpected err: %v", res.Err)
			}
			failures++
		}
	}
	if failures != 1 {
		t.Fatalf("expected 1 failure, got %d", failures)
	}
}

func TestPool_NilPoolRunReturnsClosedChannel(t *testing.T) {
	var p *Pool
	out := p.Run(context.Background())

	if _, ok := <-out; ok {
		t.Fatalf("expected closed channel from nil pool")
	}
}

func TestPool_ZeroWorkersDefaultsToOne(t *testing.T) {
	p := NewPool(0, 0)
	out := p.Run(context.Background())

	done := make(chan struct{})
	go func() {
		p.Submit(func(ctx context.Context) error { return nil })
		p.Close()
		close(done)
	}()

	count := 0
	for range out {
		count++
	}
	<-done
	if count != 1 {
		t.Fatalf("expected 1 result, got %d", count)
	}
}
