package pipeline

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
)

func TestRun(t *testing.T) {
	paths := []string{"a.txt", "b.txt", "c.txt"}

	var called int32
	results := Run(context.Background(), paths, 2, func(_ context.Context, job Job) error {
		atomic.AddInt32(&called, 1)
		if job.Index == 1 {
			return errors.New("test error")
		}
		return nil
	})

	if called != int32(len(paths)) {
		t.Fatalf("expected %d calls, got %d", len(paths), called)
	}
	if len(results) != len(paths) {
		t.Fatalf("expected %d results, got %d", len(paths), len(results))
	}
	for i, r := range results {
		if r.Job.Path != paths[i] {
			t.Fatalf("result %d out of order: %+v", i, r.Job)
		}
	}
	if errs := Errors(results); len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d", len(errs))
	}
	if results[1].Err == nil {
		t.Fatal("expected error on second job")
	}
}

func TestRunLimitsConcurrency(t *testing.T) {
	var inFlight, peak int32
	paths := make([]string, 20)
	Run(context.Background(), paths, 3, func(context.Context, Job) error {
		n := atomic.AddInt32(&inFlight, 1)
		for {
			p := atomic.LoadInt32(&peak)
			if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
				break
			}
		}
		atomic.AddInt32(&inFlight, -1)
		return nil
	})
	if peak > 3 {
		t.Fatalf("expected at most 3 concurrent jobs, saw %d", peak)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := Run(ctx, []string{"a", "b"}, 1, func(context.Context, Job) error {
		t.Error("job should not run after cancellation")
		return nil
	})
	for _, r := range results {
		if !errors.Is(r.Err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", r.Err)
		}
	}
}

func TestRunEmpty(t *testing.T) {
	if got := Run(context.Background(), nil, 2, func(context.Context, Job) error { return nil }); got != nil {
		t.Fatalf("expected nil results, got %+v", got)
	}
}
