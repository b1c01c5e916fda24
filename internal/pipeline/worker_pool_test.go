package pipeline

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
)

func TestWorkerPoolRunsEveryTask(t *testing.T) {
	pool := NewWorkerPool(4, 8)
	results := pool.Run(context.Background())

	var ran atomic.Int64
	errBoom := errors.New("boom")

	go func() {
		for i := 0; i < 20; i++ {
			i := i
			pool.Submit(func(ctx context.Context) Result {
				ran.Add(1)
				if i%5 == 0 {
					return Result{Err: errBoom}
				}
				return Result{}
			})
		}
		pool.Close()
	}()

	var total, failed int
	for r := range results {
		total++
		if r.Err != nil {
			failed++
		}
	}

	if total != 20 {
		t.Fatalf("results = %d, want 20", total)
	}
	if failed != 4 {
		t.Fatalf("failed = %d, want 4", failed)
	}
	if ran.Load() != 20 {
		t.Fatalf("ran = %d, want 20", ran.Load())
	}
}

func TestWorkerPoolDefaultsToOneWorker(t *testing.T) {
	pool := NewWorkerPool(0, -1)
	results := pool.Run(context.Background())

	go func() {
		pool.Submit(func(ctx context.Context) Result { return Result{} })
		pool.Close()
	}()

	var total int
	for range results {
		total++
	}
	if total != 1 {
		t.Fatalf("results = %d, want 1", total)
	}
}
