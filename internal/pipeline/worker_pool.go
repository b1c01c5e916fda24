package pipeline

import (
	"context"
	"sync"
)

type Result struct {
	Err error
}

type Task func(ctx context.Context) Result

// WorkerPool fans tasks out over a fixed number of goroutines. Submit
// after Close panics, like sending on a closed channel would.
type WorkerPool struct {
	workers int
	tasks   chan Task
	results chan Result

	closeOnce sync.Once
}

func NewWorkerPool(workers, buffer int) *WorkerPool {
	if workers <= 0 {
		workers = 1
	}
	if buffer < 0 {
		buffer = 0
	}
	return &WorkerPool{
		workers: workers,
		tasks:   make(chan Task, buffer),
		results: make(chan Result, buffer),
	}
}

// Run starts the workers and returns the result channel. The channel is
// closed once Close has been called and every in-flight task finished.
func (p *WorkerPool) Run(ctx context.Context) <-chan Result {
	var wg sync.WaitGroup
	wg.Add(p.workers)

	for i := 0; i < p.workers; i++ {
		go func() {
			defer wg.Done()
			for task := range p.tasks {
				select {
				case <-ctx.Done():
					p.results <- Result{Err: ctx.Err()}
					continue
				default:
				}
				p.results <- task(ctx)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(p.results)
	}()

	return p.results
}

func (p *WorkerPool) Submit(task Task) {
	p.tasks <- task
}

// Close signals that no further tasks will be submitted.
func (p *WorkerPool) Close() {
	p.closeOnce.Do(func() {
		close(p.tasks)
	})
}
