// path: internal/parallel/pool.go

// Package parallel runs independent jobs on a fixed set of goroutines.
// Callers hand each job its own data; the pool shares nothing between jobs.
package parallel

import (
	"context"
	"errors"
	"runtime"
	"sync"
)

// ErrPoolShutdown is returned when submitting to a pool that has been shut down.
var ErrPoolShutdown = errors.New("worker pool has been shutdown")

// WorkerPool feeds submitted tasks to maxWorkers goroutines. Submit blocks
// while every worker is busy and the buffer is full.
type WorkerPool struct {
	maxWorkers int
	taskChan   chan func()
	workerWg   sync.WaitGroup
	mu         sync.RWMutex
	closed     bool
	once       sync.Once
}

// NewWorkerPool starts the workers. A non-positive maxWorkers means one
// worker per CPU.
func NewWorkerPool(maxWorkers int) *WorkerPool {
	if maxWorkers <= 0 {
		maxWorkers = runtime.NumCPU()
	}

	pool := &WorkerPool{
		maxWorkers: maxWorkers,
		taskChan:   make(chan func(), maxWorkers*2),
	}
	for i := 0; i < maxWorkers; i++ {
		pool.workerWg.Add(1)
		go pool.worker()
	}
	return pool
}

func (wp *WorkerPool) worker() {
	defer wp.workerWg.Done()
	for task := range wp.taskChan {
		if task != nil {
			task()
		}
	}
}

func (wp *WorkerPool) Size() int { return wp.maxWorkers }

// Submit queues task. It returns ctx.Err() if ctx ends first.
func (wp *WorkerPool) Submit(ctx context.Context, task func()) error {
	wp.mu.RLock()
	defer wp.mu.RUnlock()
	if wp.closed {
		return ErrPoolShutdown
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case wp.taskChan <- task:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Shutdown stops accepting tasks and waits for queued ones to finish.
func (wp *WorkerPool) Shutdown() {
	wp.once.Do(func() {
		wp.mu.Lock()
		wp.closed = true
		close(wp.taskChan)
		wp.mu.Unlock()
		wp.workerWg.Wait()
	})
}
