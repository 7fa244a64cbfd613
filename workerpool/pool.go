// SPDX-License-Identifier: MIT

package workerpool

import (
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool that can be reused across many Run calls.
// Workers are spawned once at creation and live until Close.
type Pool struct {
	numWorkers int
	workC      chan workItem

	// mu is held for reading while Run hands out work and for writing by
	// Close, so no send can race with close(workC).
	mu     sync.RWMutex
	closed bool
}

// workItem is one worker's share of a Run call.
type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a pool with numWorkers persistent workers.
// If numWorkers <= 0, GOMAXPROCS is used.
func New(numWorkers int) *Pool {
	numWorkers = defaultWorkers(numWorkers)

	p := &Pool{
		numWorkers: numWorkers,
		// enough slack for every worker to have one pending item
		workC: make(chan workItem, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}

	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts the pool down. Pending work completes; later Run calls fall
// back to sequential execution. Safe to call more than once and
// concurrently with Run.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	close(p.workC)
}

// Run executes task(i) for each i in [0, n) on the pool and blocks until all
// tasks have finished.
// Implementation:
//   - Stage 1: n <= 0 is a no-op; a single usable worker runs inline; under
//     the read lock, a closed pool runs inline too.
//   - Stage 2: hand one work-stealing loop to each of min(workers, n) workers;
//     indices are claimed through an atomic counter.
//   - Stage 3: wait on the barrier, then return the first recorded error.
//
// Behavior highlights:
//   - Tasks are never skipped because another task failed.
//   - Panics are recovered per task and reported as ErrTaskPanic.
//
// Complexity:
//   - O(n) task invocations; O(workers) channel sends.
func (p *Pool) Run(n int, task func(i int) error) error {
	if n <= 0 {
		return nil
	}
	workers := min(p.numWorkers, n)
	if workers == 1 {
		return runSequential(n, task)
	}

	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		return runSequential(n, task)
	}

	var (
		next  atomic.Int64
		first firstError
		wg    sync.WaitGroup
	)
	wg.Add(workers)
	for range workers {
		p.workC <- workItem{
			fn: func() {
				for {
					idx := int(next.Add(1)) - 1
					if idx >= n {
						return
					}
					first.set(safeCall(idx, task))
				}
			},
			barrier: &wg,
		}
	}
	p.mu.RUnlock()
	wg.Wait()

	return first.err
}
