// SPDX-License-Identifier: MIT

// Package workerpool provides bounded executors for independent index tasks.
//
// Two executors share one contract (Executor.Run):
//
//   - Pool: a persistent pool. Workers are spawned once and reused across many
//     Run calls, so repeated multiplications pay no spawn cost.
//   - Limit: a per-call executor. Every Run fans out on an errgroup whose
//     concurrency is capped, and tears everything down before returning.
//
// Both run every task to completion (there is no cancellation), recover panics
// into ErrTaskPanic and report the first failure only after the join.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	err := pool.Run(len(tiles), func(i int) error {
//	    return process(tiles[i])
//	})
package workerpool

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
)

// ErrTaskPanic wraps the value recovered from a panicking task.
var ErrTaskPanic = errors.New("workerpool: task panicked")

// Executor runs task(i) for every i in [0, n) and blocks until all of them
// have returned. The first non-nil error (in completion order) is returned.
type Executor interface {
	Run(n int, task func(i int) error) error
}

// Compile-time assertions.
var (
	_ Executor = (*Pool)(nil)
	_ Executor = Limited{}
)

// defaultWorkers resolves a non-positive worker count to GOMAXPROCS.
func defaultWorkers(n int) int {
	if n <= 0 {
		return runtime.GOMAXPROCS(0)
	}

	return n
}

// safeCall runs task(i), converting a panic into an ErrTaskPanic error.
func safeCall(i int, task func(i int) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("task %d: %w: %v", i, ErrTaskPanic, r)
		}
	}()

	return task(i)
}

// firstError keeps the first error recorded by concurrent tasks.
type firstError struct {
	once sync.Once
	err  error
}

func (f *firstError) set(err error) {
	if err == nil {
		return
	}
	f.once.Do(func() { f.err = err })
}

// runSequential is the shared inline path for single-worker and closed-pool
// cases. Every task runs even after a failure.
func runSequential(n int, task func(i int) error) error {
	var first firstError
	for i := range n {
		first.set(safeCall(i, task))
	}

	return first.err
}
