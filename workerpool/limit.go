// SPDX-License-Identifier: MIT

package workerpool

import "golang.org/x/sync/errgroup"

// Limited is a per-call executor: each Run starts its own errgroup capped at
// Workers concurrent tasks and joins it before returning. Nothing outlives
// the call, so a Limited value needs no Close.
type Limited struct {
	Workers int // <= 0 means GOMAXPROCS
}

// Limit returns a per-call executor capped at workers concurrent tasks.
func Limit(workers int) Limited {
	return Limited{Workers: workers}
}

// Run executes task(i) for each i in [0, n), at most l.Workers at a time.
// Tasks run to completion; the first error reported by errgroup is returned
// after every goroutine has exited.
func (l Limited) Run(n int, task func(i int) error) error {
	if n <= 0 {
		return nil
	}
	workers := min(defaultWorkers(l.Workers), n)
	if workers == 1 {
		return runSequential(n, task)
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for i := range n {
		g.Go(func() error { return safeCall(i, task) })
	}

	return g.Wait()
}
