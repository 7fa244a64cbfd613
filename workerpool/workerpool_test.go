// SPDX-License-Identifier: MIT

package workerpool

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
)

// executors returns one instance of every Executor flavor; cleanup closes pools.
func executors(t *testing.T, workers int) map[string]Executor {
	t.Helper()
	pool := New(workers)
	t.Cleanup(pool.Close)

	return map[string]Executor{
		"pool":  pool,
		"limit": Limit(workers),
	}
}

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	if pool.NumWorkers() != 4 {
		t.Errorf("NumWorkers() = %d, want 4", pool.NumWorkers())
	}
}

func TestNewDefault(t *testing.T) {
	pool := New(0)
	defer pool.Close()

	if pool.NumWorkers() != runtime.GOMAXPROCS(0) {
		t.Errorf("NumWorkers() = %d, want %d", pool.NumWorkers(), runtime.GOMAXPROCS(0))
	}
}

func TestRun(t *testing.T) {
	for name, exec := range executors(t, 4) {
		t.Run(name, func(t *testing.T) {
			n := 100
			results := make([]int, n)

			err := exec.Run(n, func(i int) error {
				results[i] = i * 2
				return nil
			})
			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			for i := 0; i < n; i++ {
				if results[i] != i*2 {
					t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
				}
			}
		})
	}
}

func TestRunEachIndexOnce(t *testing.T) {
	for name, exec := range executors(t, 8) {
		t.Run(name, func(t *testing.T) {
			n := 1000
			hits := make([]atomic.Int32, n)

			if err := exec.Run(n, func(i int) error {
				hits[i].Add(1)
				return nil
			}); err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			for i := range hits {
				if got := hits[i].Load(); got != 1 {
					t.Errorf("index %d ran %d times, want 1", i, got)
				}
			}
		})
	}
}

func TestRunSmallN(t *testing.T) {
	for name, exec := range executors(t, 8) {
		t.Run(name, func(t *testing.T) {
			n := 3
			var count atomic.Int32

			_ = exec.Run(n, func(int) error {
				count.Add(1)
				return nil
			})
			if count.Load() != int32(n) {
				t.Errorf("count = %d, want %d", count.Load(), n)
			}
		})
	}
}

func TestRunZeroN(t *testing.T) {
	for name, exec := range executors(t, 4) {
		t.Run(name, func(t *testing.T) {
			var called bool
			err := exec.Run(0, func(int) error {
				called = true
				return nil
			})
			if err != nil || called {
				t.Errorf("Run(0) = %v, called = %v; want nil, false", err, called)
			}
		})
	}
}

func TestRunErrorAfterJoin(t *testing.T) {
	errBoom := errors.New("boom")

	for name, exec := range executors(t, 4) {
		t.Run(name, func(t *testing.T) {
			n := 64
			var ran atomic.Int32

			err := exec.Run(n, func(i int) error {
				ran.Add(1)
				if i == 7 {
					return fmt.Errorf("index %d: %w", i, errBoom)
				}
				return nil
			})
			if !errors.Is(err, errBoom) {
				t.Fatalf("Run() error = %v, want %v", err, errBoom)
			}
			if ran.Load() != int32(n) {
				t.Errorf("ran = %d tasks, want all %d", ran.Load(), n)
			}
		})
	}
}

func TestRunRecoversPanic(t *testing.T) {
	for name, exec := range executors(t, 4) {
		t.Run(name, func(t *testing.T) {
			n := 32
			var ran atomic.Int32

			err := exec.Run(n, func(i int) error {
				ran.Add(1)
				if i == n-1 {
					panic("kernel fault")
				}
				return nil
			})
			if !errors.Is(err, ErrTaskPanic) {
				t.Fatalf("Run() error = %v, want ErrTaskPanic", err)
			}
			if ran.Load() != int32(n) {
				t.Errorf("ran = %d tasks, want all %d", ran.Load(), n)
			}
		})
	}
}

func TestSingleWorkerRunsInline(t *testing.T) {
	for name, exec := range executors(t, 1) {
		t.Run(name, func(t *testing.T) {
			order := make([]int, 0, 10)
			_ = exec.Run(10, func(i int) error {
				order = append(order, i)
				return nil
			})
			for i, got := range order {
				if got != i {
					t.Fatalf("order[%d] = %d, want %d", i, got, i)
				}
			}
		})
	}
}

func TestCloseMultipleTimes(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close() // must not panic
}

func TestClosedPoolFallback(t *testing.T) {
	pool := New(4)
	pool.Close()

	n := 100
	results := make([]int, n)

	// sequential fallback
	if err := pool.Run(n, func(i int) error {
		results[i] = i * 2
		return nil
	}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	for i := 0; i < n; i++ {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
}

func TestCloseConcurrentWithRun(t *testing.T) {
	for round := 0; round < 50; round++ {
		pool := New(4)

		const callers, n = 8, 64
		var (
			wg    sync.WaitGroup
			total atomic.Int64
		)
		wg.Add(callers + 1)
		for c := 0; c < callers; c++ {
			go func() {
				defer wg.Done()
				if err := pool.Run(n, func(int) error {
					total.Add(1)
					return nil
				}); err != nil {
					t.Errorf("Run() error = %v", err)
				}
			}()
		}
		go func() {
			defer wg.Done()
			pool.Close()
		}()
		wg.Wait()

		if got := total.Load(); got != callers*n {
			t.Fatalf("round %d: ran %d tasks, want %d", round, got, callers*n)
		}
	}
}

func BenchmarkPoolRun(b *testing.B) {
	pool := New(0)
	defer pool.Close()

	n := 1000
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = pool.Run(n, func(j int) error {
			_ = j * j
			return nil
		})
	}
}

func BenchmarkLimitRun(b *testing.B) {
	exec := Limit(0)

	n := 1000
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = exec.Run(n, func(j int) error {
			_ = j * j
			return nil
		})
	}
}
