// SPDX-License-Identifier: MIT

package harness

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/katalvlaran/blockmat/matrix"
	"github.com/katalvlaran/blockmat/snapshot"
	"github.com/katalvlaran/blockmat/workerpool"
	"github.com/samber/lo"
)

var (
	// ErrBadBenchConfig indicates a non-positive size, repeat count or block size.
	ErrBadBenchConfig = errors.New("harness: invalid bench configuration")

	// ErrVerifyFailed indicates the tiled result differed from the reference.
	ErrVerifyFailed = errors.New("harness: tiled result differs from reference")
)

// BenchConfig describes one benchmark run.
type BenchConfig struct {
	Size           int   // operands are Size×Size
	Repeat         int   // timed repetitions; the best one is reported
	MulBlock       int   // Mul tile edge
	TransposeBlock int   // Transpose tile edge
	Workers        int   // 0 = GOMAXPROCS
	Seed           int64 // operand generator seed
	UsePool        bool  // share one persistent workerpool.Pool across calls
	Verify         bool  // time the reference product and compare
	SnapshotDir    string
}

// DefaultBenchConfig mirrors the 1000×1000 timing run of the suite.
func DefaultBenchConfig() BenchConfig {
	return BenchConfig{
		Size:           1000,
		Repeat:         3,
		MulBlock:       matrix.DefaultMulBlockSize,
		TransposeBlock: matrix.DefaultTransposeBlockSize,
		Workers:        matrix.DefaultWorkers,
		Seed:           1,
		Verify:         true,
	}
}

func (c BenchConfig) validate() error {
	switch {
	case c.Size <= 0:
		return fmt.Errorf("%w: size %d", ErrBadBenchConfig, c.Size)
	case c.Repeat <= 0:
		return fmt.Errorf("%w: repeat %d", ErrBadBenchConfig, c.Repeat)
	case c.MulBlock <= 0 || c.TransposeBlock <= 0:
		return fmt.Errorf("%w: blocks %d/%d", ErrBadBenchConfig, c.MulBlock, c.TransposeBlock)
	case c.Workers < 0:
		return fmt.Errorf("%w: workers %d", ErrBadBenchConfig, c.Workers)
	}

	return nil
}

// BenchReport holds the best duration of each timed operation.
type BenchReport struct {
	Size      int
	Repeats   int // repetitions actually completed
	Workers   int
	Executor  string // "pool" or "limit"
	Loaded    bool   // operands came from snapshot files
	Mul       time.Duration
	Transpose time.Duration
	Reference time.Duration // zero unless Verify
	Verified  bool
}

// SpeedUp is Reference/Mul, or 0 when the reference was not timed.
func (r BenchReport) SpeedUp() float64 {
	if r.Reference == 0 || r.Mul == 0 {
		return 0
	}

	return float64(r.Reference) / float64(r.Mul)
}

// Bench times tiled Mul and Transpose on seeded Size×Size int64 operands.
// Implementation:
//   - Stage 1: validate cfg; load or generate operands (snapshots when
//     SnapshotDir is set, generated and saved on first use).
//   - Stage 2: Repeat times, time Mul(A, B) and Transpose(A); keep the best.
//     ctx is checked between repetitions.
//   - Stage 3: if Verify, time MulReference once and compare.
//
// Progress lines are written to progress, which may be nil.
func Bench(ctx context.Context, cfg BenchConfig, progress io.Writer) (rep BenchReport, err error) {
	if err = cfg.validate(); err != nil {
		return
	}
	if progress == nil {
		progress = io.Discard
	}

	rep = BenchReport{Size: cfg.Size, Workers: cfg.Workers, Executor: "limit"}
	opts := []matrix.Option{
		matrix.WithMulBlockSize(cfg.MulBlock),
		matrix.WithTransposeBlockSize(cfg.TransposeBlock),
		matrix.WithWorkers(cfg.Workers),
	}
	if cfg.UsePool {
		pool := workerpool.New(cfg.Workers)
		defer pool.Close()
		opts = append(opts, matrix.WithExecutor(pool))
		rep.Executor = "pool"
		rep.Workers = pool.NumWorkers()
	}

	a, b, loaded, err := operands(cfg)
	if err != nil {
		return rep, err
	}
	rep.Loaded = loaded

	var (
		product  *matrix.Dense[int64]
		mulTimes []time.Duration
		trTimes  []time.Duration
	)
	for i := range cfg.Repeat {
		if err = ctx.Err(); err != nil {
			return rep, err
		}
		fmt.Fprintf(progress, "repetition %d/%d: multiplying %dx%d\n", i+1, cfg.Repeat, cfg.Size, cfg.Size)

		start := time.Now()
		if product, err = matrix.Mul(a, b, opts...); err != nil {
			return rep, err
		}
		mulTimes = append(mulTimes, time.Since(start))

		fmt.Fprintf(progress, "repetition %d/%d: transposing %dx%d\n", i+1, cfg.Repeat, cfg.Size, cfg.Size)
		start = time.Now()
		if _, err = matrix.Transpose(a, opts...); err != nil {
			return rep, err
		}
		trTimes = append(trTimes, time.Since(start))

		rep.Repeats++
		rep.Mul, rep.Transpose = lo.Min(mulTimes), lo.Min(trTimes)
	}

	if !cfg.Verify {
		return rep, nil
	}
	if err = ctx.Err(); err != nil {
		return rep, err
	}
	fmt.Fprintf(progress, "reference: multiplying %dx%d on one goroutine\n", cfg.Size, cfg.Size)
	start := time.Now()
	want, err := matrix.MulReference(a, b)
	if err != nil {
		return rep, err
	}
	rep.Reference = time.Since(start)
	if !product.Equal(want) {
		return rep, ErrVerifyFailed
	}
	rep.Verified = true

	return rep, nil
}

// operands returns the benchmark inputs A and B, reporting whether they were
// loaded from snapshots.
func operands(cfg BenchConfig) (a, b *matrix.Dense[int64], loaded bool, err error) {
	if cfg.SnapshotDir == "" {
		rng := rand.New(rand.NewSource(cfg.Seed))
		if a, err = randomInts(rng, cfg.Size, cfg.Size); err != nil {
			return
		}
		b, err = randomInts(rng, cfg.Size, cfg.Size)
		return
	}

	pathA := filepath.Join(cfg.SnapshotDir, fmt.Sprintf("a-%d-%d.bmat", cfg.Size, cfg.Seed))
	pathB := filepath.Join(cfg.SnapshotDir, fmt.Sprintf("b-%d-%d.bmat", cfg.Size, cfg.Seed))

	a, errA := snapshot.Load[int64](pathA)
	b, errB := snapshot.Load[int64](pathB)
	if errA == nil && errB == nil {
		return a, b, true, nil
	}
	for _, e := range []error{errA, errB} {
		if e != nil && !errors.Is(e, os.ErrNotExist) {
			return nil, nil, false, e
		}
	}

	if a, b, _, err = operands(BenchConfig{Size: cfg.Size, Seed: cfg.Seed}); err != nil {
		return
	}
	if err = os.MkdirAll(cfg.SnapshotDir, 0o755); err != nil {
		return
	}
	if err = snapshot.Save(pathA, a); err != nil {
		return
	}
	err = snapshot.Save(pathB, b)

	return
}
