// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the block scheduler.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves the executor.
//
// Design goals:
//   - Deterministic results: options change scheduling, never values.
//     Every tiling and every executor yields bit-identical output.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Tile edges: multiply tiles the RESULT with DefaultMulBlockSize; transpose
//     tiles the SOURCE with the larger DefaultTransposeBlockSize because it is
//     memory-bound and benefits from longer sequential runs.
//   - Executors: without WithExecutor every call builds a workerpool.Limited
//     capped at the resolved worker count and tears it down on return. Pass a
//     *workerpool.Pool to reuse persistent workers across many calls.
package matrix

import "github.com/katalvlaran/blockmat/workerpool"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMulBlockSize is the tile edge used by Mul over the result matrix.
	DefaultMulBlockSize = 128

	// DefaultTransposeBlockSize is the tile edge used by Transpose over the source.
	DefaultTransposeBlockSize = 256

	// DefaultWorkers bounds concurrent tiles per call; 0 means GOMAXPROCS.
	DefaultWorkers = 0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicMulBlockInvalid       = "matrix: WithMulBlockSize: block size must be > 0"
	panicTransposeBlockInvalid = "matrix: WithTransposeBlockSize: block size must be > 0"
	panicWorkersInvalid        = "matrix: WithWorkers: workers must be >= 0"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option and resolve
// them via gatherOptions.
type Options struct {
	mulBlock       int                 // DefaultMulBlockSize
	transposeBlock int                 // DefaultTransposeBlockSize
	workers        int                 // DefaultWorkers
	executor       workerpool.Executor // nil => workerpool.Limit(workers)
}

// MulBlockSize returns the resolved multiply tile edge.
func (o Options) MulBlockSize() int { return o.mulBlock }

// TransposeBlockSize returns the resolved transpose tile edge.
func (o Options) TransposeBlockSize() int { return o.transposeBlock }

// Workers returns the resolved worker bound (0 = GOMAXPROCS).
func (o Options) Workers() int { return o.workers }

// ---------- Constructors (WithX) ----------

// WithMulBlockSize sets the tile edge used by Mul.
// Implementation:
//   - Stage 1: validate block > 0.
//   - Stage 2: return a setter that writes it into Options.
//
// Behavior highlights:
//   - Any positive edge is correct; it only trades task count against tile work.
//
// Errors:
//   - Panics with a stable message when block <= 0.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithMulBlockSize(block int) Option {
	if block <= 0 {
		panic(panicMulBlockInvalid)
	}

	return func(o *Options) { o.mulBlock = block }
}

// WithTransposeBlockSize sets the tile edge used by Transpose.
// Panics when block <= 0.
func WithTransposeBlockSize(block int) Option {
	if block <= 0 {
		panic(panicTransposeBlockInvalid)
	}

	return func(o *Options) { o.transposeBlock = block }
}

// WithWorkers bounds how many tiles run concurrently per call (0 = GOMAXPROCS).
// Ignored when WithExecutor supplies an executor, which carries its own bound.
// Panics when workers < 0.
func WithWorkers(workers int) Option {
	if workers < 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = workers }
}

// WithExecutor routes tile tasks through exec, typically a shared
// *workerpool.Pool. A nil exec restores the per-call default.
func WithExecutor(exec workerpool.Executor) Option {
	if p, ok := exec.(*workerpool.Pool); ok && p == nil {
		exec = nil // typed nil pool
	}

	return func(o *Options) { o.executor = exec }
}

// NewOptions resolves opts on top of the defaults.
// Useful to inspect the effective configuration (e.g. in a CLI report).
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user-provided Option setters on top of defaults and
// resolves the executor.
// Implementation:
//   - Stage 1: start from the Default* constants.
//   - Stage 2: apply setters in order (last-writer-wins).
//   - Stage 3: if no executor was supplied, build workerpool.Limit(workers).
//
// Complexity:
//   - Time O(k), Space O(1) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		mulBlock:       DefaultMulBlockSize,
		transposeBlock: DefaultTransposeBlockSize,
		workers:        DefaultWorkers,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}
	if o.executor == nil {
		o.executor = workerpool.Limit(o.workers)
	}

	return o
}
