// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/gosuri/uilive"
	"github.com/mattn/go-isatty"
	"github.com/katalvlaran/blockmat/internal/harness"
	"github.com/spf13/cobra"
	"golang.org/x/sys/cpu"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func newBenchCmd() *cobra.Command {
	var (
		e        engineFlags
		cfg      = harness.DefaultBenchConfig()
		progress = isatty.IsTerminal(os.Stderr.Fd())
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time tiled Mul and Transpose on large seeded operands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg.MulBlock, cfg.TransposeBlock, cfg.Workers = e.mulBlock, e.transposeBlock, e.workers
			out := cmd.OutOrStdout()
			p := message.NewPrinter(language.English)

			p.Fprintf(out, "Host: %s/%s, GOMAXPROCS=%d, features=[%s]\n",
				runtime.GOOS, runtime.GOARCH, runtime.GOMAXPROCS(0), strings.Join(cpuFeatures(), " "))

			var progressOut io.Writer = io.Discard
			if progress {
				live := uilive.New()
				live.Out = cmd.ErrOrStderr()
				live.Start()
				defer live.Stop()
				progressOut = live
			}

			rep, err := harness.Bench(cmd.Context(), cfg, progressOut)
			if rep.Repeats > 0 {
				printReport(p, out, rep)
			}

			return err
		},
	}

	fs := cmd.Flags()
	e.register(fs)
	fs.IntVar(&cfg.Size, "size", cfg.Size, "operands are size x size")
	fs.IntVar(&cfg.Repeat, "repeat", cfg.Repeat, "timed repetitions (best is reported)")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "operand generator seed")
	fs.BoolVar(&cfg.UsePool, "pool", cfg.UsePool, "reuse one persistent worker pool across calls")
	fs.BoolVar(&cfg.Verify, "verify", cfg.Verify, "time the reference product and compare results")
	fs.StringVar(&cfg.SnapshotDir, "snapshot-dir", "", "load or store operands as snapshot files")
	fs.BoolVar(&progress, "progress", progress, "show live progress on stderr (default: stderr is a terminal)")

	return cmd
}

func printReport(p *message.Printer, w io.Writer, rep harness.BenchReport) {
	cells := rep.Size * rep.Size
	source := "generated"
	if rep.Loaded {
		source = "snapshot"
	}
	p.Fprintf(w, "Operands: %d x %d (%d cells, %s), executor=%s, workers=%d, repeats=%d\n",
		rep.Size, rep.Size, cells, source, rep.Executor, rep.Workers, rep.Repeats)
	p.Fprintf(w, "\t• Multiplication took %v (%d multiply-adds)\n", rep.Mul, cells*rep.Size)
	p.Fprintf(w, "\t• Transposition took %v\n", rep.Transpose)
	if rep.Reference > 0 {
		p.Fprintf(w, "\t• Reference multiplication took %v, speed-up %.2fx, verified=%t\n",
			rep.Reference, rep.SpeedUp(), rep.Verified)
	}
}

// cpuFeatures lists the SIMD extensions reported by the host.
func cpuFeatures() []string {
	var feats []string
	add := func(has bool, name string) {
		if has {
			feats = append(feats, name)
		}
	}
	switch runtime.GOARCH {
	case "amd64", "386":
		add(cpu.X86.HasSSE41, "sse4.1")
		add(cpu.X86.HasAVX, "avx")
		add(cpu.X86.HasAVX2, "avx2")
		add(cpu.X86.HasFMA, "fma")
		add(cpu.X86.HasAVX512F, "avx512f")
	case "arm64":
		add(cpu.ARM64.HasASIMD, "asimd")
		add(cpu.ARM64.HasSVE, "sve")
	}
	if len(feats) == 0 {
		return []string{fmt.Sprintf("none detected for %s", runtime.GOARCH)}
	}

	return feats
}
