// SPDX-License-Identifier: MIT

package main

import (
	"github.com/katalvlaran/blockmat/matrix"
	"github.com/katalvlaran/blockmat/render"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// renderFlags control how check renders matrices.
type renderFlags struct {
	indent  int
	noColor bool
}

// engineFlags configure the tiling and the executor.
type engineFlags struct {
	mulBlock       int
	transposeBlock int
	workers        int
}

func (g *renderFlags) register(fs *pflag.FlagSet) {
	fs.IntVar(&g.indent, "indent", 18, "spaces before every rendered matrix line")
	fs.BoolVar(&g.noColor, "no-color", false, "disable ANSI escape codes")
}

func (g *renderFlags) renderConfig() render.Config {
	return render.Config{Indent: g.indent, Plain: g.noColor}
}

func (e *engineFlags) register(fs *pflag.FlagSet) {
	fs.IntVar(&e.mulBlock, "mul-block", matrix.DefaultMulBlockSize, "tile edge for multiplication")
	fs.IntVar(&e.transposeBlock, "transpose-block", matrix.DefaultTransposeBlockSize, "tile edge for transposition")
	fs.IntVar(&e.workers, "workers", matrix.DefaultWorkers, "concurrent tiles per call (0 = GOMAXPROCS)")
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "blockmat",
		Short:         "Block-tiled concurrent dense matrix engine",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newCheckCmd(), newBenchCmd())

	return root
}
