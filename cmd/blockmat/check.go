// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/blockmat/internal/harness"
	"github.com/katalvlaran/blockmat/matrix"
	"github.com/spf13/cobra"
)

var errChecksFailed = errors.New("demonstration suite failed")

func newCheckCmd() *cobra.Command {
	var (
		g renderFlags
		e engineFlags
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run the demonstration suite and render every matrix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if e.mulBlock <= 0 || e.transposeBlock <= 0 || e.workers < 0 {
				return fmt.Errorf("invalid engine flags: mul-block=%d transpose-block=%d workers=%d",
					e.mulBlock, e.transposeBlock, e.workers)
			}
			opts := []matrix.Option{
				matrix.WithMulBlockSize(e.mulBlock),
				matrix.WithTransposeBlockSize(e.transposeBlock),
				matrix.WithWorkers(e.workers),
			}

			sum, err := harness.RunSuite(cmd.OutOrStdout(), harness.Scenarios(opts...), g.renderConfig())
			if err != nil {
				return err
			}
			if !sum.Passed() {
				return fmt.Errorf("%w: %d of %d checks", errChecksFailed, sum.Failures, sum.Checks)
			}

			return nil
		},
	}
	g.register(cmd.Flags())
	e.register(cmd.Flags())

	return cmd
}
