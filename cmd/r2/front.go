package main

import (
	"github.com/spf13/cobra"

	"github.com/mihai-snyk/moo-indicators/pkg/multiobjective/benchmarks"
	"github.com/mihai-snyk/moo-indicators/pkg/multiobjective/frontio"
)

func newFrontCmd() *cobra.Command {
	var (
		points  int
		numVars int
	)

	cmd := &cobra.Command{
		Use:       "front PROBLEM",
		Short:     "Sample the true Pareto front of a benchmark problem",
		ValidArgs: benchmarks.Names(),
		Args:      cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			problem, err := benchmarks.ByName(args[0], numVars)
			if err != nil {
				return err
			}
			front, err := benchmarks.ReferenceFront(problem, points)
			if err != nil {
				return err
			}
			return frontio.WriteFront(cmd.OutOrStdout(), front, "\t")
		},
	}

	cmd.Flags().IntVar(&points, "points", 100, "Number of points to sample.")
	cmd.Flags().IntVar(&numVars, "variables", 30, "Number of decision variables of the problem.")
	return cmd
}
