// Command r2 scores approximated Pareto fronts with the R2 quality indicator
// and prepares the inputs it needs: weight vectors and reference fronts.
package main

import (
	"context"
	goflag "flag"
	"os"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

func main() {
	klog.InitFlags(nil)

	code := 0
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		code = 1
	}
	klog.Flush()
	os.Exit(code)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "r2",
		Short: "Score multi-objective fronts with the R2 indicator",
		Long: `r2 computes the R2 quality indicator of approximated Pareto fronts.

Subcommands:
  evaluate   Score one or more front files
  weights    Generate weight vectors
  reference  Build a reference front from raw objective vectors
  front      Sample the true Pareto front of a benchmark problem
  plot       Render a front against a reference front as HTML`,
		SilenceUsage: true,
	}
	root.PersistentFlags().AddGoFlagSet(goflag.CommandLine)

	root.AddCommand(
		newEvaluateCmd(),
		newWeightsCmd(),
		newReferenceCmd(),
		newFrontCmd(),
		newPlotCmd(),
	)
	return root
}

// commandContext returns the command context carrying a named klog logger.
func commandContext(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return klog.NewContext(ctx, klog.FromContext(ctx).WithName(cmd.Name()))
}
