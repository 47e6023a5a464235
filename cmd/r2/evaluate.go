package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/mihai-snyk/moo-indicators/pkg/multiobjective/frontio"
	"github.com/mihai-snyk/moo-indicators/pkg/multiobjective/indicators"
)

func newEvaluateCmd() *cobra.Command {
	o := &indicatorOptions{}

	cmd := &cobra.Command{
		Use:   "evaluate FRONT_FILE...",
		Short: "Compute the R2 value of front files",
		Long: `Compute the R2 value of every front file given as argument.

Each file holds one point per line with whitespace separated objective values.
When a reference front is given, fronts are normalized against its extrema
before scoring. Lower values are better.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)
			logger := klog.FromContext(ctx)

			cfg, err := o.Config()
			if err != nil {
				return err
			}
			r2, err := indicators.NewR2FromConfig(ctx, cfg)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, path := range args {
				front, err := frontio.ReadFrontFile(path)
				if err != nil {
					return err
				}
				value, err := r2.Evaluate(ctx, front)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				logger.V(2).Info("Evaluated front", "file", path, "points", front.Len(), "value", value)
				fmt.Fprintf(w, "%s\t%.10g\n", path, value)
			}
			return w.Flush()
		},
	}

	o.AddFlags(cmd.Flags())
	return cmd
}
