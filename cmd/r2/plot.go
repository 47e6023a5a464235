package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mihai-snyk/moo-indicators/pkg/multiobjective/frontio"
	"github.com/mihai-snyk/moo-indicators/pkg/multiobjective/indicators"
	"github.com/mihai-snyk/moo-indicators/pkg/multiobjective/util"
)

func newPlotCmd() *cobra.Command {
	o := &indicatorOptions{}
	var output string

	cmd := &cobra.Command{
		Use:   "plot FRONT_FILE",
		Short: "Render a two-objective front against a reference front",
		Long: `Render a two-objective front and, when --reference is given, the reference
front as an HTML scatter plot. The R2 value of the front is shown in the
subtitle.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)

			cfg, err := o.Config()
			if err != nil {
				return err
			}
			r2, err := indicators.NewR2FromConfig(ctx, cfg)
			if err != nil {
				return err
			}
			front, err := frontio.ReadFrontFile(args[0])
			if err != nil {
				return err
			}
			value, err := r2.Evaluate(ctx, front)
			if err != nil {
				return err
			}

			if output == "" {
				output = args[0] + ".html"
			}

			err = util.PlotFrontsToFile(output, front, r2.ReferenceFront(), util.PlotOptions{
				Title:     filepath.Base(args[0]),
				Subtitle:  fmt.Sprintf("%s = %.6g", r2.Name(), value),
				FrontName: "Front",
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), output)
			return nil
		},
	}

	o.AddFlags(cmd.Flags())
	cmd.Flags().StringVarP(&output, "output", "o", "", "HTML file to write, defaults to FRONT_FILE.html.")
	return cmd
}
