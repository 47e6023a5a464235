package main

import (
	"github.com/spf13/cobra"

	"github.com/mihai-snyk/moo-indicators/apis/indicators/v1alpha1"
	"github.com/mihai-snyk/moo-indicators/pkg/multiobjective/indicators"
)

func newWeightsCmd() *cobra.Command {
	var src v1alpha1.WeightVectorSource

	cmd := &cobra.Command{
		Use:   "weights",
		Short: "Generate weight vectors",
		Long: `Generate weight vectors in the format read by --weights.

By default --vectors uniform two-objective vectors are written. Setting
--objectives and --divisions writes a simplex lattice instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			weights, err := indicators.WeightsFromSource(src)
			if err != nil {
				return err
			}
			return weights.Encode(cmd.OutOrStdout())
		},
	}

	cmd.Flags().IntVar(&src.Count, "vectors", v1alpha1.DefaultWeightVectorCount, "Number of uniform two-objective weight vectors.")
	cmd.Flags().IntVar(&src.Objectives, "objectives", 0, "Number of objectives of a simplex lattice.")
	cmd.Flags().IntVar(&src.Divisions, "divisions", 0, "Divisions per axis of a simplex lattice.")
	return cmd
}
