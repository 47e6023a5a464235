package main

import (
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/mihai-snyk/moo-indicators/pkg/multiobjective/frontio"
)

func newReferenceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reference INPUT_FILE",
		Short: "Build a reference front from raw objective vectors",
		Long: `Read objective vectors, one per line, keep the non-dominated distinct ones
and write them tab separated. Every objective is minimized.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)

			f, err := frontio.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			ref, err := frontio.GenerateReferenceFront(f, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			klog.FromContext(ctx).V(2).Info("Built reference front", "input", args[0], "points", ref.Len())
			return nil
		},
	}
	return cmd
}
