package indicators

import (
	"context"
	"fmt"

	"k8s.io/klog/v2"

	"github.com/mihai-snyk/moo-indicators/apis/indicators/v1alpha1"
	"github.com/mihai-snyk/moo-indicators/pkg/multiobjective/frontio"
)

// WeightsFromSource builds the weight vectors described by src.
func WeightsFromSource(src v1alpha1.WeightVectorSource) (*WeightVectorSet, error) {
	switch {
	case src.UsesFile():
		return LoadWeightVectorsFile(src.File)
	case src.UsesLattice():
		return GenerateSimplexLatticeWeights(src.Objectives, src.Divisions)
	default:
		return GenerateUniformWeights(src.Count)
	}
}

// NewR2FromConfig builds an R2 indicator from a defaulted, validated
// configuration. Files named by cfg are read once, here.
func NewR2FromConfig(ctx context.Context, cfg *v1alpha1.R2IndicatorConfig) (*R2, error) {
	logger := klog.FromContext(ctx)

	weights, err := WeightsFromSource(cfg.WeightVectors)
	if err != nil {
		return nil, fmt.Errorf("building weight vectors: %w", err)
	}

	opts := []R2Option{WithParallelism(cfg.Parallelism)}
	if cfg.ReferenceFrontFile != "" {
		ref, err := frontio.ReadFrontFile(cfg.ReferenceFrontFile)
		if err != nil {
			return nil, fmt.Errorf("reading reference front: %w", err)
		}
		opts = append(opts, WithReferenceFront(ref))
	}

	logger.V(4).Info("Creating quality indicator", "indicator", Name, "weightVectors", weights.Len(),
		"objectives", weights.Dimensions(), "referenceFront", cfg.ReferenceFrontFile, "parallelism", cfg.Parallelism)
	return NewR2(weights, opts...)
}
