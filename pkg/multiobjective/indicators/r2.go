package indicators

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"k8s.io/klog/v2"

	"github.com/mihai-snyk/moo-indicators/pkg/multiobjective/framework"
)

const (
	Name        = "R2"
	Description = "R2 quality indicator"
)

// R2 averages, over a fixed set of weight vectors, the smallest Tchebycheff
// value any point of a front reaches along each vector. Lower is better.
//
// An R2 is immutable after construction and safe for concurrent use.
type R2 struct {
	weights    *WeightVectorSet
	scalarizer Scalarizer

	// normalizer is nil when no reference front was supplied.
	normalizer *FrontNormalizer
	reference  *framework.Front
}

var _ Indicator = &R2{}

// R2Option configures an R2 at construction time.
type R2Option func(*r2Options)

type r2Options struct {
	reference   *framework.Front
	parallelism int
	scalarizer  Scalarizer
}

// WithReferenceFront normalizes every evaluated front against the extrema of
// reference.
func WithReferenceFront(reference *framework.Front) R2Option {
	return func(o *r2Options) {
		o.reference = reference
	}
}

// WithScalarizer replaces the Tchebycheff scalarizer. WithParallelism has no
// effect on a replaced scalarizer.
func WithScalarizer(s Scalarizer) R2Option {
	return func(o *r2Options) {
		o.scalarizer = s
	}
}

// WithParallelism bounds the number of distance matrix rows computed
// concurrently.
func WithParallelism(n int) R2Option {
	return func(o *r2Options) {
		o.parallelism = n
	}
}

// NewR2 creates an R2 indicator over weights.
func NewR2(weights *WeightVectorSet, opts ...R2Option) (*R2, error) {
	if weights.IsEmpty() {
		return nil, fmt.Errorf("R2 needs at least one weight vector: %w", framework.ErrEmptyInput)
	}

	o := r2Options{parallelism: 1}
	for _, opt := range opts {
		opt(&o)
	}

	if o.scalarizer == nil {
		o.scalarizer = TchebycheffScalarizer{Parallelism: o.parallelism}
	}
	r := &R2{
		weights:    weights,
		scalarizer: o.scalarizer,
	}

	if o.reference != nil {
		if o.reference.Dimensions() != weights.Dimensions() && !o.reference.IsEmpty() {
			return nil, fmt.Errorf("reference front has %d objectives, weight vectors have %d: %w", o.reference.Dimensions(), weights.Dimensions(), framework.ErrDimensionMismatch)
		}
		n, err := NewFrontNormalizerFromReference(o.reference)
		if err != nil {
			return nil, err
		}
		r.normalizer = n
		r.reference = o.reference
	}
	return r, nil
}

// NewDefaultR2 creates an R2 over DefaultWeightVectorCount uniform
// two-objective weight vectors.
func NewDefaultR2(opts ...R2Option) (*R2, error) {
	weights, err := GenerateUniformWeights(DefaultWeightVectorCount)
	if err != nil {
		return nil, err
	}
	return NewR2(weights, opts...)
}

// Name implements Indicator.
func (r *R2) Name() string {
	return Name
}

// Description returns a human readable description of the indicator.
func (r *R2) Description() string {
	return Description
}

// Weights returns the weight vectors the indicator evaluates against.
func (r *R2) Weights() *WeightVectorSet {
	return r.weights
}

// ReferenceFront returns the reference front, or nil when evaluated fronts
// are used as given.
func (r *R2) ReferenceFront() *framework.Front {
	return r.reference
}

// Evaluate computes the R2 value of front.
func (r *R2) Evaluate(ctx context.Context, front *framework.Front) (float64, error) {
	logger := klog.FromContext(ctx)

	if front.IsEmpty() {
		return 0, fmt.Errorf("evaluating %s on a front without points: %w", Name, framework.ErrEmptyInput)
	}

	if r.normalizer != nil {
		normalized, err := r.normalizer.Normalize(front)
		if err != nil {
			return 0, fmt.Errorf("normalizing front: %w", err)
		}
		front = normalized
	}

	matrix, err := r.scalarizer.Scalarize(ctx, front, r.weights)
	if err != nil {
		return 0, err
	}
	if rows, cols := matrix.Dims(); rows != front.Len() || cols != r.weights.Len() {
		return 0, fmt.Errorf("scalarizer returned a %dx%d matrix, expected %dx%d: %w", rows, cols, front.Len(), r.weights.Len(), framework.ErrDimensionMismatch)
	}

	value := meanOfColumnMinima(matrix, r.weights.Len())
	logger.V(5).Info("Evaluated quality indicator", "indicator", Name, "points", front.Len(),
		"weightVectors", r.weights.Len(), "normalized", r.normalizer != nil, "value", value)
	return value, nil
}

// EvaluateSolutions projects solutions onto their objective vectors and
// evaluates the resulting front.
func (r *R2) EvaluateSolutions(ctx context.Context, solutions []framework.ObjectiveProvider) (float64, error) {
	front, err := framework.FrontFromSolutions(solutions)
	if err != nil {
		return 0, err
	}
	return r.Evaluate(ctx, front)
}

// meanOfColumnMinima reduces every column of m to its minimum and averages
// those minima over count columns, summing in column order.
func meanOfColumnMinima(m *mat.Dense, count int) float64 {
	rows, cols := m.Dims()
	column := make([]float64, rows)
	minima := make([]float64, cols)
	for j := 0; j < cols; j++ {
		mat.Col(column, j, m)
		minima[j] = floats.Min(column)
	}
	return floats.Sum(minima) / float64(count)
}
