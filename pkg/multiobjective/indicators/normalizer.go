package indicators

import (
	"fmt"
	"math"

	"github.com/mihai-snyk/moo-indicators/pkg/multiobjective/framework"
)

// FrontNormalizer rescales fronts into [0,1] per dimension using fixed
// minimum and maximum values, usually taken from a reference front.
type FrontNormalizer struct {
	minimum []float64
	maximum []float64
}

// NewFrontNormalizer returns a normalizer for the given per-dimension bounds.
// Every bound, and every range max[d]-min[d], must be finite.
func NewFrontNormalizer(minimum, maximum []float64) (*FrontNormalizer, error) {
	if len(minimum) == 0 || len(maximum) == 0 {
		return nil, fmt.Errorf("normalizer bounds must not be empty: %w", framework.ErrEmptyInput)
	}
	if len(minimum) != len(maximum) {
		return nil, fmt.Errorf("normalizer has %d minimum and %d maximum values: %w", len(minimum), len(maximum), framework.ErrDimensionMismatch)
	}
	for d := range minimum {
		if !isFinite(minimum[d]) || !isFinite(maximum[d]) || !isFinite(maximum[d]-minimum[d]) {
			return nil, fmt.Errorf("dimension %d has non-finite bounds [%v, %v]: %w", d, minimum[d], maximum[d], framework.ErrInvalidArgument)
		}
	}
	return &FrontNormalizer{
		minimum: append([]float64(nil), minimum...),
		maximum: append([]float64(nil), maximum...),
	}, nil
}

// NewFrontNormalizerFromReference derives the bounds from the extrema of
// reference.
func NewFrontNormalizerFromReference(reference *framework.Front) (*FrontNormalizer, error) {
	minimum, err := reference.MinimumValues()
	if err != nil {
		return nil, fmt.Errorf("reference front: %w", err)
	}
	maximum, err := reference.MaximumValues()
	if err != nil {
		return nil, fmt.Errorf("reference front: %w", err)
	}
	return NewFrontNormalizer(minimum, maximum)
}

// Dimensions returns the number of dimensions the normalizer handles.
func (n *FrontNormalizer) Dimensions() int {
	return len(n.minimum)
}

// Normalize returns a new front where every coordinate x of dimension d is
// replaced by (x - min[d]) / (max[d] - min[d]). The input is left untouched.
func (n *FrontNormalizer) Normalize(front *framework.Front) (*framework.Front, error) {
	for d := range n.minimum {
		if n.maximum[d] == n.minimum[d] {
			return nil, fmt.Errorf("dimension %d has zero range [%v, %v]: %w", d, n.minimum[d], n.maximum[d], framework.ErrInvalidArgument)
		}
	}
	if !front.IsEmpty() && front.Dimensions() != len(n.minimum) {
		return nil, fmt.Errorf("front has %d objectives, normalizer has %d: %w", front.Dimensions(), len(n.minimum), framework.ErrDimensionMismatch)
	}

	points := front.ObjectiveSpacePoints()
	for i, p := range points {
		for d := range p {
			if !isFinite(p[d]) {
				return nil, fmt.Errorf("point %d has non-finite value %v in dimension %d: %w", i, p[d], d, framework.ErrInvalidArgument)
			}
			p[d] = (p[d] - n.minimum[d]) / (n.maximum[d] - n.minimum[d])
		}
	}
	return framework.NewFront(points...)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
