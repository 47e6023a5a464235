package framework

import (
	"fmt"
	"math"
)

// Front is an ordered, immutable collection of points that all share the same
// dimensionality. A Front with no points is valid but most consumers reject it.
type Front struct {
	points []Point
	dims   int
}

// NewFront copies points into a Front. All points must have the same number of
// objectives.
func NewFront(points ...ObjectiveSpacePoint) (*Front, error) {
	f := &Front{points: make([]Point, len(points))}
	for i, p := range points {
		if i == 0 {
			f.dims = len(p)
		} else if len(p) != f.dims {
			return nil, fmt.Errorf("point %d has %d objectives, expected %d: %w", i, len(p), f.dims, ErrDimensionMismatch)
		}
		f.points[i] = NewPoint(p...)
	}
	return f, nil
}

// FrontFromSolutions projects each solution onto its objective vector.
func FrontFromSolutions[S ObjectiveProvider](solutions []S) (*Front, error) {
	points := make([]ObjectiveSpacePoint, len(solutions))
	for i, s := range solutions {
		points[i] = s.Objectives()
	}
	return NewFront(points...)
}

// Len returns the number of points.
func (f *Front) Len() int {
	return len(f.points)
}

// IsEmpty reports whether the front has no points.
func (f *Front) IsEmpty() bool {
	return len(f.points) == 0
}

// Dimensions returns the dimensionality shared by all points, or 0 for an
// empty front.
func (f *Front) Dimensions() int {
	return f.dims
}

// Point returns the i-th point.
func (f *Front) Point(i int) (Point, error) {
	if i < 0 || i >= len(f.points) {
		return Point{}, fmt.Errorf("point %d of %d: %w", i, len(f.points), ErrIndexOutOfRange)
	}
	return f.points[i], nil
}

// Points returns the points of the front. Points are immutable so the slice
// elements can be shared; the slice itself is a copy.
func (f *Front) Points() []Point {
	out := make([]Point, len(f.points))
	copy(out, f.points)
	return out
}

// ObjectiveSpacePoints returns a deep copy of the front as raw vectors.
func (f *Front) ObjectiveSpacePoints() []ObjectiveSpacePoint {
	out := make([]ObjectiveSpacePoint, len(f.points))
	for i, p := range f.points {
		out[i] = p.Coordinates()
	}
	return out
}

// MinimumValues returns, independently per dimension, the smallest coordinate
// across all points.
func (f *Front) MinimumValues() ([]float64, error) {
	return f.extrema(math.Inf(1), math.Min)
}

// MaximumValues returns, independently per dimension, the largest coordinate
// across all points.
func (f *Front) MaximumValues() ([]float64, error) {
	return f.extrema(math.Inf(-1), math.Max)
}

func (f *Front) extrema(init float64, pick func(a, b float64) float64) ([]float64, error) {
	if f.IsEmpty() {
		return nil, fmt.Errorf("extrema of a front without points: %w", ErrEmptyInput)
	}
	out := make([]float64, f.dims)
	for d := range out {
		out[d] = init
	}
	for _, p := range f.points {
		for d := range out {
			out[d] = pick(out[d], p.coords[d])
		}
	}
	return out, nil
}
