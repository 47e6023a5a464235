// Package indicators implements quality indicators that score an approximated
// front, starting with the R2 indicator.
package indicators

import (
	"context"

	"gonum.org/v1/gonum/mat"

	"github.com/mihai-snyk/moo-indicators/pkg/multiobjective/framework"
)

// Indicator is a scalar quality measure over a front.
type Indicator interface {
	Name() string
	Evaluate(ctx context.Context, front *framework.Front) (float64, error)
}

// Scalarizer turns every (point, weight vector) pair into a single value. The
// returned matrix has one row per point of front and one column per weight
// vector.
type Scalarizer interface {
	Scalarize(ctx context.Context, front *framework.Front, weights *WeightVectorSet) (*mat.Dense, error)
}
