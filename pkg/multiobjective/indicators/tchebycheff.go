package indicators

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/mihai-snyk/moo-indicators/pkg/multiobjective/framework"
)

// TchebycheffScalarizer computes the weighted Chebyshev value of every
// (point, weight vector) pair.
type TchebycheffScalarizer struct {
	// Parallelism bounds the number of rows computed concurrently. Values
	// below 2 compute the matrix on the calling goroutine.
	Parallelism int
}

var _ Scalarizer = TchebycheffScalarizer{}

// Scalarize returns a matrix with one row per point and one column per weight
// vector, where cell (i, j) is max_d weights[j][d] * |front[i][d]|.
func (s TchebycheffScalarizer) Scalarize(ctx context.Context, front *framework.Front, weights *WeightVectorSet) (*mat.Dense, error) {
	if front.IsEmpty() {
		return nil, fmt.Errorf("scalarizing a front without points: %w", framework.ErrEmptyInput)
	}
	if weights.IsEmpty() {
		return nil, fmt.Errorf("scalarizing without weight vectors: %w", framework.ErrEmptyInput)
	}
	if front.Dimensions() != weights.Dimensions() {
		return nil, fmt.Errorf("front has %d objectives, weight vectors have %d: %w", front.Dimensions(), weights.Dimensions(), framework.ErrDimensionMismatch)
	}

	points := front.Points()
	m := mat.NewDense(len(points), weights.Len(), nil)

	if s.Parallelism < 2 || len(points) < 2 {
		for i, p := range points {
			fillRow(m.RawRowView(i), p, weights.vectors)
		}
		return m, nil
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.Parallelism)
	for i, p := range points {
		// Every goroutine owns one distinct row of the backing slice.
		row := m.RawRowView(i)
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			fillRow(row, p, weights.vectors)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return m, nil
}

func fillRow(row []float64, p framework.Point, vectors [][]float64) {
	for j, w := range vectors {
		v := w[0] * math.Abs(p.Value(0))
		for d := 1; d < len(w); d++ {
			v = math.Max(v, w[d]*math.Abs(p.Value(d)))
		}
		row[j] = v
	}
}
