package indicators

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/mihai-snyk/moo-indicators/pkg/multiobjective/benchmarks"
	"github.com/mihai-snyk/moo-indicators/pkg/multiobjective/framework"
)

func TestScalarizeSinglePoint(t *testing.T) {
	front, err := framework.NewFront(framework.ObjectiveSpacePoint{0.5, 0.5})
	require.NoError(t, err)
	weights, err := NewWeightVectorSet([][]float64{{0.5, 0.5}})
	require.NoError(t, err)

	m, err := TchebycheffScalarizer{}.Scalarize(context.Background(), front, weights)
	require.NoError(t, err)

	rows, cols := m.Dims()
	assert.Equal(t, 1, rows)
	assert.Equal(t, 1, cols)
	assert.Equal(t, 0.25, m.At(0, 0))
}

func TestScalarizeUsesAbsoluteValues(t *testing.T) {
	front, err := framework.NewFront(
		framework.ObjectiveSpacePoint{-2, 1},
		framework.ObjectiveSpacePoint{0.5, -3},
	)
	require.NoError(t, err)
	weights, err := NewWeightVectorSet([][]float64{{1, 0}, {0, 1}, {0.5, 0.5}})
	require.NoError(t, err)

	m, err := TchebycheffScalarizer{}.Scalarize(context.Background(), front, weights)
	require.NoError(t, err)

	want := mat.NewDense(2, 3, []float64{
		2, 1, 1,
		0.5, 3, 1.5,
	})
	assert.True(t, mat.Equal(want, m), "got %v", mat.Formatted(m))
}

func TestScalarizeErrors(t *testing.T) {
	ctx := context.Background()
	weights, err := GenerateUniformWeights(3)
	require.NoError(t, err)

	empty, err := framework.NewFront()
	require.NoError(t, err)
	_, err = TchebycheffScalarizer{}.Scalarize(ctx, empty, weights)
	assert.ErrorIs(t, err, framework.ErrEmptyInput)

	threeD, err := framework.NewFront(framework.ObjectiveSpacePoint{1, 2, 3})
	require.NoError(t, err)
	_, err = TchebycheffScalarizer{}.Scalarize(ctx, threeD, weights)
	assert.ErrorIs(t, err, framework.ErrDimensionMismatch)

	noWeights, err := NewWeightVectorSet(nil)
	require.NoError(t, err)
	twoD, err := framework.NewFront(framework.ObjectiveSpacePoint{1, 2})
	require.NoError(t, err)
	_, err = TchebycheffScalarizer{}.Scalarize(ctx, twoD, noWeights)
	assert.ErrorIs(t, err, framework.ErrEmptyInput)
}

func TestScalarizeParallelMatchesSequential(t *testing.T) {
	ctx := context.Background()
	front, err := benchmarks.ReferenceFront(benchmarks.NewZDT1(30), 257)
	require.NoError(t, err)
	weights, err := GenerateUniformWeights(64)
	require.NoError(t, err)

	sequential, err := TchebycheffScalarizer{}.Scalarize(ctx, front, weights)
	require.NoError(t, err)

	for _, parallelism := range []int{2, 4, 16} {
		parallel, err := TchebycheffScalarizer{Parallelism: parallelism}.Scalarize(ctx, front, weights)
		require.NoError(t, err)
		if diff := cmp.Diff(sequential.RawMatrix().Data, parallel.RawMatrix().Data); diff != "" {
			t.Errorf("parallelism %d differs from sequential (-want +got):\n%s", parallelism, diff)
		}
	}
}

func TestScalarizeCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	front, err := benchmarks.ReferenceFront(benchmarks.NewZDT1(30), 10)
	require.NoError(t, err)
	weights, err := GenerateUniformWeights(5)
	require.NoError(t, err)

	_, err = TchebycheffScalarizer{Parallelism: 4}.Scalarize(ctx, front, weights)
	assert.ErrorIs(t, err, context.Canceled)
}
