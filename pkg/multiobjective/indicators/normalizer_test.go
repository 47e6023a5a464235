package indicators

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mihai-snyk/moo-indicators/pkg/multiobjective/framework"
)

func TestNormalizeReferenceAgainstItself(t *testing.T) {
	ref, err := framework.NewFront(
		framework.ObjectiveSpacePoint{1, 10, -2},
		framework.ObjectiveSpacePoint{3, 20, -1},
		framework.ObjectiveSpacePoint{2, 15, 0},
	)
	require.NoError(t, err)

	n, err := NewFrontNormalizerFromReference(ref)
	require.NoError(t, err)
	assert.Equal(t, 3, n.Dimensions())

	normalized, err := n.Normalize(ref)
	require.NoError(t, err)
	require.Equal(t, ref.Len(), normalized.Len())

	for _, p := range normalized.ObjectiveSpacePoints() {
		for _, v := range p {
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 1.0)
		}
	}
	assert.Equal(t, []framework.ObjectiveSpacePoint{
		{0, 0, 0},
		{1, 1, 0.5},
		{0.5, 0.5, 1},
	}, normalized.ObjectiveSpacePoints())

	// The reference itself is untouched.
	assert.Equal(t, []framework.ObjectiveSpacePoint{
		{1, 10, -2},
		{3, 20, -1},
		{2, 15, 0},
	}, ref.ObjectiveSpacePoints())
}

func TestNormalizeOutsideReferenceRange(t *testing.T) {
	n, err := NewFrontNormalizer([]float64{0, 0}, []float64{2, 4})
	require.NoError(t, err)

	front, err := framework.NewFront(framework.ObjectiveSpacePoint{3, -4})
	require.NoError(t, err)

	normalized, err := n.Normalize(front)
	require.NoError(t, err)
	assert.Equal(t, []framework.ObjectiveSpacePoint{{1.5, -1}}, normalized.ObjectiveSpacePoints())
}

func TestNormalizeDegenerateRange(t *testing.T) {
	ref, err := framework.NewFront(
		framework.ObjectiveSpacePoint{0, 5},
		framework.ObjectiveSpacePoint{1, 5},
	)
	require.NoError(t, err)

	n, err := NewFrontNormalizerFromReference(ref)
	require.NoError(t, err)

	_, err = n.Normalize(ref)
	assert.ErrorIs(t, err, framework.ErrInvalidArgument)
}

func TestNormalizeNonFiniteReference(t *testing.T) {
	tests := []struct {
		name   string
		points []framework.ObjectiveSpacePoint
	}{
		{
			name:   "not a number",
			points: []framework.ObjectiveSpacePoint{{0, 1}, {math.NaN(), 0}, {1, 0.5}},
		},
		{
			name:   "positive infinity",
			points: []framework.ObjectiveSpacePoint{{0, 1}, {math.Inf(1), 0}},
		},
		{
			name:   "negative infinity",
			points: []framework.ObjectiveSpacePoint{{math.Inf(-1), 1}, {1, 0}},
		},
		{
			name:   "range overflows",
			points: []framework.ObjectiveSpacePoint{{-math.MaxFloat64, 1}, {math.MaxFloat64, 0}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := framework.NewFront(tt.points...)
			require.NoError(t, err)

			_, err = NewFrontNormalizerFromReference(ref)
			assert.ErrorIs(t, err, framework.ErrInvalidArgument)

			weights, err := GenerateUniformWeights(2)
			require.NoError(t, err)
			_, err = NewR2(weights, WithReferenceFront(ref))
			assert.ErrorIs(t, err, framework.ErrInvalidArgument)
		})
	}
}

func TestNormalizeNonFiniteFront(t *testing.T) {
	n, err := NewFrontNormalizer([]float64{0, 0}, []float64{1, 1})
	require.NoError(t, err)

	front, err := framework.NewFront(
		framework.ObjectiveSpacePoint{0.5, 0.5},
		framework.ObjectiveSpacePoint{math.NaN(), 0},
	)
	require.NoError(t, err)

	_, err = n.Normalize(front)
	assert.ErrorIs(t, err, framework.ErrInvalidArgument)
}

func TestNewFrontNormalizerErrors(t *testing.T) {
	_, err := NewFrontNormalizer([]float64{0, 0}, []float64{1})
	assert.ErrorIs(t, err, framework.ErrDimensionMismatch)

	_, err = NewFrontNormalizer(nil, nil)
	assert.ErrorIs(t, err, framework.ErrEmptyInput)

	empty, err := framework.NewFront()
	require.NoError(t, err)
	_, err = NewFrontNormalizerFromReference(empty)
	assert.ErrorIs(t, err, framework.ErrEmptyInput)
}

func TestNormalizeDimensionMismatch(t *testing.T) {
	n, err := NewFrontNormalizer([]float64{0, 0}, []float64{1, 1})
	require.NoError(t, err)

	front, err := framework.NewFront(framework.ObjectiveSpacePoint{0.5, 0.5, 0.5})
	require.NoError(t, err)

	_, err = n.Normalize(front)
	assert.ErrorIs(t, err, framework.ErrDimensionMismatch)
}
