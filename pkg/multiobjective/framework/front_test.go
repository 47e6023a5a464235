package framework

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFrontRejectsMixedDimensions(t *testing.T) {
	_, err := NewFront(ObjectiveSpacePoint{1, 2}, ObjectiveSpacePoint{1, 2, 3})
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestFrontIsImmutable(t *testing.T) {
	raw := ObjectiveSpacePoint{1, 2}
	f, err := NewFront(raw)
	require.NoError(t, err)

	raw[0] = 42
	p, err := f.Point(0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, p.Value(0))

	coords := p.Coordinates()
	coords[1] = 42
	assert.Equal(t, 2.0, p.Value(1))
}

func TestFrontPointOutOfRange(t *testing.T) {
	f, err := NewFront(ObjectiveSpacePoint{0, 1})
	require.NoError(t, err)

	_, err = f.Point(1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = f.Point(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestFrontExtrema(t *testing.T) {
	f, err := NewFront(
		ObjectiveSpacePoint{0.5, 4},
		ObjectiveSpacePoint{-1, 7},
		ObjectiveSpacePoint{3, 2},
	)
	require.NoError(t, err)

	minimum, err := f.MinimumValues()
	require.NoError(t, err)
	assert.Equal(t, []float64{-1, 2}, minimum)

	maximum, err := f.MaximumValues()
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 7}, maximum)
}

func TestEmptyFront(t *testing.T) {
	f, err := NewFront()
	require.NoError(t, err)
	assert.True(t, f.IsEmpty())
	assert.Equal(t, 0, f.Dimensions())

	_, err = f.MinimumValues()
	assert.ErrorIs(t, err, ErrEmptyInput)
	_, err = f.MaximumValues()
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestFrontFromSolutions(t *testing.T) {
	solutions := []EvaluatedSolution{
		{Variables: []float64{0.1}, Values: ObjectiveSpacePoint{0.1, 0.9}},
		{Variables: []float64{0.4}, Values: ObjectiveSpacePoint{0.4, 0.6}},
	}
	f, err := FrontFromSolutions(solutions)
	require.NoError(t, err)
	assert.Equal(t, 2, f.Len())
	assert.Equal(t, 2, f.Dimensions())
	assert.Equal(t, []ObjectiveSpacePoint{{0.1, 0.9}, {0.4, 0.6}}, f.ObjectiveSpacePoints())
}
