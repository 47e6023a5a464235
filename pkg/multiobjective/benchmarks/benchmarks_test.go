package benchmarks

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mihai-snyk/moo-indicators/pkg/multiobjective/framework"
)

func TestTrueParetoFrontsAreOptimal(t *testing.T) {
	tests := []struct {
		name    string
		problem framework.Problem
		f2      func(float64) float64
	}{
		{name: "ZDT1", problem: NewZDT1(30), f2: func(x float64) float64 { return 1 - math.Sqrt(x) }},
		{name: "ZDT2", problem: NewZDT2(30), f2: func(x float64) float64 { return 1 - x*x }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			front := tt.problem.TrueParetoFront(11)
			require.Len(t, front, 11)
			assert.Equal(t, 0.0, front[0][0])
			assert.Equal(t, 1.0, front[10][0])

			// Decision vectors with a zero tail land exactly on the true front.
			vars := make([]float64, tt.problem.NumVariables())
			vars[0] = 0.3
			sol := framework.Evaluate(tt.problem, vars)
			assert.InDelta(t, 0.3, sol.Values[0], 1e-12)
			assert.InDelta(t, tt.f2(0.3), sol.Values[1], 1e-12)
		})
	}
}

func TestZDT3FrontIsDisconnectedAndNonDominated(t *testing.T) {
	front := NewZDT3(30).TrueParetoFront(500)
	require.NotEmpty(t, front)
	assert.Less(t, len(front), 500)
	for i := range front {
		for j := range front {
			if i != j {
				assert.False(t, framework.Dominates(front[i], front[j]))
			}
		}
	}
}

func TestDTLZ2FrontOnUnitSphere(t *testing.T) {
	for _, objectives := range []int{2, 3} {
		front := NewDTLZ2(12, objectives).TrueParetoFront(100)
		require.NotEmpty(t, front)
		for _, p := range front {
			require.Len(t, p, objectives)
			sum := 0.0
			for _, v := range p {
				sum += v * v
			}
			assert.InDelta(t, 1.0, sum, 1e-12)
		}
	}
	assert.Nil(t, NewDTLZ2(12, 4).TrueParetoFront(100))
}

func TestDTLZ2OptimalSolutionOnFront(t *testing.T) {
	p := NewDTLZ2(12, 3)
	vars := make([]float64, p.NumVariables())
	for i := range vars {
		vars[i] = 0.5
	}
	sol := framework.Evaluate(p, vars)
	require.Len(t, sol.Values, 3)
	sum := 0.0
	for _, v := range sol.Values {
		sum += v * v
	}
	assert.InDelta(t, 1.0, sum, 1e-12)
}

func TestDTLZ2ObjectiveFuncs(t *testing.T) {
	funcs := NewDTLZ2(2, 3).ObjectiveFuncs()
	require.Len(t, funcs, 3)

	// x = (0, 1) sits on the f2 axis of the sphere.
	x := []float64{0, 1}
	assert.InDelta(t, 0.0, funcs[0](x), 1e-12)
	assert.InDelta(t, 1.0, funcs[1](x), 1e-12)
	assert.InDelta(t, 0.0, funcs[2](x), 1e-12)

	assert.Panics(t, func() { funcs[0]([]float64{0.5}) })
}

func TestByName(t *testing.T) {
	p, err := ByName("ZDT1", 30)
	require.NoError(t, err)
	assert.Equal(t, "ZDT1", p.Name())

	p, err = ByName("dtlz2-3", 12)
	require.NoError(t, err)
	assert.Equal(t, 3, p.NumObjectives())

	_, err = ByName("kursawe", 3)
	assert.ErrorIs(t, err, framework.ErrNotFound)
}

func TestReferenceFront(t *testing.T) {
	ref, err := ReferenceFront(NewZDT1(30), 100)
	require.NoError(t, err)
	assert.Equal(t, 100, ref.Len())
	assert.Equal(t, 2, ref.Dimensions())

	_, err = ReferenceFront(NewZDT1(30), 1)
	assert.ErrorIs(t, err, framework.ErrEmptyInput)
}
