package benchmarks

import (
	"math"

	"github.com/mihai-snyk/moo-indicators/pkg/multiobjective/framework"
)

// ZDT1 is a benchmark function used to test the correctness
// of multi-objective algorithms. For more details, check the article below:
// https://datacrayon.com/practical-evolutionary-algorithms/synthetic-objective-functions-and-zdt1/
type ZDT1 struct {
	numVars int
}

func NewZDT1(numVars int) *ZDT1 {
	return &ZDT1{
		numVars,
	}
}

func (p *ZDT1) Name() string {
	return "ZDT1"
}

func (p *ZDT1) NumVariables() int {
	return p.numVars
}

func (p *ZDT1) NumObjectives() int {
	return 2
}

func (p *ZDT1) ObjectiveFuncs() []framework.ObjectiveFunc {
	return []framework.ObjectiveFunc{
		zdtF1, p.f2,
	}
}

// f2 is the second ZDT1 objective
func (p *ZDT1) f2(x []float64) float64 {
	g := zdtG(x)
	return g * (1.0 - math.Sqrt(x[0]/g))
}

// TrueParetoFront generates numPoints points on the true Pareto front for ZDT1
func (p *ZDT1) TrueParetoFront(numPoints int) []framework.ObjectiveSpacePoint {
	return sampleFront(numPoints, func(x float64) float64 {
		return 1.0 - math.Sqrt(x)
	})
}

// zdtF1 is the first objective shared by the ZDT family
func zdtF1(x []float64) float64 {
	return x[0]
}

// zdtG is 1 on the Pareto optimal set and grows with the tail variables
func zdtG(x []float64) float64 {
	g := 1.0
	if len(x) < 2 {
		return g
	}
	for i := 1; i < len(x); i++ {
		g += 9.0 * x[i] / float64(len(x)-1)
	}
	return g
}

// sampleFront evaluates f2 on numPoints evenly spaced values of f1 in [0,1]
func sampleFront(numPoints int, f2 func(float64) float64) []framework.ObjectiveSpacePoint {
	if numPoints < 2 {
		return nil
	}
	points := make([]framework.ObjectiveSpacePoint, numPoints)
	for i := 0; i < numPoints; i++ {
		x := float64(i) / float64(numPoints-1)
		points[i] = framework.ObjectiveSpacePoint{
			x, f2(x),
		}
	}
	return points
}
