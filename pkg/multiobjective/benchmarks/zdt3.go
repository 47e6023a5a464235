package benchmarks

import (
	"math"

	"github.com/mihai-snyk/moo-indicators/pkg/multiobjective/framework"
)

// ZDT3 has a disconnected Pareto front
type ZDT3 struct {
	numVars int
}

func NewZDT3(numVars int) *ZDT3 {
	return &ZDT3{numVars: numVars}
}

func (p *ZDT3) Name() string {
	return "ZDT3"
}

func (p *ZDT3) NumVariables() int {
	return p.numVars
}

func (p *ZDT3) NumObjectives() int {
	return 2
}

func (p *ZDT3) ObjectiveFuncs() []framework.ObjectiveFunc {
	return []framework.ObjectiveFunc{zdtF1, p.f2}
}

func (p *ZDT3) f2(x []float64) float64 {
	g := zdtG(x)
	h := 1.0 - math.Sqrt(x[0]/g) - (x[0]/g)*math.Sin(10*math.Pi*x[0])
	return g * h
}

// TrueParetoFront samples the g=1 curve and keeps its non-dominated part,
// which is what makes the front disconnected.
func (p *ZDT3) TrueParetoFront(numPoints int) []framework.ObjectiveSpacePoint {
	curve := sampleFront(numPoints, func(x float64) float64 {
		return 1.0 - math.Sqrt(x) - x*math.Sin(10*math.Pi*x)
	})
	return framework.NonDominated(curve)
}
