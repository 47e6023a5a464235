package framework

// Problem describes the contract a specific multi-objective problem needs to implement.
type Problem interface {
	Name() string

	NumVariables() int
	// NumObjectives is the dimensionality of the problem's objective space.
	NumObjectives() int
	ObjectiveFuncs() []ObjectiveFunc

	// TrueParetoFront is optional due to the difficulty of finding the true front
	// in some types of problems. When there isn't a way to find the true front,
	// just return nil.
	TrueParetoFront(int) []ObjectiveSpacePoint
}

// Evaluate runs every objective function of p against vars.
func Evaluate(p Problem, vars []float64) EvaluatedSolution {
	funcs := p.ObjectiveFuncs()
	values := make(ObjectiveSpacePoint, len(funcs))
	for i, f := range funcs {
		values[i] = f(vars)
	}
	v := make([]float64, len(vars))
	copy(v, vars)
	return EvaluatedSolution{
		Variables: v,
		Values:    values,
	}
}
