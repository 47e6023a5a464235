// Package benchmarks provides synthetic problems with known Pareto fronts that
// serve as reference fronts when scoring approximations.
package benchmarks

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mihai-snyk/moo-indicators/pkg/multiobjective/framework"
)

var registry = map[string]func(numVars int) framework.Problem{
	"zdt1":    func(n int) framework.Problem { return NewZDT1(n) },
	"zdt2":    func(n int) framework.Problem { return NewZDT2(n) },
	"zdt3":    func(n int) framework.Problem { return NewZDT3(n) },
	"dtlz2":   func(n int) framework.Problem { return NewDTLZ2(n, 2) },
	"dtlz2-3": func(n int) framework.Problem { return NewDTLZ2(n, 3) },
}

// Names lists the registered benchmark names.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ByName returns the benchmark registered under name (case insensitive).
func ByName(name string, numVars int) (framework.Problem, error) {
	newProblem, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown benchmark %q, expected one of %s: %w", name, strings.Join(Names(), ", "), framework.ErrNotFound)
	}
	return newProblem(numVars), nil
}

// ReferenceFront returns numPoints samples of the true Pareto front of p.
func ReferenceFront(p framework.Problem, numPoints int) (*framework.Front, error) {
	points := p.TrueParetoFront(numPoints)
	if len(points) == 0 {
		return nil, fmt.Errorf("%s has no sampled Pareto front for %d points: %w", p.Name(), numPoints, framework.ErrEmptyInput)
	}
	return framework.NewFront(points...)
}
