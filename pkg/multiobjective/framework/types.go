package framework

// ObjectiveFunc defines the interface for objective functions
type ObjectiveFunc func([]float64) float64

// ObjectiveSpacePoint represents an N-dimensional point in the objective space.
// As an example, for a problem with 2 objective functions f1 and f2, a point
// in the objective space could be [f1(x'), f2(x')], for the input of x'.
type ObjectiveSpacePoint []float64

// Point is an immutable objective vector. The zero value is a point with no
// dimensions.
type Point struct {
	coords []float64
}

// NewPoint copies coords into a new Point.
func NewPoint(coords ...float64) Point {
	c := make([]float64, len(coords))
	copy(c, coords)
	return Point{coords: c}
}

// Dimensions returns the number of objectives of the point.
func (p Point) Dimensions() int {
	return len(p.coords)
}

// Value returns the coordinate of dimension d. It panics if d is out of range,
// like a slice index would.
func (p Point) Value(d int) float64 {
	return p.coords[d]
}

// Coordinates returns a copy of the point's coordinates.
func (p Point) Coordinates() ObjectiveSpacePoint {
	c := make(ObjectiveSpacePoint, len(p.coords))
	copy(c, p.coords)
	return c
}

// ObjectiveProvider is implemented by anything that can be projected into the
// objective space, typically a solution produced by an optimization algorithm.
type ObjectiveProvider interface {
	Objectives() []float64
}

// EvaluatedSolution pairs decision variables with the objective values they
// produced.
type EvaluatedSolution struct {
	Variables []float64
	Values    ObjectiveSpacePoint
}

// Objectives implements ObjectiveProvider.
func (s EvaluatedSolution) Objectives() []float64 {
	return s.Values
}
