package indicators

import (
	"fmt"
	"io"
	"math"

	"github.com/mihai-snyk/moo-indicators/pkg/multiobjective/framework"
	"github.com/mihai-snyk/moo-indicators/pkg/multiobjective/frontio"
)

// DefaultWeightVectorCount is the number of uniform two-objective vectors used
// when nothing else is configured.
const DefaultWeightVectorCount = 100

// WeightVectorSet is an immutable, ordered collection of scalarization
// directions sharing one dimensionality.
type WeightVectorSet struct {
	vectors [][]float64
	dims    int
}

// NewWeightVectorSet copies vectors into a set. Every vector must have the same
// length and only non-negative finite entries.
func NewWeightVectorSet(vectors [][]float64) (*WeightVectorSet, error) {
	s := &WeightVectorSet{vectors: make([][]float64, len(vectors))}
	for i, v := range vectors {
		if i == 0 {
			if len(v) == 0 {
				return nil, fmt.Errorf("weight vectors need at least one component: %w", framework.ErrInvalidArgument)
			}
			s.dims = len(v)
		} else if len(v) != s.dims {
			return nil, fmt.Errorf("weight vector %d has %d components, expected %d: %w", i, len(v), s.dims, framework.ErrDimensionMismatch)
		}
		for d, w := range v {
			if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
				return nil, fmt.Errorf("weight vector %d component %d is %v: %w", i, d, w, framework.ErrInvalidArgument)
			}
		}
		s.vectors[i] = append([]float64(nil), v...)
	}
	return s, nil
}

// GenerateUniformWeights spreads count two-objective vectors evenly along the
// simplex edge: the n-th vector is (n/(count-1), 1-n/(count-1)).
func GenerateUniformWeights(count int) (*WeightVectorSet, error) {
	if count < 2 {
		return nil, fmt.Errorf("uniform weights need at least 2 vectors, got %d: %w", count, framework.ErrInvalidArgument)
	}
	vectors := make([][]float64, count)
	for n := 0; n < count; n++ {
		a := float64(n) / float64(count-1)
		vectors[n] = []float64{a, 1 - a}
	}
	return &WeightVectorSet{vectors: vectors, dims: 2}, nil
}

// GenerateSimplexLatticeWeights returns every vector whose components are
// multiples of 1/divisions and sum to one, for the given number of objectives.
// Vectors are ordered lexicographically by their first component ascending.
func GenerateSimplexLatticeWeights(objectives, divisions int) (*WeightVectorSet, error) {
	if objectives < 2 {
		return nil, fmt.Errorf("simplex lattice needs at least 2 objectives, got %d: %w", objectives, framework.ErrInvalidArgument)
	}
	if divisions < 1 {
		return nil, fmt.Errorf("simplex lattice needs at least 1 division, got %d: %w", divisions, framework.ErrInvalidArgument)
	}

	var vectors [][]float64
	current := make([]int, objectives)
	var walk func(dim, remaining int)
	walk = func(dim, remaining int) {
		if dim == objectives-1 {
			current[dim] = remaining
			v := make([]float64, objectives)
			for d, c := range current {
				v[d] = float64(c) / float64(divisions)
			}
			vectors = append(vectors, v)
			return
		}
		for c := 0; c <= remaining; c++ {
			current[dim] = c
			walk(dim+1, remaining-c)
		}
	}
	walk(0, divisions)

	return &WeightVectorSet{vectors: vectors, dims: objectives}, nil
}

// LoadWeightVectors builds a set from whitespace separated rows, one vector
// per line. The dimensionality is the token count of the first non-blank line.
// An empty source yields an empty set and no error.
func LoadWeightVectors(r io.Reader) (*WeightVectorSet, error) {
	rows, err := frontio.ReadRows(r)
	if err != nil {
		return nil, err
	}
	return weightsFromRows(rows)
}

// LoadWeightVectorsFile loads the weight vectors stored at path.
func LoadWeightVectorsFile(path string) (*WeightVectorSet, error) {
	rows, err := frontio.ReadRowsFile(path)
	if err != nil {
		return nil, err
	}
	s, err := weightsFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func weightsFromRows(rows [][]float64) (*WeightVectorSet, error) {
	s, err := NewWeightVectorSet(rows)
	if err != nil {
		// Rows already share a width, so only the value check can fail here.
		return nil, fmt.Errorf("%w: %w", framework.ErrMalformedInput, err)
	}
	return s, nil
}

// Len returns the number of vectors. A nil set has none.
func (s *WeightVectorSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.vectors)
}

// IsEmpty reports whether the set holds no vectors.
func (s *WeightVectorSet) IsEmpty() bool {
	return s.Len() == 0
}

// Dimensions returns the number of components of every vector, or 0 for an
// empty or nil set.
func (s *WeightVectorSet) Dimensions() int {
	if s == nil {
		return 0
	}
	return s.dims
}

// Vector returns a copy of the i-th vector.
func (s *WeightVectorSet) Vector(i int) ([]float64, error) {
	if i < 0 || i >= s.Len() {
		return nil, fmt.Errorf("weight vector %d of %d: %w", i, s.Len(), framework.ErrIndexOutOfRange)
	}
	return append([]float64(nil), s.vectors[i]...), nil
}

// Encode writes the set in the format read by LoadWeightVectors.
func (s *WeightVectorSet) Encode(w io.Writer) error {
	return frontio.WriteRows(w, s.vectors, " ")
}
