package frontio

import (
	"fmt"
	"io"

	"github.com/mihai-snyk/moo-indicators/pkg/multiobjective/framework"
)

// BuildReferenceFront keeps the non-dominated, distinct points of candidates.
// An empty input is rejected since a reference front must have extrema.
func BuildReferenceFront(candidates *framework.Front) (*framework.Front, error) {
	if candidates.IsEmpty() {
		return nil, fmt.Errorf("reference front from no points: %w", framework.ErrEmptyInput)
	}
	return framework.NewFront(framework.NonDominated(candidates.ObjectiveSpacePoints())...)
}

// GenerateReferenceFront reads objective vectors from r, filters them with
// BuildReferenceFront and writes the result to w separated by tabs.
func GenerateReferenceFront(r io.Reader, w io.Writer) (*framework.Front, error) {
	candidates, err := ReadFront(r)
	if err != nil {
		return nil, err
	}
	ref, err := BuildReferenceFront(candidates)
	if err != nil {
		return nil, err
	}
	if err := WriteFront(w, ref, "\t"); err != nil {
		return nil, err
	}
	return ref, nil
}
