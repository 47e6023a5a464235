package framework

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDominates(t *testing.T) {
	tests := []struct {
		name string
		a, b ObjectiveSpacePoint
		want bool
	}{
		{name: "strictly better", a: ObjectiveSpacePoint{0, 0}, b: ObjectiveSpacePoint{1, 1}, want: true},
		{name: "better in one", a: ObjectiveSpacePoint{0, 1}, b: ObjectiveSpacePoint{1, 1}, want: true},
		{name: "equal", a: ObjectiveSpacePoint{1, 1}, b: ObjectiveSpacePoint{1, 1}, want: false},
		{name: "trade-off", a: ObjectiveSpacePoint{0, 2}, b: ObjectiveSpacePoint{1, 1}, want: false},
		{name: "worse", a: ObjectiveSpacePoint{2, 2}, b: ObjectiveSpacePoint{1, 1}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Dominates(tt.a, tt.b))
		})
	}
}

func TestNonDominatedSort(t *testing.T) {
	points := []ObjectiveSpacePoint{
		{1, 1}, // 0: front 0
		{2, 2}, // 1: front 1
		{0, 3}, // 2: front 0
		{3, 3}, // 3: front 2
		{3, 0}, // 4: front 0
	}
	fronts := NonDominatedSort(points)
	assert.Equal(t, [][]int{{0, 2, 4}, {1}, {3}}, fronts)
	assert.Nil(t, NonDominatedSort(nil))
}

func TestNonDominatedDropsDuplicates(t *testing.T) {
	points := []ObjectiveSpacePoint{
		{0, 1},
		{1, 0},
		{0, 1},
		{2, 2},
	}
	assert.Equal(t, []ObjectiveSpacePoint{{0, 1}, {1, 0}}, NonDominated(points))
}
