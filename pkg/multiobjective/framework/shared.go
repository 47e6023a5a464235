package framework

// NonDominatedSort splits points into successive non-dominated fronts and
// returns the indices of the points belonging to each front.
func NonDominatedSort(points []ObjectiveSpacePoint) [][]int {
	if len(points) == 0 {
		return nil
	}

	var fronts [][]int
	dominated := make([][]int, len(points))
	domCount := make([]int, len(points))

	// Calculate domination for each point
	for i := 0; i < len(points); i++ {
		for j := 0; j < len(points); j++ {
			if i != j {
				if Dominates(points[i], points[j]) {
					dominated[i] = append(dominated[i], j)
				} else if Dominates(points[j], points[i]) {
					domCount[i]++
				}
			}
		}
	}

	// Find first front
	currentFront := []int{}
	for i := 0; i < len(points); i++ {
		if domCount[i] == 0 {
			currentFront = append(currentFront, i)
		}
	}

	// Find subsequent fronts
	for len(currentFront) > 0 {
		fronts = append(fronts, currentFront)
		nextFront := []int{}
		for _, idx := range currentFront {
			for _, dominatedIdx := range dominated[idx] {
				domCount[dominatedIdx]--
				if domCount[dominatedIdx] == 0 {
					nextFront = append(nextFront, dominatedIdx)
				}
			}
		}
		currentFront = nextFront
	}

	return fronts
}

// Dominates checks if point a dominates point b, assuming every objective is
// minimized.
func Dominates(a, b ObjectiveSpacePoint) bool {
	better := false
	for i := 0; i < len(a); i++ {
		if a[i] > b[i] {
			return false
		}
		if a[i] < b[i] {
			better = true
		}
	}
	return better
}

// NonDominated returns the first non-dominated front of points, keeping input
// order and dropping exact duplicates.
func NonDominated(points []ObjectiveSpacePoint) []ObjectiveSpacePoint {
	fronts := NonDominatedSort(points)
	if len(fronts) == 0 {
		return nil
	}

	// The first front is collected in ascending index order.
	out := make([]ObjectiveSpacePoint, 0, len(fronts[0]))
	for _, idx := range fronts[0] {
		if containsPoint(out, points[idx]) {
			continue
		}
		p := make(ObjectiveSpacePoint, len(points[idx]))
		copy(p, points[idx])
		out = append(out, p)
	}
	return out
}

func containsPoint(points []ObjectiveSpacePoint, p ObjectiveSpacePoint) bool {
	for _, q := range points {
		if equalPoints(p, q) {
			return true
		}
	}
	return false
}

func equalPoints(a, b ObjectiveSpacePoint) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
