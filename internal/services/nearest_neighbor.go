package services

import (
	"trip-planner-service/internal/domain"
)

// NearestNeighborOrder builds a visiting order using a greedy nearest-neighbor pass.
//
// Starting at waypoint 0, it repeatedly moves to the unvisited waypoint with
// the smallest travel time from the current one. It does not attempt global
// optimization; the result is reported next to the exact solve as a baseline.
// The matrix is expected to be validated already.
func NearestNeighborOrder(timeMatrix domain.CostMatrix) []int {
	n := len(timeMatrix)
	if n == 0 {
		return []int{}
	}

	visited := make([]bool, n)
	visited[0] = true

	order := make([]int, 0, n)
	order = append(order, 0)
	current := 0

	for len(order) < n {
		best := -1
		var minDuration int64

		// Select next stop by minimum travel duration (greedy step).
		for candidate := 1; candidate < n; candidate++ {
			if visited[candidate] {
				continue
			}
			d := timeMatrix[current][candidate]
			// Strict comparison keeps the lowest index on ties.
			if best == -1 || d < minDuration {
				best = candidate
				minDuration = d
			}
		}

		visited[best] = true
		order = append(order, best)
		current = best
	}

	return order
}
