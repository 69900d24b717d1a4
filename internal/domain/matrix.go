package domain

// Unreachable is the finite cost that encodes a missing edge.
//
// It is the largest cost the solver accepts. A full path of sentinel legs
// stays far below the int64 ceiling, so sums never wrap.
const Unreachable int64 = 1 << 40

// CostMatrix is an N×N grid of non-negative travel costs (seconds or meters).
// m[i][j] is the cost of travelling directly from waypoint i to waypoint j.
// It need not be symmetric; the diagonal is never read by the solver.
type CostMatrix [][]int64

// Size returns the number of rows.
func (m CostMatrix) Size() int { return len(m) }

// PathCost sums m along consecutive pairs of path.
func (m CostMatrix) PathCost(path []int) int64 {
	var total int64
	for k := 0; k+1 < len(path); k++ {
		total += m[path[k]][path[k+1]]
	}
	return total
}

// SolveResult is the outcome of an exact solve.
// Path is a permutation of 0..N-1 starting at 0 (open path, no return leg).
// TotalTime is summed over the time matrix and TotalDistance over the
// distance matrix, both along the same Path.
type SolveResult struct {
	Path          []int
	TotalDistance int64
	TotalTime     int64
}
