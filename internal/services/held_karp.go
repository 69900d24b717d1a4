package services

import (
	"fmt"
	"math"
	"trip-planner-service/internal/domain"
)

// MaxWaypoints is the largest N the exact solver accepts.
//
// The DP tables hold 2^N·N cells each (about 1M cells at N=16), and the
// running time grows as 2^N·N², so larger inputs are rejected with
// ErrSizeLimitExceeded instead of being attempted.
const MaxWaypoints = 16

// inf marks DP states that have not been reached.
const inf = math.MaxInt64 / 2

// HeldKarp finds the minimum-time open path that starts at waypoint 0 and
// visits every other waypoint exactly once, using the Held–Karp dynamic
// program over subsets.
//
// dp[S][i] is the cheapest time of a path from 0 that visits exactly the set
// S (0 ∈ S) and ends at i. It is filled from dp[S\{i}][j] + time[j][i].
// Ties keep the first minimizer found: S, i and j are all scanned in
// ascending order and updates use strict <. The end point is the lowest i
// with minimal dp[FULL][i]; no return leg to 0 is added.
//
// The distance matrix does not influence the choice. TotalDistance is
// summed along the time-optimal path.
//
// Time O(2^N·N²), memory O(2^N·N). All validation happens before the DP
// tables are allocated. The function keeps no state between calls.
func HeldKarp(timeMatrix, distanceMatrix domain.CostMatrix) (*domain.SolveResult, error) {
	n, err := validateMatrices(timeMatrix, distanceMatrix)
	if err != nil {
		return nil, err
	}

	if n == 1 {
		return &domain.SolveResult{Path: []int{0}}, nil
	}

	full := 1<<n - 1
	dp := make([]int64, (full+1)*n)
	parent := make([]int8, (full+1)*n)
	for k := range dp {
		dp[k] = inf
		parent[k] = -1
	}
	dp[1*n+0] = 0

	// Odd masks are exactly the subsets that contain waypoint 0.
	for mask := 1; mask <= full; mask += 2 {
		for i := 1; i < n; i++ {
			bit := 1 << i
			if mask&bit == 0 {
				continue
			}
			prev := mask ^ bit
			cell := mask*n + i

			for j := 0; j < n; j++ {
				if j == i || prev&(1<<j) == 0 {
					continue
				}
				base := dp[prev*n+j]
				if base == inf {
					continue
				}
				cand := base + timeMatrix[j][i]
				if cand < dp[cell] {
					dp[cell] = cand
					parent[cell] = int8(j)
				}
			}
		}
	}

	end := -1
	best := int64(inf)
	for i := 1; i < n; i++ {
		if c := dp[full*n+i]; c < best {
			best = c
			end = i
		}
	}
	if end < 0 {
		// Unreachable with validated input: every entry is finite.
		return nil, fmt.Errorf("held karp: no path covers all %d waypoints", n)
	}

	path := make([]int, n)
	mask := full
	cur := end
	for k := n - 1; k >= 1; k-- {
		path[k] = cur
		prev := int(parent[mask*n+cur])
		mask ^= 1 << cur
		cur = prev
	}
	path[0] = cur

	return &domain.SolveResult{
		Path:          path,
		TotalDistance: distanceMatrix.PathCost(path),
		TotalTime:     timeMatrix.PathCost(path),
	}, nil
}

// validateMatrices checks shape, size ceiling and entry range of both matrices
// and returns N. Diagonal entries are not inspected.
func validateMatrices(timeMatrix, distanceMatrix domain.CostMatrix) (int, error) {
	n := len(timeMatrix)
	if n == 0 {
		return 0, fmt.Errorf("held karp: time matrix: %w", ErrEmptyInput)
	}

	if len(distanceMatrix) != n {
		return 0, fmt.Errorf(
			"held karp: distance matrix has %d rows, time matrix has %d: %w",
			len(distanceMatrix), n, ErrInvalidDimension,
		)
	}

	for i := 0; i < n; i++ {
		if len(timeMatrix[i]) != n {
			return 0, fmt.Errorf(
				"held karp: time matrix row %d has %d columns, want %d: %w",
				i, len(timeMatrix[i]), n, ErrInvalidDimension,
			)
		}
		if len(distanceMatrix[i]) != n {
			return 0, fmt.Errorf(
				"held karp: distance matrix row %d has %d columns, want %d: %w",
				i, len(distanceMatrix[i]), n, ErrInvalidDimension,
			)
		}
	}

	if n > MaxWaypoints {
		return 0, fmt.Errorf("held karp: %d waypoints, limit is %d: %w", n, MaxWaypoints, ErrSizeLimitExceeded)
	}

	if err := checkEntries("time", timeMatrix); err != nil {
		return 0, err
	}
	if err := checkEntries("distance", distanceMatrix); err != nil {
		return 0, err
	}

	return n, nil
}

func checkEntries(name string, m domain.CostMatrix) error {
	for i, row := range m {
		for j, c := range row {
			if i == j {
				continue
			}
			if c < 0 {
				return fmt.Errorf("held karp: %s[%d][%d]=%d: %w", name, i, j, c, ErrNegativeCost)
			}
			if c > domain.Unreachable {
				return fmt.Errorf("held karp: %s[%d][%d]=%d: %w", name, i, j, c, ErrCostTooLarge)
			}
		}
	}
	return nil
}
