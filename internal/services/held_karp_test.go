package services

import (
	"math"
	"math/rand"
	"testing"
	"trip-planner-service/internal/domain"

	"github.com/stretchr/testify/require"
)

// bruteForce returns the minimum time of any open path from 0 over m.
func bruteForce(m domain.CostMatrix) int64 {
	n := len(m)
	rest := make([]int, 0, n-1)
	for i := 1; i < n; i++ {
		rest = append(rest, i)
	}

	best := int64(math.MaxInt64)
	var permute func(k int)
	permute = func(k int) {
		if k == len(rest) {
			path := append([]int{0}, rest...)
			if c := m.PathCost(path); c < best {
				best = c
			}
			return
		}
		for i := k; i < len(rest); i++ {
			rest[k], rest[i] = rest[i], rest[k]
			permute(k + 1)
			rest[k], rest[i] = rest[i], rest[k]
		}
	}
	permute(0)

	return best
}

func randomMatrix(r *rand.Rand, n int, maxCost int64) domain.CostMatrix {
	m := make(domain.CostMatrix, n)
	for i := range m {
		m[i] = make([]int64, n)
		for j := range m[i] {
			if i != j {
				m[i][j] = r.Int63n(maxCost + 1)
			}
		}
	}
	return m
}

func filled(n int, v int64) domain.CostMatrix {
	m := make(domain.CostMatrix, n)
	for i := range m {
		m[i] = make([]int64, n)
		for j := range m[i] {
			if i != j {
				m[i][j] = v
			}
		}
	}
	return m
}

func requirePermutationFromZero(t *testing.T, path []int, n int) {
	t.Helper()

	require.Len(t, path, n)
	require.Equal(t, 0, path[0])

	seen := make([]bool, n)
	for _, idx := range path {
		require.True(t, idx >= 0 && idx < n, "index %d out of range", idx)
		require.False(t, seen[idx], "index %d visited twice", idx)
		seen[idx] = true
	}
}

func TestHeldKarpThreeWaypoints(t *testing.T) {
	timeM := domain.CostMatrix{
		{0, 10, 15},
		{10, 0, 20},
		{15, 20, 0},
	}
	distM := domain.CostMatrix{
		{0, 100, 150},
		{100, 0, 200},
		{150, 200, 0},
	}

	res, err := HeldKarp(timeM, distM)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, res.Path)
	require.Equal(t, int64(30), res.TotalTime)
	require.Equal(t, int64(300), res.TotalDistance)
}

func TestHeldKarpSingleWaypoint(t *testing.T) {
	res, err := HeldKarp(domain.CostMatrix{{7}}, domain.CostMatrix{{9}})
	require.NoError(t, err)
	require.Equal(t, []int{0}, res.Path)
	require.Zero(t, res.TotalTime)
	require.Zero(t, res.TotalDistance)
}

func TestHeldKarpTwoWaypoints(t *testing.T) {
	res, err := HeldKarp(
		domain.CostMatrix{{0, 42}, {1, 0}},
		domain.CostMatrix{{0, 500}, {1, 0}},
	)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, res.Path)
	require.Equal(t, int64(42), res.TotalTime)
	require.Equal(t, int64(500), res.TotalDistance)
}

func TestHeldKarpMatchesBruteForce(t *testing.T) {
	r := rand.New(rand.NewSource(12))

	for n := 1; n <= 8; n++ {
		for trial := 0; trial < 25; trial++ {
			timeM := randomMatrix(r, n, 1000)
			distM := randomMatrix(r, n, 5000)

			res, err := HeldKarp(timeM, distM)
			require.NoError(t, err)
			requirePermutationFromZero(t, res.Path, n)

			if n > 1 {
				require.Equal(t, bruteForce(timeM), res.TotalTime, "n=%d trial=%d", n, trial)
			}
			require.Equal(t, timeM.PathCost(res.Path), res.TotalTime)
			require.Equal(t, distM.PathCost(res.Path), res.TotalDistance)
		}
	}
}

func TestHeldKarpDistanceFollowsTimePath(t *testing.T) {
	// 0→1→2 is fastest (2) but longest (2000); 0→2→1 is slow (20) but short (2).
	timeM := domain.CostMatrix{
		{0, 1, 10},
		{1, 0, 1},
		{10, 10, 0},
	}
	distM := domain.CostMatrix{
		{0, 1000, 1},
		{1000, 0, 1000},
		{1, 1, 0},
	}

	res, err := HeldKarp(timeM, distM)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, res.Path)
	require.Equal(t, int64(2), res.TotalTime)
	require.Equal(t, int64(2000), res.TotalDistance)
}

func TestHeldKarpAsymmetric(t *testing.T) {
	// Going 1→2 is cheap, 2→1 is expensive.
	timeM := domain.CostMatrix{
		{0, 5, 5},
		{5, 0, 1},
		{5, 100, 0},
	}

	res, err := HeldKarp(timeM, filled(3, 1))
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, res.Path)
	require.Equal(t, int64(6), res.TotalTime)
}

func TestHeldKarpTieBreakIsLowestIndex(t *testing.T) {
	// Every path costs the same. The lowest end point wins, and each state
	// keeps the lowest-index predecessor, so the walk back is 1←2←3←4←0.
	res, err := HeldKarp(filled(5, 3), filled(5, 1))
	require.NoError(t, err)
	require.Equal(t, int64(12), res.TotalTime)
	require.Equal(t, []int{0, 4, 3, 2, 1}, res.Path)
}

func TestHeldKarpDeterministic(t *testing.T) {
	r := rand.New(rand.NewSource(77))
	// Small cost range forces many ties.
	timeM := randomMatrix(r, 9, 3)
	distM := randomMatrix(r, 9, 3)

	first, err := HeldKarp(timeM, distM)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := HeldKarp(timeM, distM)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestHeldKarpRoutesAroundUnreachable(t *testing.T) {
	timeM := domain.CostMatrix{
		{0, domain.Unreachable, 10, domain.Unreachable},
		{domain.Unreachable, 0, domain.Unreachable, 10},
		{10, 10, 0, domain.Unreachable},
		{domain.Unreachable, 10, 10, 0},
	}

	res, err := HeldKarp(timeM, filled(4, 1))
	require.NoError(t, err)
	require.Equal(t, []int{0, 2, 1, 3}, res.Path)
	require.Equal(t, int64(30), res.TotalTime)
	require.Less(t, res.TotalTime, domain.Unreachable)
}

func TestHeldKarpUnreachableDoesNotOverflow(t *testing.T) {
	n := 12
	timeM := filled(n, domain.Unreachable)
	distM := filled(n, domain.Unreachable)

	res, err := HeldKarp(timeM, distM)
	require.NoError(t, err)
	requirePermutationFromZero(t, res.Path, n)
	require.Equal(t, int64(n-1)*domain.Unreachable, res.TotalTime)
	require.Equal(t, int64(n-1)*domain.Unreachable, res.TotalDistance)
	require.Positive(t, res.TotalTime)
}

func TestHeldKarpForcedUnreachableLeg(t *testing.T) {
	// Waypoint 2 can only be entered through a sentinel edge.
	timeM := domain.CostMatrix{
		{0, 5, domain.Unreachable},
		{5, 0, domain.Unreachable},
		{1, domain.Unreachable, 0},
	}

	res, err := HeldKarp(timeM, filled(3, 1))
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, res.Path)
	require.Equal(t, 5+domain.Unreachable, res.TotalTime)
}

func TestHeldKarpIgnoresDiagonal(t *testing.T) {
	timeM := domain.CostMatrix{
		{-1, 10, 15},
		{10, math.MaxInt64, 20},
		{15, 20, -99},
	}

	res, err := HeldKarp(timeM, filled(3, 1))
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, res.Path)
	require.Equal(t, int64(30), res.TotalTime)
}

func TestHeldKarpLargestAllowed(t *testing.T) {
	if testing.Short() {
		t.Skip("exact solve at the size ceiling")
	}

	r := rand.New(rand.NewSource(34))
	timeM := randomMatrix(r, MaxWaypoints, 10_000)
	distM := randomMatrix(r, MaxWaypoints, 10_000)

	res, err := HeldKarp(timeM, distM)
	require.NoError(t, err)
	requirePermutationFromZero(t, res.Path, MaxWaypoints)
	require.Equal(t, timeM.PathCost(res.Path), res.TotalTime)
}

func TestHeldKarpValidation(t *testing.T) {
	ok3 := filled(3, 1)

	tests := []struct {
		name    string
		timeM   domain.CostMatrix
		distM   domain.CostMatrix
		wantErr error
	}{
		{"empty", domain.CostMatrix{}, domain.CostMatrix{}, ErrEmptyInput},
		{"nil", nil, nil, ErrEmptyInput},
		{"non-square time", domain.CostMatrix{{0, 1}, {1, 0, 2}}, filled(2, 1), ErrInvalidDimension},
		{"non-square distance", ok3, domain.CostMatrix{{0, 1, 1}, {1, 0}, {1, 1, 0}}, ErrInvalidDimension},
		{"dimension mismatch", ok3, filled(2, 1), ErrInvalidDimension},
		{"distance empty", ok3, domain.CostMatrix{}, ErrInvalidDimension},
		{"negative time", domain.CostMatrix{{0, -1}, {1, 0}}, filled(2, 1), ErrNegativeCost},
		{"negative distance", filled(2, 1), domain.CostMatrix{{0, 1}, {-5, 0}}, ErrNegativeCost},
		{"too large", domain.CostMatrix{{0, domain.Unreachable + 1}, {1, 0}}, filled(2, 1), ErrCostTooLarge},
		{"too many waypoints", filled(MaxWaypoints+1, 1), filled(MaxWaypoints+1, 1), ErrSizeLimitExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := HeldKarp(tt.timeM, tt.distM)
			require.ErrorIs(t, err, tt.wantErr)
			require.Nil(t, res)
		})
	}
}

func TestHeldKarpErrorsAreDistinct(t *testing.T) {
	errs := []error{ErrEmptyInput, ErrInvalidDimension, ErrNegativeCost, ErrSizeLimitExceeded, ErrCostTooLarge}
	for i := range errs {
		for j := range errs {
			if i != j {
				require.NotErrorIs(t, errs[i], errs[j])
			}
		}
	}
}
