package services

import (
	"fmt"
	"math"
	"strings"
	"trip-planner-service/internal/domain"
)

// MissingEntryPolicy decides what happens to a nil (failed) matrix element.
type MissingEntryPolicy int

const (
	// MissingReject fails the whole request when any off-diagonal element is missing.
	MissingReject MissingEntryPolicy = iota
	// MissingUnreachable substitutes domain.Unreachable for missing elements.
	MissingUnreachable
)

func (p MissingEntryPolicy) String() string {
	switch p {
	case MissingReject:
		return "reject"
	case MissingUnreachable:
		return "unreachable"
	default:
		return fmt.Sprintf("MissingEntryPolicy(%d)", int(p))
	}
}

// ParseMissingEntryPolicy maps "", "reject" and "unreachable" to a policy.
func ParseMissingEntryPolicy(s string) (MissingEntryPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "reject":
		return MissingReject, nil
	case "unreachable":
		return MissingUnreachable, nil
	default:
		return 0, fmt.Errorf("parse policy %q: %w", s, ErrUnknownPolicy)
	}
}

// BuildCostMatrices converts already-fetched duration and distance rows into
// the two cost matrices the solver consumes.
//
// Rows use the shape distance-matrix services return: float metrics with nil
// for elements that failed. Values are rounded to the nearest integer.
// Missing diagonal elements become 0; missing off-diagonal elements are
// handled according to policy.
func BuildCostMatrices(
	durations [][]*float64,
	distances [][]*float64,
	policy MissingEntryPolicy,
) (domain.CostMatrix, domain.CostMatrix, error) {
	n := len(durations)
	if n == 0 {
		return nil, nil, fmt.Errorf("build cost matrices: durations: %w", ErrEmptyInput)
	}
	if len(distances) != n {
		return nil, nil, fmt.Errorf(
			"build cost matrices: %d distance rows, %d duration rows: %w",
			len(distances), n, ErrInvalidDimension,
		)
	}

	timeM, err := buildMatrix("durations", durations, n, policy)
	if err != nil {
		return nil, nil, err
	}

	distM, err := buildMatrix("distances", distances, n, policy)
	if err != nil {
		return nil, nil, err
	}

	return timeM, distM, nil
}

func buildMatrix(name string, rows [][]*float64, n int, policy MissingEntryPolicy) (domain.CostMatrix, error) {
	m := make(domain.CostMatrix, n)
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf(
				"build cost matrices: %s row %d has %d elements, want %d: %w",
				name, i, len(row), n, ErrInvalidDimension,
			)
		}

		m[i] = make([]int64, n)
		for j, v := range row {
			if v == nil {
				if i == j {
					continue
				}
				if policy != MissingUnreachable {
					return nil, fmt.Errorf("build cost matrices: %s[%d][%d]: %w", name, i, j, ErrMissingEntry)
				}
				m[i][j] = domain.Unreachable
				continue
			}

			c, err := roundCost(*v)
			if err != nil {
				if i == j {
					continue
				}
				return nil, fmt.Errorf("build cost matrices: %s[%d][%d]: %w", name, i, j, err)
			}
			m[i][j] = c
		}
	}

	return m, nil
}

// roundCost converts a float metric to an integer cost within [0, domain.Unreachable].
func roundCost(v float64) (int64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("value %v: %w", v, ErrCostTooLarge)
	}

	r := math.Round(v)
	if r < 0 {
		return 0, fmt.Errorf("value %v: %w", v, ErrNegativeCost)
	}
	if r > float64(domain.Unreachable) {
		return 0, fmt.Errorf("value %v: %w", v, ErrCostTooLarge)
	}

	return int64(r), nil
}
