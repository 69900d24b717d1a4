package services

import "errors"

// Solver input errors. Each is returned wrapped with the offending detail;
// match with errors.Is.
var (
	// ErrEmptyInput is returned when the time matrix has no rows.
	ErrEmptyInput = errors.New("empty cost matrix")

	// ErrInvalidDimension is returned when a matrix is not square or the time
	// and distance matrices differ in size.
	ErrInvalidDimension = errors.New("invalid matrix dimension")

	// ErrNegativeCost is returned when an off-diagonal entry is negative.
	ErrNegativeCost = errors.New("negative cost")

	// ErrSizeLimitExceeded is returned when N exceeds the exact-solve ceiling.
	ErrSizeLimitExceeded = errors.New("waypoint count exceeds exact solver limit")

	// ErrCostTooLarge is returned when an off-diagonal entry exceeds
	// domain.Unreachable (or is not a finite number at assembly time).
	ErrCostTooLarge = errors.New("cost exceeds unreachable sentinel")
)

// Trip planning errors.
var (
	ErrMissingEntry       = errors.New("missing matrix entry")
	ErrUnknownPolicy      = errors.New("unknown missing-entry policy")
	ErrWaypointMismatch   = errors.New("waypoint count does not match matrix size")
	ErrEmptyWaypointName  = errors.New("waypoint name must be non-empty")
	ErrInvalidCoordinates = errors.New("waypoint coordinates out of range")
	ErrMissingCoordinates = errors.New("waypoint has no coordinates")
	ErrBatchTooLarge      = errors.New("batch exceeds maximum size")
)
