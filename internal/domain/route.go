package domain

import "time"

// Represents a named location in a trip.
// Coordinates are optional and only needed for geographic export.
type Waypoint struct {
	Name        string
	Coordinates *Coordinates
}

// Input for planning a single trip.
// Waypoints[i] names row/column i of both matrices; index 0 is the start.
// Waypoints may be empty, in which case generated names are used.
type TripRequest struct {
	Waypoints      []Waypoint
	TimeMatrix     CostMatrix
	DistanceMatrix CostMatrix
	DepartAt       time.Time
}

// Represents a single stop in a trip.
// Order is the position in the visit order; Index is the matrix index.
// The first stop is the origin with zero-length legs.
// Once a leg costs Unreachable (or the schedule runs past a century), that
// stop and every later one have a zero ArriveAt.
type TripStop struct {
	Order              int
	Index              int
	Waypoint           Waypoint
	ArriveAt           time.Time
	LegDurationSeconds int64
	LegDistanceMeters  int64
	UnreachableLeg     bool
}

// Represents the planned visiting order for a trip.
// A TripPlan is the output of the optimizer and describes the ordered
// sequence of stops, the exact-optimal totals, and the totals of the greedy
// nearest-neighbor order for comparison.
// It is immutable planning data and contains no side effects.
type TripPlan struct {
	TripID                  string
	DepartAt                time.Time
	Stops                   []TripStop
	TotalDurationSeconds    int64
	TotalDistanceMeters     int64
	BaselineDurationSeconds int64
	BaselineDistanceMeters  int64
}

// Path returns the matrix indices of the stops in visit order.
func (p *TripPlan) Path() []int {
	path := make([]int, 0, len(p.Stops))
	for _, s := range p.Stops {
		path = append(path, s.Index)
	}
	return path
}

// HasUnreachableLeg reports whether the plan had to use a sentinel edge.
func (p *TripPlan) HasUnreachableLeg() bool {
	for _, s := range p.Stops {
		if s.UnreachableLeg {
			return true
		}
	}
	return false
}

// SavedSeconds is how much travel time the plan saves over the baseline.
func (p *TripPlan) SavedSeconds() int64 {
	return p.BaselineDurationSeconds - p.TotalDurationSeconds
}
