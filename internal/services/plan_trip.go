package services

import (
	"context"
	"fmt"
	"strings"
	"time"
	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/platform/obs"
)

// PlanTrip solves the trip exactly and turns the visiting order into
// scheduled stops.
//
// Matrix errors are reported before waypoint errors, and both before any
// solving starts. Arrival times accumulate leg durations from DepartAt
// (now, when zero). The greedy nearest-neighbor order is computed as well
// and reported as the baseline.
func (o *Optimizer) PlanTrip(ctx context.Context, req domain.TripRequest) (_ *domain.TripPlan, err error) {
	defer obs.Time(ctx, o.logger, "trip.plan")(&err)

	n, err := validateMatrices(req.TimeMatrix, req.DistanceMatrix)
	if err != nil {
		return nil, fmt.Errorf("plan trip: %w", err)
	}

	waypoints, err := resolveWaypoints(req.Waypoints, n)
	if err != nil {
		return nil, fmt.Errorf("plan trip: %w", err)
	}

	res, err := o.Solve(ctx, req.TimeMatrix, req.DistanceMatrix)
	if err != nil {
		return nil, fmt.Errorf("plan trip: %w", err)
	}

	baseline := NearestNeighborOrder(req.TimeMatrix)

	departAt := req.DepartAt
	if departAt.IsZero() {
		departAt = o.now()
	}

	return &domain.TripPlan{
		TripID:                  o.newID(),
		DepartAt:                departAt,
		Stops:                   buildStops(res.Path, waypoints, req.TimeMatrix, req.DistanceMatrix, departAt),
		TotalDurationSeconds:    res.TotalTime,
		TotalDistanceMeters:     res.TotalDistance,
		BaselineDurationSeconds: req.TimeMatrix.PathCost(baseline),
		BaselineDistanceMeters:  req.DistanceMatrix.PathCost(baseline),
	}, nil
}

// resolveWaypoints returns one waypoint per matrix index, generating names
// when none were supplied.
func resolveWaypoints(waypoints []domain.Waypoint, n int) ([]domain.Waypoint, error) {
	if len(waypoints) == 0 {
		out := make([]domain.Waypoint, n)
		for i := range out {
			out[i] = domain.Waypoint{Name: fmt.Sprintf("waypoint-%d", i)}
		}
		return out, nil
	}

	if len(waypoints) != n {
		return nil, fmt.Errorf("%d waypoints for %d matrix rows: %w", len(waypoints), n, ErrWaypointMismatch)
	}

	out := make([]domain.Waypoint, n)
	for i, w := range waypoints {
		name := strings.TrimSpace(w.Name)
		if name == "" {
			return nil, fmt.Errorf("waypoint %d: %w", i, ErrEmptyWaypointName)
		}
		if w.Coordinates != nil && !w.Coordinates.Valid() {
			return nil, fmt.Errorf("waypoint %d (%q): %w", i, name, ErrInvalidCoordinates)
		}
		out[i] = domain.Waypoint{Name: name, Coordinates: w.Coordinates}
	}

	return out, nil
}

// Stops further than this from departure get no arrival time.
const maxScheduledSeconds = 100 * 365 * 24 * 60 * 60

func buildStops(
	path []int,
	waypoints []domain.Waypoint,
	timeMatrix domain.CostMatrix,
	distanceMatrix domain.CostMatrix,
	departAt time.Time,
) []domain.TripStop {
	stops := make([]domain.TripStop, 0, len(path))
	currentTime := departAt
	scheduled := true
	var elapsed int64

	for k, idx := range path {
		stop := domain.TripStop{
			Order:    k,
			Index:    idx,
			Waypoint: waypoints[idx],
			ArriveAt: currentTime,
		}
		if k > 0 {
			prev := path[k-1]
			stop.LegDurationSeconds = timeMatrix[prev][idx]
			stop.LegDistanceMeters = distanceMatrix[prev][idx]
			stop.UnreachableLeg = stop.LegDurationSeconds >= domain.Unreachable ||
				stop.LegDistanceMeters >= domain.Unreachable

			// Sentinel-scale durations would overflow time.Duration.
			if stop.UnreachableLeg || elapsed+stop.LegDurationSeconds > maxScheduledSeconds {
				scheduled = false
			}
			if scheduled {
				elapsed += stop.LegDurationSeconds
				currentTime = currentTime.Add(time.Duration(stop.LegDurationSeconds) * time.Second)
				stop.ArriveAt = currentTime
			} else {
				stop.ArriveAt = time.Time{}
			}
		}
		stops = append(stops, stop)
	}

	return stops
}
