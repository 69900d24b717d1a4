package services

import (
	"fmt"
	"trip-planner-service/internal/domain"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// RouteFeatureCollection exports a plan as GeoJSON: one Point feature per
// stop, in visit order, followed by a LineString through all stops.
// The line is straight segments between waypoints, not a road geometry.
// Every waypoint must carry coordinates.
func RouteFeatureCollection(plan *domain.TripPlan) (*geojson.FeatureCollection, error) {
	if plan == nil {
		return nil, fmt.Errorf("route geojson: plan must be non-nil")
	}

	fc := geojson.NewFeatureCollection()
	line := make(orb.LineString, 0, len(plan.Stops))

	for _, s := range plan.Stops {
		if s.Waypoint.Coordinates == nil {
			return nil, fmt.Errorf("route geojson: stop %d (%q): %w", s.Order, s.Waypoint.Name, ErrMissingCoordinates)
		}
		pt := s.Waypoint.Coordinates.Point()
		line = append(line, pt)

		f := geojson.NewFeature(pt)
		f.Properties["name"] = s.Waypoint.Name
		f.Properties["order"] = s.Order
		f.Properties["index"] = s.Index
		if !s.ArriveAt.IsZero() {
			f.Properties["arrive_at"] = s.ArriveAt
		}
		fc.Append(f)
	}

	if len(line) > 1 {
		route := geojson.NewFeature(line)
		route.Properties["trip_id"] = plan.TripID
		route.Properties["total_duration_seconds"] = plan.TotalDurationSeconds
		route.Properties["total_distance_meters"] = plan.TotalDistanceMeters
		fc.Append(route)
	}

	return fc, nil
}
