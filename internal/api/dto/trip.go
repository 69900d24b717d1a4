package dto

import (
	"encoding/json"
	"fmt"
	"time"
	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/services"
)

type WaypointRequest struct {
	Name string   `json:"name"`
	Lon  *float64 `json:"lon,omitempty"`
	Lat  *float64 `json:"lat,omitempty"`
}

// OptimizeRequest carries an already-fetched duration/distance matrix pair.
// Matrix elements may be null; missing_entries decides how nulls are treated.
type OptimizeRequest struct {
	Waypoints      []WaypointRequest `json:"waypoints"`
	Durations      [][]*float64      `json:"durations"`
	Distances      [][]*float64      `json:"distances"`
	MissingEntries string            `json:"missing_entries"`
	DepartAt       *time.Time        `json:"depart_at"`
	IncludeGeoJSON bool              `json:"include_geojson"`
}

type BatchOptimizeRequest struct {
	Trips []OptimizeRequest `json:"trips"`
}

// TripRequest converts the body into a domain request.
func (r OptimizeRequest) TripRequest() (domain.TripRequest, error) {
	policy, err := services.ParseMissingEntryPolicy(r.MissingEntries)
	if err != nil {
		return domain.TripRequest{}, err
	}

	timeM, distM, err := services.BuildCostMatrices(r.Durations, r.Distances, policy)
	if err != nil {
		return domain.TripRequest{}, err
	}

	waypoints := make([]domain.Waypoint, 0, len(r.Waypoints))
	for i, w := range r.Waypoints {
		wp := domain.Waypoint{Name: w.Name}
		switch {
		case w.Lon != nil && w.Lat != nil:
			wp.Coordinates = &domain.Coordinates{Lon: *w.Lon, Lat: *w.Lat}
		case w.Lon != nil || w.Lat != nil:
			return domain.TripRequest{}, fmt.Errorf("waypoint %d: lon and lat must be set together: %w", i, services.ErrInvalidCoordinates)
		}
		waypoints = append(waypoints, wp)
	}

	req := domain.TripRequest{
		Waypoints:      waypoints,
		TimeMatrix:     timeM,
		DistanceMatrix: distM,
	}
	if r.DepartAt != nil {
		req.DepartAt = *r.DepartAt
	}

	return req, nil
}

type StopResponse struct {
	Order              int        `json:"order"`
	Index              int        `json:"index"`
	Name               string     `json:"name"`
	Lon                *float64   `json:"lon,omitempty"`
	Lat                *float64   `json:"lat,omitempty"`
	ArriveAt           *time.Time `json:"arrive_at,omitempty"`
	LegDurationSeconds int64      `json:"leg_duration_seconds"`
	LegDistanceMeters  int64      `json:"leg_distance_meters"`
	UnreachableLeg     bool       `json:"unreachable_leg,omitempty"`
}

type TripResponse struct {
	TripID                  string          `json:"trip_id"`
	DepartAt                time.Time       `json:"depart_at"`
	Path                    []int           `json:"path"`
	TotalDurationSeconds    int64           `json:"total_duration_seconds"`
	TotalDistanceMeters     int64           `json:"total_distance_meters"`
	TotalDurationText       string          `json:"total_duration_text"`
	TotalDistanceText       string          `json:"total_distance_text"`
	BaselineDurationSeconds int64           `json:"baseline_duration_seconds"`
	BaselineDistanceMeters  int64           `json:"baseline_distance_meters"`
	SavedSeconds            int64           `json:"saved_seconds"`
	Stops                   []StopResponse  `json:"stops"`
	GeoJSON                 json.RawMessage `json:"geojson,omitempty"`
}

type BatchTripResponse struct {
	Trips []TripResponse `json:"trips"`
}

// NewTripResponse renders a plan. With withGeoJSON the visit order is also
// exported as a GeoJSON FeatureCollection.
func NewTripResponse(p *domain.TripPlan, withGeoJSON bool) (TripResponse, error) {
	res := TripResponse{
		TripID:                  p.TripID,
		DepartAt:                p.DepartAt,
		Path:                    p.Path(),
		TotalDurationSeconds:    p.TotalDurationSeconds,
		TotalDistanceMeters:     p.TotalDistanceMeters,
		TotalDurationText:       domain.FormatDuration(p.TotalDurationSeconds),
		TotalDistanceText:       domain.FormatDistance(p.TotalDistanceMeters),
		BaselineDurationSeconds: p.BaselineDurationSeconds,
		BaselineDistanceMeters:  p.BaselineDistanceMeters,
		SavedSeconds:            p.SavedSeconds(),
		Stops:                   make([]StopResponse, 0, len(p.Stops)),
	}

	for _, s := range p.Stops {
		stop := StopResponse{
			Order:              s.Order,
			Index:              s.Index,
			Name:               s.Waypoint.Name,
			LegDurationSeconds: s.LegDurationSeconds,
			LegDistanceMeters:  s.LegDistanceMeters,
			UnreachableLeg:     s.UnreachableLeg,
		}
		if c := s.Waypoint.Coordinates; c != nil {
			lon, lat := c.Lon, c.Lat
			stop.Lon, stop.Lat = &lon, &lat
		}
		if !s.ArriveAt.IsZero() {
			at := s.ArriveAt
			stop.ArriveAt = &at
		}
		res.Stops = append(res.Stops, stop)
	}

	if withGeoJSON {
		fc, err := services.RouteFeatureCollection(p)
		if err != nil {
			return TripResponse{}, err
		}
		b, err := json.Marshal(fc)
		if err != nil {
			return TripResponse{}, fmt.Errorf("encode geojson: %w", err)
		}
		res.GeoJSON = b
	}

	return res, nil
}
