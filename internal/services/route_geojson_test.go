package services

import (
	"encoding/json"
	"testing"
	"trip-planner-service/internal/domain"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"
)

func TestRouteFeatureCollection(t *testing.T) {
	plan := &domain.TripPlan{
		TripID: "trip-1",
		Stops: []domain.TripStop{
			{Order: 0, Index: 0, Waypoint: domain.Waypoint{Name: "Hub", Coordinates: &domain.Coordinates{Lon: -112.07, Lat: 33.45}}},
			{Order: 1, Index: 2, Waypoint: domain.Waypoint{Name: "Store", Coordinates: &domain.Coordinates{Lon: -112.00, Lat: 33.50}}},
			{Order: 2, Index: 1, Waypoint: domain.Waypoint{Name: "Depot", Coordinates: &domain.Coordinates{Lon: -111.90, Lat: 33.40}}},
		},
		TotalDurationSeconds: 600,
	}

	fc, err := RouteFeatureCollection(plan)
	require.NoError(t, err)
	require.Len(t, fc.Features, 4)

	require.Equal(t, orb.Point{-112.07, 33.45}, fc.Features[0].Geometry)
	require.Equal(t, "Store", fc.Features[1].Properties["name"])
	require.Equal(t, 2, fc.Features[2].Properties["order"])

	line, ok := fc.Features[3].Geometry.(orb.LineString)
	require.True(t, ok)
	require.Equal(t, orb.LineString{{-112.07, 33.45}, {-112.00, 33.50}, {-111.90, 33.40}}, line)
	require.Equal(t, "trip-1", fc.Features[3].Properties["trip_id"])

	b, err := json.Marshal(fc)
	require.NoError(t, err)
	require.Contains(t, string(b), `"type":"FeatureCollection"`)
	require.Contains(t, string(b), `"LineString"`)
}

func TestRouteFeatureCollectionSingleStop(t *testing.T) {
	plan := &domain.TripPlan{
		Stops: []domain.TripStop{
			{Waypoint: domain.Waypoint{Name: "Hub", Coordinates: &domain.Coordinates{Lon: 1, Lat: 2}}},
		},
	}

	fc, err := RouteFeatureCollection(plan)
	require.NoError(t, err)
	require.Len(t, fc.Features, 1)
}

func TestRouteFeatureCollectionNeedsCoordinates(t *testing.T) {
	plan := &domain.TripPlan{
		Stops: []domain.TripStop{
			{Waypoint: domain.Waypoint{Name: "Hub", Coordinates: &domain.Coordinates{Lon: 1, Lat: 2}}},
			{Order: 1, Waypoint: domain.Waypoint{Name: "Nowhere"}},
		},
	}

	_, err := RouteFeatureCollection(plan)
	require.ErrorIs(t, err, ErrMissingCoordinates)

	_, err = RouteFeatureCollection(nil)
	require.Error(t, err)
}
