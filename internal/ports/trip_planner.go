package ports

import (
	"context"
	"trip-planner-service/internal/domain"
)

// Contract for turning cost matrices into optimal trip plans.
type TripPlanner interface {
	// Plan a single trip.
	PlanTrip(ctx context.Context, req domain.TripRequest) (*domain.TripPlan, error)
	// Plan independent trips; results are in request order.
	PlanTrips(ctx context.Context, reqs []domain.TripRequest) ([]*domain.TripPlan, error)
}
