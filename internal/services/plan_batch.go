package services

import (
	"context"
	"fmt"
	"trip-planner-service/internal/domain"

	"golang.org/x/sync/errgroup"
)

// PlanTrips plans several independent trips concurrently.
// Plans come back in request order. The first failure cancels the
// remaining trips and is returned alone.
func (o *Optimizer) PlanTrips(ctx context.Context, reqs []domain.TripRequest) ([]*domain.TripPlan, error) {
	if len(reqs) > o.maxBatch {
		return nil, fmt.Errorf("plan trips: %d trips, limit is %d: %w", len(reqs), o.maxBatch, ErrBatchTooLarge)
	}

	plans := make([]*domain.TripPlan, len(reqs))
	if len(reqs) == 0 {
		return plans, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.maxConcurrent)

	for i, req := range reqs {
		i, req := i, req
		g.Go(func() error {
			plan, err := o.PlanTrip(gctx, req)
			if err != nil {
				return fmt.Errorf("plan trips: trip %d: %w", i, err)
			}
			plans[i] = plan
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return plans, nil
}
