package services

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"
	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/platform/obs"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"
)

type OptimizerOptions struct {
	// MaxWaypoints lowers the solver ceiling for this service (0 = MaxWaypoints).
	MaxWaypoints int
	// MaxConcurrent bounds simultaneous solves (0 = GOMAXPROCS).
	MaxConcurrent int
	// SolveTimeout bounds a single solve, including the wait for a slot (0 = none).
	SolveTimeout time.Duration
	// MaxBatch bounds the number of trips in one PlanTrips call (0 = 20).
	MaxBatch int

	Logger *slog.Logger
	Now    func() time.Time
	NewID  func() string
}

// Optimizer runs exact solves with bounded concurrency and caller-side
// cancellation. It holds no per-trip state and is safe for concurrent use.
type Optimizer struct {
	maxWaypoints  int
	maxConcurrent int
	maxBatch      int
	timeout       time.Duration
	sem           *semaphore.Weighted
	logger        *slog.Logger
	now           func() time.Time
	newID         func() string
}

func NewOptimizer(opts OptimizerOptions) *Optimizer {
	o := &Optimizer{
		maxWaypoints:  opts.MaxWaypoints,
		maxConcurrent: opts.MaxConcurrent,
		maxBatch:      opts.MaxBatch,
		timeout:       opts.SolveTimeout,
		logger:        opts.Logger,
		now:           opts.Now,
		newID:         opts.NewID,
	}

	if o.maxWaypoints <= 0 || o.maxWaypoints > MaxWaypoints {
		o.maxWaypoints = MaxWaypoints
	}
	if o.maxConcurrent <= 0 {
		o.maxConcurrent = runtime.GOMAXPROCS(0)
	}
	if o.maxBatch <= 0 {
		o.maxBatch = 20
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	if o.now == nil {
		o.now = time.Now
	}
	if o.newID == nil {
		o.newID = uuid.NewString
	}
	o.sem = semaphore.NewWeighted(int64(o.maxConcurrent))

	return o
}

// MaxWaypoints reports the ceiling this optimizer enforces.
func (o *Optimizer) MaxWaypoints() int { return o.maxWaypoints }

type solveOutcome struct {
	res *domain.SolveResult
	err error
}

// Solve runs HeldKarp on a worker goroutine once a solver slot is free.
//
// The DP has no early exit, so cancellation is layered on top: when ctx is
// done first, Solve returns ctx's error and the late result is discarded.
// The slot stays held until the abandoned solve finishes, which keeps the
// number of live DP tables bounded.
func (o *Optimizer) Solve(
	ctx context.Context,
	timeMatrix domain.CostMatrix,
	distanceMatrix domain.CostMatrix,
) (_ *domain.SolveResult, err error) {
	defer obs.Time(ctx, o.logger, "trip.solve")(&err)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("solve: %w", err)
	}

	if n := len(timeMatrix); n > o.maxWaypoints {
		return nil, fmt.Errorf("solve: %d waypoints, limit is %d: %w", n, o.maxWaypoints, ErrSizeLimitExceeded)
	}

	if o.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}

	if err := o.sem.Acquire(ctx, 1); err != nil {
		return nil, fmt.Errorf("solve: wait for solver slot: %w", err)
	}

	done := make(chan solveOutcome, 1)
	go func() {
		defer o.sem.Release(1)
		res, err := HeldKarp(timeMatrix, distanceMatrix)
		done <- solveOutcome{res: res, err: err}
	}()

	select {
	case out := <-done:
		if out.err != nil {
			return nil, fmt.Errorf("solve: %w", out.err)
		}
		return out.res, nil
	case <-ctx.Done():
		return nil, fmt.Errorf("solve: %w", ctx.Err())
	}
}
