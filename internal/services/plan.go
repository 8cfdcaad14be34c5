package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"nurse-route-service/internal/domain"
	"nurse-route-service/internal/ports"

	"github.com/google/uuid"
)

var ErrNoStart = errors.New("plan: stop list must contain a start position")

type PlanRequest struct {
	// Stops[0] is the start position; the remaining entries are destinations.
	Stops []domain.Coord
	// Schedule reorders destinations by ward priority before routing.
	Schedule bool
	Policy   TierPolicy
}

// Plan resolves, optionally schedules, and routes a raw stop list.
// The returned Route carries a fresh id.
func Plan(
	ctx context.Context,
	grid *domain.Grid,
	req PlanRequest,
	finder ports.PathFinder,
) (*domain.Route, error) {
	if grid == nil {
		return nil, errors.New("plan: grid must be non-nil")
	}
	if len(req.Stops) == 0 {
		return nil, ErrNoStart
	}

	start := req.Stops[0]
	dests := ResolveDestinations(grid, req.Stops[1:])
	if req.Schedule {
		dests = ScheduleDestinations(dests, req.Policy)
	}

	route, err := PlanRouteWith(ctx, grid, start, dests, finder)
	if err != nil {
		return nil, fmt.Errorf("plan: %w", err)
	}
	route.ID = uuid.NewString()

	log.Printf(
		"route planned id=%s start=%v legs=%d reached=%d failed=%d steps=%d status=%s",
		route.ID, start, len(route.Legs), len(route.Boundaries), len(route.Failures), len(route.Path), route.Status(),
	)

	return route, nil
}
