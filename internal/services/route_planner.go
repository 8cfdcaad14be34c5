package services

import (
	"context"
	"fmt"
	"nurse-route-service/internal/domain"
	"nurse-route-service/internal/platform/obs"
	"nurse-route-service/internal/ports"
	"slices"
)

type legFunc func(from, to domain.Coord) (domain.PathResult, error)

// PlanRoute runs one A* search per destination, in the given order, and
// stitches the legs into a single Route.
//
// A leg that cannot be reached is recorded in Failures and does not move the
// agent: the next leg starts from the last position actually reached.
func PlanRoute(grid *domain.Grid, start domain.Coord, ordered []domain.Destination) *domain.Route {
	route, _ := planLegs(start, ordered, func(from, to domain.Coord) (domain.PathResult, error) {
		return FindPath(grid, from, to), nil
	})
	return route
}

// PlanRouteWith is PlanRoute over an arbitrary PathFinder (e.g. a cached one).
// It only fails when the finder itself fails; unreachable legs are results.
func PlanRouteWith(
	ctx context.Context,
	grid *domain.Grid,
	start domain.Coord,
	ordered []domain.Destination,
	finder ports.PathFinder,
) (_ *domain.Route, err error) {
	defer obs.Time(ctx, "route.PlanRouteWith")(&err)

	if finder == nil {
		finder = AStar{}
	}

	return planLegs(start, ordered, func(from, to domain.Coord) (domain.PathResult, error) {
		return finder.FindPath(ctx, grid, from, to)
	})
}

func planLegs(start domain.Coord, ordered []domain.Destination, find legFunc) (*domain.Route, error) {
	route := &domain.Route{
		Start:        start,
		Destinations: slices.Clone(ordered),
		Legs:         make([]domain.Leg, 0, len(ordered)),
		Path:         []domain.Coord{},
		Boundaries:   []int{},
		Failures:     []domain.Destination{},
	}

	current := start
	for i, dest := range ordered {
		res, err := find(current, dest.Coord)
		if err != nil {
			return nil, fmt.Errorf("plan route: leg %d %v -> %v: %w", i+1, current, dest.Coord, err)
		}

		leg := domain.Leg{From: current, To: dest, PathFrom: -1, PathTo: -1}
		if !res.Found || len(res.Path) == 0 {
			route.Failures = append(route.Failures, dest)
			route.Legs = append(route.Legs, leg)
			continue
		}

		// The leg starts where the previous one ended; skip the seam cell.
		steps := res.Path
		leg.PathFrom = 0
		if len(route.Path) > 0 {
			leg.PathFrom = len(route.Path) - 1
			steps = steps[1:]
		}
		route.Path = append(route.Path, steps...)

		leg.PathTo = len(route.Path) - 1
		leg.Reached = true
		leg.Cost = res.Cost

		route.Legs = append(route.Legs, leg)
		route.Boundaries = append(route.Boundaries, leg.PathTo)
		current = dest.Coord
	}

	return route, nil
}
