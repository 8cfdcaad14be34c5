package services

import (
	"context"
	"log"
	"nurse-route-service/internal/domain"
	"nurse-route-service/internal/ports"
)

// CachingPathFinder consults a LegCache before delegating to Next.
//
// A leg's result depends only on the grid layout and the (start, goal) pair,
// so keys carry the grid fingerprint next to the plan name. Unreachable
// results are cached too. Cache failures are logged and never fail the search.
type CachingPathFinder struct {
	Cache     ports.LegCache
	Next      ports.PathFinder
	FloorPlan string
}

func (c *CachingPathFinder) FindPath(
	ctx context.Context,
	grid *domain.Grid,
	start domain.Coord,
	goal domain.Coord,
) (domain.PathResult, error) {
	next := c.Next
	if next == nil {
		next = AStar{}
	}

	key := ports.LegKey{FloorPlan: c.FloorPlan, Layout: grid.Fingerprint(), Start: start, Goal: goal}
	if c.Cache != nil {
		res, ok, err := c.Cache.Get(ctx, key)
		if err != nil {
			log.Printf("leg cache read failed: key=%s|%016x|%v|%v err=%v", key.FloorPlan, key.Layout, start, goal, err)
		} else if ok {
			return res, nil
		}
	}

	res, err := next.FindPath(ctx, grid, start, goal)
	if err != nil {
		return domain.PathResult{}, err
	}

	if c.Cache != nil {
		if err := c.Cache.Put(ctx, key, res); err != nil {
			log.Printf("leg cache write failed: key=%s|%016x|%v|%v err=%v", key.FloorPlan, key.Layout, start, goal, err)
		}
	}

	return res, nil
}
