package ports

import (
	"context"
	"nurse-route-service/internal/domain"
)

// Identifies a cached leg: a floor plan layout plus an ordered (start, goal) pair.
// Layout is the grid's Fingerprint, so a plan re-seeded under the same name
// gets fresh keys.
type LegKey struct {
	FloorPlan string
	Layout    uint64
	Start     domain.Coord
	Goal      domain.Coord
}

// Optional store of previously computed legs, including unreachable ones.
type LegCache interface {
	// Return the cached result and whether it was present.
	Get(ctx context.Context, key LegKey) (domain.PathResult, bool, error)
	Put(ctx context.Context, key LegKey, result domain.PathResult) error
}
