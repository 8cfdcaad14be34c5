package ports

import (
	"context"
	"nurse-route-service/internal/domain"
)

// Contract for computing a single leg between two cells of a floor plan.
type PathFinder interface {
	// Return the shortest path from start to goal, or a result with Found == false.
	// An error means the finder itself failed, never that the goal is unreachable.
	FindPath(ctx context.Context, grid *domain.Grid, start, goal domain.Coord) (domain.PathResult, error)
}
