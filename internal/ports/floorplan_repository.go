package ports

import (
	"context"
	"errors"
	"nurse-route-service/internal/domain"
)

var ErrFloorPlanNotFound = errors.New("floor plan not found")

// Port: a boundary for retrieving static floor plans by name.
type FloorPlanRepository interface {
	// Load and validate the named floor plan. Unknown names return ErrFloorPlanNotFound.
	LoadFloorPlan(ctx context.Context, name string) (*domain.Grid, error)
}
