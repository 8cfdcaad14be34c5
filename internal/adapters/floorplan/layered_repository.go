package floorplan

import (
	"context"
	"errors"
	"fmt"
	"nurse-route-service/internal/domain"
	"nurse-route-service/internal/ports"
)

// LayeredFloorPlanRepository asks each repository in turn and returns the
// first plan found. Only ErrFloorPlanNotFound moves on to the next layer;
// any other error is returned as is.
type LayeredFloorPlanRepository struct {
	Layers []ports.FloorPlanRepository
}

func NewLayeredFloorPlanRepository(layers ...ports.FloorPlanRepository) *LayeredFloorPlanRepository {
	return &LayeredFloorPlanRepository{Layers: layers}
}

func (l *LayeredFloorPlanRepository) LoadFloorPlan(ctx context.Context, name string) (*domain.Grid, error) {
	for _, repo := range l.Layers {
		g, err := repo.LoadFloorPlan(ctx, name)
		if err == nil {
			return g, nil
		}
		if !errors.Is(err, ports.ErrFloorPlanNotFound) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("load floor plan %q: %w", name, ports.ErrFloorPlanNotFound)
}
