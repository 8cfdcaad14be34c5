package floorplan

import (
	"context"
	"fmt"
	"nurse-route-service/internal/domain"
	"nurse-route-service/internal/ports"
	"strings"
	"sync"
)

// In-memory implementation of the FloorPlanRepository port.
// Grids are built and validated once at registration and then shared.
type StaticFloorPlanRepository struct {
	mu    sync.RWMutex
	grids map[string]*domain.Grid
}

// NewStaticFloorPlanRepository returns a repository holding the built-in hospital plan.
func NewStaticFloorPlanRepository() *StaticFloorPlanRepository {
	r := &StaticFloorPlanRepository{grids: make(map[string]*domain.Grid)}
	if err := r.Register(HospitalName, hospitalZones); err != nil {
		panic(fmt.Sprintf("built-in floor plan is invalid: %v", err))
	}
	return r
}

// Register validates rows and stores them under name, replacing any previous plan.
func (r *StaticFloorPlanRepository) Register(name string, rows [][]int) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("register floor plan: name must be non-empty")
	}

	g, err := domain.NewGrid(rows)
	if err != nil {
		return fmt.Errorf("register floor plan %q: %w", name, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.grids[name] = g
	return nil
}

func (r *StaticFloorPlanRepository) LoadFloorPlan(_ context.Context, name string) (*domain.Grid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	g, ok := r.grids[strings.TrimSpace(name)]
	if !ok {
		return nil, fmt.Errorf("load floor plan %q: %w", name, ports.ErrFloorPlanNotFound)
	}
	return g, nil
}

// HospitalZones returns a copy of the built-in hospital zone matrix.
func HospitalZones() [][]int {
	out := make([][]int, len(hospitalZones))
	for i, row := range hospitalZones {
		out[i] = append([]int(nil), row...)
	}
	return out
}
