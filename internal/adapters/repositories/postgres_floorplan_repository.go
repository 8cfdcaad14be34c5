package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"nurse-route-service/internal/domain"
	"nurse-route-service/internal/platform/obs"
	"nurse-route-service/internal/ports"
)

// Postgres-backed implementation of the FloorPlanRepository port.
type PostgresFloorPlanRepository struct{ DB *sql.DB }

func NewPostgresFloorPlanRepository(db *sql.DB) *PostgresFloorPlanRepository {
	return &PostgresFloorPlanRepository{DB: db}
}

// Load and validate the named floor plan.
func (p *PostgresFloorPlanRepository) LoadFloorPlan(ctx context.Context, name string) (_ *domain.Grid, err error) {
	defer obs.Time(ctx, "floorplan.repo.Load")(&err)

	if p.DB == nil {
		return nil, errors.New("postgres floor plan repository: DB is nil")
	}

	var raw []byte
	err = p.DB.QueryRowContext(ctx, `
	SELECT zones
	FROM floor_plans
	WHERE name = $1;
	`, name).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("load floor plan %q: %w", name, ports.ErrFloorPlanNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load floor plan %q: query floor_plans table: %w", name, err)
	}

	var zones [][]int
	if err := json.Unmarshal(raw, &zones); err != nil {
		return nil, fmt.Errorf("load floor plan %q: decode zones: %w", name, err)
	}

	g, err := domain.NewGrid(zones)
	if err != nil {
		return nil, fmt.Errorf("load floor plan %q: %w", name, err)
	}
	return g, nil
}
