package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"nurse-route-service/internal/domain"
	"os"
	"strings"
)

// Initialize the Postgres database schema.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createFloorPlansQuery := `
	CREATE TABLE IF NOT EXISTS floor_plans (
		name TEXT PRIMARY KEY,
		zones JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	`

	createRouteRunsQuery := `
	CREATE TABLE IF NOT EXISTS route_runs (
		id UUID PRIMARY KEY,
		floor_plan TEXT NOT NULL,
		status TEXT NOT NULL,
		total_cost INTEGER NOT NULL,
		route JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_route_runs_floor_plan_created_at
	ON route_runs(floor_plan, created_at DESC);
	`

	statements := []string{
		createFloorPlansQuery,
		createRouteRunsQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type FloorPlanSeed struct {
	Name  string  `json:"name"`
	Zones [][]int `json:"zones"`
}

// ParseFloorPlanSeeds decodes and validates a JSON array of floor plans.
// Every plan must have a unique non-empty name and a rectangular zone matrix.
func ParseFloorPlanSeeds(data []byte) ([]FloorPlanSeed, error) {
	var raw []FloorPlanSeed
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("seed floor plans: parse json: %w", err)
	}

	seen := make(map[string]struct{}, len(raw))
	out := make([]FloorPlanSeed, 0, len(raw))
	for i, item := range raw {
		name := strings.TrimSpace(item.Name)
		if name == "" {
			return nil, fmt.Errorf("seed floor plans: item at index %d: name cannot be empty", i+1)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("seed floor plans: item at index %d: duplicate name %q", i+1, name)
		}
		seen[name] = struct{}{}

		if _, err := domain.NewGrid(item.Zones); err != nil {
			return nil, fmt.Errorf("seed floor plans: item %q: %w", name, err)
		}
		out = append(out, FloorPlanSeed{Name: name, Zones: item.Zones})
	}

	return out, nil
}

// Insert or replace a single floor plan.
func SeedFloorPlan(ctx context.Context, db *sql.DB, seed FloorPlanSeed) error {
	return seedFloorPlans(ctx, db, []FloorPlanSeed{seed})
}

// Populate the database with floor plans from a JSON file.
func SeedFromJSON(ctx context.Context, db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed floor plans: read %q: %w", jsonPath, err)
	}

	seeds, err := ParseFloorPlanSeeds(bytes)
	if err != nil {
		return err
	}

	return seedFloorPlans(ctx, db, seeds)
}

func seedFloorPlans(ctx context.Context, db *sql.DB, seeds []FloorPlanSeed) error {
	if db == nil {
		return errors.New("seed floor plans: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed floor plans: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO floor_plans (name, zones)
	VALUES ($1, $2)
	ON CONFLICT (name) DO UPDATE
	SET zones = EXCLUDED.zones,
		updated_at = now();
	`)
	if err != nil {
		return fmt.Errorf("seed floor plans: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, s := range seeds {
		zones, err := json.Marshal(s.Zones)
		if err != nil {
			return fmt.Errorf("seed floor plans: encode %q: %w", s.Name, err)
		}
		if _, err := stmt.ExecContext(ctx, s.Name, string(zones)); err != nil {
			return fmt.Errorf("seed floor plans: insert name=%q: %w", s.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed floor plans: commit tx: %w", err)
	}

	return nil
}
