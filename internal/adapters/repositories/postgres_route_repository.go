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

	"github.com/google/uuid"
)

// Postgres-backed implementation of the RouteRepository port.
// Routes are stored as a JSON document next to a few queryable summary columns.
type PostgresRouteRepository struct{ DB *sql.DB }

func NewPostgresRouteRepository(db *sql.DB) *PostgresRouteRepository {
	return &PostgresRouteRepository{DB: db}
}

func (p *PostgresRouteRepository) SaveRoute(ctx context.Context, floorPlan string, route *domain.Route) (err error) {
	defer obs.Time(ctx, "route.repo.Save")(&err)

	if p.DB == nil {
		return errors.New("postgres route repository: DB is nil")
	}
	if route == nil {
		return errors.New("save route: route is nil")
	}
	if _, err := uuid.Parse(route.ID); err != nil {
		return fmt.Errorf("save route: invalid id %q: %w", route.ID, err)
	}

	doc, err := json.Marshal(newRouteDocument(route))
	if err != nil {
		return fmt.Errorf("save route id=%s: encode: %w", route.ID, err)
	}

	_, err = p.DB.ExecContext(ctx, `
	INSERT INTO route_runs (id, floor_plan, status, total_cost, route)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (id) DO UPDATE
	SET floor_plan = EXCLUDED.floor_plan,
		status = EXCLUDED.status,
		total_cost = EXCLUDED.total_cost,
		route = EXCLUDED.route;
	`, route.ID, floorPlan, string(route.Status()), route.TotalCost(), string(doc))
	if err != nil {
		return fmt.Errorf("save route id=%s: insert route_runs: %w", route.ID, err)
	}

	return nil
}

func (p *PostgresRouteRepository) GetRoute(ctx context.Context, id string) (_ *domain.Route, err error) {
	defer obs.Time(ctx, "route.repo.Get")(&err)

	if p.DB == nil {
		return nil, errors.New("postgres route repository: DB is nil")
	}
	// Malformed ids cannot exist in a uuid column.
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("get route id=%q: %w", id, ports.ErrRouteNotFound)
	}

	var raw []byte
	err = p.DB.QueryRowContext(ctx, `
	SELECT route
	FROM route_runs
	WHERE id = $1;
	`, id).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get route id=%s: %w", id, ports.ErrRouteNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get route id=%s: query route_runs table: %w", id, err)
	}

	var doc routeDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("get route id=%s: decode: %w", id, err)
	}

	route := doc.toRoute()
	route.ID = id
	return route, nil
}
