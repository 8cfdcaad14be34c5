package ports

import (
	"context"
	"errors"
	"nurse-route-service/internal/domain"
)

var ErrRouteNotFound = errors.New("route not found")

// Port: persistence of planned routes for later retrieval and reporting.
type RouteRepository interface {
	SaveRoute(ctx context.Context, floorPlan string, route *domain.Route) error
	// Unknown ids return ErrRouteNotFound.
	GetRoute(ctx context.Context, id string) (*domain.Route, error)
}
