package api

import (
	"net/http"
	"nurse-route-service/internal/api/handlers"
	"nurse-route-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
// routes and cache may be nil.
func NewRouter(
	floorPlans ports.FloorPlanRepository,
	routes ports.RouteRepository,
	cache ports.LegCache,
	defaultFloorPlan string,
) http.Handler {
	mux := http.NewServeMux()

	healthHandler := &handlers.HealthHandler{FloorPlans: floorPlans, DefaultFloorPlan: defaultFloorPlan}
	floorPlanHandler := &handlers.FloorPlanHandler{Repo: floorPlans}
	routeHandler := &handlers.RouteHandler{
		FloorPlans:       floorPlans,
		Routes:           routes,
		Cache:            cache,
		DefaultFloorPlan: defaultFloorPlan,
	}

	mux.HandleFunc("/health", healthHandler.Get)
	mux.HandleFunc("/floorplans/{name}", floorPlanHandler.Get)
	mux.HandleFunc("/routes", routeHandler.Create)
	mux.HandleFunc("/routes/{id}", routeHandler.Get)

	return requestIDMiddleware(loggingMiddleware(mux))
}
