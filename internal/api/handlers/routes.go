package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"nurse-route-service/internal/api/dto"
	"nurse-route-service/internal/domain"
	"nurse-route-service/internal/input"
	"nurse-route-service/internal/ports"
	"nurse-route-service/internal/services"
	"strings"
)

// RouteHandler plans nurse routes and serves previously planned ones.
// Routes and Cache are optional.
type RouteHandler struct {
	FloorPlans       ports.FloorPlanRepository
	Routes           ports.RouteRepository
	Cache            ports.LegCache
	DefaultFloorPlan string
}

func (h *RouteHandler) finder(floorPlan string) ports.PathFinder {
	if h.Cache == nil {
		return services.AStar{}
	}
	return &services.CachingPathFinder{Cache: h.Cache, Next: services.AStar{}, FloorPlan: floorPlan}
}

// Create validates the stop list, schedules destinations by ward priority
// unless told otherwise, and routes the nurse through them.
func (h *RouteHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.RouteRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	name := strings.TrimSpace(req.FloorPlan)
	if name == "" {
		name = strings.TrimSpace(h.DefaultFloorPlan)
	}
	if name == "" {
		writeError(w, r, http.StatusBadRequest, "floor_plan is required")
		return
	}

	stops, err := stopsFromRequest(req.Stops)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	grid, err := h.FloorPlans.LoadFloorPlan(r.Context(), name)
	if errors.Is(err, ports.ErrFloorPlanNotFound) {
		writeError(w, r, http.StatusNotFound, "floor plan not found")
		return
	}
	if err != nil {
		log.Printf("load floor plan failed: name=%s err=%v", name, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	if err := input.ValidateStops(grid, stops); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	schedule := true
	if req.Schedule != nil {
		schedule = *req.Schedule
	}

	route, err := services.Plan(r.Context(), grid, services.PlanRequest{Stops: stops, Schedule: schedule}, h.finder(name))
	if err != nil {
		log.Printf("plan route failed: floor_plan=%s err=%v", name, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	if h.Routes != nil {
		if err := h.Routes.SaveRoute(r.Context(), name, route); err != nil {
			log.Printf("save route failed: id=%s err=%v", route.ID, err)
			writeError(w, r, http.StatusInternalServerError, "internal server error")
			return
		}
	}

	writeJSON(w, r, http.StatusCreated, dto.NewRouteResponse(route))
}

func (h *RouteHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if h.Routes == nil {
		writeError(w, r, http.StatusNotFound, "route history is not enabled")
		return
	}

	id := r.PathValue("id")
	route, err := h.Routes.GetRoute(r.Context(), id)
	if errors.Is(err, ports.ErrRouteNotFound) {
		writeError(w, r, http.StatusNotFound, "route not found")
		return
	}
	if err != nil {
		log.Printf("get route failed: id=%s err=%v", id, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewRouteResponse(route))
}

func stopsFromRequest(raw [][]int) ([]domain.Coord, error) {
	if len(raw) < 2 {
		return nil, input.ErrTooFewStops
	}
	stops := make([]domain.Coord, 0, len(raw))
	for i, s := range raw {
		if len(s) != 2 {
			return nil, fmt.Errorf("stops[%d]: %w", i, input.ErrMalformedStop)
		}
		stops = append(stops, domain.Coord{Row: s[0], Col: s[1]})
	}
	return stops, nil
}
