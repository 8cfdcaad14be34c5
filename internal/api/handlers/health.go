package handlers

import (
	"log"
	"net/http"
	"nurse-route-service/internal/api/dto"
	"nurse-route-service/internal/ports"
)

// HealthHandler reports ok once the default floor plan loads, and 503 otherwise.
type HealthHandler struct {
	FloorPlans       ports.FloorPlanRepository
	DefaultFloorPlan string
}

func (h *HealthHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	res := dto.HealthResponse{Status: "ok", FloorPlan: h.DefaultFloorPlan}
	if _, err := h.FloorPlans.LoadFloorPlan(r.Context(), h.DefaultFloorPlan); err != nil {
		log.Printf("health: floor plan %q unavailable: %v", h.DefaultFloorPlan, err)
		res.Status = "degraded"
		writeJSON(w, r, http.StatusServiceUnavailable, res)
		return
	}
	writeJSON(w, r, http.StatusOK, res)
}
