package handlers

import (
	"errors"
	"log"
	"net/http"
	"nurse-route-service/internal/api/dto"
	"nurse-route-service/internal/ports"
)

// FloorPlanHandler exposes read-only floor plan retrieval.
type FloorPlanHandler struct {
	Repo ports.FloorPlanRepository
}

func (h *FloorPlanHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	name := r.PathValue("name")
	g, err := h.Repo.LoadFloorPlan(r.Context(), name)
	if errors.Is(err, ports.ErrFloorPlanNotFound) {
		writeError(w, r, http.StatusNotFound, "floor plan not found")
		return
	}
	if err != nil {
		log.Printf("load floor plan failed: name=%s err=%v", name, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.FloorPlanResponse{
		Name:  name,
		Rows:  g.Rows(),
		Cols:  g.Cols(),
		Zones: g.Zones(),
	})
}
