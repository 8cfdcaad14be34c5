package services

import (
	"context"
	"errors"
	"nurse-route-service/internal/domain"
	"testing"
)

func TestPlanSchedulesBeforeRouting(t *testing.T) {
	// hallway start, general ward at (0,1), ICU at (0,3)
	g := mustGrid(t, [][]int{{0, 2, 0, 8}})
	stops := []domain.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 3}}

	route, err := Plan(context.Background(), g, PlanRequest{Stops: stops, Schedule: true}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if route.ID == "" {
		t.Fatalf("route id is empty")
	}
	if route.Start != stops[0] {
		t.Fatalf("start = %v, want %v", route.Start, stops[0])
	}
	if route.Destinations[0].Zone != domain.ZoneICU || route.Destinations[1].Zone != domain.ZoneGeneral {
		t.Fatalf("destinations = %+v, want ICU then General", route.Destinations)
	}
	if route.TotalCost() != 5 {
		t.Fatalf("total cost = %d, want 5", route.TotalCost())
	}
}

func TestPlanKeepsInputOrderWithoutScheduling(t *testing.T) {
	g := mustGrid(t, [][]int{{0, 2, 0, 8}})
	stops := []domain.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 3}}

	route, err := Plan(context.Background(), g, PlanRequest{Stops: stops}, AStar{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if route.Destinations[0].Coord != stops[1] || route.Destinations[1].Coord != stops[2] {
		t.Fatalf("destinations = %+v, want input order", route.Destinations)
	}
	if route.TotalCost() != 3 {
		t.Fatalf("total cost = %d, want 3", route.TotalCost())
	}
}

func TestPlanRequiresStart(t *testing.T) {
	g := mustGrid(t, [][]int{{0}})
	if _, err := Plan(context.Background(), g, PlanRequest{}, nil); !errors.Is(err, ErrNoStart) {
		t.Fatalf("err = %v, want ErrNoStart", err)
	}
}
