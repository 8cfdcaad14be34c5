package services

import (
	"context"
	"errors"
	"nurse-route-service/internal/domain"
	"slices"
	"testing"
)

type recordingFinder struct {
	from []domain.Coord
	next AStar
	err  error
}

func (f *recordingFinder) FindPath(ctx context.Context, g *domain.Grid, start, goal domain.Coord) (domain.PathResult, error) {
	f.from = append(f.from, start)
	if f.err != nil {
		return domain.PathResult{}, f.err
	}
	return f.next.FindPath(ctx, g, start, goal)
}

func TestRoutePlannerPlanRoute(t *testing.T) {
	g := mustGrid(t, [][]int{{0, 0, 0, 0, 0}})
	route := PlanRoute(g, domain.Coord{Row: 0, Col: 0}, []domain.Destination{dest(g, 0, 2), dest(g, 0, 4)})

	wantPath := []domain.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 0, Col: 3}, {Row: 0, Col: 4}}
	if !slices.Equal(route.Path, wantPath) {
		t.Fatalf("path = %v, want %v", route.Path, wantPath)
	}
	if !slices.Equal(route.Boundaries, []int{2, 4}) {
		t.Fatalf("boundaries = %v, want [2 4]", route.Boundaries)
	}
	if len(route.Failures) != 0 {
		t.Fatalf("unexpected failures: %v", route.Failures)
	}
	if route.Status() != domain.StatusComplete {
		t.Fatalf("status = %q", route.Status())
	}
	if route.TotalCost() != 4 {
		t.Fatalf("total cost = %d, want 4", route.TotalCost())
	}

	second := route.Legs[1]
	if second.PathFrom != 2 || second.PathTo != 4 || second.Cost != 2 {
		t.Fatalf("second leg = %+v", second)
	}
}

func TestRoutePlannerFailedLegDoesNotAdvance(t *testing.T) {
	g := mustGrid(t, [][]int{{0, 0, 0, 13, 0}})
	start := domain.Coord{Row: 0, Col: 0}
	ordered := []domain.Destination{dest(g, 0, 2), dest(g, 0, 4), dest(g, 0, 1)}

	finder := &recordingFinder{}
	route, err := PlanRouteWith(context.Background(), g, start, ordered, finder)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantFrom := []domain.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 2}, {Row: 0, Col: 2}}
	if !slices.Equal(finder.from, wantFrom) {
		t.Fatalf("legs started from %v, want %v", finder.from, wantFrom)
	}

	if len(route.Failures) != 1 || route.Failures[0].Coord != (domain.Coord{Row: 0, Col: 4}) {
		t.Fatalf("failures = %v", route.Failures)
	}

	wantPath := []domain.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 0, Col: 1}}
	if !slices.Equal(route.Path, wantPath) {
		t.Fatalf("path = %v, want %v", route.Path, wantPath)
	}
	if !slices.Equal(route.Boundaries, []int{2, 3}) {
		t.Fatalf("boundaries = %v, want [2 3]", route.Boundaries)
	}

	failed := route.Legs[1]
	if failed.Reached || failed.PathFrom != -1 || failed.PathTo != -1 {
		t.Fatalf("failed leg = %+v", failed)
	}
	if route.Status() != domain.StatusPartial {
		t.Fatalf("status = %q, want partial", route.Status())
	}
}

func TestRoutePlannerFirstLegFails(t *testing.T) {
	g := mustGrid(t, [][]int{{0, 0, 13, 0}})
	route := PlanRoute(g, domain.Coord{Row: 0, Col: 0}, []domain.Destination{dest(g, 0, 3), dest(g, 0, 1)})

	wantPath := []domain.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}}
	if !slices.Equal(route.Path, wantPath) {
		t.Fatalf("path = %v, want %v", route.Path, wantPath)
	}
	if !slices.Equal(route.Boundaries, []int{1}) {
		t.Fatalf("boundaries = %v", route.Boundaries)
	}
}

func TestRoutePlannerTotalFailure(t *testing.T) {
	g := mustGrid(t, [][]int{
		{0, 13, 0},
		{13, 13, 0},
	})
	ordered := []domain.Destination{dest(g, 0, 2), dest(g, 1, 2)}
	route := PlanRoute(g, domain.Coord{Row: 0, Col: 0}, ordered)

	if route.Status() != domain.StatusFailed {
		t.Fatalf("status = %q, want failed", route.Status())
	}
	if len(route.Path) != 0 {
		t.Fatalf("path = %v, want empty", route.Path)
	}
	if !slices.Equal(route.Failures, ordered) {
		t.Fatalf("failures = %v, want %v", route.Failures, ordered)
	}
}

func TestRoutePlannerNoDestinations(t *testing.T) {
	g := mustGrid(t, [][]int{{0}})
	route := PlanRoute(g, domain.Coord{Row: 0, Col: 0}, nil)
	if route.Status() != domain.StatusNoLegs {
		t.Fatalf("status = %q, want no_legs", route.Status())
	}
	if len(route.Legs) != 0 || len(route.Path) != 0 {
		t.Fatalf("route = %+v, want no legs", route)
	}
}

func TestRoutePlannerRepeatedDestination(t *testing.T) {
	g := mustGrid(t, [][]int{{0, 0}})
	route := PlanRoute(g, domain.Coord{Row: 0, Col: 0}, []domain.Destination{dest(g, 0, 1), dest(g, 0, 1)})

	if !slices.Equal(route.Path, []domain.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}}) {
		t.Fatalf("path = %v", route.Path)
	}
	if !slices.Equal(route.Boundaries, []int{1, 1}) {
		t.Fatalf("boundaries = %v, want [1 1]", route.Boundaries)
	}
}

func TestRoutePlannerFinderError(t *testing.T) {
	g := mustGrid(t, [][]int{{0, 0}})
	boom := errors.New("boom")
	_, err := PlanRouteWith(context.Background(), g, domain.Coord{Row: 0, Col: 0}, []domain.Destination{dest(g, 0, 1)}, &recordingFinder{err: boom})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped boom", err)
	}
}

func TestRoutePlannerPathHasNoSeamDuplicates(t *testing.T) {
	g := mustGrid(t, [][]int{
		{0, 0, 0, 0},
		{0, 13, 13, 0},
		{0, 0, 0, 0},
	})
	ordered := []domain.Destination{dest(g, 0, 3), dest(g, 2, 3), dest(g, 2, 0), dest(g, 0, 0)}
	route := PlanRoute(g, domain.Coord{Row: 0, Col: 0}, ordered)

	for i := 1; i < len(route.Path); i++ {
		if route.Path[i] == route.Path[i-1] {
			t.Fatalf("duplicate cell %v at index %d", route.Path[i], i)
		}
		if domain.Manhattan(route.Path[i-1], route.Path[i]) != 1 {
			t.Fatalf("cells %v and %v are not adjacent", route.Path[i-1], route.Path[i])
		}
	}
	if len(route.Path) != route.TotalCost()+1 {
		t.Fatalf("path has %d cells for total cost %d", len(route.Path), route.TotalCost())
	}
}
