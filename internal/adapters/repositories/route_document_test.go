package repositories

import (
	"encoding/json"
	"nurse-route-service/internal/domain"
	"reflect"
	"testing"
)

func TestRouteDocumentKeepsPartialRoute(t *testing.T) {
	reached := domain.Destination{Coord: domain.Coord{Row: 0, Col: 2}, Zone: domain.ZoneICU}
	missed := domain.Destination{Coord: domain.Coord{Row: 0, Col: 4}, Zone: domain.ZoneAdmissions}
	in := &domain.Route{
		Start:        domain.Coord{Row: 0, Col: 0},
		Destinations: []domain.Destination{reached, missed},
		Legs: []domain.Leg{
			{From: domain.Coord{Row: 0, Col: 0}, To: reached, Reached: true, Cost: 2, PathFrom: 0, PathTo: 2},
			{From: domain.Coord{Row: 0, Col: 2}, To: missed, PathFrom: -1, PathTo: -1},
		},
		Path:       []domain.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}},
		Boundaries: []int{2},
		Failures:   []domain.Destination{missed},
	}

	raw, err := json.Marshal(newRouteDocument(in))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var doc routeDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	out := doc.toRoute()

	if !reflect.DeepEqual(in, out) {
		t.Fatalf("route changed:\n got %+v\nwant %+v", out, in)
	}
	if out.Status() != domain.StatusPartial || out.TotalCost() != 2 {
		t.Fatalf("status = %q cost = %d", out.Status(), out.TotalCost())
	}
}
