package render

import (
	"bytes"
	"context"
	"errors"
	"nurse-route-service/internal/domain"
	"nurse-route-service/internal/services"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func testGrid(t *testing.T) *domain.Grid {
	t.Helper()
	g, err := domain.NewGrid([][]int{
		{-1, 13, 13, 13, 13},
		{13, 0, 0, 8, 13},
		{13, 1, 13, 12, 13},
		{13, 13, 13, 13, 13},
	})
	if err != nil {
		t.Fatalf("new grid: %v", err)
	}
	return g
}

func TestZoneGlyph(t *testing.T) {
	want := map[domain.ZoneCode]rune{
		domain.ZoneOutside: ' ', domain.ZoneWall: '#', domain.ZoneHallway: '.',
		domain.ZoneMaternity: '1', domain.ZoneSurgical: '9', domain.ZoneHematology: 'a',
		domain.ZoneMedical: 'c', domain.ZoneCode(42): '?',
	}
	for z, r := range want {
		if got := ZoneGlyph(z); got != r {
			t.Errorf("ZoneGlyph(%d) = %q, want %q", z, got, r)
		}
	}
}

func TestWriteASCIIFloorPlan(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteASCII(&buf, testGrid(t), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := " ####\n#..8#\n#1#c#\n#####\n"
	if buf.String() != want {
		t.Fatalf("got\n%q\nwant\n%q", buf.String(), want)
	}
}

func TestWriteASCIIRoute(t *testing.T) {
	g := testGrid(t)
	start := domain.Coord{Row: 2, Col: 1}
	route := services.PlanRoute(g, start, []domain.Destination{
		domain.NewDestination(g, domain.Coord{Row: 1, Col: 3}),
		domain.NewDestination(g, domain.Coord{Row: 2, Col: 3}),
	})

	var buf bytes.Buffer
	if err := WriteASCII(&buf, g, route); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := " ####\n#**@#\n#S#@#\n#####\n"
	if buf.String() != want {
		t.Fatalf("got\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestWriteLegend(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteLegend(&buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, s := range []string{"ICU", "Wall", "Destination reached", "'*' '+' 'o'"} {
		if !strings.Contains(buf.String(), s) {
			t.Errorf("legend missing %q:\n%s", s, buf.String())
		}
	}
}

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	s.SetSize(40, 10)
	t.Cleanup(s.Fini)
	return s
}

func bgAt(s tcell.Screen, c domain.Coord) tcell.Color {
	_, _, style, _ := s.GetContent(c.Col*cellWidth, c.Row)
	_, bg, _ := style.Decompose()
	return bg
}

func TestAnimate(t *testing.T) {
	g := testGrid(t)
	start := domain.Coord{Row: 2, Col: 1}
	route := services.PlanRoute(g, start, []domain.Destination{
		domain.NewDestination(g, domain.Coord{Row: 1, Col: 2}),
		domain.NewDestination(g, domain.Coord{Row: 2, Col: 3}),
	})
	s := newScreen(t)

	if err := Animate(context.Background(), s, g, route, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	checks := map[domain.Coord]tcell.Color{
		{Row: 0, Col: 0}: tcell.ColorGray,
		{Row: 0, Col: 1}: tcell.ColorBlack,
		{Row: 2, Col: 1}: startColor,
		{Row: 1, Col: 1}: LegColor(0),
		{Row: 1, Col: 2}: destinationColor,
		{Row: 1, Col: 3}: LegColor(1),
		{Row: 2, Col: 3}: destinationColor,
	}
	for c, want := range checks {
		if got := bgAt(s, c); got != want {
			t.Errorf("cell %v background = %v, want %v", c, got, want)
		}
	}
}

func TestAnimateCancelled(t *testing.T) {
	g := testGrid(t)
	route := services.PlanRoute(g, domain.Coord{Row: 2, Col: 1}, []domain.Destination{
		domain.NewDestination(g, domain.Coord{Row: 2, Col: 3}),
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Animate(ctx, newScreen(t), g, route, time.Hour)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
