package render

import (
	"context"
	"fmt"
	"nurse-route-service/internal/domain"
	"time"

	"github.com/gdamore/tcell/v2"
)

// Ward colours of the hospital floor plan.
var zoneColors = map[domain.ZoneCode]tcell.Color{
	domain.ZoneOutside:    tcell.ColorGray,
	domain.ZoneHallway:    tcell.ColorWhite,
	domain.ZoneMaternity:  tcell.ColorBlue,
	domain.ZoneGeneral:    tcell.ColorDarkRed,
	domain.ZoneEmergency:  tcell.ColorYellow,
	domain.ZoneAdmissions: tcell.ColorDarkSlateGray,
	domain.ZoneIsolation:  tcell.ColorTeal,
	domain.ZoneOncology:   tcell.ColorGreen,
	domain.ZoneBurn:       tcell.ColorPurple,
	domain.ZoneICU:        tcell.ColorOrange,
	domain.ZoneSurgical:   tcell.ColorTomato,
	domain.ZoneHematology: tcell.ColorSienna,
	domain.ZonePediatric:  tcell.ColorOliveDrab,
	domain.ZoneMedical:    tcell.ColorAquaMarine,
	domain.ZoneWall:       tcell.ColorBlack,
}

// Path colours, one per leg, cycling.
var legColors = [...]tcell.Color{tcell.ColorGold, tcell.ColorMidnightBlue, tcell.ColorOrchid}

var (
	startColor       = tcell.ColorDarkOrchid
	destinationColor = tcell.ColorLime
)

// Each grid cell is two terminal columns wide so the plan keeps its aspect ratio.
const cellWidth = 2

func ZoneColor(z domain.ZoneCode) tcell.Color {
	if c, ok := zoneColors[z]; ok {
		return c
	}
	return tcell.ColorSilver
}

func LegColor(segment int) tcell.Color { return legColors[segment%len(legColors)] }

func paint(s tcell.Screen, c domain.Coord, color tcell.Color) {
	style := tcell.StyleDefault.Background(color)
	for dx := 0; dx < cellWidth; dx++ {
		s.SetContent(c.Col*cellWidth+dx, c.Row, ' ', nil, style)
	}
}

// DrawFloorPlan paints every cell of g in its ward colour.
func DrawFloorPlan(s tcell.Screen, g *domain.Grid) {
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			cell := domain.Coord{Row: r, Col: c}
			paint(s, cell, ZoneColor(g.ZoneCodeOf(cell)))
		}
	}
}

func drawStatus(s tcell.Screen, g *domain.Grid, route *domain.Route) {
	msg := fmt.Sprintf("%s: reached %d/%d destinations, cost %d",
		route.Status(), len(route.Boundaries), len(route.Destinations), route.TotalCost())
	for i, ch := range msg {
		s.SetContent(i, g.Rows()+1, ch, nil, tcell.StyleDefault)
	}
}

// Animate draws the floor plan, then paints route one step per delay.
// Leg colours switch at every reached destination. It returns ctx.Err() if
// cancelled mid-animation; the final frame stays on screen.
func Animate(ctx context.Context, s tcell.Screen, g *domain.Grid, route *domain.Route, delay time.Duration) error {
	s.Clear()
	DrawFloorPlan(s, g)
	for _, d := range route.Destinations {
		if g.InBounds(d.Coord) {
			paint(s, d.Coord, destinationColor)
		}
	}
	if g.InBounds(route.Start) {
		paint(s, route.Start, startColor)
	}
	s.Show()

	var tick <-chan time.Time
	if delay > 0 {
		t := time.NewTicker(delay)
		defer t.Stop()
		tick = t.C
	}

	for st := range route.Steps() {
		// The start cell keeps its colour; end nodes mark a colour switch.
		if st.Index == 0 || st.Boundary {
			continue
		}
		if tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}
		paint(s, st.Cell, LegColor(st.Segment))
		s.Show()
	}

	drawStatus(s, g, route)
	s.Show()
	return nil
}
