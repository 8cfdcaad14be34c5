// Package render draws floor plans and planned routes, either as plain text
// or animated on a terminal screen.
package render

import (
	"bufio"
	"fmt"
	"io"
	"nurse-route-service/internal/domain"
	"text/tabwriter"
)

const (
	glyphWall    = '#'
	glyphOutside = ' '
	glyphHallway = '.'
	glyphStart   = 'S'
	glyphReached = '@'
	glyphUnknown = '?'
)

// Path glyphs cycle per segment so consecutive legs can be told apart.
var pathGlyphs = [...]rune{'*', '+', 'o'}

// ZoneGlyph is the single-character symbol for a zone: wards 1..12 print as
// 1-9 then a-c.
func ZoneGlyph(z domain.ZoneCode) rune {
	switch {
	case z == domain.ZoneWall:
		return glyphWall
	case z == domain.ZoneOutside:
		return glyphOutside
	case z == domain.ZoneHallway:
		return glyphHallway
	case z >= 1 && z <= 9:
		return rune('0' + z)
	case z >= 10 && z <= 12:
		return rune('a' + z - 10)
	default:
		return glyphUnknown
	}
}

func pathGlyph(segment int) rune { return pathGlyphs[segment%len(pathGlyphs)] }

// overlay maps grid indices to the glyph a route puts on top of the floor plan.
func overlay(g *domain.Grid, route *domain.Route) map[int]rune {
	out := make(map[int]rune)
	if route == nil {
		return out
	}
	for st := range route.Steps() {
		if !g.InBounds(st.Cell) {
			continue
		}
		i := g.Index(st.Cell)
		switch {
		case st.Boundary:
			out[i] = glyphReached
		case out[i] != glyphReached:
			out[i] = pathGlyph(st.Segment)
		}
	}
	if g.InBounds(route.Start) {
		out[g.Index(route.Start)] = glyphStart
	}
	return out
}

// WriteASCII writes one line per grid row. A nil route prints the bare floor plan.
func WriteASCII(w io.Writer, g *domain.Grid, route *domain.Route) error {
	over := overlay(g, route)
	bw := bufio.NewWriter(w)

	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			cell := domain.Coord{Row: r, Col: c}
			ch, ok := over[g.Index(cell)]
			if !ok {
				ch = ZoneGlyph(g.ZoneCodeOf(cell))
			}
			bw.WriteRune(ch)
		}
		bw.WriteByte('\n')
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write ascii: %w", err)
	}
	return nil
}

// WriteLegend lists every glyph WriteASCII may print.
func WriteLegend(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "GLYPH\tMEANING")
	for z := domain.ZoneOutside; z <= domain.ZoneWall; z++ {
		fmt.Fprintf(tw, "%q\t%s\n", ZoneGlyph(z), z.Name())
	}
	fmt.Fprintf(tw, "%q\t%s\n", glyphStart, "Start")
	fmt.Fprintf(tw, "%q\t%s\n", glyphReached, "Destination reached")
	fmt.Fprintf(tw, "%q %q %q\t%s\n", pathGlyphs[0], pathGlyphs[1], pathGlyphs[2], "Path, one symbol per leg")
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("write legend: %w", err)
	}
	return nil
}
