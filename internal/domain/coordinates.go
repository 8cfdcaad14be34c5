package domain

import "fmt"

// Immutable grid coordinates (row, column) on a floor plan.
type Coord struct {
	Row int
	Col int
}

// Return coordinates as [row, col] for external API compatibility.
func (c Coord) CoordsToList() []int { return []int{c.Row, c.Col} }

func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.Row, c.Col) }

// Manhattan returns |Δrow| + |Δcol| between two coordinates.
func Manhattan(a, b Coord) int {
	dr := a.Row - b.Row
	if dr < 0 {
		dr = -dr
	}
	dc := a.Col - b.Col
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}
