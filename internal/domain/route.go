package domain

import "iter"

type RouteStatus string

const (
	StatusNoLegs   RouteStatus = "no_legs"
	StatusComplete RouteStatus = "complete"
	StatusPartial  RouteStatus = "partial"
	StatusFailed   RouteStatus = "failed"
)

// Represents one A* search from the agent's position to the next scheduled destination.
// PathFrom and PathTo delimit the leg inside Route.Path (inclusive); both are -1
// when the leg failed.
type Leg struct {
	From     Coord
	To       Destination
	Reached  bool
	Cost     int
	PathFrom int
	PathTo   int
}

// Represents the planned multi-destination route for a single agent.
// Path is the stitched path with seam duplicates removed, Boundaries holds the
// Path indices where a destination was reached, and Failures lists the
// destinations that could not be reached from their leg's start.
type Route struct {
	ID           string
	Start        Coord
	Destinations []Destination
	Legs         []Leg
	Path         []Coord
	Boundaries   []int
	Failures     []Destination
}

// Status classifies the route. A route whose every leg failed is StatusFailed.
func (r *Route) Status() RouteStatus {
	switch {
	case len(r.Destinations) == 0:
		return StatusNoLegs
	case len(r.Path) == 0 || len(r.Failures) == len(r.Destinations):
		return StatusFailed
	case len(r.Failures) > 0:
		return StatusPartial
	default:
		return StatusComplete
	}
}

// TotalCost sums the cost of every reached leg.
func (r *Route) TotalCost() int {
	total := 0
	for _, l := range r.Legs {
		if l.Reached {
			total += l.Cost
		}
	}
	return total
}

// One cell of the stitched path as seen by a renderer.
// Segment counts the destinations reached strictly before Index; Boundary is
// set on the cell where a destination is reached.
type Step struct {
	Index    int
	Cell     Coord
	Segment  int
	Boundary bool
}

// Steps yields the stitched path in order. The sequence is finite and can be
// ranged over any number of times.
func (r *Route) Steps() iter.Seq[Step] {
	return func(yield func(Step) bool) {
		b := 0
		segment := 0
		for i, c := range r.Path {
			reached := 0
			for b < len(r.Boundaries) && r.Boundaries[b] == i {
				reached++
				b++
			}
			if !yield(Step{Index: i, Cell: c, Segment: segment, Boundary: reached > 0}) {
				return
			}
			// A zero-length leg shares its cell with the previous boundary and
			// still counts as its own segment.
			segment += reached
		}
	}
}
