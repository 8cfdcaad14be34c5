package domain

// Represents a single stop the nurse has to visit.
// A Destination is a floor plan coordinate plus the zone code it was
// resolved to, which drives priority scheduling.
type Destination struct {
	Coord Coord
	Zone  ZoneCode
}

// NewDestination resolves the zone code of c on g.
func NewDestination(g *Grid, c Coord) Destination {
	return Destination{Coord: c, Zone: g.ZoneCodeOf(c)}
}

// Outcome of a single A* search between two cells.
// Unreachability is a normal result (Found == false), not an error.
type PathResult struct {
	Found    bool
	Path     []Coord
	Cost     int
	Expanded int
}

// Unreachable is the zero-path result.
func Unreachable(expanded int) PathResult {
	return PathResult{Found: false, Expanded: expanded}
}
