package repositories

import "nurse-route-service/internal/domain"

// Stored JSON shape of a route. Coordinates are [row, col] pairs.
type routeDocument struct {
	Start        [2]int         `json:"start"`
	Destinations []destDocument `json:"destinations"`
	Legs         []legDocument  `json:"legs"`
	Path         [][2]int       `json:"path"`
	Boundaries   []int          `json:"boundaries"`
	Failures     []destDocument `json:"failures"`
}

type destDocument struct {
	Coord [2]int `json:"coord"`
	Zone  int    `json:"zone"`
}

type legDocument struct {
	From     [2]int       `json:"from"`
	To       destDocument `json:"to"`
	Reached  bool         `json:"reached"`
	Cost     int          `json:"cost"`
	PathFrom int          `json:"path_from"`
	PathTo   int          `json:"path_to"`
}

func pair(c domain.Coord) [2]int { return [2]int{c.Row, c.Col} }

func coord(p [2]int) domain.Coord { return domain.Coord{Row: p[0], Col: p[1]} }

func toDestDocuments(ds []domain.Destination) []destDocument {
	out := make([]destDocument, 0, len(ds))
	for _, d := range ds {
		out = append(out, destDocument{Coord: pair(d.Coord), Zone: int(d.Zone)})
	}
	return out
}

func fromDestDocuments(ds []destDocument) []domain.Destination {
	out := make([]domain.Destination, 0, len(ds))
	for _, d := range ds {
		out = append(out, domain.Destination{Coord: coord(d.Coord), Zone: domain.ZoneCode(d.Zone)})
	}
	return out
}

func newRouteDocument(r *domain.Route) routeDocument {
	doc := routeDocument{
		Start:        pair(r.Start),
		Destinations: toDestDocuments(r.Destinations),
		Legs:         make([]legDocument, 0, len(r.Legs)),
		Path:         make([][2]int, 0, len(r.Path)),
		Boundaries:   append([]int{}, r.Boundaries...),
		Failures:     toDestDocuments(r.Failures),
	}
	for _, l := range r.Legs {
		doc.Legs = append(doc.Legs, legDocument{
			From:     pair(l.From),
			To:       destDocument{Coord: pair(l.To.Coord), Zone: int(l.To.Zone)},
			Reached:  l.Reached,
			Cost:     l.Cost,
			PathFrom: l.PathFrom,
			PathTo:   l.PathTo,
		})
	}
	for _, c := range r.Path {
		doc.Path = append(doc.Path, pair(c))
	}
	return doc
}

func (d routeDocument) toRoute() *domain.Route {
	r := &domain.Route{
		Start:        coord(d.Start),
		Destinations: fromDestDocuments(d.Destinations),
		Legs:         make([]domain.Leg, 0, len(d.Legs)),
		Path:         make([]domain.Coord, 0, len(d.Path)),
		Boundaries:   append([]int{}, d.Boundaries...),
		Failures:     fromDestDocuments(d.Failures),
	}
	for _, l := range d.Legs {
		r.Legs = append(r.Legs, domain.Leg{
			From:     coord(l.From),
			To:       domain.Destination{Coord: coord(l.To.Coord), Zone: domain.ZoneCode(l.To.Zone)},
			Reached:  l.Reached,
			Cost:     l.Cost,
			PathFrom: l.PathFrom,
			PathTo:   l.PathTo,
		})
	}
	for _, p := range d.Path {
		r.Path = append(r.Path, coord(p))
	}
	return r
}
