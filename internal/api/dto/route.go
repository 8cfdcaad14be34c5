package dto

import "nurse-route-service/internal/domain"

// Coordinates travel as [row, col] pairs.

type RouteRequest struct {
	FloorPlan string  `json:"floor_plan"`
	Stops     [][]int `json:"stops"`
	// Defaults to true when omitted.
	Schedule *bool `json:"schedule"`
}

type DestinationResponse struct {
	Coord [2]int `json:"coord"`
	Zone  int    `json:"zone"`
	Ward  string `json:"ward"`
}

type LegResponse struct {
	From    [2]int              `json:"from"`
	To      DestinationResponse `json:"to"`
	Reached bool                `json:"reached"`
	Cost    int                 `json:"cost"`
}

type RouteResponse struct {
	ID           string                `json:"id"`
	Status       string                `json:"status"`
	Start        [2]int                `json:"start"`
	Destinations []DestinationResponse `json:"destinations"`
	Legs         []LegResponse         `json:"legs"`
	Path         [][2]int              `json:"path"`
	Boundaries   []int                 `json:"boundaries"`
	Failures     []DestinationResponse `json:"failures"`
	TotalCost    int                   `json:"total_cost"`
}

func pair(c domain.Coord) [2]int { return [2]int{c.Row, c.Col} }

func toDestinationResponses(ds []domain.Destination) []DestinationResponse {
	out := make([]DestinationResponse, 0, len(ds))
	for _, d := range ds {
		out = append(out, toDestinationResponse(d))
	}
	return out
}

func toDestinationResponse(d domain.Destination) DestinationResponse {
	return DestinationResponse{Coord: pair(d.Coord), Zone: int(d.Zone), Ward: d.Zone.Name()}
}

// NewRouteResponse flattens a planned route into its wire shape.
func NewRouteResponse(route *domain.Route) RouteResponse {
	res := RouteResponse{
		ID:           route.ID,
		Status:       string(route.Status()),
		Start:        pair(route.Start),
		Destinations: toDestinationResponses(route.Destinations),
		Legs:         make([]LegResponse, 0, len(route.Legs)),
		Path:         make([][2]int, 0, len(route.Path)),
		Boundaries:   append([]int{}, route.Boundaries...),
		Failures:     toDestinationResponses(route.Failures),
		TotalCost:    route.TotalCost(),
	}
	for _, l := range route.Legs {
		res.Legs = append(res.Legs, LegResponse{
			From:    pair(l.From),
			To:      toDestinationResponse(l.To),
			Reached: l.Reached,
			Cost:    l.Cost,
		})
	}
	for _, c := range route.Path {
		res.Path = append(res.Path, pair(c))
	}
	return res
}
