package services

import (
	"cmp"
	"nurse-route-service/internal/domain"
	"slices"
)

const (
	HighestTier = 5
	LowestTier  = 1
)

// TierPolicy maps a zone code to its priority tier (5 = most urgent).
// Codes missing from the policy fall into LowestTier.
type TierPolicy map[domain.ZoneCode]int

// DefaultTierPolicy is the hospital's ward urgency table.
var DefaultTierPolicy = TierPolicy{
	domain.ZoneICU:        5,
	domain.ZoneOncology:   5,
	domain.ZoneEmergency:  5,
	domain.ZoneBurn:       5,
	domain.ZoneSurgical:   4,
	domain.ZoneMaternity:  4,
	domain.ZoneHematology: 3,
	domain.ZonePediatric:  3,
	domain.ZoneMedical:    2,
	domain.ZoneGeneral:    2,
	domain.ZoneAdmissions: 1,
	domain.ZoneIsolation:  1,
}

// TierOf returns the tier of z, clamping unknown or out-of-range entries to LowestTier.
func (p TierPolicy) TierOf(z domain.ZoneCode) int {
	if t, ok := p[z]; ok && t >= LowestTier && t <= HighestTier {
		return t
	}
	return LowestTier
}

// ResolveDestinations attaches the zone code of every coordinate.
func ResolveDestinations(grid *domain.Grid, coords []domain.Coord) []domain.Destination {
	out := make([]domain.Destination, 0, len(coords))
	for _, c := range coords {
		out = append(out, domain.NewDestination(grid, c))
	}
	return out
}

// ScheduleDestinations orders destinations into a visitation sequence.
//
// Destinations are bucketed by tier, each bucket is stably sorted by zone code
// so same-ward stops sit next to each other, and buckets are concatenated from
// the highest tier down. Buckets are local to each call and the input slice
// is left untouched. A nil policy means DefaultTierPolicy.
func ScheduleDestinations(dests []domain.Destination, policy TierPolicy) []domain.Destination {
	if policy == nil {
		policy = DefaultTierPolicy
	}

	var buckets [HighestTier + 1][]domain.Destination
	for _, d := range dests {
		t := policy.TierOf(d.Zone)
		buckets[t] = append(buckets[t], d)
	}

	out := make([]domain.Destination, 0, len(dests))
	for t := HighestTier; t >= LowestTier; t-- {
		slices.SortStableFunc(buckets[t], func(a, b domain.Destination) int {
			return cmp.Compare(a.Zone, b.Zone)
		})
		out = append(out, buckets[t]...)
	}

	return out
}
