package visit

import "math"

// MapStats is a derived snapshot of category counts. NotVisited is always
// computed as the remainder so the four counters sum to Total by
// construction. It is never the source of truth; it is recomputed from the
// map state on every change and only persisted inside share snapshots.
type MapStats struct {
	BeenThere   int `json:"beenThere"`
	StayedThere int `json:"stayedThere"`
	PassedBy    int `json:"passedBy"`
	NotVisited  int `json:"notVisited"`
	Total       int `json:"total"`
}

// AggregateCounts reduces a map state into category counts against a fixed
// denominator. Values that are not one of the three visited statuses are
// skipped silently. Callers are expected to pre-filter stale keys; prefer
// Aggregate, which does the filtering itself.
func AggregateCounts(state MapState, totalRegions int) MapStats {
	stats := MapStats{Total: totalRegions}
	for _, status := range state {
		switch status {
		case StatusBeenThere:
			stats.BeenThere++
		case StatusStayedThere:
			stats.StayedThere++
		case StatusPassedBy:
			stats.PassedBy++
		}
	}
	stats.NotVisited = stats.Total - (stats.BeenThere + stats.StayedThere + stats.PassedBy)
	return stats
}

// Aggregate reduces a map state into MapStats using the province registry as
// the denominator. Keys outside the registry (stale or renamed identifiers)
// are dropped before counting, so NotVisited can never go negative.
func Aggregate(state MapState, registryIDs []string) MapStats {
	known := make(map[string]struct{}, len(registryIDs))
	for _, id := range registryIDs {
		known[id] = struct{}{}
	}

	filtered := make(MapState, len(state))
	for id, status := range state {
		if _, ok := known[id]; ok {
			filtered[id] = status
		}
	}
	return AggregateCounts(filtered, len(known))
}

// VisitedCount returns the number of provinces in any visited state.
func (s MapStats) VisitedCount() int {
	return s.BeenThere + s.StayedThere + s.PassedBy
}

// VisitedPercentage returns the rounded visited share, 0 when Total is 0.
func (s MapStats) VisitedPercentage() int {
	return PercentOf(s.VisitedCount(), s.Total)
}

// PercentOf returns round(100*v/total), or 0 when total is 0.
func PercentOf(v, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(v) / float64(total)))
}
