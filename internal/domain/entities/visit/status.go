// Package visit defines the visitation status model and map state types.
package visit

// Status is one of the four mutually exclusive visitation states for a
// province. Any region not present in a MapState is implicitly
// StatusNotVisited.
type Status string

const (
	StatusBeenThere   Status = "been-there"
	StatusStayedThere Status = "stayed-there"
	StatusPassedBy    Status = "passed-by"
	StatusNotVisited  Status = "not-visited"
)

// MapState is a sparse mapping of province identifier to Status.
type MapState map[string]Status

// IsValid reports whether s is one of the four known statuses.
func (s Status) IsValid() bool {
	switch s {
	case StatusBeenThere, StatusStayedThere, StatusPassedBy, StatusNotVisited:
		return true
	}
	return false
}

// Visited reports whether s counts as a visited state.
func (s Status) Visited() bool {
	switch s {
	case StatusBeenThere, StatusStayedThere, StatusPassedBy:
		return true
	}
	return false
}

// Normalize maps unknown or malformed values to StatusNotVisited.
func Normalize(s Status) Status {
	if !s.IsValid() {
		return StatusNotVisited
	}
	return s
}

// NextStatus advances a status along the fixed click cycle:
// been-there → stayed-there → passed-by → not-visited → been-there.
// Unknown input is normalized to not-visited before cycling.
func NextStatus(s Status) Status {
	switch Normalize(s) {
	case StatusBeenThere:
		return StatusStayedThere
	case StatusStayedThere:
		return StatusPassedBy
	case StatusPassedBy:
		return StatusNotVisited
	default:
		return StatusBeenThere
	}
}

// Label returns the display label for a status.
func (s Status) Label() string {
	switch Normalize(s) {
	case StatusBeenThere:
		return "Been There"
	case StatusStayedThere:
		return "Stayed There"
	case StatusPassedBy:
		return "Passed By"
	default:
		return "Not Visited"
	}
}

// FillColor returns the fill color used by every renderer of this status.
// Fill and stroke colors must agree across all rendering surfaces.
func (s Status) FillColor() string {
	switch Normalize(s) {
	case StatusBeenThere:
		return "#34d399"
	case StatusStayedThere:
		return "#fbbf24"
	case StatusPassedBy:
		return "#60a5fa"
	default:
		return "#e5e7eb"
	}
}

// StrokeColor returns the stroke color used by every renderer of this status.
func (s Status) StrokeColor() string {
	switch Normalize(s) {
	case StatusBeenThere:
		return "#059669"
	case StatusStayedThere:
		return "#d97706"
	case StatusPassedBy:
		return "#2563eb"
	default:
		return "#9ca3af"
	}
}
