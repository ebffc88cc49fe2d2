// Package performance provides lightweight operation timing markers used to
// correlate request handling with the performance log channel.
package performance

import (
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Marker times a single named operation.
type Marker struct {
	ID        string        `json:"id"`
	Operation string        `json:"operation"`
	OwnerKey  string        `json:"ownerKey,omitempty"`
	StartTime time.Time     `json:"startTime"`
	Duration  time.Duration `json:"duration"`
	Success   bool          `json:"success"`
	completed bool
	tracker   *Tracker
}

// Tracker retains a bounded window of recent markers for the admin metrics
// endpoint.
type Tracker struct {
	markers    []*Marker
	maxMarkers int
	mu         sync.Mutex
}

// NewTracker creates a tracker retaining up to maxMarkers completed markers.
func NewTracker(maxMarkers int) *Tracker {
	if maxMarkers <= 0 {
		maxMarkers = 1000
	}
	return &Tracker{maxMarkers: maxMarkers}
}

// StartOperation begins timing a named operation.
func (t *Tracker) StartOperation(operation, ownerKey string) *Marker {
	return &Marker{
		ID:        ulid.Make().String(),
		Operation: operation,
		OwnerKey:  ownerKey,
		StartTime: time.Now(),
		tracker:   t,
	}
}

// SetSuccess records the operation outcome.
func (m *Marker) SetSuccess(success bool) { m.Success = success }

// Complete finalizes the marker and retains it. Safe to call via defer
// alongside an explicit SetSuccess.
func (m *Marker) Complete() {
	if m.completed {
		return
	}
	m.completed = true
	m.Duration = time.Since(m.StartTime)

	t := m.tracker
	t.mu.Lock()
	defer t.mu.Unlock()
	t.markers = append(t.markers, m)
	if len(t.markers) > t.maxMarkers {
		t.markers = t.markers[len(t.markers)-t.maxMarkers:]
	}
}

// RecentMarkers returns a copy of the retained markers, newest last.
func (t *Tracker) RecentMarkers() []*Marker {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]*Marker, len(t.markers))
	copy(out, t.markers)
	return out
}

// Summary aggregates retained markers per operation.
type Summary struct {
	Operation string        `json:"operation"`
	Count     int           `json:"count"`
	Failures  int           `json:"failures"`
	AvgTime   time.Duration `json:"avgTime"`
	MaxTime   time.Duration `json:"maxTime"`
}

// Summarize returns per-operation aggregates over the retained window.
func (t *Tracker) Summarize() map[string]*Summary {
	t.mu.Lock()
	defer t.mu.Unlock()

	summaries := make(map[string]*Summary)
	for _, m := range t.markers {
		s, ok := summaries[m.Operation]
		if !ok {
			s = &Summary{Operation: m.Operation}
			summaries[m.Operation] = s
		}
		s.Count++
		if !m.Success {
			s.Failures++
		}
		if m.Duration > s.MaxTime {
			s.MaxTime = m.Duration
		}
		s.AvgTime += (m.Duration - s.AvgTime) / time.Duration(s.Count)
	}
	return summaries
}
