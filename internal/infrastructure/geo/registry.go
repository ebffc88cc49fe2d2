// Package geo derives the authoritative province registry from the static
// vector map resource.
package geo

import (
	_ "embed"
	"errors"
	"regexp"
	"strings"
	"sync"
)

// ErrUnknownRegion is returned when an operation names an identifier outside
// the registry.
var ErrUnknownRegion = errors.New("unknown region identifier")

//go:embed assets/philippines.svg
var mapSVG string

// DefaultProvinceTotal is the degraded fallback denominator for contexts
// where the registry has not been extracted yet. The live-extracted count is
// authoritative whenever a registry is available; the two may legitimately
// differ if the bundled map is replaced.
const DefaultProvinceTotal = 82

var provinceIDPattern = regexp.MustCompile(`id="(PH-[A-Z0-9]+)"`)

// ExtractProvinceIDs scans raw vector-map markup for province identifiers in
// document order. The historical Compostela Valley rename is applied to the
// markup before extraction; it affects a display title attribute, never an
// identifier. Duplicate ids keep their first-appearance position and count
// once toward the distinct total.
func ExtractProvinceIDs(raw string) []string {
	raw = normalizeHistoricalNames(raw)

	var ids []string
	seen := make(map[string]struct{})
	for _, match := range provinceIDPattern.FindAllStringSubmatch(raw, -1) {
		id := match[1]
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

// normalizeHistoricalNames substitutes the current official province name
// for its historical one. Static rule, not configurable.
func normalizeHistoricalNames(raw string) string {
	return strings.ReplaceAll(raw, "Compostela Valley", "Davao de Oro")
}

// Registry holds the ordered province identifier set extracted from a
// vector map document.
type Registry struct {
	ids []string
	set map[string]struct{}
	svg string
}

// NewRegistry extracts a registry from raw vector-map markup.
func NewRegistry(raw string) *Registry {
	ids := ExtractProvinceIDs(raw)
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return &Registry{ids: ids, set: set, svg: normalizeHistoricalNames(raw)}
}

var (
	defaultRegistry *Registry
	defaultOnce     sync.Once
)

// Default returns the registry extracted from the embedded Philippines map.
// Extraction runs once per process.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry(mapSVG)
	})
	return defaultRegistry
}

// IDs returns the province identifiers in first-appearance order.
func (r *Registry) IDs() []string {
	out := make([]string, len(r.ids))
	copy(out, r.ids)
	return out
}

// Total returns the distinct identifier count, the canonical "total
// provinces" denominator.
func (r *Registry) Total() int { return len(r.ids) }

// Contains reports whether id belongs to the registry.
func (r *Registry) Contains(id string) bool {
	_, ok := r.set[id]
	return ok
}

// SVG returns the normalized vector-map markup backing this registry.
func (r *Registry) SVG() string { return r.svg }
