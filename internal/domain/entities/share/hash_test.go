package share

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lakbayph/lakbay-go/internal/domain/entities/visit"
)

func TestContentHashStable(t *testing.T) {
	t.Parallel()

	state := visit.MapState{
		"PH-AB": visit.StatusBeenThere,
		"PH-CD": visit.StatusPassedBy,
	}
	stats := visit.Aggregate(state, []string{"PH-AB", "PH-CD", "PH-EF"})

	first := ContentHash(state, stats)
	assert.Len(t, first, 8)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ContentHash(state, stats))
	}
}

func TestContentHashKeyOrderIndependent(t *testing.T) {
	t.Parallel()

	// Two maps built in different insertion orders must hash identically.
	a := visit.MapState{}
	a["PH-AA"] = visit.StatusBeenThere
	a["PH-BB"] = visit.StatusStayedThere
	a["PH-CC"] = visit.StatusPassedBy

	b := visit.MapState{}
	b["PH-CC"] = visit.StatusPassedBy
	b["PH-AA"] = visit.StatusBeenThere
	b["PH-BB"] = visit.StatusStayedThere

	stats := visit.MapStats{Total: 82}
	assert.Equal(t, ContentHash(a, stats), ContentHash(b, stats))
}

func TestContentHashDistinguishesContent(t *testing.T) {
	t.Parallel()

	stats := visit.MapStats{Total: 82}
	a := ContentHash(visit.MapState{"PH-AA": visit.StatusBeenThere}, stats)
	b := ContentHash(visit.MapState{"PH-AA": visit.StatusPassedBy}, stats)
	c := ContentHash(visit.MapState{"PH-BB": visit.StatusBeenThere}, stats)

	assert.NotEqual(t, a, b)
	assert.NotEqual(t, a, c)
	assert.NotEqual(t, b, c)
}

func TestContentHashEmptyState(t *testing.T) {
	t.Parallel()

	got := ContentHash(visit.MapState{}, visit.MapStats{Total: 82, NotVisited: 82})
	assert.Len(t, got, 8)
	assert.Regexp(t, "^[0-9a-f]{8}$", got)
}
