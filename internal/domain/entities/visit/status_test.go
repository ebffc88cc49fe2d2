package visit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextStatusCycle(t *testing.T) {
	t.Parallel()

	assert.Equal(t, StatusStayedThere, NextStatus(StatusBeenThere))
	assert.Equal(t, StatusPassedBy, NextStatus(StatusStayedThere))
	assert.Equal(t, StatusNotVisited, NextStatus(StatusPassedBy))
	assert.Equal(t, StatusBeenThere, NextStatus(StatusNotVisited))
}

func TestNextStatusCycleCloses(t *testing.T) {
	t.Parallel()

	// Four advances from any valid status must return to the start.
	for _, start := range []Status{StatusBeenThere, StatusStayedThere, StatusPassedBy, StatusNotVisited} {
		s := start
		for i := 0; i < 4; i++ {
			s = NextStatus(s)
		}
		assert.Equal(t, start, s)
	}
}

func TestNextStatusUnknownInput(t *testing.T) {
	t.Parallel()

	// Garbage values are treated as not-visited, so the next click marks
	// the region as been-there.
	assert.Equal(t, StatusBeenThere, NextStatus(Status("bogus")))
	assert.Equal(t, StatusBeenThere, NextStatus(Status("")))
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, StatusBeenThere, Normalize(StatusBeenThere))
	assert.Equal(t, StatusNotVisited, Normalize(Status("BEEN-THERE")))
	assert.Equal(t, StatusNotVisited, Normalize(Status("")))
}

func TestVisited(t *testing.T) {
	t.Parallel()

	assert.True(t, StatusBeenThere.Visited())
	assert.True(t, StatusStayedThere.Visited())
	assert.True(t, StatusPassedBy.Visited())
	assert.False(t, StatusNotVisited.Visited())
	assert.False(t, Status("bogus").Visited())
}

func TestStatusColorsAreDistinct(t *testing.T) {
	t.Parallel()

	fills := map[string]struct{}{}
	strokes := map[string]struct{}{}
	for _, s := range []Status{StatusBeenThere, StatusStayedThere, StatusPassedBy, StatusNotVisited} {
		require.NotEmpty(t, s.FillColor())
		require.NotEmpty(t, s.StrokeColor())
		fills[s.FillColor()] = struct{}{}
		strokes[s.StrokeColor()] = struct{}{}
	}
	assert.Len(t, fills, 4)
	assert.Len(t, strokes, 4)
}
