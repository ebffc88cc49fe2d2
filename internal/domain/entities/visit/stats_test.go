package visit

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func regionIDs(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("PH-%02d", i)
	}
	return ids
}

func TestAggregateCountsSumToTotal(t *testing.T) {
	t.Parallel()

	state := MapState{
		"PH-00": StatusBeenThere,
		"PH-01": StatusBeenThere,
		"PH-02": StatusStayedThere,
		"PH-03": StatusPassedBy,
	}
	stats := AggregateCounts(state, 82)

	assert.Equal(t, 2, stats.BeenThere)
	assert.Equal(t, 1, stats.StayedThere)
	assert.Equal(t, 1, stats.PassedBy)
	assert.Equal(t, 78, stats.NotVisited)
	assert.Equal(t, 82, stats.BeenThere+stats.StayedThere+stats.PassedBy+stats.NotVisited)
}

func TestAggregateScenario(t *testing.T) {
	t.Parallel()

	ids := regionIDs(82)
	state := MapState{}
	for i := 0; i < 5; i++ {
		state[ids[i]] = StatusBeenThere
	}
	for i := 5; i < 8; i++ {
		state[ids[i]] = StatusStayedThere
	}
	for i := 8; i < 10; i++ {
		state[ids[i]] = StatusPassedBy
	}

	stats := Aggregate(state, ids)
	assert.Equal(t, 5, stats.BeenThere)
	assert.Equal(t, 3, stats.StayedThere)
	assert.Equal(t, 2, stats.PassedBy)
	assert.Equal(t, 72, stats.NotVisited)
	assert.Equal(t, 10, stats.VisitedCount())
	assert.Equal(t, 12, stats.VisitedPercentage())
}

func TestAggregateDropsStaleKeys(t *testing.T) {
	t.Parallel()

	ids := regionIDs(10)
	state := MapState{
		ids[0]:   StatusBeenThere,
		"PH-OLD": StatusBeenThere, // no longer in the registry
	}

	stats := Aggregate(state, ids)
	assert.Equal(t, 1, stats.BeenThere)
	assert.Equal(t, 9, stats.NotVisited)
	assert.Equal(t, 10, stats.Total)
}

func TestAggregateSkipsInvalidValues(t *testing.T) {
	t.Parallel()

	ids := regionIDs(5)
	state := MapState{
		ids[0]: StatusBeenThere,
		ids[1]: Status("corrupted"),
		ids[2]: StatusNotVisited,
	}

	stats := Aggregate(state, ids)
	assert.Equal(t, 1, stats.VisitedCount())
	assert.Equal(t, 4, stats.NotVisited)
}

func TestAggregateEmpty(t *testing.T) {
	t.Parallel()

	stats := Aggregate(MapState{}, regionIDs(82))
	assert.Equal(t, 0, stats.VisitedCount())
	assert.Equal(t, 82, stats.NotVisited)
	assert.Equal(t, 0, stats.VisitedPercentage())
}

func TestPercentOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, PercentOf(5, 0))
	assert.Equal(t, 0, PercentOf(0, 82))
	assert.Equal(t, 12, PercentOf(10, 82))
	assert.Equal(t, 50, PercentOf(41, 82))
	assert.Equal(t, 100, PercentOf(82, 82))
	assert.Equal(t, 1, PercentOf(1, 82))
}
