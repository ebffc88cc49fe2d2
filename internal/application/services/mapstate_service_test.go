package services

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lakbayph/lakbay-go/internal/domain/entities/visit"
	"github.com/lakbayph/lakbay-go/internal/infrastructure/geo"
	"github.com/lakbayph/lakbay-go/internal/infrastructure/observability/performance"
	"github.com/lakbayph/lakbay-go/internal/infrastructure/persistence/mapstate"
)

const serviceTestSVG = `<svg viewBox="0 0 10 10">
<path id="PH-AAA" title="Alpha" fill="#e5e7eb" stroke="#9ca3af"/>
<path id="PH-BBB" title="Beta" fill="#e5e7eb" stroke="#9ca3af"/>
<path id="PH-CCC" title="Gamma" fill="#e5e7eb" stroke="#9ca3af"/>
</svg>`

func testMapStateService(t *testing.T) *MapStateService {
	t.Helper()

	stores := &mapstate.Stores{
		Local: mapstate.NewLocalStore(filepath.Join(t.TempDir(), "state.json")),
	}
	registry := geo.NewRegistry(serviceTestSVG)
	return NewMapStateService(stores, registry, testLogger(t), performance.NewTracker(10))
}

func TestCycleStatusFullCycle(t *testing.T) {
	t.Parallel()
	svc := testMapStateService(t)

	expected := []visit.Status{
		visit.StatusBeenThere,
		visit.StatusStayedThere,
		visit.StatusPassedBy,
		visit.StatusNotVisited,
	}
	for _, want := range expected {
		view, next, err := svc.CycleStatus("", "PH-AAA")
		require.NoError(t, err)
		assert.Equal(t, want, next)
		if want == visit.StatusNotVisited {
			// Cycling back to not-visited removes the key entirely.
			assert.NotContains(t, view.State, "PH-AAA")
		} else {
			assert.Equal(t, want, view.State["PH-AAA"])
		}
	}
}

func TestCycleStatusUnknownRegion(t *testing.T) {
	t.Parallel()
	svc := testMapStateService(t)

	_, _, err := svc.CycleStatus("", "PH-NOPE")
	assert.ErrorIs(t, err, geo.ErrUnknownRegion)
}

func TestCycleStatusPersists(t *testing.T) {
	t.Parallel()
	svc := testMapStateService(t)

	_, _, err := svc.CycleStatus("", "PH-AAA")
	require.NoError(t, err)

	view, err := svc.GetState("")
	require.NoError(t, err)
	assert.Equal(t, visit.StatusBeenThere, view.State["PH-AAA"])
	assert.Equal(t, 1, view.Stats.BeenThere)
	assert.Equal(t, 2, view.Stats.NotVisited)
}

func TestReplaceStateFiltersUnknownRegions(t *testing.T) {
	t.Parallel()
	svc := testMapStateService(t)

	view, err := svc.ReplaceState("", visit.MapState{
		"PH-AAA": visit.StatusBeenThere,
		"PH-OLD": visit.StatusStayedThere,
		"PH-BBB": visit.Status("corrupted"),
	})
	require.NoError(t, err)

	assert.NotContains(t, view.State, "PH-OLD")
	assert.Equal(t, visit.StatusBeenThere, view.State["PH-AAA"])
	assert.Equal(t, visit.StatusNotVisited, view.State["PH-BBB"])
	assert.Equal(t, 1, view.Stats.VisitedCount())
}

func TestStateViewLevels(t *testing.T) {
	t.Parallel()
	svc := testMapStateService(t)

	view, err := svc.ReplaceState("", visit.MapState{
		"PH-AAA": visit.StatusBeenThere,
		"PH-BBB": visit.StatusPassedBy,
		"PH-CCC": visit.StatusStayedThere,
	})
	require.NoError(t, err)

	// All three regions visited on a three-province map is mastery.
	require.NotNil(t, view.Level.Current)
	assert.Equal(t, "Philippines Master", view.Level.Current.Title)
	assert.Equal(t, 100, view.Level.LevelProgress)
}

func TestLevelsLadder(t *testing.T) {
	t.Parallel()
	svc := testMapStateService(t)

	levels := svc.Levels()
	require.NotEmpty(t, levels)
	assert.Equal(t, 3, levels[len(levels)-1].Required)
}
