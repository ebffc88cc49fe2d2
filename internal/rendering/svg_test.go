package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lakbayph/lakbay-go/internal/domain/entities/visit"
)

const sampleMap = `<svg viewBox="0 0 100 100">
<path id="PH-AAA" title="Alpha" fill="#e5e7eb" stroke="#9ca3af" d="M0 0h10v10z"/>
<path id="PH-BBB" title="Beta" fill="#e5e7eb" stroke="#9ca3af" d="M20 0h10v10z"/>
<path id="frame" fill="#ffffff" stroke="#000000" d="M0 0h100v100z"/>
</svg>`

func TestRecolorSVGAppliesStatusColors(t *testing.T) {
	t.Parallel()

	out := RecolorSVG(sampleMap, visit.MapState{
		"PH-AAA": visit.StatusBeenThere,
	})

	assert.Contains(t, out, `id="PH-AAA" title="Alpha" fill="`+visit.StatusBeenThere.FillColor()+`"`)
	assert.Contains(t, out, `stroke="`+visit.StatusBeenThere.StrokeColor()+`"`)
	// Absent regions keep the not-visited palette.
	assert.Contains(t, out, `id="PH-BBB" title="Beta" fill="`+visit.StatusNotVisited.FillColor()+`"`)
}

func TestRecolorSVGLeavesForeignPathsAlone(t *testing.T) {
	t.Parallel()

	out := RecolorSVG(sampleMap, visit.MapState{})
	assert.Contains(t, out, `id="frame" fill="#ffffff" stroke="#000000"`)
}

func TestRecolorSVGNormalizesUnknownStatus(t *testing.T) {
	t.Parallel()

	out := RecolorSVG(sampleMap, visit.MapState{
		"PH-AAA": visit.Status("corrupted"),
	})
	assert.Contains(t, out, `id="PH-AAA" title="Alpha" fill="`+visit.StatusNotVisited.FillColor()+`"`)
}
