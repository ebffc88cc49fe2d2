package rendering

import (
	"bytes"
	"context"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lakbayph/lakbay-go/internal/domain/entities/gamification"
	"github.com/lakbayph/lakbay-go/internal/domain/entities/visit"
	"github.com/lakbayph/lakbay-go/internal/infrastructure/observability/logging"
)

func testComposer(t *testing.T) *Composer {
	t.Helper()
	logger, err := logging.NewChanneledLogger(nil)
	require.NoError(t, err)
	c, err := NewComposer(logger)
	require.NoError(t, err)
	return c
}

const composerTestSVG = `<svg viewBox="0 0 1000 1700" xmlns="http://www.w3.org/2000/svg">
<path id="PH-AAA" fill="#34d399" stroke="#059669" d="M100 100 L300 100 L300 300 L100 300 Z"/>
<path id="PH-BBB" fill="#e5e7eb" stroke="#9ca3af" d="M400 400 L600 400 L600 600 L400 600 Z"/>
</svg>`

func TestComposeProducesCanvasFromViewBox(t *testing.T) {
	t.Parallel()
	c := testComposer(t)

	stats := visit.MapStats{BeenThere: 1, NotVisited: 81, Total: 82}
	composite, err := c.Compose(context.Background(), ComposeRequest{
		SVG:             composerTestSVG,
		AchievementCard: &AchievementCard{Info: gamification.GetLevelInfo(1, 82)},
		ProgressCard:    &ProgressCard{Stats: stats},
		CreatedAt:       time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	// Width is fixed; height follows the 1000x1700 viewBox aspect.
	assert.Equal(t, 1440, composite.Width)
	assert.Equal(t, 2448, composite.Height)

	decoded, err := png.Decode(bytes.NewReader(composite.PNG()))
	require.NoError(t, err)
	assert.Equal(t, composite.Width, decoded.Bounds().Dx())
	assert.Equal(t, composite.Height, decoded.Bounds().Dy())
}

func TestComposeWithOnlyProgressCard(t *testing.T) {
	t.Parallel()
	c := testComposer(t)

	composite, err := c.Compose(context.Background(), ComposeRequest{
		SVG:          composerTestSVG,
		ProgressCard: &ProgressCard{Stats: visit.MapStats{BeenThere: 10, NotVisited: 72, Total: 82}},
	})
	require.NoError(t, err)

	decoded, err := png.Decode(bytes.NewReader(composite.PNG()))
	require.NoError(t, err)
	assert.Equal(t, 1440, decoded.Bounds().Dx())
}

func TestComposeWithoutCards(t *testing.T) {
	t.Parallel()
	c := testComposer(t)

	// Nil card renderers are omitted, not fatal.
	composite, err := c.Compose(context.Background(), ComposeRequest{SVG: composerTestSVG})
	require.NoError(t, err)
	assert.NotEmpty(t, composite.PNG())
}

func TestComposeRejectsInvalidSVG(t *testing.T) {
	t.Parallel()
	c := testComposer(t)

	_, err := c.Compose(context.Background(), ComposeRequest{SVG: "not markup at all"})
	assert.Error(t, err)
}

func TestComposeWebPVariant(t *testing.T) {
	t.Parallel()
	c := testComposer(t)

	composite, err := c.Compose(context.Background(), ComposeRequest{SVG: composerTestSVG})
	require.NoError(t, err)

	data, err := composite.WebP()
	require.NoError(t, err)
	require.Greater(t, len(data), 12)
	assert.Equal(t, "RIFF", string(data[:4]))
	assert.Equal(t, "WEBP", string(data[8:12]))
}

func TestResolveCreatedDate(t *testing.T) {
	t.Parallel()

	fixed := time.Date(2026, 1, 15, 8, 30, 0, 0, time.UTC)

	assert.Equal(t, fixed, resolveCreatedDate(fixed))
	assert.Equal(t, fixed, resolveCreatedDate(&fixed))
	assert.Equal(t, fixed.Unix(), resolveCreatedDate(fixed.Unix()).Unix())
	assert.Equal(t, fixed.Unix(), resolveCreatedDate(fixed.UnixMilli()).Unix())
	assert.Equal(t, fixed.Unix(), resolveCreatedDate(float64(fixed.Unix())).Unix())

	parsed := resolveCreatedDate("2026-01-15")
	assert.Equal(t, 2026, parsed.Year())
	assert.Equal(t, time.January, parsed.Month())
	assert.Equal(t, 15, parsed.Day())

	// Unparseable inputs fall back to now rather than erroring.
	before := time.Now()
	got := resolveCreatedDate("not a date")
	assert.False(t, got.Before(before.Add(-time.Second)))

	before = time.Now()
	got = resolveCreatedDate(nil)
	assert.False(t, got.Before(before.Add(-time.Second)))
}

func TestLayoutBadgesStacksBottomUp(t *testing.T) {
	t.Parallel()
	c := testComposer(t)

	dc := newCardContext()
	face, err := c.fonts.Regular(badgeFontSize)
	require.NoError(t, err)
	dc.SetFontFace(face)

	badges := []badge{
		{text: "Created on March 14, 2026"},
		{text: "Track your Philippine adventures on lakbay.ph"},
	}
	placements := layoutBadges(dc, badges, 2448)
	require.Len(t, placements, 2)

	// Placements come back in reverse display order: the last badge sits at
	// the bottom offset and the first stacks above it with the gap between.
	last, first := placements[0], placements[1]
	assert.Equal(t, "Track your Philippine adventures on lakbay.ph", last.text)
	assert.InDelta(t, 2448-badgeBottomOffset, last.y+last.h, 0.001)
	assert.InDelta(t, last.y-badgeGap, first.y+first.h, 0.001)
	assert.Equal(t, badgeLeftOffset, last.x)
	assert.Equal(t, badgeLeftOffset, first.x)

	// Width tracks the measured string.
	assert.Greater(t, last.w, first.w)
}
