package gamification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLevelsTerminalIsTotal(t *testing.T) {
	t.Parallel()

	for _, total := range []int{82, 78, 50, 10, 1} {
		levels := BuildLevels(total)
		require.NotEmpty(t, levels)
		assert.Equal(t, total, levels[len(levels)-1].Required, "total=%d", total)
	}
}

func TestBuildLevelsThresholdsNonDecreasing(t *testing.T) {
	t.Parallel()

	levels := BuildLevels(82)
	for i := 1; i < len(levels); i++ {
		assert.GreaterOrEqual(t, levels[i].Required, levels[i-1].Required)
	}
}

func TestBuildLevelsCapsThresholds(t *testing.T) {
	t.Parallel()

	// With a shrunken map every threshold collapses onto the total; the
	// mastery level is still appended even when the last base threshold
	// already equals it.
	levels := BuildLevels(3)
	for _, level := range levels {
		assert.LessOrEqual(t, level.Required, 3)
	}
	assert.Equal(t, len(baseLevels)+1, len(levels))
}

func TestGetLevelInfoZeroExplored(t *testing.T) {
	t.Parallel()

	info := GetLevelInfo(0, 82)
	require.NotNil(t, info.Current)
	assert.Equal(t, 0, info.CurrentLevel)
	assert.Equal(t, placeholderTitle, info.Current.Title)
	require.NotNil(t, info.Next)
	assert.Equal(t, 1, info.Next.Required)
	assert.Equal(t, 1, info.ToNext)
	assert.Equal(t, 0, info.LevelProgress)
}

func TestGetLevelInfoMidLadder(t *testing.T) {
	t.Parallel()

	info := GetLevelInfo(10, 82)
	require.NotNil(t, info.Current)
	assert.Equal(t, "Backpacker", info.Current.Title)
	require.NotNil(t, info.Next)
	assert.Equal(t, 20, info.Next.Required)
	assert.Equal(t, 10, info.ToNext)
	assert.Equal(t, 0, info.LevelProgress)
}

func TestGetLevelInfoBetweenThresholds(t *testing.T) {
	t.Parallel()

	info := GetLevelInfo(15, 82)
	require.NotNil(t, info.Current)
	assert.Equal(t, "Backpacker", info.Current.Title)
	assert.Equal(t, 5, info.ToNext)
	assert.Equal(t, 50, info.LevelProgress)
}

func TestGetLevelInfoMastery(t *testing.T) {
	t.Parallel()

	info := GetLevelInfo(82, 82)
	require.NotNil(t, info.Current)
	assert.Equal(t, masteryTitle, info.Current.Title)
	assert.Nil(t, info.Next)
	assert.Equal(t, 0, info.ToNext)
	assert.Equal(t, 100, info.LevelProgress)
}

func TestGetLevelInfoOvershoot(t *testing.T) {
	t.Parallel()

	// Explored beyond the total still resolves to mastery, never panics.
	info := GetLevelInfo(200, 82)
	require.NotNil(t, info.Current)
	assert.Equal(t, masteryTitle, info.Current.Title)
	assert.Equal(t, 100, info.LevelProgress)
}
