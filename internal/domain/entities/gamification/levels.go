// Package gamification converts explored-province counts into discrete
// progress levels.
package gamification

import "github.com/lakbayph/lakbay-go/internal/domain/entities/visit"

// Level is a progress milestone keyed by a visited-count threshold.
type Level struct {
	Number   int    `json:"number"`
	Required int    `json:"required"`
	Title    string `json:"title"`
	Glyph    string `json:"glyph"`
}

// LevelInfo describes where an explorer sits in the level ladder.
type LevelInfo struct {
	Levels        []Level `json:"levels"`
	CurrentLevel  int     `json:"currentLevel"`
	Current       *Level  `json:"current,omitempty"`
	Next          *Level  `json:"next,omitempty"`
	ToNext        int     `json:"toNext"`
	LevelProgress int     `json:"levelProgress"`
}

const (
	masteryTitle = "Philippines Master"
	masteryGlyph = "🇵🇭"

	// Shown before the first threshold is reached.
	placeholderTitle = "Future Traveler"
	placeholderGlyph = "🌱"
)

type baseLevel struct {
	required int
	title    string
	glyph    string
}

// Authored against an 82-province total; thresholds are capped at the live
// registry count so the ladder stays reachable if the map changes.
var baseLevels = []baseLevel{
	{1, "Tourist", "🧳"},
	{3, "Day Tripper", "🚌"},
	{5, "Island Hopper", "⛵"},
	{10, "Backpacker", "🎒"},
	{20, "Wayfarer", "🥾"},
	{30, "Trailblazer", "🧭"},
	{40, "Voyager", "🗺️"},
	{50, "Adventurer", "🏔️"},
	{60, "Globetrotter", "✈️"},
	{70, "Explorer Elite", "🌋"},
	{78, "Archipelago Legend", "🏝️"},
}

// BuildLevels constructs the level ladder for the given province total. Each
// base threshold is capped at totalProvinces and a final mastery level with
// Required == totalProvinces is always appended, even when the last base
// threshold already equals the total.
func BuildLevels(totalProvinces int) []Level {
	levels := make([]Level, 0, len(baseLevels)+1)
	for i, base := range baseLevels {
		required := base.required
		if required > totalProvinces {
			required = totalProvinces
		}
		levels = append(levels, Level{
			Number:   i + 1,
			Required: required,
			Title:    base.title,
			Glyph:    base.glyph,
		})
	}
	levels = append(levels, Level{
		Number:   len(baseLevels) + 1,
		Required: totalProvinces,
		Title:    masteryTitle,
		Glyph:    masteryGlyph,
	})
	return levels
}

// GetLevelInfo resolves the current level for an explored count. The current
// level is the highest level whose threshold is at or below exploredCount;
// below the first threshold the explorer is in a level-0 placeholder state.
func GetLevelInfo(exploredCount, totalProvinces int) LevelInfo {
	levels := BuildLevels(totalProvinces)

	current := -1
	for i, level := range levels {
		if level.Required <= exploredCount {
			current = i
		}
	}

	info := LevelInfo{Levels: levels}

	if current < 0 {
		first := levels[0]
		info.CurrentLevel = 0
		info.Current = &Level{Number: 0, Required: 0, Title: placeholderTitle, Glyph: placeholderGlyph}
		info.Next = &first
		info.ToNext = max(0, first.Required-exploredCount)
		info.LevelProgress = progressBetween(0, first.Required, exploredCount)
		return info
	}

	cur := levels[current]
	info.CurrentLevel = cur.Number
	info.Current = &cur

	if current+1 < len(levels) {
		next := levels[current+1]
		info.Next = &next
		info.ToNext = max(0, next.Required-exploredCount)
		info.LevelProgress = progressBetween(cur.Required, next.Required, exploredCount)
	} else {
		info.ToNext = 0
		info.LevelProgress = 100
	}
	return info
}

// progressBetween returns how far explored sits between two thresholds as a
// percentage, clamped to [0, 100].
func progressBetween(from, to, explored int) int {
	if to <= from {
		return 100
	}
	pct := visit.PercentOf(explored-from, to-from)
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
