package domain

import "math"

// XPForLevel returns the XP required to advance from level to level+1
// ("XP needed to go from level L to L+1 is L·10").
func XPForLevel(level int) int {
	return level * 10
}

// CumulativeXPForLevel returns the total XP needed to reach level,
// counting from level 1 ("5·(L−1)·L").
func CumulativeXPForLevel(level int) int {
	return 5 * (level - 1) * level
}

// Level returns the largest level L with CumulativeXPForLevel(L) <= totalXP,
// clamped to >= 1.
func Level(totalXP int) int {
	if totalXP < 0 {
		totalXP = 0
	}

	approx := int(math.Floor((-1+math.Sqrt(1+0.8*float64(totalXP)))/2)) + 1
	if approx < 1 {
		approx = 1
	}

	for CumulativeXPForLevel(approx+1) <= totalXP {
		approx++
	}
	for approx > 1 && CumulativeXPForLevel(approx) > totalXP {
		approx--
	}
	return approx
}

// EvolutionStage buckets a level for presentation.
func EvolutionStage(level int) string {
	switch {
	case level <= 5:
		return "Baby"
	case level <= 15:
		return "Young"
	case level <= 30:
		return "Adult"
	case level <= 50:
		return "Prime"
	default:
		return "Legendary"
	}
}

// StreakMilestone is one entry of the days→bonus-XP milestone table.
type StreakMilestone struct {
	Days     int
	XPReward int
}

// StreakMilestones is ordered ascending by Days.
var StreakMilestones = []StreakMilestone{
	{Days: 7, XPReward: 50},
	{Days: 14, XPReward: 75},
	{Days: 30, XPReward: 150},
	{Days: 60, XPReward: 250},
	{Days: 100, XPReward: 400},
	{Days: 150, XPReward: 500},
	{Days: 200, XPReward: 600},
	{Days: 365, XPReward: 1000},
}

// MilestoneXPFor returns the bonus XP for a streak length, if any.
func MilestoneXPFor(streak int) (int, bool) {
	for _, m := range StreakMilestones {
		if m.Days == streak {
			return m.XPReward, true
		}
	}
	return 0, false
}
