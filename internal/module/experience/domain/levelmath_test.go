package domain

import "testing"

func TestLevel_BoundaryExact(t *testing.T) {
	for level := 2; level <= 100; level++ {
		exact := CumulativeXPForLevel(level)
		if got := Level(exact); got != level {
			t.Errorf("Level(%d) = %d, want %d", exact, got, level)
		}
		if got := Level(exact - 1); got != level-1 {
			t.Errorf("Level(%d) = %d, want %d", exact-1, got, level-1)
		}
	}
}

func TestLevel_ZeroIsOne(t *testing.T) {
	if got := Level(0); got != 1 {
		t.Errorf("Level(0) = %d, want 1", got)
	}
}

func TestEvolutionStage(t *testing.T) {
	cases := []struct {
		level int
		want  string
	}{
		{1, "Baby"}, {5, "Baby"},
		{6, "Young"}, {15, "Young"},
		{16, "Adult"}, {30, "Adult"},
		{31, "Prime"}, {50, "Prime"},
		{51, "Legendary"}, {1000, "Legendary"},
	}
	for _, c := range cases {
		if got := EvolutionStage(c.level); got != c.want {
			t.Errorf("EvolutionStage(%d) = %q, want %q", c.level, got, c.want)
		}
	}
}

func TestMilestoneXPFor(t *testing.T) {
	xp, ok := MilestoneXPFor(7)
	if !ok || xp != 50 {
		t.Errorf("MilestoneXPFor(7) = (%d, %v), want (50, true)", xp, ok)
	}
	if _, ok := MilestoneXPFor(8); ok {
		t.Errorf("MilestoneXPFor(8) should not be a milestone")
	}
}
